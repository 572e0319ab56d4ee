// Copyright (C) 2026 The go-tasd Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package packet implements the TASD packet codec: the outer key/PLen/
// payload framing shared by every packet variant, the ~40-entry packet
// catalog, and the Unsupported catch-all that preserves unknown keys for
// forward compatibility.
//
// Every defined packet key is unique, so at most one catalog variant can
// ever match a given key. Decode therefore reads the frame (key, PLen,
// payload) exactly once, looks the key up directly instead of attempting
// each variant's decoder in turn and rewinding on failure, and falls
// through to Unsupported if the key is unknown or if the matched variant's
// field decode fails (e.g. an enum field holding a value outside its
// known set). This is observably identical to the declaration-order
// try-and-rewind dispatch the wire format was designed around, and the
// format explicitly allows key-indexed optimization as long as behavior
// matches.
package packet

import (
	"bytes"
	"io"

	"github.com/cybergarage/go-tasd/tasd/encoding/plen"
	tasderrors "github.com/cybergarage/go-tasd/tasd/errors"
)

// KeyLen is the width in bytes of a packet key. The TASD envelope
// advertises this as a variable "keylen" field, but every cataloged key
// in this version of the format is 2 bytes; see TasdFile's keylen check.
const KeyLen = 2

// MaxNestingDepth bounds how many Transition/MovieTransition packets may
// nest their inner_packet field before decode fails with
// ErrRecursionLimit, guarding against stack exhaustion from adversarial
// input.
const MaxNestingDepth = 32

// Key identifies a packet variant on the wire.
type Key [KeyLen]byte

// String renders the key as "XX XX" hex, for logging and error messages.
func (k Key) String() string {
	const hex = "0123456789ABCDEF"
	out := make([]byte, 0, 5)
	for i, b := range k {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, hex[b>>4], hex[b&0x0F])
	}
	return string(out)
}

// Packet is implemented by every TASD packet variant, including
// Unsupported.
type Packet interface {
	// Key returns the packet's 2-byte wire key.
	Key() Key
	// Encode writes the packet's full frame (key, PLen, payload) to w,
	// returning the number of bytes written.
	Encode(w io.Writer) (int, error)
}

// writeFrame emits key || PLen(len(payload)) || payload.
func writeFrame(w io.Writer, key Key, payload []byte) (int, error) {
	written := 0
	n, err := w.Write(key[:])
	written += n
	if err != nil {
		return written, err
	}

	n, err = plen.Encode(w, len(payload))
	written += n
	if err != nil {
		return written, err
	}

	n, err = w.Write(payload)
	written += n
	return written, err
}

// readFrame reads a key and its PLen-prefixed payload from r and returns
// them. It is the single I/O
// operation the dispatcher performs per packet; everything past this
// point works off the in-memory payload slice.
//
// Only a clean break between frames - zero bytes available when the next
// key is expected - is reported as ErrEndOfStream. Once a frame has begun
// (its key has been read), running out of input while reading PLen or the
// payload is a truncated file, not an end of stream, so it is reported as
// ErrTruncatedFrame instead; callers must not treat the two the same way.
func readFrame(r io.Reader) (Key, []byte, error) {
	var key Key
	n, err := io.ReadFull(r, key[:])
	if err != nil {
		if err == io.EOF && n == 0 {
			return Key{}, nil, tasderrors.ErrEndOfStream
		}
		return Key{}, nil, tasderrors.ErrTruncatedFrame
	}

	length, err := plen.Decode(r)
	if err != nil {
		if tasderrors.Is(err, tasderrors.ErrEndOfStream) {
			return Key{}, nil, tasderrors.ErrTruncatedFrame
		}
		return Key{}, nil, err
	}

	payload := make([]byte, length)
	if err := readFull(r, payload); err != nil {
		if tasderrors.Is(err, tasderrors.ErrEndOfStream) {
			return Key{}, nil, tasderrors.ErrTruncatedFrame
		}
		return Key{}, nil, err
	}

	return key, payload, nil
}

func readFull(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return tasderrors.ErrEndOfStream
	}
	return err
}

// requireExhausted returns ErrWrongLength if r still has unread bytes,
// used after decoding a tail field to ensure the payload was fully
// consumed by the schema (relevant only to fields followed by further
// schema-level checks, e.g. the nested-packet tail field).
func requireExhausted(r *bytes.Reader) error {
	if r.Len() != 0 {
		return tasderrors.ErrWrongLength
	}
	return nil
}
