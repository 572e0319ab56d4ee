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

// Package tasd implements the TASD (Tool-Assisted Speedrun Dump) file
// container: the magic/version/keylen envelope around a sequence of
// tasd/packet packets, plus construction, parsing, and save-in-place
// helpers.
package tasd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cybergarage/go-logger/log"
	"github.com/cybergarage/go-tasd/tasd/packet"
	tasderrors "github.com/cybergarage/go-tasd/tasd/errors"
)

// MagicSize is the width in bytes of the file magic.
const MagicSize = 4

// Magic is the fixed 4-byte signature every TASD file begins with.
var Magic = [MagicSize]byte{0x54, 0x41, 0x53, 0x44}

// CurrentVersion is the version this package writes for new files.
const CurrentVersion uint16 = 0x0001

// SupportedVersions lists every version this package can parse. The
// reference implementation accepts only CurrentVersion but frames it as
// a membership check against a set rather than a single equality test,
// so a future version can be added here without changing call sites.
var SupportedVersions = []uint16{CurrentVersion}

// DefaultKeyLen is the only keylen value this package's packet catalog
// supports; every defined packet key is 2 bytes wide.
const DefaultKeyLen = uint8(packet.KeyLen)

var (
	// ErrMissingHeader indicates the input ended before a complete
	// magic/version/keylen header could be read.
	ErrMissingHeader = errors.New("missing file header")

	// ErrMagicMismatch indicates the file's magic bytes don't match
	// Magic. Use As with a *MagicMismatchError to recover the bytes
	// actually read.
	ErrMagicMismatch = errors.New("magic number mismatch")

	// ErrUnsupportedVersion indicates the file's version isn't in
	// SupportedVersions.
	ErrUnsupportedVersion = errors.New("unsupported version")

	// ErrUnsupportedKeylen indicates the file's keylen isn't
	// DefaultKeyLen. No packet key in the catalog is any other width.
	ErrUnsupportedKeylen = errors.New("unsupported keylen")

	// ErrMissingPath indicates Save was called on a TasdFile with no
	// associated path (one not opened via ParseFile or given a path via
	// SetPath).
	ErrMissingPath = errors.New("missing file path")

	// ErrNotImplemented indicates a code path the reference
	// implementation itself never implemented, such as GBI-to-TASD
	// conversion.
	ErrNotImplemented = errors.New("not implemented")
)

// MagicMismatchError reports the 4 bytes actually read where Magic was
// expected.
type MagicMismatchError struct {
	Received [MagicSize]byte
}

func (e *MagicMismatchError) Error() string {
	return fmt.Sprintf("magic number mismatch: received % X", e.Received[:])
}

func (e *MagicMismatchError) Unwrap() error { return ErrMagicMismatch }

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain that matches target, and if so,
// sets target to that error value and returns true.
func As(err error, target interface{}) bool { return errors.As(err, target) }

// TasdFile is the parsed, in-memory form of a TASD file: its envelope
// fields plus the ordered packet stream.
type TasdFile struct {
	Version uint16
	KeyLen  uint8
	Packets []packet.Packet

	path string
}

// New returns an empty TasdFile carrying CurrentVersion, DefaultKeyLen,
// and a single DumpCreated packet timestamped at the current wall-clock
// instant.
func New() *TasdFile {
	return NewWithClock(defaultClock)
}

// NewWithClock is New with an injected Clock, for deterministic tests.
func NewWithClock(c Clock) *TasdFile {
	return &TasdFile{
		Version: CurrentVersion,
		KeyLen:  DefaultKeyLen,
		Packets: []packet.Packet{
			packet.DumpCreated{Timestamp: c.Now().Unix()},
		},
	}
}

// Path returns the filesystem path this file was parsed from, or the
// path last set via SetPath, or "" if neither has happened.
func (f *TasdFile) Path() string { return f.path }

// SetPath sets the path Save writes to, and returns f for chaining.
func (f *TasdFile) SetPath(path string) *TasdFile {
	f.path = path
	return f
}

// Clone returns a deep copy of f: every packet is re-encoded and decoded
// into a fresh value, so mutating a slice field on a cloned packet (e.g.
// InputChunk.Data) never reaches back into f's copy.
func (f *TasdFile) Clone() (*TasdFile, error) {
	clone := &TasdFile{
		Version: f.Version,
		KeyLen:  f.KeyLen,
		Packets: make([]packet.Packet, len(f.Packets)),
		path:    f.path,
	}
	for i, pkt := range f.Packets {
		buf := new(bytes.Buffer)
		if _, err := pkt.Encode(buf); err != nil {
			return nil, err
		}
		cloned, err := packet.Decode(buf)
		if err != nil {
			return nil, err
		}
		clone.Packets[i] = cloned
	}
	return clone, nil
}

// ParseFile reads and parses the file at path.
func ParseFile(path string) (*TasdFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := ParseSlice(data)
	if err != nil {
		return nil, err
	}
	f.path = path
	return f, nil
}

// ParseSlice parses a complete TASD file from data.
func ParseSlice(data []byte) (*TasdFile, error) {
	r := bytes.NewReader(data)

	var magic [MagicSize]byte
	if err := readHeaderBytes(r, magic[:]); err != nil {
		return nil, err
	}
	if magic != Magic {
		return nil, &MagicMismatchError{Received: magic}
	}

	var versionBuf [2]byte
	if err := readHeaderBytes(r, versionBuf[:]); err != nil {
		return nil, err
	}
	version := uint16(versionBuf[0])<<8 | uint16(versionBuf[1])
	if !versionSupported(version) {
		return nil, fmt.Errorf("%w: %#04x", ErrUnsupportedVersion, version)
	}

	var keyLenBuf [1]byte
	if err := readHeaderBytes(r, keyLenBuf[:]); err != nil {
		return nil, err
	}
	keyLen := keyLenBuf[0]
	if keyLen != DefaultKeyLen {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedKeylen, keyLen)
	}

	f := &TasdFile{Version: version, KeyLen: keyLen}

	for {
		pkt, err := packet.Decode(r)
		if err != nil {
			// packet.Decode maps a clean end-of-input to ErrEndOfStream;
			// that's only a successful parse if the cursor lands exactly
			// at the end of the input, i.e. no partial packet trails the
			// last complete one.
			if tasderrors.Is(err, tasderrors.ErrEndOfStream) && r.Len() == 0 {
				break
			}
			return nil, err
		}
		f.Packets = append(f.Packets, pkt)
	}

	log.Debugf("tasd: parsed %d packets (version %#04x)", len(f.Packets), f.Version)

	return f, nil
}

// Encode writes the full file envelope and packet stream to w.
func (f *TasdFile) Encode(w io.Writer) (int, error) {
	written := 0

	n, err := w.Write(Magic[:])
	written += n
	if err != nil {
		return written, err
	}

	n, err = w.Write([]byte{byte(f.Version >> 8), byte(f.Version)})
	written += n
	if err != nil {
		return written, err
	}

	n, err = w.Write([]byte{f.KeyLen})
	written += n
	if err != nil {
		return written, err
	}

	for _, pkt := range f.Packets {
		n, err := pkt.Encode(w)
		written += n
		if err != nil {
			return written, err
		}
	}

	return written, nil
}

// Bytes returns the full encoded file.
func (f *TasdFile) Bytes() ([]byte, error) {
	buf := new(bytes.Buffer)
	if _, err := f.Encode(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the file to its associated path (see Path/SetPath),
// failing with ErrMissingPath if none is set.
func (f *TasdFile) Save() error {
	if f.path == "" {
		return ErrMissingPath
	}
	data, err := f.Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}

func versionSupported(v uint16) bool {
	for _, sv := range SupportedVersions {
		if sv == v {
			return true
		}
	}
	return false
}

func readHeaderBytes(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		return ErrMissingHeader
	}
	return nil
}

