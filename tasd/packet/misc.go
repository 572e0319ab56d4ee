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

package packet

import (
	"bytes"
	"io"

	"github.com/cybergarage/go-tasd/tasd/encoding"
)

var (
	keyComment       = Key{0xFF, 0x01}
	keyExperimental  = Key{0xFF, 0xFE}
	keyUnspecified   = Key{0xFF, 0xFF}
)

// Comment is a free-form human-readable note.
type Comment struct{ Text string }

func (Comment) Key() Key { return keyComment }
func (p Comment) Encode(w io.Writer) (int, error) {
	return writeStringPacket(w, p.Key(), p.Text)
}
func decodeCommentPayload(payload []byte) (Comment, error) {
	s, err := decodeStringPayload(payload)
	return Comment{Text: s}, err
}

// Experimental flags that the file uses experimental, not-yet-stabilized
// packet semantics somewhere in its packet stream. Consumers may choose
// to treat such files with reduced confidence.
type Experimental struct{ Experimental bool }

func (Experimental) Key() Key { return keyExperimental }
func (p Experimental) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutBool(payload, p.Experimental)
	return writeFrame(w, p.Key(), payload.Bytes())
}
func decodeExperimentalPayload(payload []byte) (Experimental, error) {
	r := bytes.NewReader(payload)
	v, err := encoding.GetBool(r)
	return Experimental{Experimental: v}, err
}

// Unspecified carries application-defined data with no TASD-mandated
// structure, for producers/consumers that agree on a private convention.
type Unspecified struct{ Data []byte }

func (Unspecified) Key() Key { return keyUnspecified }
func (p Unspecified) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutBytes(payload, p.Data)
	return writeFrame(w, p.Key(), payload.Bytes())
}
func decodeUnspecifiedPayload(payload []byte) (Unspecified, error) {
	r := bytes.NewReader(payload)
	data, err := encoding.GetTailBytes(r)
	return Unspecified{Data: data}, err
}
