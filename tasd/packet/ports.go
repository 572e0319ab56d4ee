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
	keyPortController = Key{0x00, 0xF0}
	keyPortOverread    = Key{0x00, 0xF1}
)

// PortController declares what kind of controller is plugged into a port.
type PortController struct {
	Port int
	Kind PortKind
}

func (PortController) Key() Key { return keyPortController }

func (p PortController) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutUint8(payload, uint8(p.Port))
	encoding.PutUint16(payload, uint16(p.Kind))
	return writeFrame(w, p.Key(), payload.Bytes())
}

func decodePortControllerPayload(payload []byte) (PortController, error) {
	r := bytes.NewReader(payload)

	port, err := encoding.GetUint8(r)
	if err != nil {
		return PortController{}, err
	}

	rawKind, err := encoding.GetUint16(r)
	if err != nil {
		return PortController{}, err
	}
	kind, err := PortKindFromU16(rawKind)
	if err != nil {
		return PortController{}, err
	}

	return PortController{Port: int(port), Kind: kind}, nil
}

// PortOverread records whether reading a port past its last latched input
// wraps or returns a fixed value, matching real hardware open-bus quirks.
type PortOverread struct {
	Port      int
	Overread bool
}

func (PortOverread) Key() Key { return keyPortOverread }

func (p PortOverread) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutUint8(payload, uint8(p.Port))
	encoding.PutBool(payload, p.Overread)
	return writeFrame(w, p.Key(), payload.Bytes())
}

func decodePortOverreadPayload(payload []byte) (PortOverread, error) {
	r := bytes.NewReader(payload)

	port, err := encoding.GetUint8(r)
	if err != nil {
		return PortOverread{}, err
	}

	overread, err := encoding.GetBool(r)
	if err != nil {
		return PortOverread{}, err
	}

	return PortOverread{Port: int(port), Overread: overread}, nil
}
