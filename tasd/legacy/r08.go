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

package legacy

import (
	"github.com/cybergarage/go-tasd/tasd"
	"github.com/cybergarage/go-tasd/tasd/packet"
)

// R08 is a flat array of 2-byte input frames, one byte per port, for
// exactly two NES-standard-controller ports. Unlike TASD's active-high
// stored bytes, R08 stores inputs active-low (a held button reads as a
// 0 bit), matching the original dumping hardware's electrical
// convention.
type R08 struct {
	Inputs [][2]byte
}

// NewR08FromTasdFile converts f to R08. f must carry at least one
// PortController packet, and every PortController must be the NES
// standard controller (kind 0x0101); any other configuration fails with
// ErrMissingPortControllers or ErrUnsupportedControllers.
func NewR08FromTasdFile(f *tasd.TasdFile) (*R08, error) {
	var ports []packet.PortController
	for _, pkt := range f.Packets {
		if p, ok := pkt.(packet.PortController); ok {
			ports = append(ports, p)
		}
	}
	if len(ports) == 0 {
		return nil, ErrMissingPortControllers
	}
	for _, p := range ports {
		if p.Kind != packet.PortNesStandardController {
			return nil, ErrUnsupportedControllers
		}
	}

	var p1, p2 []byte
	for _, pkt := range f.Packets {
		chunk, ok := pkt.(packet.InputChunk)
		if !ok {
			continue
		}
		switch chunk.Port {
		case 1:
			p1 = append(p1, chunk.Data...)
		case 2:
			p2 = append(p2, chunk.Data...)
		}
	}

	switch {
	case len(p1) < len(p2):
		p1 = padWith(p1, len(p2), 0xFF)
	case len(p2) < len(p1):
		p2 = padWith(p2, len(p1), 0xFF)
	}

	inputs := make([][2]byte, len(p1))
	for i := range inputs {
		inputs[i] = [2]byte{p1[i] ^ 0xFF, p2[i] ^ 0xFF}
	}

	return &R08{Inputs: inputs}, nil
}

// ToTasdFile converts r to a new TasdFile: a ConsoleType{Nes} packet,
// followed by a PortController and InputChunk for each non-empty lane.
func (r *R08) ToTasdFile() *tasd.TasdFile {
	f := tasd.New()
	f.Packets = append(f.Packets, packet.ConsoleType{Console: packet.ConsoleNes})

	p1 := make([]byte, len(r.Inputs))
	p2 := make([]byte, len(r.Inputs))
	for i, frame := range r.Inputs {
		p1[i] = frame[0] ^ 0xFF
		p2[i] = frame[1] ^ 0xFF
	}

	if len(p1) > 0 {
		f.Packets = append(f.Packets, packet.PortController{Port: 1, Kind: packet.PortNesStandardController})
	}
	if len(p2) > 0 {
		f.Packets = append(f.Packets, packet.PortController{Port: 2, Kind: packet.PortNesStandardController})
	}
	if len(p1) > 0 {
		f.Packets = append(f.Packets, packet.InputChunk{Port: 1, Data: p1})
	}
	if len(p2) > 0 {
		f.Packets = append(f.Packets, packet.InputChunk{Port: 2, Data: p2})
	}

	return f
}

func padWith(b []byte, n int, v byte) []byte {
	out := make([]byte, n)
	copy(out, b)
	for i := len(b); i < n; i++ {
		out[i] = v
	}
	return out
}
