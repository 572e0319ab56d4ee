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
	"encoding/binary"
	"fmt"
	"sort"
	"strings"

	"github.com/cybergarage/go-tasd/tasd"
	"github.com/cybergarage/go-tasd/tasd/packet"
)

// Gbi is a UTF-8 text script of "<index> <input>" lines, in the format
// the Game Boy family's community tooling historically used.
type Gbi struct {
	InputText   string
	ConsoleType packet.Console
}

// NewGbiFromTasdFile converts f to a Gbi script. f's ConsoleType must be Gb,
// Gbc, or Gba; any other console fails with ErrUnsupportedConsole.
// InputMoment packets are sorted by Index ascending before emitting.
func NewGbiFromTasdFile(f *tasd.TasdFile) (*Gbi, error) {
	var console packet.Console
	var found bool
	for _, pkt := range f.Packets {
		if ct, ok := pkt.(packet.ConsoleType); ok {
			console, found = ct.Console, true
			break
		}
	}
	if !found {
		return nil, ErrUnsupportedConsole
	}

	var moments []packet.InputMoment
	for _, pkt := range f.Packets {
		if m, ok := pkt.(packet.InputMoment); ok {
			moments = append(moments, m)
		}
	}
	sort.SliceStable(moments, func(i, j int) bool { return moments[i].Index < moments[j].Index })

	var b strings.Builder
	b.Grow(14 * len(moments))

	switch console {
	case packet.ConsoleGb, packet.ConsoleGbc:
		for _, m := range moments {
			for _, input := range m.Data {
				fmt.Fprintf(&b, "%08X %04X\n", m.Index, uint16(input)^0xFF)
			}
		}
	case packet.ConsoleGba:
		for _, m := range moments {
			for i := 0; i+1 < len(m.Data); i += 2 {
				v := binary.BigEndian.Uint16(m.Data[i : i+2])
				fmt.Fprintf(&b, "%08X %04X\n", m.Index, v^0xFFFF)
			}
		}
	default:
		return nil, ErrUnsupportedConsole
	}

	return &Gbi{InputText: b.String(), ConsoleType: console}, nil
}

// ToTasdFile is unimplemented: the reference implementation never
// defined a GBI-to-TASD mapping (the text format's per-line index isn't
// self-describing enough to reconstruct InputMoment's Kind/Hold fields
// without an external convention), so this always returns
// tasd.ErrNotImplemented.
func (g *Gbi) ToTasdFile() (*tasd.TasdFile, error) {
	return nil, tasd.ErrNotImplemented
}
