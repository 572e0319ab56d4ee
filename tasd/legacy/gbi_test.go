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
	"testing"

	"github.com/cybergarage/go-tasd/tasd"
	"github.com/cybergarage/go-tasd/tasd/packet"
)

func TestGbiFromTasdFileGb(t *testing.T) {
	f := tasd.New()
	f.Packets = append(f.Packets,
		packet.ConsoleType{Console: packet.ConsoleGb},
		packet.InputMoment{Kind: packet.MomentIndexFrame, Index: 1, Data: []byte{0x00, 0xFF}},
	)

	g, err := NewGbiFromTasdFile(f)
	if err != nil {
		t.Fatalf("NewGbiFromTasdFile: %v", err)
	}
	want := "00000001 00FF\n00000001 0000\n"
	if g.InputText != want {
		t.Errorf("got %q, want %q", g.InputText, want)
	}
	if g.ConsoleType != packet.ConsoleGb {
		t.Errorf("ConsoleType = %v, want Gb", g.ConsoleType)
	}
}

func TestGbiFromTasdFileGbc(t *testing.T) {
	f := tasd.New()
	f.Packets = append(f.Packets,
		packet.ConsoleType{Console: packet.ConsoleGbc},
		packet.InputMoment{Kind: packet.MomentIndexFrame, Index: 7, Data: []byte{0xAA}},
	)

	g, err := NewGbiFromTasdFile(f)
	if err != nil {
		t.Fatalf("NewGbiFromTasdFile: %v", err)
	}
	want := "00000007 0055\n"
	if g.InputText != want {
		t.Errorf("got %q, want %q", g.InputText, want)
	}
}

func TestGbiFromTasdFileGba(t *testing.T) {
	f := tasd.New()
	f.Packets = append(f.Packets,
		packet.ConsoleType{Console: packet.ConsoleGba},
		packet.InputMoment{Kind: packet.MomentIndexFrame, Index: 3, Data: []byte{0x00, 0x00, 0xFF, 0xFF}},
	)

	g, err := NewGbiFromTasdFile(f)
	if err != nil {
		t.Fatalf("NewGbiFromTasdFile: %v", err)
	}
	want := "00000003 FFFF\n00000003 0000\n"
	if g.InputText != want {
		t.Errorf("got %q, want %q", g.InputText, want)
	}
}

func TestGbiFromTasdFileSortsMomentsByIndex(t *testing.T) {
	f := tasd.New()
	f.Packets = append(f.Packets,
		packet.ConsoleType{Console: packet.ConsoleGb},
		packet.InputMoment{Kind: packet.MomentIndexFrame, Index: 5, Data: []byte{0x00}},
		packet.InputMoment{Kind: packet.MomentIndexFrame, Index: 2, Data: []byte{0x00}},
		packet.InputMoment{Kind: packet.MomentIndexFrame, Index: 9, Data: []byte{0x00}},
	)

	g, err := NewGbiFromTasdFile(f)
	if err != nil {
		t.Fatalf("NewGbiFromTasdFile: %v", err)
	}
	want := "00000002 00FF\n00000005 00FF\n00000009 00FF\n"
	if g.InputText != want {
		t.Errorf("got %q, want %q", g.InputText, want)
	}
}

func TestGbiFromTasdFileRejectsUnsupportedConsole(t *testing.T) {
	f := tasd.New()
	f.Packets = append(f.Packets, packet.ConsoleType{Console: packet.ConsoleNes})

	_, err := NewGbiFromTasdFile(f)
	if err != ErrUnsupportedConsole {
		t.Errorf("got %v, want ErrUnsupportedConsole", err)
	}
}

func TestGbiFromTasdFileRequiresConsoleType(t *testing.T) {
	f := tasd.New()
	_, err := NewGbiFromTasdFile(f)
	if err != ErrUnsupportedConsole {
		t.Errorf("got %v, want ErrUnsupportedConsole", err)
	}
}

func TestGbiToTasdFileNotImplemented(t *testing.T) {
	g := &Gbi{ConsoleType: packet.ConsoleGb}
	_, err := g.ToTasdFile()
	if err != tasd.ErrNotImplemented {
		t.Errorf("got %v, want ErrNotImplemented", err)
	}
}
