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

// Package tasdtest exercises go-tasd end to end, as an external consumer
// would: building a file, writing it, reading it back, and converting it
// to and from the legacy formats it supersedes.
package tasdtest

import (
	"bytes"
	"testing"

	"github.com/cybergarage/go-tasd/tasd"
	"github.com/cybergarage/go-tasd/tasd/legacy"
	"github.com/cybergarage/go-tasd/tasd/packet"
)

func buildSampleRun(t *testing.T) *tasd.TasdFile {
	t.Helper()
	f := tasd.New()
	f.Packets = append(f.Packets,
		packet.ConsoleType{Console: packet.ConsoleNes},
		packet.ConsoleRegion{Region: packet.RegionNtsc},
		packet.GameTitle{Title: "Example Quest"},
		packet.Attribution{Kind: packet.AttributionAuthor, Name: "runner"},
		packet.PortController{Port: 1, Kind: packet.PortNesStandardController},
		packet.PortController{Port: 2, Kind: packet.PortNesStandardController},
		packet.InputChunk{Port: 1, Data: []byte{0xFF, 0xFE, 0xFF, 0xFB}},
		packet.InputChunk{Port: 2, Data: []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		packet.Transition{
			Port:        1,
			Kind:        packet.TransitionIndexFrame,
			Index:       2,
			Transition:  packet.TransitionSoftReset,
		},
		packet.TotalFrames{Frames: 4},
		packet.Comment{Text: "sample run used for end-to-end testing"},
	)
	return f
}

func TestFileSurvivesEncodeParseRoundTrip(t *testing.T) {
	want := buildSampleRun(t)

	data, err := want.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	got, err := tasd.ParseSlice(data)
	if err != nil {
		t.Fatalf("ParseSlice: %v", err)
	}

	if len(got.Packets) != len(want.Packets) {
		t.Fatalf("got %d packets, want %d", len(got.Packets), len(want.Packets))
	}

	reencoded, err := got.Bytes()
	if err != nil {
		t.Fatalf("Bytes (reencode): %v", err)
	}
	if !bytes.Equal(data, reencoded) {
		t.Errorf("reencoded bytes differ from the original encoding")
	}
}

func TestFileConvertsToR08(t *testing.T) {
	f := buildSampleRun(t)

	r08, err := legacy.NewR08FromTasdFile(f)
	if err != nil {
		t.Fatalf("NewR08FromTasdFile: %v", err)
	}
	if len(r08.Inputs) != 4 {
		t.Fatalf("got %d frames, want 4", len(r08.Inputs))
	}
	// Port 1's second frame (TASD byte 0xFE) is inverted on the way to
	// R08, so the R08 byte is 0xFE ^ 0xFF = 0x01.
	if r08.Inputs[1][0] != 0xFE^0xFF {
		t.Errorf("got frame 1 port 1 = %#02x, want %#02x", r08.Inputs[1][0], byte(0xFE^0xFF))
	}

	back := r08.ToTasdFile()
	r08Again, err := legacy.NewR08FromTasdFile(back)
	if err != nil {
		t.Fatalf("NewR08FromTasdFile (round 2): %v", err)
	}
	if len(r08Again.Inputs) != len(r08.Inputs) {
		t.Fatalf("got %d frames after round trip, want %d", len(r08Again.Inputs), len(r08.Inputs))
	}
	for i := range r08.Inputs {
		if r08Again.Inputs[i] != r08.Inputs[i] {
			t.Errorf("frame %d: got %v, want %v", i, r08Again.Inputs[i], r08.Inputs[i])
		}
	}
}

func TestGbFileConvertsToGbi(t *testing.T) {
	f := tasd.New()
	f.Packets = append(f.Packets,
		packet.ConsoleType{Console: packet.ConsoleGb},
		packet.InputMoment{Kind: packet.MomentIndexFrame, Index: 0, Data: []byte{0x00}},
		packet.InputMoment{Kind: packet.MomentIndexFrame, Index: 1, Data: []byte{0xFF}},
	)

	gbi, err := legacy.NewGbiFromTasdFile(f)
	if err != nil {
		t.Fatalf("NewGbiFromTasdFile: %v", err)
	}
	want := "00000000 00FF\n00000001 0000\n"
	if gbi.InputText != want {
		t.Errorf("got %q, want %q", gbi.InputText, want)
	}

	if _, err := gbi.ToTasdFile(); !tasd.Is(err, tasd.ErrNotImplemented) {
		t.Errorf("got %v, want ErrNotImplemented", err)
	}
}

func TestUnknownPacketRoundTripsAsUnsupported(t *testing.T) {
	f := tasd.New()
	f.Packets = append(f.Packets, packet.Unsupported{
		RawKey:     packet.Key{0x7E, 0x7E},
		RawPayload: []byte{0x01, 0x02},
	})

	data, err := f.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	got, err := tasd.ParseSlice(data)
	if err != nil {
		t.Fatalf("ParseSlice: %v", err)
	}
	// tasd.New stamps a DumpCreated packet first; the Unsupported packet
	// follows it.
	if len(got.Packets) != 2 {
		t.Fatalf("got %d packets, want 2", len(got.Packets))
	}
	unsupported, ok := got.Packets[1].(packet.Unsupported)
	if !ok {
		t.Fatalf("got %T, want Unsupported", got.Packets[1])
	}
	if unsupported.RawKey != (packet.Key{0x7E, 0x7E}) {
		t.Errorf("got key %v", unsupported.RawKey)
	}
}
