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
	"reflect"
	"testing"

	tasderrors "github.com/cybergarage/go-tasd/tasd/errors"
)

func TestKeyString(t *testing.T) {
	k := Key{0x00, 0x0A}
	if got, want := k.String(), "00 0A"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func encodeDecode(t *testing.T, p Packet) Packet {
	t.Helper()
	buf := new(bytes.Buffer)
	if _, err := p.Encode(buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("%d bytes left unconsumed after decode", buf.Len())
	}
	return got
}

func TestRoundTripMetadataPackets(t *testing.T) {
	tests := []Packet{
		ConsoleType{Console: ConsoleNes, Name: ""},
		ConsoleType{Console: ConsoleCustom, Name: "FictitiousConsole"},
		ConsoleRegion{Region: RegionPal},
		GameTitle{Title: "Example Quest"},
		Attribution{Kind: AttributionAuthor, Name: "someone"},
		TotalFrames{Frames: 123456},
		BlankFrames{Frames: -5},
		Verified{Verified: true},
		MemoryInit{
			DataType: InitAllZeros,
			Device:   InitDeviceNesCpuRam,
			Required: true,
			Name:     "wram",
			Data:     []byte{0x01, 0x02, 0x03},
		},
		GameIdentifier{
			Kind:     IdSha256Hash,
			Encoding: IdEncodingBase16,
			Name:     "rom",
			ID:       []byte{0xDE, 0xAD, 0xBE, 0xEF},
		},
		PortController{Port: 1, Kind: PortNesStandardController},
		PortOverread{Port: 2, Overread: true},
		SnesLatchTrain{Timings: []uint64{1, 2, 3}},
		InputChunk{Port: 1, Data: []byte{0x01, 0xFF, 0x00}},
		InputMoment{Port: 1, Hold: true, Kind: MomentIndexFrame, Index: 42, Data: []byte{0xAA}},
		LagFrameChunk{MovieFrame: 10, Count: 3},
		Comment{Text: "nice run"},
		Unspecified{Data: []byte{0x01, 0x02}},
	}

	for _, want := range tests {
		got := encodeDecode(t, want)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %#v, want %#v", got, want)
		}
	}
}

func TestUnknownKeyDecodesAsUnsupported(t *testing.T) {
	buf := new(bytes.Buffer)
	key := Key{0x7E, 0x7E}
	payload := []byte{0x01, 0x02, 0x03}
	if _, err := writeFrame(buf, key, payload); err != nil {
		t.Fatal(err)
	}

	got, err := Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	unsupported, ok := got.(Unsupported)
	if !ok {
		t.Fatalf("got %T, want Unsupported", got)
	}
	if unsupported.RawKey != key || !bytes.Equal(unsupported.RawPayload, payload) {
		t.Errorf("got %+v, want key=%v payload=%v", unsupported, key, payload)
	}
}

func TestKnownKeyWithBadEnumDecodesAsUnsupported(t *testing.T) {
	buf := new(bytes.Buffer)
	payload := []byte{0xEE} // not a valid Console value
	if _, err := writeFrame(buf, keyConsoleType, payload); err != nil {
		t.Fatal(err)
	}

	got, err := Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	unsupported, ok := got.(Unsupported)
	if !ok {
		t.Fatalf("got %T, want Unsupported", got)
	}
	if unsupported.RawKey != keyConsoleType || !bytes.Equal(unsupported.RawPayload, payload) {
		t.Errorf("got %+v", unsupported)
	}

	// Re-encoding preserves the original bytes exactly.
	reencoded := new(bytes.Buffer)
	if _, err := unsupported.Encode(reencoded); err != nil {
		t.Fatal(err)
	}
	original := new(bytes.Buffer)
	if _, err := writeFrame(original, keyConsoleType, payload); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(reencoded.Bytes(), original.Bytes()) {
		t.Errorf("re-encoded bytes differ from original")
	}
}

func TestTransitionWithNestedPacketRoundTrips(t *testing.T) {
	want := Transition{
		Port:       1,
		Kind:       TransitionIndexFrame,
		Index:      100,
		Transition: TransitionPacketDerived,
		InnerPacket: Comment{Text: "triggered by a debug command"},
	}

	got := encodeDecode(t, want)
	gotT, ok := got.(Transition)
	if !ok {
		t.Fatalf("got %T, want Transition", got)
	}
	if gotT.Port != want.Port || gotT.Kind != want.Kind || gotT.Index != want.Index || gotT.Transition != want.Transition {
		t.Errorf("got %+v, want %+v", gotT, want)
	}
	if !reflect.DeepEqual(gotT.InnerPacket, want.InnerPacket) {
		t.Errorf("inner packet: got %#v, want %#v", gotT.InnerPacket, want.InnerPacket)
	}
}

func TestTransitionWithoutInnerPacketRoundTrips(t *testing.T) {
	want := Transition{Port: 2, Kind: TransitionIndexFrame, Index: 1, Transition: TransitionSoftReset}
	got := encodeDecode(t, want)
	gotT, ok := got.(Transition)
	if !ok {
		t.Fatalf("got %T, want Transition", got)
	}
	if gotT.InnerPacket != nil {
		t.Errorf("got inner packet %#v, want nil", gotT.InnerPacket)
	}
}

func TestTransitionExceedingNestingDepthFails(t *testing.T) {
	// Build a chain of Transition packets one layer deeper than
	// MaxNestingDepth allows, by repeatedly wrapping a base Transition in
	// another Transition as InnerPacket. The wrap one layer out from the
	// innermost packet is the one whose attempt to decode its inner
	// packet would land at depth MaxNestingDepth+1, so it must still
	// carry a non-nil InnerPacket for the limit to actually be exercised.
	var inner Packet = Transition{Port: 1, Kind: TransitionIndexFrame, Index: 0, Transition: TransitionSoftReset}
	for i := 0; i < MaxNestingDepth+1; i++ {
		inner = Transition{Port: 1, Kind: TransitionIndexFrame, Index: 0, Transition: TransitionSoftReset, InnerPacket: inner}
	}

	buf := new(bytes.Buffer)
	if _, err := inner.Encode(buf); err != nil {
		t.Fatal(err)
	}

	_, err := Decode(buf)
	if !tasderrors.Is(err, tasderrors.ErrRecursionLimit) {
		t.Errorf("got %v, want ErrRecursionLimit", err)
	}
}
