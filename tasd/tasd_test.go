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

package tasd

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/cybergarage/go-tasd/tasd/packet"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func TestNewWithClockStampsDumpCreated(t *testing.T) {
	want := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	f := NewWithClock(fixedClock{want})

	if f.Version != CurrentVersion {
		t.Errorf("Version = %#04x, want %#04x", f.Version, CurrentVersion)
	}
	if f.KeyLen != DefaultKeyLen {
		t.Errorf("KeyLen = %d, want %d", f.KeyLen, DefaultKeyLen)
	}
	if len(f.Packets) != 1 {
		t.Fatalf("len(Packets) = %d, want 1", len(f.Packets))
	}
	dc, ok := f.Packets[0].(packet.DumpCreated)
	if !ok {
		t.Fatalf("Packets[0] = %T, want DumpCreated", f.Packets[0])
	}
	if dc.Timestamp != want.Unix() {
		t.Errorf("Timestamp = %d, want %d", dc.Timestamp, want.Unix())
	}
}

func TestEncodeParseSliceRoundTrip(t *testing.T) {
	want := NewWithClock(fixedClock{time.Unix(1000, 0)})
	want.Packets = append(want.Packets,
		packet.ConsoleType{Console: packet.ConsoleSnes},
		packet.GameTitle{Title: "Example Quest"},
		packet.InputChunk{Port: 1, Data: []byte{0x01, 0x02, 0x03}},
	)

	data, err := want.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	got, err := ParseSlice(data)
	if err != nil {
		t.Fatalf("ParseSlice: %v", err)
	}

	if got.Version != want.Version || got.KeyLen != want.KeyLen {
		t.Errorf("got version=%#04x keylen=%d, want version=%#04x keylen=%d",
			got.Version, got.KeyLen, want.Version, want.KeyLen)
	}
	if len(got.Packets) != len(want.Packets) {
		t.Fatalf("got %d packets, want %d", len(got.Packets), len(want.Packets))
	}
	for i := range want.Packets {
		if !reflect.DeepEqual(got.Packets[i], want.Packets[i]) {
			t.Errorf("packet %d: got %#v, want %#v", i, got.Packets[i], want.Packets[i])
		}
	}
}

func TestParseSliceRejectsMagicMismatch(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x01, byte(DefaultKeyLen)}
	_, err := ParseSlice(data)

	var mismatch *MagicMismatchError
	if !As(err, &mismatch) {
		t.Fatalf("got %v, want *MagicMismatchError", err)
	}
	if mismatch.Received != [MagicSize]byte{0x00, 0x00, 0x00, 0x00} {
		t.Errorf("Received = % X", mismatch.Received)
	}
	if !Is(err, ErrMagicMismatch) {
		t.Errorf("Is(err, ErrMagicMismatch) = false")
	}
}

func TestParseSliceRejectsUnsupportedVersion(t *testing.T) {
	data := append([]byte{}, Magic[:]...)
	data = append(data, 0x00, 0x02, byte(DefaultKeyLen))

	_, err := ParseSlice(data)
	if !Is(err, ErrUnsupportedVersion) {
		t.Errorf("got %v, want ErrUnsupportedVersion", err)
	}
}

func TestParseSliceRejectsUnsupportedKeylen(t *testing.T) {
	data := append([]byte{}, Magic[:]...)
	data = append(data, 0x00, 0x01, 0x03)

	_, err := ParseSlice(data)
	if !Is(err, ErrUnsupportedKeylen) {
		t.Errorf("got %v, want ErrUnsupportedKeylen", err)
	}
}

func TestParseSliceRejectsTruncatedHeader(t *testing.T) {
	_, err := ParseSlice(Magic[:2])
	if !Is(err, ErrMissingHeader) {
		t.Errorf("got %v, want ErrMissingHeader", err)
	}
}

func TestParseSliceRejectsTrailingPartialPacket(t *testing.T) {
	f := NewWithClock(fixedClock{time.Unix(0, 0)})
	f.Packets = append(f.Packets, packet.GameTitle{Title: "complete"})
	data, err := f.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	// Drop the last byte so the final packet's payload is truncated.
	data = data[:len(data)-1]

	if _, err := ParseSlice(data); err == nil {
		t.Fatal("got nil error, want a decode failure on the truncated trailing packet")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	f := NewWithClock(fixedClock{time.Unix(0, 0)})
	f.SetPath("/tmp/original.tasd")
	f.Packets = append(f.Packets, packet.GameTitle{Title: "original"})

	clone, err := f.Clone()
	if err != nil {
		t.Fatal(err)
	}
	clone.Packets[1] = packet.GameTitle{Title: "mutated"}
	clone.Packets = append(clone.Packets, packet.Comment{Text: "extra"})
	clone.SetPath("/tmp/clone.tasd")

	if f.Path() != "/tmp/original.tasd" {
		t.Errorf("original Path() = %q, mutated by clone", f.Path())
	}
	if len(f.Packets) != 2 {
		t.Fatalf("original len(Packets) = %d, want 2 (unaffected by clone append)", len(f.Packets))
	}
	if f.Packets[1].(packet.GameTitle).Title != "original" {
		t.Errorf("original Packets[1] mutated by clone: %#v", f.Packets[1])
	}
}

func TestCloneDeepCopiesSliceFields(t *testing.T) {
	f := NewWithClock(fixedClock{time.Unix(0, 0)})
	f.Packets = append(f.Packets, packet.InputChunk{Port: 1, Data: []byte{0x01, 0x02, 0x03}})

	clone, err := f.Clone()
	if err != nil {
		t.Fatal(err)
	}

	clone.Packets[1].(packet.InputChunk).Data[0] = 0xFF

	original := f.Packets[1].(packet.InputChunk)
	if original.Data[0] != 0x01 {
		t.Errorf("original InputChunk.Data[0] = %#x, want 0x01 (clone mutation leaked into original)", original.Data[0])
	}
}

func TestSaveWithoutPathFails(t *testing.T) {
	f := NewWithClock(fixedClock{time.Unix(0, 0)})
	if err := f.Save(); !Is(err, ErrMissingPath) {
		t.Errorf("got %v, want ErrMissingPath", err)
	}
}

func TestParseFileSetsPath(t *testing.T) {
	f := NewWithClock(fixedClock{time.Unix(0, 0)})
	f.Packets = append(f.Packets, packet.GameTitle{Title: "saved"})

	dir := t.TempDir()
	path := filepath.Join(dir, "run.tasd")
	f.SetPath(path)
	if err := f.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if got.Path() != path {
		t.Errorf("Path() = %q, want %q", got.Path(), path)
	}
	if len(got.Packets) != 2 {
		t.Fatalf("got %d packets, want 2", len(got.Packets))
	}
}

func TestParseFileMissingFile(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "does-not-exist.tasd"))
	if !os.IsNotExist(err) {
		t.Errorf("got %v, want a not-exist error", err)
	}
}
