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

package plen

import (
	"bytes"
	"testing"

	tasderrors "github.com/cybergarage/go-tasd/tasd/errors"
)

func TestRoundTrip(t *testing.T) {
	tests := []int{0, 1, 255, 256, 65535, 65536, 1 << 24, 1<<32 - 1}
	for _, n := range tests {
		buf := new(bytes.Buffer)
		if _, err := Encode(buf, n); err != nil {
			t.Fatalf("Encode(%d): %v", n, err)
		}
		got, err := Decode(buf)
		if err != nil {
			t.Fatalf("Decode after Encode(%d): %v", n, err)
		}
		if got != n {
			t.Errorf("got %d, want %d", got, n)
		}
	}
}

func TestEncodeIsMinimalWidth(t *testing.T) {
	tests := []struct {
		n             int
		wantExponent  byte
	}{
		{1, 1},
		{255, 1},
		{256, 2},
		{65535, 2},
		{65536, 3},
	}
	for _, test := range tests {
		buf := new(bytes.Buffer)
		if _, err := Encode(buf, test.n); err != nil {
			t.Fatal(err)
		}
		exponent := buf.Bytes()[0]
		if exponent != test.wantExponent {
			t.Errorf("Encode(%d): exponent %d, want %d", test.n, exponent, test.wantExponent)
		}
	}
}

func TestEncodeZero(t *testing.T) {
	buf := new(bytes.Buffer)
	n, err := Encode(buf, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("wrote %d bytes, want 2", n)
	}
	if got, want := buf.Bytes(), []byte{0x01, 0x00}; !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestDecodeRejectsZeroExponent(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0x00})
	if _, err := Decode(buf); !tasderrors.Is(err, tasderrors.ErrExponentIsZero) {
		t.Errorf("got %v, want ErrExponentIsZero", err)
	}
}

func TestDecodeRejectsSingleZeroByteZeroEncoding(t *testing.T) {
	// Some historical encoders emit a single 0x00 byte (exponent 0, no
	// trailing length bytes) for a zero length; this decoder always
	// rejects an exponent of 0, so that shorter form never round-trips.
	buf := bytes.NewBuffer([]byte{0x00})
	if _, err := Decode(buf); !tasderrors.Is(err, tasderrors.ErrExponentIsZero) {
		t.Errorf("got %v, want ErrExponentIsZero", err)
	}
}

func TestDecodeEndOfStream(t *testing.T) {
	buf := new(bytes.Buffer)
	if _, err := Decode(buf); !tasderrors.Is(err, tasderrors.ErrEndOfStream) {
		t.Errorf("got %v, want ErrEndOfStream", err)
	}
}

func TestDecodeTruncatedLengthBytes(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0x04, 0x00, 0x00})
	if _, err := Decode(buf); !tasderrors.Is(err, tasderrors.ErrEndOfStream) {
		t.Errorf("got %v, want ErrEndOfStream", err)
	}
}
