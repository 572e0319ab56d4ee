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

// Package plen implements the TASD variable-width length prefix: one
// exponent byte giving the width of the following big-endian length value,
// generalized from the fixed {1,2,4,8}-byte length-of-length families seen
// in similar TLV encodings to an arbitrary 1..=255 byte width.
package plen

import (
	"io"

	"github.com/cybergarage/go-safecast/safecast"

	tasderrors "github.com/cybergarage/go-tasd/tasd/errors"
)

// Encode writes n as a PLen value: an exponent byte followed by that many
// big-endian bytes.
//
// A length of zero is encoded as exponent 1 followed by a single 0x00
// byte (two bytes total), rather than the single reserved 0x00-exponent
// byte some historical encoders emit — that shorter form is rejected by
// Decode (ErrExponentIsZero is never valid on decode), so it must never be
// produced here.
func Encode(w io.Writer, n int) (int, error) {
	if n == 0 {
		if _, err := w.Write([]byte{1, 0}); err != nil {
			return 0, err
		}
		return 2, nil
	}

	var tmp [8]byte
	v := uint64(n)
	width := 0
	for i := len(tmp) - 1; i >= 0; i-- {
		tmp[i] = byte(v)
		v >>= 8
		width++
		if v == 0 {
			break
		}
	}
	bytes := tmp[len(tmp)-width:]

	if _, err := w.Write([]byte{byte(width)}); err != nil {
		return 0, err
	}
	if _, err := w.Write(bytes); err != nil {
		return 0, err
	}
	return 1 + width, nil
}

// Decode reads a PLen value: an exponent byte, then that many big-endian
// bytes folded into the returned length. An exponent of 0 is always
// rejected with ErrExponentIsZero. Overflow of the platform int width
// during accumulation is rejected with ErrOversizedLength.
func Decode(r io.Reader) (int, error) {
	var expBuf [1]byte
	if err := readFull(r, expBuf[:]); err != nil {
		return 0, err
	}
	exp := expBuf[0]
	if exp == 0 {
		return 0, tasderrors.ErrExponentIsZero
	}

	acc := uint64(0)
	buf := make([]byte, exp)
	if err := readFull(r, buf); err != nil {
		return 0, err
	}
	for _, b := range buf {
		shifted := acc << 8
		if acc != 0 && shifted>>8 != acc {
			return 0, tasderrors.ErrOversizedLength
		}
		acc = shifted | uint64(b)
	}

	var n int
	if err := safecast.ToInt(acc, &n); err != nil {
		return 0, tasderrors.ErrOversizedLength
	}
	return n, nil
}

func readFull(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return tasderrors.ErrEndOfStream
	}
	return err
}
