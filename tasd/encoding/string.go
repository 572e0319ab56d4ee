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

package encoding

import (
	"io"
	"unicode/utf8"

	"github.com/cybergarage/go-safecast/safecast"

	tasderrors "github.com/cybergarage/go-tasd/tasd/errors"
)

// maxU8StringLen is the largest byte length a u8_string field can carry,
// since its length prefix is a single byte.
const maxU8StringLen = 255

// PutU8String writes s as a one-byte length prefix followed by that many
// UTF-8 bytes. If s is longer than 255 bytes, it is truncated at the
// largest UTF-8 character boundary at or below 255 bytes — a code point is
// never split.
func PutU8String(w io.Writer, s string) (int, error) {
	data := truncateToU8StringBoundary(s)

	var lenByte uint8
	if err := safecast.ToUint8(len(data), &lenByte); err != nil {
		return 0, err
	}

	n1, err := PutUint8(w, lenByte)
	if err != nil {
		return n1, err
	}
	n2, err := PutString(w, data)
	return n1 + n2, err
}

// GetU8String reads a one-byte length prefix then that many UTF-8 bytes.
func GetU8String(r io.Reader) (string, error) {
	length, err := GetUint8(r)
	if err != nil {
		return "", err
	}
	raw, err := GetFixedBytes(r, int(length))
	if err != nil {
		return "", err
	}
	return decodeUTF8(raw)
}

// truncateToU8StringBoundary returns the longest prefix of s, at most 255
// bytes, that ends on a UTF-8 character boundary. For ASCII-only strings
// this always returns min(len(s), 255).
//
// Equivalent to the unstable str::floor_char_boundary routine the source
// format's reference implementation relies on: scan backward from byte
// position 255 over at most the last four bytes (the widest UTF-8 code
// point), stopping at the first byte that isn't a continuation byte
// (top two bits not 0b10).
func truncateToU8StringBoundary(s string) string {
	if len(s) <= maxU8StringLen {
		return s
	}

	b := s[:maxU8StringLen+1]
	for i := maxU8StringLen; i > maxU8StringLen-4 && i > 0; i-- {
		if !utf8.RuneStart(b[i]) {
			continue
		}
		return b[:i]
	}
	return b[:maxU8StringLen-3]
}

// decodeUTF8 validates raw as UTF-8, returning ErrInvalidUtf8 on any
// ill-formed sequence.
func decodeUTF8(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", tasderrors.ErrInvalidUtf8
	}
	return string(raw), nil
}
