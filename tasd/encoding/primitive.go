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

// Package encoding implements the TASD primitive codec: big-endian
// fixed-width integers, validated booleans, raw and length-prefixed byte
// and string fields. All multi-byte values are big-endian, per the TASD
// wire format.
package encoding

import (
	"encoding/binary"
	"io"

	tasderrors "github.com/cybergarage/go-tasd/tasd/errors"
)

// PutUint8 writes a single byte.
func PutUint8(w io.Writer, v uint8) (int, error) {
	return w.Write([]byte{v})
}

// GetUint8 reads a single byte.
func GetUint8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// PutUint16 writes a big-endian uint16.
func PutUint16(w io.Writer, v uint16) (int, error) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	return w.Write(buf[:])
}

// GetUint16 reads a big-endian uint16.
func GetUint16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

// PutUint32 writes a big-endian uint32.
func PutUint32(w io.Writer, v uint32) (int, error) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return w.Write(buf[:])
}

// GetUint32 reads a big-endian uint32.
func GetUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// PutUint64 writes a big-endian uint64.
func PutUint64(w io.Writer, v uint64) (int, error) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return w.Write(buf[:])
}

// GetUint64 reads a big-endian uint64.
func GetUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

// PutInt16 writes a big-endian int16.
func PutInt16(w io.Writer, v int16) (int, error) {
	return PutUint16(w, uint16(v))
}

// GetInt16 reads a big-endian int16.
func GetInt16(r io.Reader) (int16, error) {
	v, err := GetUint16(r)
	return int16(v), err
}

// PutInt32 writes a big-endian int32.
func PutInt32(w io.Writer, v int32) (int, error) {
	return PutUint32(w, uint32(v))
}

// GetInt32 reads a big-endian int32.
func GetInt32(r io.Reader) (int32, error) {
	v, err := GetUint32(r)
	return int32(v), err
}

// PutInt64 writes a big-endian int64.
func PutInt64(w io.Writer, v int64) (int, error) {
	return PutUint64(w, uint64(v))
}

// GetInt64 reads a big-endian int64.
func GetInt64(r io.Reader) (int64, error) {
	v, err := GetUint64(r)
	return int64(v), err
}

// PutBool writes a bool as 0x00 or 0x01.
func PutBool(w io.Writer, v bool) (int, error) {
	if v {
		return PutUint8(w, 1)
	}
	return PutUint8(w, 0)
}

// GetBool reads a bool, rejecting any byte other than 0x00/0x01 with
// ErrInvalidBool.
func GetBool(r io.Reader) (bool, error) {
	v, err := GetUint8(r)
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, tasderrors.ErrInvalidBool
	}
}

// PutFixedBytes writes a fixed-size byte array verbatim.
func PutFixedBytes(w io.Writer, b []byte) (int, error) {
	return w.Write(b)
}

// GetFixedBytes reads exactly n bytes.
func GetFixedBytes(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := readFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// PutBytes writes a raw byte slice, used for tail []byte fields.
func PutBytes(w io.Writer, b []byte) (int, error) {
	return w.Write(b)
}

// GetTailBytes reads all bytes remaining in r (a tail []byte field).
func GetTailBytes(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}

// PutUint64Slice writes a []uint64 tail field as consecutive big-endian
// 8-byte words.
func PutUint64Slice(w io.Writer, v []uint64) (int, error) {
	written := 0
	for _, word := range v {
		n, err := PutUint64(w, word)
		written += n
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// GetTailUint64Slice reads all remaining bytes in r as a []uint64 tail
// field, requiring the remaining byte count be a multiple of 8.
func GetTailUint64Slice(r io.Reader) ([]uint64, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(raw)%8 != 0 {
		return nil, tasderrors.ErrWrongLength
	}
	out := make([]uint64, len(raw)/8)
	for i := range out {
		out[i] = binary.BigEndian.Uint64(raw[i*8 : i*8+8])
	}
	return out, nil
}

// PutString writes a string's raw UTF-8 bytes, used for tail string fields.
func PutString(w io.Writer, s string) (int, error) {
	return io.WriteString(w, s)
}

// GetTailString reads all bytes remaining in r as a UTF-8 string.
func GetTailString(r io.Reader) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return decodeUTF8(raw)
}

// readFull reads exactly len(buf) bytes, mapping EOF / ErrUnexpectedEOF to
// ErrEndOfStream so callers surface the TASD decode error taxonomy rather
// than raw io errors.
func readFull(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return tasderrors.ErrEndOfStream
	}
	return err
}
