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

// Package errors collects the sentinel errors shared by the codec packages
// (tasd/encoding, tasd/encoding/plen, tasd/packet). File-envelope-level
// errors live alongside TasdFile in the tasd package instead, since they
// carry file-specific context (e.g. the raw magic bytes read).
package errors

import "errors"

var (
	// ErrEndOfStream indicates the reader ran out of bytes while parsing.
	// Within the packet dispatcher this is the signal that decoding is
	// complete, but only when the cursor lands exactly at the input length.
	ErrEndOfStream = errors.New("end of stream")

	// ErrInvalidUtf8 indicates a string field failed UTF-8 validation.
	ErrInvalidUtf8 = errors.New("invalid utf-8")

	// ErrInvalidBool indicates a boolean byte was neither 0x00 nor 0x01.
	ErrInvalidBool = errors.New("invalid bool")

	// ErrInvalidEnum indicates an integer value has no matching enum variant.
	ErrInvalidEnum = errors.New("invalid enum value")

	// ErrWrongLength indicates a tail field's byte length didn't satisfy a
	// required multiple (e.g. a []uint64 tail whose length isn't a multiple
	// of 8).
	ErrWrongLength = errors.New("wrong field length")

	// ErrOversizedLength indicates a PLen value overflowed the platform's
	// int width while being accumulated.
	ErrOversizedLength = errors.New("oversized length")

	// ErrExponentIsZero indicates a PLen exponent byte of 0, which is
	// reserved and never valid on decode.
	ErrExponentIsZero = errors.New("plen exponent is zero")

	// ErrRecursionLimit indicates a Transition/MovieTransition packet's
	// nested-packet chain exceeded the maximum allowed nesting depth.
	ErrRecursionLimit = errors.New("packet nesting too deep")

	// ErrTruncatedFrame indicates a packet frame started (its key was
	// read) but ended before its PLen or payload could be fully read.
	// Unlike ErrEndOfStream, this never indicates a clean end of input.
	ErrTruncatedFrame = errors.New("truncated packet frame")

	// ErrTimeComponent indicates a timestamp is out of range for a calendar
	// conversion. The codec itself stores timestamps as raw int64 Unix
	// seconds, so this can only surface from a caller-side conversion to a
	// calendar type (e.g. time.Time via time.Unix, which never errors in
	// Go); it is kept for taxonomy parity with the source format and for
	// callers that layer their own calendar validation on top.
	ErrTimeComponent = errors.New("timestamp out of range")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target, and if so,
// sets target to that error value and returns true.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
