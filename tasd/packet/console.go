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
	"io"

	"github.com/cybergarage/go-tasd/tasd/encoding"
)

// Console-specific packet keys. Key 01 03 and 02 03 are intentionally
// absent from the catalog; the reference format reserves them without
// assigning a meaning.
var (
	keyNesLatchFilter    = Key{0x01, 0x01}
	keyNesClockFilter    = Key{0x01, 0x02}
	keyNesGameGenieCode  = Key{0x01, 0x04}

	keySnesLatchFilter   = Key{0x02, 0x01}
	keySnesClockFilter   = Key{0x02, 0x02}
	keySnesGameGenieCode = Key{0x02, 0x04}
	keySnesLatchTrain    = Key{0x02, 0x05}

	keyGenesisGameGenieCode = Key{0x08, 0x04}
)

// NesLatchFilter holds the latch-line noise filter duration, in
// microseconds, applied by the emulator's NES controller port.
type NesLatchFilter struct{ Microseconds uint16 }

func (NesLatchFilter) Key() Key { return keyNesLatchFilter }
func (p NesLatchFilter) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutUint16(payload, p.Microseconds)
	return writeFrame(w, p.Key(), payload.Bytes())
}
func decodeNesLatchFilterPayload(payload []byte) (NesLatchFilter, error) {
	r := bytes.NewReader(payload)
	v, err := encoding.GetUint16(r)
	return NesLatchFilter{Microseconds: v}, err
}

// NesClockFilter holds the clock-line noise filter duration, in
// microseconds, applied by the emulator's NES controller port.
type NesClockFilter struct{ Microseconds uint8 }

func (NesClockFilter) Key() Key { return keyNesClockFilter }
func (p NesClockFilter) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutUint8(payload, p.Microseconds)
	return writeFrame(w, p.Key(), payload.Bytes())
}
func decodeNesClockFilterPayload(payload []byte) (NesClockFilter, error) {
	r := bytes.NewReader(payload)
	v, err := encoding.GetUint8(r)
	return NesClockFilter{Microseconds: v}, err
}

// NesGameGenieCode records a Game Genie cheat code active during the run.
type NesGameGenieCode struct{ Code string }

func (NesGameGenieCode) Key() Key { return keyNesGameGenieCode }
func (p NesGameGenieCode) Encode(w io.Writer) (int, error) {
	return writeStringPacket(w, p.Key(), p.Code)
}
func decodeNesGameGenieCodePayload(payload []byte) (NesGameGenieCode, error) {
	s, err := decodeStringPayload(payload)
	return NesGameGenieCode{Code: s}, err
}

// SnesLatchFilter holds the latch-line noise filter duration, in
// microseconds, applied by the emulator's SNES controller port.
type SnesLatchFilter struct{ Microseconds uint16 }

func (SnesLatchFilter) Key() Key { return keySnesLatchFilter }
func (p SnesLatchFilter) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutUint16(payload, p.Microseconds)
	return writeFrame(w, p.Key(), payload.Bytes())
}
func decodeSnesLatchFilterPayload(payload []byte) (SnesLatchFilter, error) {
	r := bytes.NewReader(payload)
	v, err := encoding.GetUint16(r)
	return SnesLatchFilter{Microseconds: v}, err
}

// SnesClockFilter holds the clock-line noise filter duration, in
// microseconds, applied by the emulator's SNES controller port.
type SnesClockFilter struct{ Microseconds uint8 }

func (SnesClockFilter) Key() Key { return keySnesClockFilter }
func (p SnesClockFilter) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutUint8(payload, p.Microseconds)
	return writeFrame(w, p.Key(), payload.Bytes())
}
func decodeSnesClockFilterPayload(payload []byte) (SnesClockFilter, error) {
	r := bytes.NewReader(payload)
	v, err := encoding.GetUint8(r)
	return SnesClockFilter{Microseconds: v}, err
}

// SnesGameGenieCode records a Game Genie cheat code active during the run.
type SnesGameGenieCode struct{ Code string }

func (SnesGameGenieCode) Key() Key { return keySnesGameGenieCode }
func (p SnesGameGenieCode) Encode(w io.Writer) (int, error) {
	return writeStringPacket(w, p.Key(), p.Code)
}
func decodeSnesGameGenieCodePayload(payload []byte) (SnesGameGenieCode, error) {
	s, err := decodeStringPayload(payload)
	return SnesGameGenieCode{Code: s}, err
}

// SnesLatchTrain records the sequence of latch timings, in clock cycles,
// used to defeat lag-frame-dependent latch trains on real hardware.
type SnesLatchTrain struct{ Timings []uint64 }

func (SnesLatchTrain) Key() Key { return keySnesLatchTrain }

func (p SnesLatchTrain) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutUint64Slice(payload, p.Timings)
	return writeFrame(w, p.Key(), payload.Bytes())
}

func decodeSnesLatchTrainPayload(payload []byte) (SnesLatchTrain, error) {
	r := bytes.NewReader(payload)
	timings, err := encoding.GetTailUint64Slice(r)
	if err != nil {
		return SnesLatchTrain{}, err
	}
	return SnesLatchTrain{Timings: timings}, nil
}

// GenesisGameGenieCode records a Game Genie cheat code active during the
// run.
type GenesisGameGenieCode struct{ Code string }

func (GenesisGameGenieCode) Key() Key { return keyGenesisGameGenieCode }
func (p GenesisGameGenieCode) Encode(w io.Writer) (int, error) {
	return writeStringPacket(w, p.Key(), p.Code)
}
func decodeGenesisGameGenieCodePayload(payload []byte) (GenesisGameGenieCode, error) {
	s, err := decodeStringPayload(payload)
	return GenesisGameGenieCode{Code: s}, err
}
