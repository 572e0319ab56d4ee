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

var (
	keyMemoryInit     = Key{0x00, 0x12}
	keyGameIdentifier = Key{0x00, 0x13}
	keyMovieLicense   = Key{0x00, 0x14}
	keyMovieFile      = Key{0x00, 0x15}
)

// MemoryInit records how a piece of emulated memory (e.g. CPU RAM or
// cartridge save data) was initialized before the run began.
type MemoryInit struct {
	DataType InitKind
	Device   InitDevice
	Required bool
	Name     string
	Data     []byte
}

func (MemoryInit) Key() Key { return keyMemoryInit }

func (p MemoryInit) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutUint8(payload, uint8(p.DataType))
	encoding.PutUint16(payload, uint16(p.Device))
	encoding.PutBool(payload, p.Required)
	if _, err := encoding.PutU8String(payload, p.Name); err != nil {
		return 0, err
	}
	encoding.PutBytes(payload, p.Data)
	return writeFrame(w, p.Key(), payload.Bytes())
}

func decodeMemoryInitPayload(payload []byte) (MemoryInit, error) {
	r := bytes.NewReader(payload)

	rawType, err := encoding.GetUint8(r)
	if err != nil {
		return MemoryInit{}, err
	}
	dataType, err := InitKindFromU8(rawType)
	if err != nil {
		return MemoryInit{}, err
	}

	rawDevice, err := encoding.GetUint16(r)
	if err != nil {
		return MemoryInit{}, err
	}
	device, err := InitDeviceFromU16(rawDevice)
	if err != nil {
		return MemoryInit{}, err
	}

	required, err := encoding.GetBool(r)
	if err != nil {
		return MemoryInit{}, err
	}

	name, err := encoding.GetU8String(r)
	if err != nil {
		return MemoryInit{}, err
	}

	data, err := encoding.GetTailBytes(r)
	if err != nil {
		return MemoryInit{}, err
	}

	return MemoryInit{DataType: dataType, Device: device, Required: required, Name: name, Data: data}, nil
}

// GameIdentifier carries a hash or other identifier of the ROM/game being
// run, to disambiguate revisions.
type GameIdentifier struct {
	Kind     IdKind
	Encoding IdEncoding
	Name     string
	ID       []byte
}

func (GameIdentifier) Key() Key { return keyGameIdentifier }

func (p GameIdentifier) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutUint8(payload, uint8(p.Kind))
	encoding.PutUint8(payload, uint8(p.Encoding))
	if _, err := encoding.PutU8String(payload, p.Name); err != nil {
		return 0, err
	}
	encoding.PutBytes(payload, p.ID)
	return writeFrame(w, p.Key(), payload.Bytes())
}

func decodeGameIdentifierPayload(payload []byte) (GameIdentifier, error) {
	r := bytes.NewReader(payload)

	rawKind, err := encoding.GetUint8(r)
	if err != nil {
		return GameIdentifier{}, err
	}
	kind, err := IdKindFromU8(rawKind)
	if err != nil {
		return GameIdentifier{}, err
	}

	rawEncoding, err := encoding.GetUint8(r)
	if err != nil {
		return GameIdentifier{}, err
	}
	enc, err := IdEncodingFromU8(rawEncoding)
	if err != nil {
		return GameIdentifier{}, err
	}

	name, err := encoding.GetU8String(r)
	if err != nil {
		return GameIdentifier{}, err
	}

	id, err := encoding.GetTailBytes(r)
	if err != nil {
		return GameIdentifier{}, err
	}

	return GameIdentifier{Kind: kind, Encoding: enc, Name: name, ID: id}, nil
}

// MovieLicense records the license the accompanying movie file is
// distributed under.
type MovieLicense struct{ License string }

func (MovieLicense) Key() Key { return keyMovieLicense }
func (p MovieLicense) Encode(w io.Writer) (int, error) {
	return writeStringPacket(w, p.Key(), p.License)
}
func decodeMovieLicensePayload(payload []byte) (MovieLicense, error) {
	s, err := decodeStringPayload(payload)
	return MovieLicense{License: s}, err
}

// MovieFile embeds the emulator-native movie/input file this TASD file
// was derived from.
type MovieFile struct {
	Name string
	Data []byte
}

func (MovieFile) Key() Key { return keyMovieFile }

func (p MovieFile) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	if _, err := encoding.PutU8String(payload, p.Name); err != nil {
		return 0, err
	}
	encoding.PutBytes(payload, p.Data)
	return writeFrame(w, p.Key(), payload.Bytes())
}

func decodeMovieFilePayload(payload []byte) (MovieFile, error) {
	r := bytes.NewReader(payload)
	name, err := encoding.GetU8String(r)
	if err != nil {
		return MovieFile{}, err
	}
	data, err := encoding.GetTailBytes(r)
	if err != nil {
		return MovieFile{}, err
	}
	return MovieFile{Name: name, Data: data}, nil
}
