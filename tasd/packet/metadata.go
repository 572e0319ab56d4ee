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
	keyConsoleType       = Key{0x00, 0x01}
	keyConsoleRegion     = Key{0x00, 0x02}
	keyGameTitle         = Key{0x00, 0x03}
	keyRomName           = Key{0x00, 0x04}
	keyAttribution       = Key{0x00, 0x05}
	keyCategory          = Key{0x00, 0x06}
	keyEmulatorName      = Key{0x00, 0x07}
	keyEmulatorVersion   = Key{0x00, 0x08}
	keyEmulatorCore      = Key{0x00, 0x09}
	keyTasLastModified   = Key{0x00, 0x0A}
	keyDumpCreated       = Key{0x00, 0x0B}
	keyDumpLastModified  = Key{0x00, 0x0C}
	keyTotalFrames       = Key{0x00, 0x0D}
	keyRerecords         = Key{0x00, 0x0E}
	keySourceLink        = Key{0x00, 0x0F}
	keyBlankFrames       = Key{0x00, 0x10}
	keyVerified          = Key{0x00, 0x11}
)

// ConsoleType names the emulated console. Name is only meaningful when
// Console is ConsoleCustom.
type ConsoleType struct {
	Console Console
	Name    string
}

func (ConsoleType) Key() Key { return keyConsoleType }

func (p ConsoleType) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutUint8(payload, uint8(p.Console))
	encoding.PutString(payload, p.Name)
	return writeFrame(w, p.Key(), payload.Bytes())
}

func decodeConsoleTypePayload(payload []byte) (ConsoleType, error) {
	r := bytes.NewReader(payload)
	raw, err := encoding.GetUint8(r)
	if err != nil {
		return ConsoleType{}, err
	}
	console, err := ConsoleFromU8(raw)
	if err != nil {
		return ConsoleType{}, err
	}
	name, err := encoding.GetTailString(r)
	if err != nil {
		return ConsoleType{}, err
	}
	return ConsoleType{Console: console, Name: name}, nil
}

// ConsoleRegion names the broadcast region/timing standard.
type ConsoleRegion struct {
	Region Region
}

func (ConsoleRegion) Key() Key { return keyConsoleRegion }

func (p ConsoleRegion) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutUint8(payload, uint8(p.Region))
	return writeFrame(w, p.Key(), payload.Bytes())
}

func decodeConsoleRegionPayload(payload []byte) (ConsoleRegion, error) {
	r := bytes.NewReader(payload)
	raw, err := encoding.GetUint8(r)
	if err != nil {
		return ConsoleRegion{}, err
	}
	region, err := RegionFromU8(raw)
	if err != nil {
		return ConsoleRegion{}, err
	}
	return ConsoleRegion{Region: region}, nil
}

// GameTitle carries the in-game or box-art title of the game played.
type GameTitle struct{ Title string }

func (GameTitle) Key() Key { return keyGameTitle }
func (p GameTitle) Encode(w io.Writer) (int, error) {
	return writeStringPacket(w, p.Key(), p.Title)
}
func decodeGameTitlePayload(payload []byte) (GameTitle, error) {
	s, err := decodeStringPayload(payload)
	return GameTitle{Title: s}, err
}

// RomName carries the filename of the ROM dumped against.
type RomName struct{ Name string }

func (RomName) Key() Key { return keyRomName }
func (p RomName) Encode(w io.Writer) (int, error) {
	return writeStringPacket(w, p.Key(), p.Name)
}
func decodeRomNamePayload(payload []byte) (RomName, error) {
	s, err := decodeStringPayload(payload)
	return RomName{Name: s}, err
}

// Attribution credits a contributor to the run or dump.
type Attribution struct {
	Kind AttributionKind
	Name string
}

func (Attribution) Key() Key { return keyAttribution }

func (p Attribution) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutUint8(payload, uint8(p.Kind))
	encoding.PutString(payload, p.Name)
	return writeFrame(w, p.Key(), payload.Bytes())
}

func decodeAttributionPayload(payload []byte) (Attribution, error) {
	r := bytes.NewReader(payload)
	raw, err := encoding.GetUint8(r)
	if err != nil {
		return Attribution{}, err
	}
	kind, err := AttributionKindFromU8(raw)
	if err != nil {
		return Attribution{}, err
	}
	name, err := encoding.GetTailString(r)
	if err != nil {
		return Attribution{}, err
	}
	return Attribution{Kind: kind, Name: name}, nil
}

// Category names the speedrun category (e.g. "any%").
type Category struct{ Category string }

func (Category) Key() Key { return keyCategory }
func (p Category) Encode(w io.Writer) (int, error) {
	return writeStringPacket(w, p.Key(), p.Category)
}
func decodeCategoryPayload(payload []byte) (Category, error) {
	s, err := decodeStringPayload(payload)
	return Category{Category: s}, err
}

// EmulatorName names the emulator used to produce the dump.
type EmulatorName struct{ Name string }

func (EmulatorName) Key() Key { return keyEmulatorName }
func (p EmulatorName) Encode(w io.Writer) (int, error) {
	return writeStringPacket(w, p.Key(), p.Name)
}
func decodeEmulatorNamePayload(payload []byte) (EmulatorName, error) {
	s, err := decodeStringPayload(payload)
	return EmulatorName{Name: s}, err
}

// EmulatorVersion records the emulator's version string.
type EmulatorVersion struct{ Version string }

func (EmulatorVersion) Key() Key { return keyEmulatorVersion }
func (p EmulatorVersion) Encode(w io.Writer) (int, error) {
	return writeStringPacket(w, p.Key(), p.Version)
}
func decodeEmulatorVersionPayload(payload []byte) (EmulatorVersion, error) {
	s, err := decodeStringPayload(payload)
	return EmulatorVersion{Version: s}, err
}

// EmulatorCore names the emulation core, for emulators with pluggable
// cores.
type EmulatorCore struct{ Core string }

func (EmulatorCore) Key() Key { return keyEmulatorCore }
func (p EmulatorCore) Encode(w io.Writer) (int, error) {
	return writeStringPacket(w, p.Key(), p.Core)
}
func decodeEmulatorCorePayload(payload []byte) (EmulatorCore, error) {
	s, err := decodeStringPayload(payload)
	return EmulatorCore{Core: s}, err
}

// TasLastModified is the Unix timestamp the tool-assisted run's input
// script was last modified.
type TasLastModified struct{ Timestamp int64 }

func (TasLastModified) Key() Key { return keyTasLastModified }
func (p TasLastModified) Encode(w io.Writer) (int, error) {
	return writeTimestampPacket(w, p.Key(), p.Timestamp)
}
func decodeTasLastModifiedPayload(payload []byte) (TasLastModified, error) {
	ts, err := decodeTimestampPayload(payload)
	return TasLastModified{Timestamp: ts}, err
}

// DumpCreated is the Unix timestamp this TASD file was created.
type DumpCreated struct{ Timestamp int64 }

func (DumpCreated) Key() Key { return keyDumpCreated }
func (p DumpCreated) Encode(w io.Writer) (int, error) {
	return writeTimestampPacket(w, p.Key(), p.Timestamp)
}
func decodeDumpCreatedPayload(payload []byte) (DumpCreated, error) {
	ts, err := decodeTimestampPayload(payload)
	return DumpCreated{Timestamp: ts}, err
}

// DumpLastModified is the Unix timestamp this TASD file was last
// modified.
type DumpLastModified struct{ Timestamp int64 }

func (DumpLastModified) Key() Key { return keyDumpLastModified }
func (p DumpLastModified) Encode(w io.Writer) (int, error) {
	return writeTimestampPacket(w, p.Key(), p.Timestamp)
}
func decodeDumpLastModifiedPayload(payload []byte) (DumpLastModified, error) {
	ts, err := decodeTimestampPayload(payload)
	return DumpLastModified{Timestamp: ts}, err
}

// TotalFrames is the total frame count of the run.
type TotalFrames struct{ Frames uint32 }

func (TotalFrames) Key() Key { return keyTotalFrames }
func (p TotalFrames) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutUint32(payload, p.Frames)
	return writeFrame(w, p.Key(), payload.Bytes())
}
func decodeTotalFramesPayload(payload []byte) (TotalFrames, error) {
	r := bytes.NewReader(payload)
	v, err := encoding.GetUint32(r)
	return TotalFrames{Frames: v}, err
}

// Rerecords is the total rerecord count of the run.
type Rerecords struct{ Rerecords uint32 }

func (Rerecords) Key() Key { return keyRerecords }
func (p Rerecords) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutUint32(payload, p.Rerecords)
	return writeFrame(w, p.Key(), payload.Bytes())
}
func decodeRerecordsPayload(payload []byte) (Rerecords, error) {
	r := bytes.NewReader(payload)
	v, err := encoding.GetUint32(r)
	return Rerecords{Rerecords: v}, err
}

// SourceLink is a URL pointing to the run's submission/source page.
type SourceLink struct{ Link string }

func (SourceLink) Key() Key { return keySourceLink }
func (p SourceLink) Encode(w io.Writer) (int, error) {
	return writeStringPacket(w, p.Key(), p.Link)
}
func decodeSourceLinkPayload(payload []byte) (SourceLink, error) {
	s, err := decodeStringPayload(payload)
	return SourceLink{Link: s}, err
}

// BlankFrames is the number of blank/leader frames before run input
// begins (may be negative to indicate input starting before frame 0).
type BlankFrames struct{ Frames int16 }

func (BlankFrames) Key() Key { return keyBlankFrames }
func (p BlankFrames) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutInt16(payload, p.Frames)
	return writeFrame(w, p.Key(), payload.Bytes())
}
func decodeBlankFramesPayload(payload []byte) (BlankFrames, error) {
	r := bytes.NewReader(payload)
	v, err := encoding.GetInt16(r)
	return BlankFrames{Frames: v}, err
}

// Verified records whether the run has been independently verified.
type Verified struct{ Verified bool }

func (Verified) Key() Key { return keyVerified }
func (p Verified) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutBool(payload, p.Verified)
	return writeFrame(w, p.Key(), payload.Bytes())
}
func decodeVerifiedPayload(payload []byte) (Verified, error) {
	r := bytes.NewReader(payload)
	v, err := encoding.GetBool(r)
	return Verified{Verified: v}, err
}

// writeStringPacket encodes a packet whose entire payload is a tail
// string field.
func writeStringPacket(w io.Writer, key Key, s string) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutString(payload, s)
	return writeFrame(w, key, payload.Bytes())
}

func decodeStringPayload(payload []byte) (string, error) {
	r := bytes.NewReader(payload)
	return encoding.GetTailString(r)
}

// writeTimestampPacket encodes a packet whose entire payload is an i64
// Unix-seconds timestamp.
func writeTimestampPacket(w io.Writer, key Key, ts int64) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutInt64(payload, ts)
	return writeFrame(w, key, payload.Bytes())
}

func decodeTimestampPayload(payload []byte) (int64, error) {
	r := bytes.NewReader(payload)
	return encoding.GetInt64(r)
}
