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

import tasderrors "github.com/cybergarage/go-tasd/tasd/errors"

// Console identifies the emulated console a TASD file documents.
type Console uint8

const (
	ConsoleNes     Console = 0x01
	ConsoleSnes    Console = 0x02
	ConsoleN64     Console = 0x03
	ConsoleGc      Console = 0x04
	ConsoleGb      Console = 0x05
	ConsoleGbc     Console = 0x06
	ConsoleGba     Console = 0x07
	ConsoleGenesis Console = 0x08
	ConsoleA2600   Console = 0x09
	ConsoleCustom  Console = 0xFF
)

// consoleNames backs both String() and ConsoleFromU8: a byte is a valid
// Console exactly when it has an entry here.
var consoleNames = map[Console]string{
	ConsoleNes: "Nes", ConsoleSnes: "Snes", ConsoleN64: "N64", ConsoleGc: "Gc",
	ConsoleGb: "Gb", ConsoleGbc: "Gbc", ConsoleGba: "Gba", ConsoleGenesis: "Genesis",
	ConsoleA2600: "A2600", ConsoleCustom: "Custom",
}

func (c Console) String() string {
	if n, ok := consoleNames[c]; ok {
		return n
	}
	return "Unknown"
}

// ConsoleFromU8 maps a raw byte to a Console, rejecting unknown values.
func ConsoleFromU8(v uint8) (Console, error) {
	c := Console(v)
	if _, ok := consoleNames[c]; !ok {
		return 0, tasderrors.ErrInvalidEnum
	}
	return c, nil
}

// Region identifies the broadcast region/timing standard of a
// ConsoleRegion packet.
type Region uint8

const (
	RegionNtsc  Region = 0x01
	RegionPal   Region = 0x02
	RegionOther Region = 0xFF
)

func RegionFromU8(v uint8) (Region, error) {
	switch Region(v) {
	case RegionNtsc, RegionPal, RegionOther:
		return Region(v), nil
	default:
		return 0, tasderrors.ErrInvalidEnum
	}
}

// AttributionKind identifies the role of a credited contributor.
type AttributionKind uint8

const (
	AttributionAuthor          AttributionKind = 0x01
	AttributionVerifier        AttributionKind = 0x02
	AttributionTasdFileCreator AttributionKind = 0x03
	AttributionTasdFileEditor  AttributionKind = 0x04
	AttributionOther           AttributionKind = 0xFF
)

func AttributionKindFromU8(v uint8) (AttributionKind, error) {
	switch AttributionKind(v) {
	case AttributionAuthor, AttributionVerifier, AttributionTasdFileCreator, AttributionTasdFileEditor, AttributionOther:
		return AttributionKind(v), nil
	default:
		return 0, tasderrors.ErrInvalidEnum
	}
}

// InitKind identifies how a piece of emulated memory was initialized.
type InitKind uint8

const (
	InitNoInitialization   InitKind = 0x01
	InitAllZeros           InitKind = 0x02
	InitAllOnes            InitKind = 0x03
	InitRepeating4Zeros4FF InitKind = 0x04 // [00 00 00 00 FF FF FF FF] repeating
	InitRandom             InitKind = 0x05
	InitCustom             InitKind = 0xFF
)

func InitKindFromU8(v uint8) (InitKind, error) {
	switch InitKind(v) {
	case InitNoInitialization, InitAllZeros, InitAllOnes, InitRepeating4Zeros4FF, InitRandom, InitCustom:
		return InitKind(v), nil
	default:
		return 0, tasderrors.ErrInvalidEnum
	}
}

// InitDevice identifies which memory device was initialized.
type InitDevice uint16

const (
	InitDeviceNesCpuRam               InitDevice = 0x0101
	InitDeviceNesCartridgeSaveData    InitDevice = 0x0102
	InitDeviceSnesCpuRam              InitDevice = 0x0201
	InitDeviceSnesCartridgeSaveData   InitDevice = 0x0202
	InitDeviceGbCpuRam                InitDevice = 0x0501
	InitDeviceGbCartridgeSaveData     InitDevice = 0x0502
	InitDeviceGbcCpuRam               InitDevice = 0x0601
	InitDeviceGbcCartridgeSaveData    InitDevice = 0x0602
	InitDeviceGbaCpuRam               InitDevice = 0x0701
	InitDeviceGbaCartridgeSaveData    InitDevice = 0x0702
	InitDeviceGenesisCpuRam           InitDevice = 0x0801
	InitDeviceGenesisCartridgeSaveData InitDevice = 0x0802
	InitDeviceA2600CpuRam             InitDevice = 0x0901
	InitDeviceA2600CartridgeSaveData  InitDevice = 0x0902
	InitDeviceCustomDevice            InitDevice = 0xFFFF
)

var validInitDevices = map[InitDevice]bool{
	InitDeviceNesCpuRam: true, InitDeviceNesCartridgeSaveData: true,
	InitDeviceSnesCpuRam: true, InitDeviceSnesCartridgeSaveData: true,
	InitDeviceGbCpuRam: true, InitDeviceGbCartridgeSaveData: true,
	InitDeviceGbcCpuRam: true, InitDeviceGbcCartridgeSaveData: true,
	InitDeviceGbaCpuRam: true, InitDeviceGbaCartridgeSaveData: true,
	InitDeviceGenesisCpuRam: true, InitDeviceGenesisCartridgeSaveData: true,
	InitDeviceA2600CpuRam: true, InitDeviceA2600CartridgeSaveData: true,
	InitDeviceCustomDevice: true,
}

func InitDeviceFromU16(v uint16) (InitDevice, error) {
	d := InitDevice(v)
	if !validInitDevices[d] {
		return 0, tasderrors.ErrInvalidEnum
	}
	return d, nil
}

// IdKind identifies the hash algorithm used by a GameIdentifier packet.
type IdKind uint8

const (
	IdMd5Hash        IdKind = 0x01
	IdSha1Hash       IdKind = 0x02
	IdSha224Hash     IdKind = 0x03
	IdSha256Hash     IdKind = 0x04
	IdSha384Hash     IdKind = 0x05
	IdSha512Hash     IdKind = 0x06
	IdSha512_224Hash IdKind = 0x07
	IdSha512_256Hash IdKind = 0x08
	IdSha3_224Hash   IdKind = 0x09
	IdSha3_256Hash   IdKind = 0x0A
	IdSha3_384Hash   IdKind = 0x0B
	IdSha3_512Hash   IdKind = 0x0C
	IdShake128Hash   IdKind = 0x0D
	IdShake256Hash   IdKind = 0x0E
	IdOther          IdKind = 0xFF
)

var validIdKinds = map[IdKind]bool{
	IdMd5Hash: true, IdSha1Hash: true, IdSha224Hash: true, IdSha256Hash: true,
	IdSha384Hash: true, IdSha512Hash: true, IdSha512_224Hash: true, IdSha512_256Hash: true,
	IdSha3_224Hash: true, IdSha3_256Hash: true, IdSha3_384Hash: true, IdSha3_512Hash: true,
	IdShake128Hash: true, IdShake256Hash: true, IdOther: true,
}

func IdKindFromU8(v uint8) (IdKind, error) {
	k := IdKind(v)
	if !validIdKinds[k] {
		return 0, tasderrors.ErrInvalidEnum
	}
	return k, nil
}

// IdEncoding identifies how a GameIdentifier's raw identifier bytes are
// textually represented.
type IdEncoding uint8

const (
	IdEncodingRawBinary IdEncoding = 0x01
	IdEncodingBase16    IdEncoding = 0x02 // case insensitive
	IdEncodingBase32    IdEncoding = 0x03 // case insensitive
	IdEncodingBase64    IdEncoding = 0x04
)

func IdEncodingFromU8(v uint8) (IdEncoding, error) {
	switch IdEncoding(v) {
	case IdEncodingRawBinary, IdEncodingBase16, IdEncodingBase32, IdEncodingBase64:
		return IdEncoding(v), nil
	default:
		return 0, tasderrors.ErrInvalidEnum
	}
}

// PortKind identifies the kind of controller connected to a port.
type PortKind uint16

const (
	PortNesStandardController          PortKind = 0x0101
	PortNesFourScore                   PortKind = 0x0102
	PortNesZapper                      PortKind = 0x0103 // reserved
	PortNesPowerPad                    PortKind = 0x0104 // reserved
	PortFamicomFamilyBasicKeyboard     PortKind = 0x0105
	PortSnesStandardController         PortKind = 0x0201
	PortSnesSuperMultitap              PortKind = 0x0202
	PortSnesMouse                      PortKind = 0x0203
	PortSnesSuperscope                 PortKind = 0x0204 // reserved
	PortN64StandardController         PortKind = 0x0301
	PortN64StandardControllerWithRumblePak     PortKind = 0x0302
	PortN64StandardControllerWithControllerPak PortKind = 0x0303
	PortN64StandardControllerWithTransferPak   PortKind = 0x0304
	PortN64Mouse                       PortKind = 0x0305
	PortN64VoiceRecognitionUnit       PortKind = 0x0306 // reserved
	PortN64RandNetKeyboard            PortKind = 0x0307 // reserved
	PortN64DenshaDeGo                 PortKind = 0x0308
	PortGcStandardController          PortKind = 0x0401
	PortGcKeyboard                    PortKind = 0x0402 // reserved
	PortGbGamepad                     PortKind = 0x0501
	PortGbcGamepad                    PortKind = 0x0601
	PortGbaGamepad                    PortKind = 0x0701
	PortGenesis3Button                PortKind = 0x0801
	PortGenesis6Button                PortKind = 0x0802
	PortA2600Joystick                 PortKind = 0x0901
	PortA2600Paddle                   PortKind = 0x0902 // reserved
	PortA2600KeyboardController       PortKind = 0x0903
	PortOther                         PortKind = 0xFFFF
)

var validPortKinds = map[PortKind]bool{
	PortNesStandardController: true, PortNesFourScore: true, PortNesZapper: true,
	PortNesPowerPad: true, PortFamicomFamilyBasicKeyboard: true,
	PortSnesStandardController: true, PortSnesSuperMultitap: true, PortSnesMouse: true,
	PortSnesSuperscope: true,
	PortN64StandardController: true, PortN64StandardControllerWithRumblePak: true,
	PortN64StandardControllerWithControllerPak: true, PortN64StandardControllerWithTransferPak: true,
	PortN64Mouse: true, PortN64VoiceRecognitionUnit: true, PortN64RandNetKeyboard: true,
	PortN64DenshaDeGo: true,
	PortGcStandardController: true, PortGcKeyboard: true,
	PortGbGamepad: true, PortGbcGamepad: true, PortGbaGamepad: true,
	PortGenesis3Button: true, PortGenesis6Button: true,
	PortA2600Joystick: true, PortA2600Paddle: true, PortA2600KeyboardController: true,
	PortOther: true,
}

func PortKindFromU16(v uint16) (PortKind, error) {
	k := PortKind(v)
	if !validPortKinds[k] {
		return 0, tasderrors.ErrInvalidEnum
	}
	return k, nil
}

// MomentIndexKind identifies the unit an InputMoment's index is measured
// in.
type MomentIndexKind uint8

const (
	MomentIndexFrame        MomentIndexKind = 0x01
	MomentIndexCycleCount   MomentIndexKind = 0x02
	MomentIndexMilliseconds MomentIndexKind = 0x03
	MomentIndexMicroseconds MomentIndexKind = 0x04
	MomentIndexNanoseconds  MomentIndexKind = 0x05
)

func MomentIndexKindFromU8(v uint8) (MomentIndexKind, error) {
	switch MomentIndexKind(v) {
	case MomentIndexFrame, MomentIndexCycleCount, MomentIndexMilliseconds, MomentIndexMicroseconds, MomentIndexNanoseconds:
		return MomentIndexKind(v), nil
	default:
		return 0, tasderrors.ErrInvalidEnum
	}
}

// TransitionIndexKind identifies the unit a Transition's index is
// measured in.
type TransitionIndexKind uint8

const (
	TransitionIndexFrame               TransitionIndexKind = 0x01
	TransitionIndexCycleCount          TransitionIndexKind = 0x02
	TransitionIndexMilliseconds        TransitionIndexKind = 0x03
	TransitionIndexMicroseconds        TransitionIndexKind = 0x04
	TransitionIndexNanoseconds         TransitionIndexKind = 0x05
	TransitionIndexInputChunkByteIndex TransitionIndexKind = 0x06
)

func TransitionIndexKindFromU8(v uint8) (TransitionIndexKind, error) {
	switch TransitionIndexKind(v) {
	case TransitionIndexFrame, TransitionIndexCycleCount, TransitionIndexMilliseconds,
		TransitionIndexMicroseconds, TransitionIndexNanoseconds, TransitionIndexInputChunkByteIndex:
		return TransitionIndexKind(v), nil
	default:
		return 0, tasderrors.ErrInvalidEnum
	}
}

// TransitionKind identifies the kind of non-input event a Transition or
// MovieTransition packet records.
type TransitionKind uint8

const (
	TransitionSoftReset       TransitionKind = 0x01
	TransitionPowerReset      TransitionKind = 0x02
	TransitionRestartTasdFile TransitionKind = 0x03
	TransitionPacketDerived   TransitionKind = 0xFF
)

func TransitionKindFromU8(v uint8) (TransitionKind, error) {
	switch TransitionKind(v) {
	case TransitionSoftReset, TransitionPowerReset, TransitionRestartTasdFile, TransitionPacketDerived:
		return TransitionKind(v), nil
	default:
		return 0, tasderrors.ErrInvalidEnum
	}
}
