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
	"io"

	tasderrors "github.com/cybergarage/go-tasd/tasd/errors"
)

// Decode reads a single packet frame from r and returns the matching
// catalog type, or an Unsupported packet if the key is unknown or the
// matched variant's fields fail to decode. A Transition or MovieTransition
// nested deeper than MaxNestingDepth is not degraded to Unsupported; Decode
// returns ErrRecursionLimit for it.
func Decode(r io.Reader) (Packet, error) {
	return decodePacket(r, 0)
}

// decodePacket implements Decode, threading depth through Transition and
// MovieTransition's nested-packet field so MaxNestingDepth is enforced
// across the whole chain, not just one level.
func decodePacket(r io.Reader, depth int) (Packet, error) {
	key, payload, err := readFrame(r)
	if err != nil {
		return nil, err
	}

	pkt, ok, err := decodeKnown(key, payload, depth)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Unsupported{RawKey: key, RawPayload: payload}, nil
	}
	return pkt, nil
}

// decodeKnown attempts to decode payload as the catalog variant matching
// key, returning ok=false if key isn't in the catalog or the variant's
// fields fail to decode (an unknown enum value, a malformed tail field,
// and so on); the caller falls back to Unsupported using the original key
// and payload bytes, so no information is lost. ErrRecursionLimit is
// different in kind from a malformed field: it signals the input is
// exceeding a resource guard, not merely holding an unrecognized value,
// so it propagates as a real decode error instead of degrading to
// Unsupported.
func decodeKnown(key Key, payload []byte, depth int) (Packet, bool, error) {
	switch key {
	case keyConsoleType:
		if p, err := decodeConsoleTypePayload(payload); err == nil {
			return p, true, nil
		}
	case keyConsoleRegion:
		if p, err := decodeConsoleRegionPayload(payload); err == nil {
			return p, true, nil
		}
	case keyGameTitle:
		if p, err := decodeGameTitlePayload(payload); err == nil {
			return p, true, nil
		}
	case keyRomName:
		if p, err := decodeRomNamePayload(payload); err == nil {
			return p, true, nil
		}
	case keyAttribution:
		if p, err := decodeAttributionPayload(payload); err == nil {
			return p, true, nil
		}
	case keyCategory:
		if p, err := decodeCategoryPayload(payload); err == nil {
			return p, true, nil
		}
	case keyEmulatorName:
		if p, err := decodeEmulatorNamePayload(payload); err == nil {
			return p, true, nil
		}
	case keyEmulatorVersion:
		if p, err := decodeEmulatorVersionPayload(payload); err == nil {
			return p, true, nil
		}
	case keyEmulatorCore:
		if p, err := decodeEmulatorCorePayload(payload); err == nil {
			return p, true, nil
		}
	case keyTasLastModified:
		if p, err := decodeTasLastModifiedPayload(payload); err == nil {
			return p, true, nil
		}
	case keyDumpCreated:
		if p, err := decodeDumpCreatedPayload(payload); err == nil {
			return p, true, nil
		}
	case keyDumpLastModified:
		if p, err := decodeDumpLastModifiedPayload(payload); err == nil {
			return p, true, nil
		}
	case keyTotalFrames:
		if p, err := decodeTotalFramesPayload(payload); err == nil {
			return p, true, nil
		}
	case keyRerecords:
		if p, err := decodeRerecordsPayload(payload); err == nil {
			return p, true, nil
		}
	case keySourceLink:
		if p, err := decodeSourceLinkPayload(payload); err == nil {
			return p, true, nil
		}
	case keyBlankFrames:
		if p, err := decodeBlankFramesPayload(payload); err == nil {
			return p, true, nil
		}
	case keyVerified:
		if p, err := decodeVerifiedPayload(payload); err == nil {
			return p, true, nil
		}
	case keyMemoryInit:
		if p, err := decodeMemoryInitPayload(payload); err == nil {
			return p, true, nil
		}
	case keyGameIdentifier:
		if p, err := decodeGameIdentifierPayload(payload); err == nil {
			return p, true, nil
		}
	case keyMovieLicense:
		if p, err := decodeMovieLicensePayload(payload); err == nil {
			return p, true, nil
		}
	case keyMovieFile:
		if p, err := decodeMovieFilePayload(payload); err == nil {
			return p, true, nil
		}
	case keyPortController:
		if p, err := decodePortControllerPayload(payload); err == nil {
			return p, true, nil
		}
	case keyPortOverread:
		if p, err := decodePortOverreadPayload(payload); err == nil {
			return p, true, nil
		}
	case keyNesLatchFilter:
		if p, err := decodeNesLatchFilterPayload(payload); err == nil {
			return p, true, nil
		}
	case keyNesClockFilter:
		if p, err := decodeNesClockFilterPayload(payload); err == nil {
			return p, true, nil
		}
	case keyNesGameGenieCode:
		if p, err := decodeNesGameGenieCodePayload(payload); err == nil {
			return p, true, nil
		}
	case keySnesLatchFilter:
		if p, err := decodeSnesLatchFilterPayload(payload); err == nil {
			return p, true, nil
		}
	case keySnesClockFilter:
		if p, err := decodeSnesClockFilterPayload(payload); err == nil {
			return p, true, nil
		}
	case keySnesGameGenieCode:
		if p, err := decodeSnesGameGenieCodePayload(payload); err == nil {
			return p, true, nil
		}
	case keySnesLatchTrain:
		if p, err := decodeSnesLatchTrainPayload(payload); err == nil {
			return p, true, nil
		}
	case keyGenesisGameGenieCode:
		if p, err := decodeGenesisGameGenieCodePayload(payload); err == nil {
			return p, true, nil
		}
	case keyInputChunk:
		if p, err := decodeInputChunkPayload(payload); err == nil {
			return p, true, nil
		}
	case keyInputMoment:
		if p, err := decodeInputMomentPayload(payload); err == nil {
			return p, true, nil
		}
	case keyTransition:
		p, err := decodeTransitionPayload(payload, depth)
		if err == nil {
			return p, true, nil
		}
		if tasderrors.Is(err, tasderrors.ErrRecursionLimit) {
			return nil, false, err
		}
	case keyLagFrameChunk:
		if p, err := decodeLagFrameChunkPayload(payload); err == nil {
			return p, true, nil
		}
	case keyMovieTransition:
		p, err := decodeMovieTransitionPayload(payload, depth)
		if err == nil {
			return p, true, nil
		}
		if tasderrors.Is(err, tasderrors.ErrRecursionLimit) {
			return nil, false, err
		}
	case keyComment:
		if p, err := decodeCommentPayload(payload); err == nil {
			return p, true, nil
		}
	case keyExperimental:
		if p, err := decodeExperimentalPayload(payload); err == nil {
			return p, true, nil
		}
	case keyUnspecified:
		if p, err := decodeUnspecifiedPayload(payload); err == nil {
			return p, true, nil
		}
	}
	return nil, false, nil
}
