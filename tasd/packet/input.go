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
	tasderrors "github.com/cybergarage/go-tasd/tasd/errors"
)

var (
	keyInputChunk      = Key{0xFE, 0x01}
	keyInputMoment     = Key{0xFE, 0x02}
	keyTransition      = Key{0xFE, 0x03}
	keyLagFrameChunk   = Key{0xFE, 0x04}
	keyMovieTransition = Key{0xFE, 0x05}
)

// InputChunk carries a contiguous run of raw controller input bytes for
// one port, in whatever per-frame encoding the console's input packets
// use.
type InputChunk struct {
	Port int
	Data []byte
}

func (InputChunk) Key() Key { return keyInputChunk }

func (p InputChunk) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutUint8(payload, uint8(p.Port))
	encoding.PutBytes(payload, p.Data)
	return writeFrame(w, p.Key(), payload.Bytes())
}

func decodeInputChunkPayload(payload []byte) (InputChunk, error) {
	r := bytes.NewReader(payload)
	port, err := encoding.GetUint8(r)
	if err != nil {
		return InputChunk{}, err
	}
	data, err := encoding.GetTailBytes(r)
	if err != nil {
		return InputChunk{}, err
	}
	return InputChunk{Port: int(port), Data: data}, nil
}

// InputMoment marks a point in an input chunk where the controller's
// reported buttons hold steady (or change) for a stretch measured in the
// given index unit, used to compress repetitive input.
type InputMoment struct {
	Port  int
	Hold  bool
	Kind  MomentIndexKind
	Index uint64
	Data  []byte
}

func (InputMoment) Key() Key { return keyInputMoment }

func (p InputMoment) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutUint8(payload, uint8(p.Port))
	encoding.PutBool(payload, p.Hold)
	encoding.PutUint8(payload, uint8(p.Kind))
	encoding.PutUint64(payload, p.Index)
	encoding.PutBytes(payload, p.Data)
	return writeFrame(w, p.Key(), payload.Bytes())
}

func decodeInputMomentPayload(payload []byte) (InputMoment, error) {
	r := bytes.NewReader(payload)

	port, err := encoding.GetUint8(r)
	if err != nil {
		return InputMoment{}, err
	}

	hold, err := encoding.GetBool(r)
	if err != nil {
		return InputMoment{}, err
	}

	rawKind, err := encoding.GetUint8(r)
	if err != nil {
		return InputMoment{}, err
	}
	kind, err := MomentIndexKindFromU8(rawKind)
	if err != nil {
		return InputMoment{}, err
	}

	index, err := encoding.GetUint64(r)
	if err != nil {
		return InputMoment{}, err
	}

	data, err := encoding.GetTailBytes(r)
	if err != nil {
		return InputMoment{}, err
	}

	return InputMoment{Port: int(port), Hold: hold, Kind: kind, Index: index, Data: data}, nil
}

// Transition records a non-input event (reset, power cycle, restart)
// occurring at a point within a port's input stream, optionally nesting
// the packet that triggered it.
type Transition struct {
	Port         int
	Kind         TransitionIndexKind
	Index        uint64
	Transition   TransitionKind
	InnerPacket Packet
}

func (Transition) Key() Key { return keyTransition }

func (p Transition) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutUint8(payload, uint8(p.Port))
	encoding.PutUint8(payload, uint8(p.Kind))
	encoding.PutUint64(payload, p.Index)
	encoding.PutUint8(payload, uint8(p.Transition))
	if p.InnerPacket != nil {
		if _, err := p.InnerPacket.Encode(payload); err != nil {
			return 0, err
		}
	}
	return writeFrame(w, p.Key(), payload.Bytes())
}

func decodeTransitionPayload(payload []byte, depth int) (Transition, error) {
	r := bytes.NewReader(payload)

	port, err := encoding.GetUint8(r)
	if err != nil {
		return Transition{}, err
	}

	rawKind, err := encoding.GetUint8(r)
	if err != nil {
		return Transition{}, err
	}
	kind, err := TransitionIndexKindFromU8(rawKind)
	if err != nil {
		return Transition{}, err
	}

	index, err := encoding.GetUint64(r)
	if err != nil {
		return Transition{}, err
	}

	rawTransition, err := encoding.GetUint8(r)
	if err != nil {
		return Transition{}, err
	}
	transition, err := TransitionKindFromU8(rawTransition)
	if err != nil {
		return Transition{}, err
	}

	inner, err := decodeOptionalInnerPacket(r, depth)
	if err != nil {
		return Transition{}, err
	}

	return Transition{Port: int(port), Kind: kind, Index: index, Transition: transition, InnerPacket: inner}, nil
}

// LagFrameChunk records a run of lag (duplicate, non-advancing) frames
// starting at the given movie frame number.
type LagFrameChunk struct {
	MovieFrame uint32
	Count      uint32
}

func (LagFrameChunk) Key() Key { return keyLagFrameChunk }

func (p LagFrameChunk) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutUint32(payload, p.MovieFrame)
	encoding.PutUint32(payload, p.Count)
	return writeFrame(w, p.Key(), payload.Bytes())
}

func decodeLagFrameChunkPayload(payload []byte) (LagFrameChunk, error) {
	r := bytes.NewReader(payload)
	movieFrame, err := encoding.GetUint32(r)
	if err != nil {
		return LagFrameChunk{}, err
	}
	count, err := encoding.GetUint32(r)
	if err != nil {
		return LagFrameChunk{}, err
	}
	return LagFrameChunk{MovieFrame: movieFrame, Count: count}, nil
}

// MovieTransition is Transition's movie-frame-indexed counterpart, used
// for non-input events that aren't attributable to a specific port.
type MovieTransition struct {
	MovieFrame   uint32
	Transition   TransitionKind
	InnerPacket Packet
}

func (MovieTransition) Key() Key { return keyMovieTransition }

func (p MovieTransition) Encode(w io.Writer) (int, error) {
	payload := new(bytes.Buffer)
	encoding.PutUint32(payload, p.MovieFrame)
	encoding.PutUint8(payload, uint8(p.Transition))
	if p.InnerPacket != nil {
		if _, err := p.InnerPacket.Encode(payload); err != nil {
			return 0, err
		}
	}
	return writeFrame(w, p.Key(), payload.Bytes())
}

func decodeMovieTransitionPayload(payload []byte, depth int) (MovieTransition, error) {
	r := bytes.NewReader(payload)

	movieFrame, err := encoding.GetUint32(r)
	if err != nil {
		return MovieTransition{}, err
	}

	rawTransition, err := encoding.GetUint8(r)
	if err != nil {
		return MovieTransition{}, err
	}
	transition, err := TransitionKindFromU8(rawTransition)
	if err != nil {
		return MovieTransition{}, err
	}

	inner, err := decodeOptionalInnerPacket(r, depth)
	if err != nil {
		return MovieTransition{}, err
	}

	return MovieTransition{MovieFrame: movieFrame, Transition: transition, InnerPacket: inner}, nil
}

// decodeOptionalInnerPacket decodes the Transition/MovieTransition tail
// field: a nested packet frame if any bytes remain in r, or nil if the
// payload ended at this point. depth is the nesting depth of the packet
// being decoded (the outer packet currently under construction), so the
// inner packet is decoded at depth+1.
func decodeOptionalInnerPacket(r *bytes.Reader, depth int) (Packet, error) {
	if r.Len() == 0 {
		return nil, nil
	}
	if depth+1 > MaxNestingDepth {
		return nil, tasderrors.ErrRecursionLimit
	}
	inner, err := decodePacket(r, depth+1)
	if err != nil {
		return nil, err
	}
	if err := requireExhausted(r); err != nil {
		return nil, err
	}
	return inner, nil
}
