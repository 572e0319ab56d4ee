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

import "io"

// Unsupported preserves the raw key and payload of a packet this version
// of the catalog doesn't recognize, or whose recognized fields failed to
// decode (e.g. an enum byte outside its known set). Re-encoding an
// Unsupported packet reproduces the original bytes exactly, so a decode
// followed by an encode round-trips files containing packets from future
// catalog versions without data loss.
type Unsupported struct {
	RawKey     Key
	RawPayload []byte
}

func (p Unsupported) Key() Key { return p.RawKey }

func (p Unsupported) Encode(w io.Writer) (int, error) {
	return writeFrame(w, p.RawKey, p.RawPayload)
}
