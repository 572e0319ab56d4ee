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

package tasd

import "time"

// Clock sources the current wall-clock time for the DumpCreated packet
// that NewWithClock stamps on a new file. It is an injected dependency so
// callers can stub a deterministic time in tests instead of depending on
// time.Now directly. TasLastModified and DumpLastModified have no
// Clock-based constructor.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock, backed by time.Now.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }

var defaultClock Clock = SystemClock{}
