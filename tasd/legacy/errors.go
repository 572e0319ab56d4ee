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

// Package legacy converts between TasdFile and two historical input
// formats it supersedes: R08 (a flat two-port byte array) and GBI (a
// text-based Game Boy / Game Boy Color / Game Boy Advance input script).
package legacy

import "errors"

var (
	// ErrMissingPortControllers indicates a TasdFile has no PortController
	// packets to convert to R08.
	ErrMissingPortControllers = errors.New("missing port controllers")

	// ErrUnsupportedControllers indicates a TasdFile has a PortController
	// packet whose kind isn't the NES standard controller (0x0101). The
	// number of PortController packets is not checked.
	ErrUnsupportedControllers = errors.New("unsupported controllers for r08")

	// ErrUnsupportedConsole indicates a TasdFile's ConsoleType isn't one
	// GBI conversion supports (Game Boy, Game Boy Color, Game Boy Advance).
	ErrUnsupportedConsole = errors.New("unsupported console for gbi")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain that matches target, and if so,
// sets target to that error value and returns true.
func As(err error, target interface{}) bool { return errors.As(err, target) }
