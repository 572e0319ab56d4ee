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

/*
tasd-dump decodes and converts TASD (Tool-Assisted Speedrun Dump) files.

	NAME
	tasd-dump

	SYNOPSIS
	tasd-dump decode <file>
	tasd-dump to-r08 <in.tasd> <out.r08>
	tasd-dump from-r08 <in.r08> <out.tasd>
	tasd-dump to-gbi <in.tasd> <out.gbi>

	RETURN VALUE
	Return EXIT_SUCCESS or EXIT_FAILURE
*/
package main

import (
	"os"

	"github.com/cybergarage/go-logger/log"
	"github.com/cybergarage/go-tasd/tasd/cmd"
)

func main() {
	log.SetSharedLogger(log.NewStdoutLogger(log.LevelError))

	if err := cmd.Execute(); err != nil {
		log.Errorf("%s", err.Error())
		os.Exit(1)
	}
}
