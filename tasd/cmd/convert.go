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

package cmd

import (
	"fmt"
	"os"

	"github.com/cybergarage/go-logger/log"
	"github.com/cybergarage/go-tasd/tasd"
	"github.com/cybergarage/go-tasd/tasd/legacy"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(toR08Cmd)
	rootCmd.AddCommand(fromR08Cmd)
	rootCmd.AddCommand(toGbiCmd)
}

var toR08Cmd = &cobra.Command{ // nolint:exhaustruct
	Use:   "to-r08 <in.tasd> <out.r08>",
	Short: "Convert a TASD file to the legacy R08 format.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := tasd.ParseFile(args[0])
		if err != nil {
			return err
		}
		r08, err := legacy.NewR08FromTasdFile(file)
		if err != nil {
			return err
		}

		out := make([]byte, 0, len(r08.Inputs)*2)
		for _, frame := range r08.Inputs {
			out = append(out, frame[0], frame[1])
		}

		log.Infof("wrote %d frames to %s", len(r08.Inputs), args[1])
		return os.WriteFile(args[1], out, 0o644)
	},
}

var fromR08Cmd = &cobra.Command{ // nolint:exhaustruct
	Use:   "from-r08 <in.r08> <out.tasd>",
	Short: "Convert a legacy R08 file to TASD.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		if len(data)%2 != 0 {
			return fmt.Errorf("r08 input length %d is not a multiple of 2", len(data))
		}

		r08 := &legacy.R08{Inputs: make([][2]byte, len(data)/2)}
		for i := range r08.Inputs {
			r08.Inputs[i] = [2]byte{data[i*2], data[i*2+1]}
		}

		file := r08.ToTasdFile()
		return file.SetPath(args[1]).Save()
	},
}

var toGbiCmd = &cobra.Command{ // nolint:exhaustruct
	Use:   "to-gbi <in.tasd> <out.gbi>",
	Short: "Convert a TASD file to the legacy GBI text format.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := tasd.ParseFile(args[0])
		if err != nil {
			return err
		}
		gbi, err := legacy.NewGbiFromTasdFile(file)
		if err != nil {
			return err
		}
		return os.WriteFile(args[1], []byte(gbi.InputText), 0o644)
	},
}
