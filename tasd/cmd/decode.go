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
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cybergarage/go-tasd/tasd"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(decodeCmd)
}

var decodeCmd = &cobra.Command{ // nolint:exhaustruct
	Use:   "decode <file>",
	Short: "Decode a TASD file and print its packet stream.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := NewFormatFromString(viper.GetString(FormatParamStr))
		if err != nil {
			return err
		}

		file, err := tasd.ParseFile(args[0])
		if err != nil {
			return err
		}

		switch format {
		case FormatJSON:
			return printPacketsJSON(file)
		case FormatCSV:
			return printPacketsCSV(file)
		default:
			return printPacketsTable(file)
		}
	},
}

type packetRow struct {
	Key   string `json:"key"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

func packetRows(file *tasd.TasdFile) []packetRow {
	rows := make([]packetRow, 0, len(file.Packets))
	for _, pkt := range file.Packets {
		rows = append(rows, packetRow{
			Key:   pkt.Key().String(),
			Type:  fmt.Sprintf("%T", pkt),
			Value: fmt.Sprintf("%+v", pkt),
		})
	}
	return rows
}

func printPacketsTable(file *tasd.TasdFile) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', 0)
	fmt.Fprintf(w, "KEY\tTYPE\tVALUE\n")
	for _, row := range packetRows(file) {
		fmt.Fprintf(w, "%s\t%s\t%s\n", row.Key, row.Type, row.Value)
	}
	return w.Flush()
}

func printPacketsCSV(file *tasd.TasdFile) error {
	fmt.Println("key,type,value")
	for _, row := range packetRows(file) {
		fmt.Printf("%s,%s,%q\n", row.Key, row.Type, row.Value)
	}
	return nil
}

func printPacketsJSON(file *tasd.TasdFile) error {
	b, err := json.MarshalIndent(packetRows(file), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(strings.TrimSpace(string(b)))
	return nil
}
