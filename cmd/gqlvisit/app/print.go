// Copyright 2024 The gqlkit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gqlkit/visitor/internal/testfixture"
	"github.com/gqlkit/visitor/printer"
)

func newPrintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print <fixture.yaml>",
		Short: "decode a fixture document and print it back unchanged",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			doc, err := testfixture.Decode(data)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), printer.Print(doc))
			return nil
		},
	}
	return cmd
}
