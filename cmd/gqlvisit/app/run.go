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
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gqlkit/visitor/internal/testfixture"
	"github.com/gqlkit/visitor/printer"
	"github.com/gqlkit/visitor/schema"
	"github.com/gqlkit/visitor/visitor"
)

func newRunCmd() *cobra.Command {
	var (
		presetName string
		field      string
		schemaPath string
	)
	cmd := &cobra.Command{
		Use:   "run <fixture.yaml>",
		Short: "apply a named visitor preset to a fixture document and print the result",
		Long: fmt.Sprintf("run applies one of the following presets:\n\n  %s\n\nto the document described by the fixture file and prints the edited tree.",
			strings.Join(presetNames(), "\n  ")),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			doc, err := testfixture.Decode(data)
			if err != nil {
				return err
			}

			build, ok := presets[presetName]
			if !ok {
				return fmt.Errorf("unknown preset %q (known: %s)", presetName, strings.Join(presetNames(), ", "))
			}

			opts := presetOptions{field: field}
			if schemaPath != "" {
				f, err := os.Open(schemaPath)
				if err != nil {
					return err
				}
				defer f.Close()
				s, err := schema.FromProto(f)
				if err != nil {
					return fmt.Errorf("loading --schema-proto: %w", err)
				}
				opts.schema = s
			}

			v, report, err := build(opts)
			if err != nil {
				return err
			}
			result, err := visitor.Visit(doc, v)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), printer.Print(result))
			if extra := report(); extra != "" {
				fmt.Fprintln(cmd.OutOrStdout(), extra)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&presetName, "preset", "count-kinds", "visitor preset to run")
	cmd.Flags().StringVar(&field, "field", "", "field name argument for presets that need one (delete-field)")
	cmd.Flags().StringVar(&schemaPath, "schema-proto", "", "path to a .proto file describing the schema (wrap-typename)")
	return cmd
}
