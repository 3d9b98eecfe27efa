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

// Package app implements the gqlvisit command line tool: a cobra.Command
// tree that loads a YAML fixture document, optionally runs a named visitor
// preset over it, and prints the result.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// New builds the root command.
func New() *cobra.Command {
	root := &cobra.Command{
		Use:           "gqlvisit",
		Short:         "gqlvisit applies traversal-engine visitors to GraphQL-like fixture documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newPrintCmd())
	return root
}

// Main runs the tool with args (excluding the program name) and returns the
// process exit code, the way cmd/cue's Main does for its own root command.
func Main(args []string) int {
	root := New()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		exitOnErr(root, err)
		return 1
	}
	return 0
}

// exitOnErr reports err to the command's error stream. gqlerrors.Error's
// own Error() method already renders the path a traversal fault was
// detected at ahead of the message, so there is nothing more to unpack
// here than there would be for any other error.
func exitOnErr(cmd *cobra.Command, err error) {
	fmt.Fprintln(cmd.ErrOrStderr(), err)
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}
