/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package cli implements the errno command: lookups over the kind and errno
// vocabularies and their transport mappings.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"dirpx.dev/kerrors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Version is set via ldflags during build
	Version = "dev"
	// Commit is set via ldflags during build
	Commit = "unknown"
)

// flags holds the global flags of one command tree.
type flags struct {
	json    bool
	verbose bool
}

// NewRootCmd builds the errno command tree.
func NewRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "errno",
		Short: "Look up Linux errnos and generic error kinds",
		Long: `errno prints the Linux errno table, the generic error kinds and the
errno each kind converts to, together with the HTTP and gRPC statuses the
default mapper resolves them to.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if f.verbose {
				kerrors.SetLogger(newLogger(cmd.ErrOrStderr()))
			}
		},
	}

	root.PersistentFlags().BoolVar(&f.json, "json", false, "Output in JSON format")
	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "Log lookups to stderr")

	root.AddCommand(newListCmd(f))
	root.AddCommand(newKindsCmd(f))
	root.AddCommand(newShowCmd(f))
	root.AddCommand(newVersionCmd(f))
	return root
}

// Execute runs the command tree against os.Args and returns the process exit
// status.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	return 0
}

// exitCode reports vocabulary errors with their errno, like a failing
// syscall, and everything else (usage errors) as 1.
func exitCode(err error) int {
	if en, ok := kerrors.ErrnoOf(err); ok {
		return en.Code()
	}
	return 1
}

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		PartsOrder: []string{"time", "level", "message", "fields"},
	}).With().Timestamp().Logger()
}
