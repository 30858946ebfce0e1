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

package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dirpx.dev/kerrors"
	"dirpx.dev/kerrors/adapter"
	"dirpx.dev/kerrors/apis"
	"dirpx.dev/kerrors/errno"
	"dirpx.dev/kerrors/kind"
	"dirpx.dev/kerrors/mapper"
	"github.com/spf13/cobra"
)

func newShowCmd(f *flags) *cobra.Command {
	var explain bool
	cmd := &cobra.Command{
		Use:   "show <errno|code|kind>...",
		Short: "Show one or more errnos or kinds",
		Long: `Shows an errno given by name (ENOENT, EWOULDBLOCK), by number (2, -2)
or through the generic kind that converts to it (NotFound, not-found).`,
		Example: `  errno show ENOENT
  errno show 11 -- -110
  errno show --json PermissionDenied`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			descs := make([]apis.ErrorDescriptor, 0, len(args))
			for _, arg := range args {
				e, err := resolve(arg)
				if err != nil {
					return err
				}
				d := adapter.ToDescriptor(e, mapper.Default.Status(e.Errno))
				kerrors.Logger().Debug().Str("arg", arg).Object("resolved", e).Msg("lookup")
				if f.json {
					descs = append(descs, d)
					continue
				}
				writeDescriptor(cmd.OutOrStdout(), d)
				if explain {
					fmt.Fprintln(cmd.OutOrStdout(), indent(mapper.Default.Explain(e.Errno)))
				}
			}
			if f.json {
				return outputJSON(cmd.OutOrStdout(), descs)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "Show which mapping rule resolved each status")
	return cmd
}

// resolve accepts an errno number (optionally negated, as returned by raw
// syscalls), an errno name or alias, or a kind name.
func resolve(arg string) (*kerrors.Error, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 0 {
			n = -n
		}
		en, err := errno.FromCode(n)
		if err != nil {
			return nil, kerrors.E(kind.InvalidInput, err.Error(), kerrors.WithOpOption("show"), kerrors.WithCauseOption(err))
		}
		return kerrors.FromErrno(en, ""), nil
	}
	if en, err := errno.Parse(arg); err == nil {
		return kerrors.FromErrno(en, ""), nil
	}
	k, err := kind.Parse(arg)
	if err != nil {
		msg := fmt.Sprintf("%q is neither an errno nor a kind", arg)
		return nil, kerrors.E(kind.InvalidInput, msg, kerrors.WithOpOption("show"), kerrors.WithCauseOption(errors.Join(errno.ErrUnrecognized, kind.ErrUnknownKind)))
	}
	return kerrors.E(k, ""), nil
}

func writeDescriptor(w io.Writer, d apis.ErrorDescriptor) {
	fmt.Fprintf(w, "%s (%d): %s\n", d.Errno, d.Code, d.Message)
	tw := newTable(w)
	if d.Kind != "" {
		fmt.Fprintf(tw, "  kind:\t%s (%d)\n", d.Kind, d.KindCode)
	}
	fmt.Fprintf(tw, "  http:\t%d\n", d.HTTPStatus)
	fmt.Fprintf(tw, "  grpc:\t%d\n", d.GRPCCode)
	_ = tw.Flush()
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
