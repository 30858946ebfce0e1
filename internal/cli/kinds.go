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
	"fmt"

	"dirpx.dev/kerrors/errno"
	"dirpx.dev/kerrors/kind"
	"github.com/spf13/cobra"
)

type kindRow struct {
	Kind        string `json:"kind"`
	Code        int    `json:"code"`
	Errno       string `json:"errno"`
	Description string `json:"description"`
}

func newKindsCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the generic error kinds",
		Long:  `Lists every generic error kind with its code and the errno it converts to.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := kind.All()
			rows := make([]kindRow, 0, len(all))
			for _, k := range all {
				rows = append(rows, kindRow{
					Kind:        k.String(),
					Code:        k.Code(),
					Errno:       errno.FromKind(k).String(),
					Description: k.Description(),
				})
			}
			if f.json {
				return outputJSON(cmd.OutOrStdout(), rows)
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "CODE\tKIND\tERRNO\tDESCRIPTION")
			for _, r := range rows {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.Code, r.Kind, r.Errno, r.Description)
			}
			return tw.Flush()
		},
	}
}
