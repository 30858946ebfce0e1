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
	"github.com/spf13/cobra"
)

type errnoRow struct {
	Name        string `json:"name"`
	Code        int    `json:"code"`
	Description string `json:"description"`
}

func newListCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every Linux errno",
		Long:  `Lists the asm-generic Linux errno values in ascending order.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := errno.All()
			rows := make([]errnoRow, 0, len(all))
			for _, e := range all {
				rows = append(rows, errnoRow{Name: e.String(), Code: e.Code(), Description: e.Description()})
			}
			if f.json {
				return outputJSON(cmd.OutOrStdout(), rows)
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "CODE\tNAME\tDESCRIPTION")
			for _, r := range rows {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", r.Code, r.Name, r.Description)
			}
			return tw.Flush()
		},
	}
}
