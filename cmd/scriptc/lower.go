// Copyright 2016-2020, Pulumi Corporation.
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

package main

import (
	"github.com/scriptc/scriptc/pkg/compiler/ir/format"
	"github.com/spf13/cobra"
)

func newLowerCmd(flags *globalFlags) *cobra.Command {
	var showLocations bool

	cmd := &cobra.Command{
		Use:   "lower <script>...",
		Short: "Analyze scripts and print their IR",
		Long: "Analyze scripts and print their IR.\n" +
			"\n" +
			"Nothing is printed unless every script analyzes successfully.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}

			results, err := compileFiles(cfg, args)
			if err != nil {
				return err
			}

			failed, err := writeDiagnostics(cmd.ErrOrStderr(), results)
			if err != nil {
				return err
			}
			if failed {
				return errAnalysisFailed
			}

			for _, c := range results {
				format.Fprint(cmd.OutOrStdout(), c.unit.Lower(), showLocations)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showLocations, "locations", false, "Annotate each IR node with its source range")
	return cmd
}
