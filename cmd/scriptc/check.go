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
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <script>...",
		Short: "Analyze scripts and report their escape facts",
		Args:  cobra.MinimumNArgs(1),
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
			for _, c := range results {
				if !c.failed() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok %v\n", c.file.Name, c.output)
				}
			}
			if failed {
				return errAnalysisFailed
			}
			return nil
		},
	}
}
