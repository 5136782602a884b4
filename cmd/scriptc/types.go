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

	"github.com/scriptc/scriptc/pkg/compiler/lookup"
	"github.com/spf13/cobra"
)

func newTypesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the configured script types and which of them scripts may catch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			registry, err := cfg.Registry()
			if err != nil {
				return err
			}

			bound, _ := registry.ResolveType(cfg.AnalyzerOptions().CatchBound)
			for _, name := range registry.TypeNames() {
				typ, _ := registry.ResolveType(name)

				line := name
				if parent := typ.(*lookup.Class).Parent(); parent != nil {
					line += " extends " + parent.CanonicalName()
				}
				if registry.IsAssignable(typ, bound) {
					line += " (catchable)"
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
