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
	"flag"

	"github.com/pkg/errors"
	"github.com/scriptc/scriptc/pkg/compiler/config"
	"github.com/spf13/cobra"
)

// errAnalysisFailed is returned once diagnostics have already been printed.
var errAnalysisFailed = errors.New("analysis failed")

type globalFlags struct {
	configPath string
}

func (f *globalFlags) loadConfig() (*config.Config, error) {
	if f.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(f.configPath)
}

// NewScriptcCmd creates the root command.
func NewScriptcCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "scriptc",
		Short: "Analyze and lower sandboxed scripts",
		Long: "Analyze and lower sandboxed scripts.\n" +
			"\n" +
			"Scripts are checked for scoping and control-flow errors, and catch clauses are checked against the\n" +
			"exception family scripts are permitted to intercept.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog complains unless the standard flag set has been parsed; cobra has already set the values.
			return flag.CommandLine.Parse(nil)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "",
		"Path to a compiler configuration file (.hcl, .yaml or .yml)")
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newLowerCmd(flags))
	cmd.AddCommand(newTypesCmd(flags))

	return cmd
}
