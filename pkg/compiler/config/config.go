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

// Package config loads compiler configuration: the exception family scripts may catch, the statement limit, and the
// script type hierarchy. Configuration may be written in HCL:
//
//	catch_bound          = "Exception"
//	max_statements       = 10000
//	extend_default_types = true
//
//	type "RuntimeFailure" {
//	  parent = "Exception"
//	}
//
// or in YAML:
//
//	catchBound: Exception
//	maxStatements: 10000
//	extendDefaultTypes: true
//	types:
//	- name: RuntimeFailure
//	  parent: Exception
package config

import (
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"github.com/scriptc/scriptc/pkg/compiler/lookup"
	"github.com/scriptc/scriptc/pkg/compiler/model"
	yaml "gopkg.in/yaml.v2"
)

// Config is the compiler configuration.
type Config struct {
	// CatchBound is the type every catch variable must be assignable to unless a clause names its own bound.
	CatchBound string
	// MaxStatements limits the number of statements in a unit. Zero means no limit.
	MaxStatements int
	// ExtendDefaultTypes adds Types to the default hierarchy instead of replacing it.
	ExtendDefaultTypes bool
	// Types is the script type hierarchy. An empty list selects the default hierarchy.
	Types []lookup.TypeSpec
}

// Default returns the configuration used when none is supplied.
func Default() *Config {
	return &Config{CatchBound: model.DefaultCatchBound}
}

// Load reads the configuration file at path. Files ending in .yaml or .yml are read as YAML; all others as HCL.
func Load(path string) (*Config, error) {
	src, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading configuration")
	}

	glog.V(5).Infof("loading configuration from %s", path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(src, path)
	default:
		return ParseHCL(src, path)
	}
}

type hclConfig struct {
	CatchBound         *string   `hcl:"catch_bound,optional"`
	MaxStatements      *int      `hcl:"max_statements,optional"`
	ExtendDefaultTypes *bool     `hcl:"extend_default_types,optional"`
	Types              []hclType `hcl:"type,block"`
}

type hclType struct {
	Name       string   `hcl:"name,label"`
	Parent     *string  `hcl:"parent,optional"`
	Implements []string `hcl:"implements,optional"`
}

// ParseHCL parses HCL configuration source.
func ParseHCL(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diagnostics := parser.ParseHCL(src, filename)
	if diagnostics.HasErrors() {
		return nil, errors.Wrapf(diagnostics, "parsing %s", filename)
	}

	var raw hclConfig
	if diagnostics := gohcl.DecodeBody(file.Body, nil, &raw); diagnostics.HasErrors() {
		return nil, errors.Wrapf(diagnostics, "decoding %s", filename)
	}

	c := Default()
	if raw.CatchBound != nil {
		c.CatchBound = *raw.CatchBound
	}
	if raw.MaxStatements != nil {
		c.MaxStatements = *raw.MaxStatements
	}
	if raw.ExtendDefaultTypes != nil {
		c.ExtendDefaultTypes = *raw.ExtendDefaultTypes
	}
	for _, t := range raw.Types {
		spec := lookup.TypeSpec{Name: t.Name, Implements: t.Implements}
		if t.Parent != nil {
			spec.Parent = *t.Parent
		}
		c.Types = append(c.Types, spec)
	}
	if err := c.validate(filename); err != nil {
		return nil, err
	}
	return c, nil
}

type yamlConfig struct {
	CatchBound         string            `yaml:"catchBound"`
	MaxStatements      int               `yaml:"maxStatements"`
	ExtendDefaultTypes bool              `yaml:"extendDefaultTypes"`
	Types              []lookup.TypeSpec `yaml:"types"`
}

// ParseYAML parses YAML configuration source. Unknown keys are rejected.
func ParseYAML(src []byte, filename string) (*Config, error) {
	var raw yamlConfig
	if err := yaml.UnmarshalStrict(src, &raw); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", filename)
	}

	c := Default()
	if raw.CatchBound != "" {
		c.CatchBound = raw.CatchBound
	}
	c.MaxStatements = raw.MaxStatements
	c.ExtendDefaultTypes = raw.ExtendDefaultTypes
	c.Types = raw.Types
	if err := c.validate(filename); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate(filename string) error {
	if c.MaxStatements < 0 {
		return errors.Errorf("%s: max statements must not be negative, got %d", filename, c.MaxStatements)
	}
	return nil
}

// TypeSpecs returns the effective type hierarchy.
func (c *Config) TypeSpecs() []lookup.TypeSpec {
	switch {
	case len(c.Types) == 0:
		return lookup.DefaultTypes()
	case c.ExtendDefaultTypes:
		return append(lookup.DefaultTypes(), c.Types...)
	default:
		return c.Types
	}
}

// Registry builds the type lookup described by the configuration. The configured catch bound must be one of its
// types.
func (c *Config) Registry() (*lookup.Registry, error) {
	registry, err := lookup.NewRegistry(c.TypeSpecs())
	if err != nil {
		return nil, errors.Wrap(err, "invalid type hierarchy")
	}
	if _, ok := registry.ResolveType(c.AnalyzerOptions().CatchBound); !ok {
		return nil, errors.Errorf("catch bound %q is not a registered type", c.AnalyzerOptions().CatchBound)
	}
	return registry, nil
}

// AnalyzerOptions returns the analyzer options described by the configuration.
func (c *Config) AnalyzerOptions() model.Options {
	bound := c.CatchBound
	if bound == "" {
		bound = model.DefaultCatchBound
	}
	return model.Options{CatchBound: bound, MaxStatements: c.MaxStatements}
}
