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
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/hashicorp/hcl/v2"
	"github.com/pkg/errors"
	"github.com/scriptc/scriptc/pkg/compiler/config"
	"github.com/scriptc/scriptc/pkg/compiler/model"
	"github.com/scriptc/scriptc/pkg/compiler/syntax"
	"golang.org/x/sync/errgroup"
)

// compilation is the result of analyzing one script file.
type compilation struct {
	file        *syntax.File
	unit        *model.Unit
	output      model.Output
	diagnostics hcl.Diagnostics
}

func (c *compilation) failed() bool {
	return c.diagnostics.HasErrors()
}

// compileFiles parses and analyzes each file. Units share nothing but the read-only type registry, so they are
// analyzed concurrently. Only I/O and configuration problems are returned as errors; script problems are recorded
// in each compilation's diagnostics.
func compileFiles(cfg *config.Config, paths []string) ([]*compilation, error) {
	registry, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	analyzer := model.NewAnalyzer(registry, cfg.AnalyzerOptions())

	results := make([]*compilation, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			c, err := compileFile(analyzer, path)
			if err != nil {
				return err
			}
			results[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func compileFile(analyzer *model.Analyzer, path string) (*compilation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening script")
	}
	defer f.Close()

	file, diagnostics, err := syntax.ParseFile(f, path)
	if err != nil {
		return nil, err
	}
	if diagnostics.HasErrors() {
		return &compilation{diagnostics: diagnostics}, nil
	}

	c := &compilation{file: file}
	c.unit, c.diagnostics = syntax.DecodeUnit(file)
	if c.failed() {
		return c, nil
	}

	c.output, err = analyzer.AnalyzeUnit(c.unit)
	if err != nil {
		analysisErr, ok := err.(*model.Error)
		if !ok {
			return nil, err
		}
		c.diagnostics = append(c.diagnostics, analysisErr.Diagnostic())
		return c, nil
	}

	glog.V(3).Infof("%s: %v", path, c.output)
	return c, nil
}

// writeDiagnostics renders the diagnostics of every compilation and reports whether any of them failed.
func writeDiagnostics(w io.Writer, results []*compilation) (bool, error) {
	var files []*syntax.File
	for _, c := range results {
		if c.file != nil {
			files = append(files, c.file)
		}
	}

	writer := syntax.NewDiagnosticWriter(w, files, 0, false)
	failed := false
	for _, c := range results {
		if len(c.diagnostics) == 0 {
			continue
		}
		failed = failed || c.failed()
		if err := writer.WriteDiagnostics(c.diagnostics); err != nil {
			return failed, err
		}
	}
	return failed, nil
}
