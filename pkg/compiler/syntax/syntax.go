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

// Package syntax reads scripts written as HCL statement trees. Each statement is a block:
//
//	declaration "int" "x" { value = 1 }
//	expression { value = x }
//	return { value = x }
//	throw { value = e }
//	break {}
//	continue {}
//	block { ... }
//	if { condition = x  then { ... }  else { ... } }
//	while { condition = true  body { ... } }
//	try {
//	  body { ... }
//	  catch "RuntimeException" "e" { bound = "Exception" ... }
//	}
//
// The format stands in for the script language's own parser in tests and in the command-line driver.
package syntax

import (
	"io"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/pkg/errors"
)

// File is a parsed script file.
type File struct {
	Name  string
	Body  *hclsyntax.Body
	Bytes []byte
}

// UnitName returns the name of the compilation unit read from the file: its base name without extension.
func (f *File) UnitName() string {
	base := filepath.Base(f.Name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParseFile parses the script in r. Syntax errors are returned as diagnostics; I/O errors as an error.
func ParseFile(r io.Reader, filename string) (*File, hcl.Diagnostics, error) {
	src, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading %s", filename)
	}

	hclFile, diagnostics := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diagnostics.HasErrors() {
		return nil, diagnostics, nil
	}
	return &File{Name: filename, Body: hclFile.Body.(*hclsyntax.Body), Bytes: src}, diagnostics, nil
}

// NewDiagnosticWriter creates a new diagnostic writer that renders source snippets from the given files.
func NewDiagnosticWriter(w io.Writer, files []*File, width uint, color bool) hcl.DiagnosticWriter {
	fileMap := map[string]*hcl.File{}
	for _, f := range files {
		fileMap[f.Name] = &hcl.File{Body: f.Body, Bytes: f.Bytes}
	}
	return hcl.NewDiagnosticTextWriter(w, fileMap, width, color)
}
