// Copyright 2025 go-half Authors
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
	"bytes"
	"os"
	"text/template"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/tools/imports"
)

const licenseHeader = `// Copyright 2025 go-half Authors
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
`

var fileTemplate = template.Must(template.New("ops").Parse(`{{.Header}}
// Code generated by halfgen. DO NOT EDIT.

package {{.Package}}
{{range .Shims}}
// {{.Doc}}
{{.Signature}} {
	return {{.Body}}
}
{{end}}`))

// Generator renders the operator shims into a Go source file.
type Generator struct {
	OutputFile string // Output file path
	PackageOut string // Package clause of the output file
}

// Render returns the formatted source of the generated file.
func (g *Generator) Render() ([]byte, error) {
	shims := buildShims()

	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Header  string
		Package string
		Shims   []Shim
	}{
		Header:  licenseHeader,
		Package: g.PackageOut,
		Shims:   shims,
	})
	if err != nil {
		return nil, errors.Wrap(err, "execute template")
	}

	formatted, err := imports.Process(g.OutputFile, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "format generated source")
	}
	log.Debug().Int("shims", len(shims)).Int("bytes", len(formatted)).Msg("rendered")
	return formatted, nil
}

// Run renders the shims and writes them to OutputFile.
func (g *Generator) Run() error {
	if g.OutputFile == "" {
		return errors.New("output file is required")
	}
	if g.PackageOut == "" {
		return errors.New("package name is required")
	}

	src, err := g.Render()
	if err != nil {
		return err
	}
	if err := os.WriteFile(g.OutputFile, src, 0644); err != nil {
		return errors.Wrapf(err, "write %s", g.OutputFile)
	}
	log.Info().Str("file", g.OutputFile).Str("package", g.PackageOut).Msg("generated operator shims")
	return nil
}
