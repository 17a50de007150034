package main

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

// table describes one generated file.
type table struct {
	Source  string
	Package string
	Name    string
	Type    string
	Prefix  string
	Hex     bool
	Default string
	Values  []constant
}

// Literal renders a constant value.
func (t *table) Literal(v uint64) string {
	if t.Hex {
		return fmt.Sprintf("%#x", v)
	}
	return fmt.Sprint(v)
}

// Short strips the table prefix from a constant name.
func (t *table) Short(name string) string {
	return strings.TrimPrefix(name, t.Prefix)
}

// Qualifier is the package qualifier for NewTable.
func (t *table) Qualifier() string {
	if t.Package == "nlenum" {
		return ""
	}
	return "nlenum."
}

var fileTemplate = template.Must(template.New("enum").Parse(`// Code generated by enumgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}
{{if .Qualifier}}
import "github.com/m-lab/nl-dump/nlenum"
{{end}}
// {{.Name}} holds {{.Prefix}}* values.
type {{.Name}} {{.Type}}

// {{.Prefix}}* values.
const (
{{- range .Values}}
	{{.Name}} {{$.Name}} = {{$.Literal .Value}}
{{- end}}
)
{{if .Default}}
// {{.Name}}Default is the value to assume when none is given.
const {{.Name}}Default = {{.Default}}
{{end}}
// {{.Name}}Table names the {{.Name}} values.
var {{.Name}}Table = {{.Qualifier}}NewTable("{{.Prefix}}", map[{{.Name}}]string{
{{- range .Values}}
	{{.Name}}: "{{$.Short .Name}}",
{{- end}}
})

func (v {{.Name}}) String() string {
	return {{.Name}}Table.Name(v)
}

// MarshalText renders the value name.
func (v {{.Name}}) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
`))

var bits = map[string]uint{"uint8": 8, "uint16": 16, "uint32": 32}

// emit renders t as formatted Go source.
func emit(t *table) ([]byte, error) {
	n, ok := bits[t.Type]
	if !ok {
		return nil, errors.Errorf("unsupported type %q", t.Type)
	}
	if len(t.Values) == 0 {
		return nil, errors.Errorf("no %s constants in %s", t.Prefix, t.Source)
	}
	t.Values = dedupe(t.Values)
	sort.SliceStable(t.Values, func(i, j int) bool { return t.Values[i].Value < t.Values[j].Value })
	found := t.Default == ""
	for _, c := range t.Values {
		if c.Value >= 1<<n {
			return nil, errors.Errorf("%s = %d overflows %s", c.Name, c.Value, t.Type)
		}
		found = found || c.Name == t.Default
	}
	if !found {
		return nil, errors.Errorf("default %s is not a %s constant", t.Default, t.Prefix)
	}
	buf := &bytes.Buffer{}
	if err := fileTemplate.Execute(buf, t); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

// typeName derives a Go type name from a constant prefix, e.g. RTN_ gives Rtn.
func typeName(prefix string) string {
	p := strings.ToLower(strings.Trim(prefix, "_"))
	parts := strings.Split(p, "_")
	for i, s := range parts {
		if s != "" {
			parts[i] = strings.ToUpper(s[:1]) + s[1:]
		}
	}
	return strings.Join(parts, "")
}
