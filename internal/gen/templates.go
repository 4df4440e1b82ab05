package gen

import "text/template"

const headerTmpl = `{{define "header" -}}
// Code generated by quantity-generator{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.

package {{.Package}}
{{if or .Std .Imports}}
import (
{{- range .Std}}
	"{{.Path}}"
{{- end}}
{{if and .Std .Imports}}
{{end}}
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)
{{end}}
{{- end}}`

const unitTmpl = `{{define "unit"}}
{{if .Comments}}// {{.Unit.Name}} {{.Unit.Doc}}
{{end}}type {{.Unit.Name}} struct{}

func ({{.Unit.Name}}) Dimension() {{.Unit.Marker}} { return {{.Unit.Marker}}{} }
func ({{.Unit.Name}}) Name() string { return "{{.Unit.Name}}" }
{{- if .Unit.Linear}}
func ({{.Unit.Name}}) Factor() float64 { return {{.Unit.FactorExpr}} }
{{- end}}
func ({{.Unit.Name}}) ToCanonical(v float64) float64 { return {{.Unit.ToExpr}} }
func ({{.Unit.Name}}) FromCanonical(v float64) float64 { return {{.Unit.FromExpr}} }
{{end}}`

const dimensionBody = `{{template "header" .}}
{{- with .Dimension}}
{{if $.Comments}}// {{.Marker}} identifies the {{.Name}} dimension.
{{end}}type {{.Marker}} struct{}

func ({{.Marker}}) Name() string { return "{{.Name}}" }
func ({{.Marker}}) Canonical() string { return "{{.Canonical}}" }

{{if $.Comments}}// {{.Name}} {{.Doc}}
// Values are stored in {{.Canonical}}.
{{end}}type {{.Name}}[S quantity.Scalar] struct {
	v S
}

{{if $.Comments}}// New{{.Name}} returns v expressed in u as a {{.Name}}.
{{end}}func New{{.Name}}[S quantity.Scalar](v S, u quantity.Unit[{{.Marker}}]) {{.Name}}[S] {
	return {{.Name}}[S]{v: quantity.ToCanonical(u, v)}
}

{{if $.Comments}}// {{.Name}}FromCanonical returns a {{.Name}} of v {{.Canonical}}.
{{end}}func {{.Name}}FromCanonical[S quantity.Scalar](v S) {{.Name}}[S] {
	return {{.Name}}[S]{v: v}
}

{{if $.Comments}}// {{.Name}}One returns one u as a {{.Name}}.
{{end}}func {{.Name}}One[S quantity.Scalar](u quantity.LinearUnit[{{.Marker}}]) {{.Name}}[S] {
	return {{.Name}}[S]{v: quantity.One[S](u)}
}

{{if $.Comments}}// Canonical returns the value in {{.Canonical}}.
{{end}}func (q {{.Name}}[S]) Canonical() S { return q.v }

{{if $.Comments}}// To returns the value expressed in u.
{{end}}func (q {{.Name}}[S]) To(u quantity.Unit[{{.Marker}}]) S { return quantity.FromCanonical(u, q.v) }

func (q {{.Name}}[S]) Add(r {{.Name}}[S]) {{.Name}}[S] { return {{.Name}}[S]{v: q.v + r.v} }
func (q {{.Name}}[S]) Sub(r {{.Name}}[S]) {{.Name}}[S] { return {{.Name}}[S]{v: q.v - r.v} }
func (q {{.Name}}[S]) Mul(k S) {{.Name}}[S] { return {{.Name}}[S]{v: q.v * k} }
func (q {{.Name}}[S]) Div(k S) {{.Name}}[S] { return {{.Name}}[S]{v: q.v / k} }

func (q *{{.Name}}[S]) AddAssign(r {{.Name}}[S]) { q.v += r.v }
func (q *{{.Name}}[S]) SubAssign(r {{.Name}}[S]) { q.v -= r.v }
func (q *{{.Name}}[S]) MulAssign(k S) { q.v *= k }
func (q *{{.Name}}[S]) DivAssign(k S) { q.v /= k }

{{if $.Comments}}// Cmp compares q and r like cmp.Compare.
{{end}}func (q {{.Name}}[S]) Cmp(r {{.Name}}[S]) int { return cmp.Compare(q.v, r.v) }

func (q {{.Name}}[S]) String() string { return quantity.Format("{{.Name}}", "{{.Canonical}}", q.v) }
{{- $dim := .}}
{{- range .Methods}}

{{if $.Comments}}// {{.Name}} returns the {{.Output}} q {{.Symbol}} r.
{{end}}func (q {{$dim.Name}}[S]) {{.Name}}(r {{.Right}}[S]) {{.Output}}[S] {
	return {{.FromCanonical}}(quantity.{{.Helper}}(q.v, r.Canonical(), {{.Unit}}{}))
}
{{- end}}
{{end}}
{{- range .Units}}{{template "unit" (unitView $ .)}}{{end}}`

const unitsBody = `{{template "header" .}}
{{- range .Units}}{{template "unit" (unitView $ .)}}{{end}}`

const operationsBody = `{{template "header" .}}
{{- range .Functions}}
{{if $.Comments}}// {{.Name}} returns the {{.Output}} l {{.Symbol}} r.
{{end}}func {{.Name}}[S quantity.Scalar](l {{.Left}}[S], r {{.Right}}[S]) {{.Output}}[S] {
	return {{.FromCanonical}}(quantity.{{.Helper}}(l.Canonical(), r.Canonical(), {{.Unit}}{}))
}
{{end}}`

const registryBody = `{{template "header" .}}
{{- with .Registry}}
{{if $.Comments}}// Register adds the dimensions, units and operations of this package
// and of its imports to r. Registering a package twice is a no-op.
{{end}}func Register(r *quantity.Registry) {
	r.Include("{{.ImportPath}}", func(r *quantity.Registry) {
{{- range .Body}}
{{if .}}		{{.}}{{end}}
{{- end}}
	})
}

{{if $.Comments}}// Registry returns the registry of this package, built on first use.
{{end}}var Registry = sync.OnceValue(func() *quantity.Registry {
	r := quantity.NewRegistry()
	Register(r)

	return r
})
{{end}}`

// unitContext passes the file-wide comment switch to the unit template.
type unitContext struct {
	Comments bool
	Unit     unitData
}

func newTemplate(name, body string) *template.Template {
	funcs := template.FuncMap{
		"unitView": func(f *fileData, u unitData) unitContext {
			return unitContext{Comments: f.Comments, Unit: u}
		},
	}

	t := template.Must(template.New(name).Funcs(funcs).Parse(headerTmpl))
	t = template.Must(t.Parse(unitTmpl))

	return template.Must(t.Parse(body))
}

var (
	dimensionTemplate  = newTemplate("dimension", dimensionBody)
	unitsTemplate      = newTemplate("units", unitsBody)
	operationsTemplate = newTemplate("operations", operationsBody)
	registryTemplate   = newTemplate("registry", registryBody)
)
