package gen

import (
	"go/format"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantity-generator/internal/plan"
	"quantity-generator/internal/schema"
)

const baseSchema = `
package: units
dimensions:
  - name: Length
    doc: Represents a distance.
    canonical: Meters
    signature: {length: 1}
    units:
      - name: Meters
        ratio: 1 per canonical
      - name: Centimeters
        ratio: 100 per canonical
      - name: Inches
        ratio: per 0.0254 canonical
      - name: Hands
        of: Inches
        factor: 4
    operations:
      - Self / Time => LinearVelocity in MetersPerSecond
  - name: Time
    canonical: Seconds
    signature: {time: 1}
    units:
      - name: Seconds
        ratio: 1 per canonical
      - name: Hours
        ratio: per 3600 canonical
  - name: LinearVelocity
    canonical: MetersPerSecond
    signature: {length: 1, time: -1}
    units:
      - name: MetersPerSecond
        ratio: 1 per canonical
  - name: Temperature
    canonical: Kelvin
    units:
      - name: Kelvin
        ratio: 1 per canonical
      - name: Celsius
        affine: {offset: 273.15}
      - name: Fahrenheit
        affine: {offset: 459.67, scale: 5/9}
`

const childSchema = `
package: rate
imports:
  - path: example.com/units
    schema: units.yaml
dimensions:
  - name: Information
    canonical: Bytes
    units:
      - name: Bytes
        ratio: 1 per canonical
    operations:
      - Self / Time => DataRate in BytesPerSecond
  - name: DataRate
    canonical: BytesPerSecond
    units:
      - name: BytesPerSecond
        ratio: 1 per canonical
units:
  - name: HalfInches
    dimension: Length
    of: Inches
    factor: 0.5
operations:
  - Time * DataRate => Information in Bytes
`

func resolve(t *testing.T, src string, imports ...*schema.File) *plan.Catalog {
	t.Helper()

	f, err := schema.Parse([]byte(src))
	require.NoError(t, err)

	for i, imp := range imports {
		f.Imports[i].File = imp
	}

	cat, err := plan.Resolve(f)
	require.NoError(t, err, spew.Sdump(cat.Diagnostics))

	return cat
}

func generate(t *testing.T, config GeneratorConfig, cat *plan.Catalog) map[string]string {
	t.Helper()

	files, err := NewGenerator(config).Generate(cat)
	require.NoError(t, err)

	res := make(map[string]string, len(files))

	for _, f := range files {
		_, err := parser.ParseFile(token.NewFileSet(), f.Filename, f.Content, parser.ParseComments)
		require.NoError(t, err, f.Filename)

		formatted, err := format.Source(f.Content)
		require.NoError(t, err)
		assert.Equal(t, string(formatted), string(f.Content), "%s is not gofmt-clean", f.Filename)

		res[f.Filename] = string(f.Content)
	}

	return res
}

// assertCode checks that content holds want, treating every whitespace run
// as a single blank so that gofmt alignment and line wrapping do not matter.
func assertCode(t *testing.T, content, want string) {
	t.Helper()

	squash := func(s string) string { return strings.Join(strings.Fields(s), " ") }

	assert.Contains(t, squash(content), squash(want))
}

func baseConfig() GeneratorConfig {
	config := DefaultGeneratorConfig()
	config.ImportPath = "example.com/units"
	config.SchemaName = "units.yaml"

	return config
}

func TestGenerator_Base(t *testing.T) {
	t.Parallel()

	files := generate(t, baseConfig(), resolve(t, baseSchema))

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}

	assert.ElementsMatch(t,
		[]string{"length.go", "time.go", "linear_velocity.go", "temperature.go", "registry.go"}, names)

	length := files["length.go"]

	for _, want := range []string{
		"// Code generated by quantity-generator from units.yaml. DO NOT EDIT.",
		"package units",
		`"quantity-generator/quantity"`,
		"type LengthDim struct{}",
		`func (LengthDim) Canonical() string { return "Meters" }`,
		"// Length represents a distance.\n// Values are stored in Meters.\ntype Length[S quantity.Scalar] struct {",
		"func NewLength[S quantity.Scalar](v S, u quantity.Unit[LengthDim]) Length[S] {",
		"func LengthOne[S quantity.Scalar](u quantity.LinearUnit[LengthDim]) Length[S] {",
		"func (q *Length[S]) AddAssign(r Length[S]) { q.v += r.v }",
		"func (q Length[S]) Cmp(r Length[S]) int { return cmp.Compare(q.v, r.v) }",
		"func (q Length[S]) DivTime(r Time[S]) LinearVelocity[S] {\n" +
			"\treturn LinearVelocityFromCanonical(quantity.Quotient(q.v, r.Canonical(), MetersPerSecond{}))\n}",
		"func (Centimeters) Factor() float64 { return 1.0 / 100 }",
		"func (Centimeters) ToCanonical(v float64) float64 { return v / 100 }",
		"func (Inches) FromCanonical(v float64) float64 { return v / 0.0254 }",
		"// Hands is a unit of Length worth 4 Inches.",
		"func (Hands) Factor() float64 { return 4 * Inches{}.Factor() }",
		"func (Meters) ToCanonical(v float64) float64 { return v }",
	} {
		assertCode(t, length, want)
	}

	temperature := files["temperature.go"]
	assertCode(t, temperature, "// Fahrenheit is an affine unit of Temperature.")
	assertCode(t, temperature, "func (Fahrenheit) ToCanonical(v float64) float64 { return (v + 459.67) * (5.0 / 9) }")
	assertCode(t, temperature, "func (Fahrenheit) FromCanonical(v float64) float64 { return v/(5.0/9) - 459.67 }")
	assertCode(t, temperature, "func (Celsius) ToCanonical(v float64) float64 { return v + 273.15 }")
	assert.NotContains(t, temperature, "func (Celsius) Factor()")

	registry := files["registry.go"]
	assertCode(t, registry, `r.Include("example.com/units", func(r *quantity.Registry) {`)
	assertCode(t, registry, "r.MustAddDimension(TemperatureDim{})")
	assertCode(t, registry, "quantity.MustRegister[LengthDim](r, Hands{})")
	assertCode(t, registry,
		`r.MustAddEdge(quantity.Edge{Left: "Length", Op: quantity.OpDiv, Right: "Time", Output: "LinearVelocity", Unit: "MetersPerSecond"})`)
	assertCode(t, registry, "var Registry = sync.OnceValue(func() *quantity.Registry {")
}

func TestGenerator_Imports(t *testing.T) {
	t.Parallel()

	base, err := schema.Parse([]byte(baseSchema))
	require.NoError(t, err)

	config := DefaultGeneratorConfig()
	config.ImportPath = "example.com/rate"

	files := generate(t, config, resolve(t, childSchema, base))

	require.Contains(t, files, "length_units.go")
	require.Contains(t, files, "operations.go")

	units := files["length_units.go"]
	assertCode(t, units, "// Code generated by quantity-generator. DO NOT EDIT.")
	assertCode(t, units, "import (\n\t\"example.com/units\"\n)")
	assertCode(t, units, "func (HalfInches) Dimension() units.LengthDim { return units.LengthDim{} }")
	assertCode(t, units, "func (HalfInches) Factor() float64 { return 0.5 * units.Inches{}.Factor() }")
	assert.NotContains(t, units, "quantity-generator/quantity")

	ops := files["operations.go"]
	assertCode(t, ops, "func TimeMulDataRate[S quantity.Scalar](l units.Time[S], r DataRate[S]) Information[S] {")
	assertCode(t, ops, "quantity.Product(l.Canonical(), r.Canonical(), Bytes{})")

	info := files["information.go"]
	assertCode(t, info, "func (q Information[S]) DivTime(r units.Time[S]) DataRate[S] {")
	assertCode(t, info, `"example.com/units"`)

	registry := files["registry.go"]
	assertCode(t, registry, "\t\tunits.Register(r)\n\n\t\tr.MustAddDimension(InformationDim{})")
	assertCode(t, registry, "quantity.MustRegister[units.LengthDim](r, HalfInches{})")
}

func TestGenerator_WithoutComments(t *testing.T) {
	t.Parallel()

	config := baseConfig()
	config.GenerateComments = false

	files := generate(t, config, resolve(t, baseSchema))

	for name, content := range files {
		body := strings.SplitN(content, "\n", 2)[1]
		assert.NotContains(t, body, "//", name)
	}
}

func TestGenerator_PackageName(t *testing.T) {
	t.Parallel()

	cat := resolve(t, baseSchema)
	cat.Package = ""

	config := baseConfig()
	config.PackageName = "physics"

	files := generate(t, config, cat)
	assert.Contains(t, files["time.go"], "package physics")
}

func TestGenerator_Errors(t *testing.T) {
	t.Parallel()

	g := NewGenerator(DefaultGeneratorConfig())

	_, err := g.Generate(nil)
	require.Error(t, err)

	cat := resolve(t, baseSchema)
	cat.Diagnostics.AddError("unknown_unit", "unit Parsecs is not declared", "Length", "Parsecs")

	_, err = g.Generate(cat)
	require.ErrorContains(t, err, "catalog has errors")
	assert.ErrorContains(t, err, "unit Parsecs is not declared")
}
