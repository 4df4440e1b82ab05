package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lengthSchema = `
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
  - name: Temperature
    canonical: Kelvin
    units:
      - name: Kelvin
        ratio: 1 per canonical
      - name: Fahrenheit
        affine: {offset: 459.67, scale: 5/9}
      - name: Celsius
        affine: {offset: 273.15}
units:
  - name: HalfInches
    dimension: Length
    of: Inches
    factor: 1/2
operations:
  - Time * LinearVelocity => Length in Meters
`

func TestParse(t *testing.T) {
	t.Parallel()

	f, err := Parse([]byte(lengthSchema))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "units", f.Package)
	require.Len(t, f.Dimensions, 2)

	length, ok := f.Dimension("Length")
	require.True(t, ok)
	assert.Equal(t, "Meters", length.Canonical)
	assert.Equal(t, map[string]int{"length": 1}, length.Signature)
	require.Len(t, length.Units, 4)

	assert.Equal(t, KindRatio, length.Units[0].Kind())
	assert.Equal(t, UnitsPerCanonical, length.Units[1].Ratio.Form)
	assert.Equal(t, CanonicalPerUnit, length.Units[2].Ratio.Form)

	hands := length.Units[3]
	assert.Equal(t, KindDerived, hands.Kind())
	assert.Equal(t, "Inches", hands.Of)
	assert.InDelta(t, 4, hands.Factor.Value, 0)

	require.Len(t, length.Operations, 1)
	assert.True(t, length.Operations[0].IsSelf())

	temp, ok := f.Dimension("Temperature")
	require.True(t, ok)
	assert.Nil(t, temp.Signature)

	fahrenheit := temp.Units[1]
	assert.Equal(t, KindAffine, fahrenheit.Kind())
	assert.InDelta(t, 459.67, fahrenheit.Affine.Offset.Value, 0)
	assert.Equal(t, "(5.0 / 9)", fahrenheit.Affine.Scale.Expr)

	// scale defaults to 1
	assert.Equal(t, "1", temp.Units[2].Affine.Scale.Text)

	require.Len(t, f.Units, 1)
	assert.Equal(t, "Length", f.Units[0].Dimension)
	assert.InDelta(t, 0.5, f.Units[0].Factor.Value, 0)

	require.Len(t, f.Operations, 1)
	assert.Equal(t, "Time", f.Operations[0].Left)

	_, ok = f.Dimension("Mass")
	assert.False(t, ok)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"bad ratio", "dimensions:\n  - name: Length\n    units:\n      - name: Feet\n        ratio: 3 per feet\n"},
		{"bad factor", "units:\n  - name: Hands\n    of: Inches\n    factor: four\n"},
		{"bad operation", "operations:\n  - Time plus Length\n"},
		{"not yaml", "dimensions: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestUnitDef_Kind(t *testing.T) {
	t.Parallel()

	ratio := MustNumber("2")

	assert.Equal(t, KindNone, (&UnitDef{Name: "Feet"}).Kind())
	assert.Equal(t, KindAmbiguous, (&UnitDef{
		Ratio:  Ratio{Form: UnitsPerCanonical, Value: ratio},
		Affine: &Affine{Offset: ratio},
	}).Kind())
	assert.Equal(t, KindDerived, (&UnitDef{Factor: ratio}).Kind())
	assert.Equal(t, "ambiguous", KindAmbiguous.String())
	assert.Equal(t, "unknown", UnitKind(99).String())
}

func TestMarshal_RoundTrip(t *testing.T) {
	t.Parallel()

	f, err := Parse([]byte(lengthSchema))
	require.NoError(t, err)

	data, err := Marshal(f)
	require.NoError(t, err)

	assert.Contains(t, string(data), "ratio: per 0.0254 canonical")
	assert.Contains(t, string(data), "scale: 5/9")

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, f, again)
}

func TestLoadFile_Imports(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "units"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "rate"), 0o755))

	base := filepath.Join(dir, "units", "dimensions.yaml")
	require.NoError(t, os.WriteFile(base, []byte(lengthSchema), 0o644))

	child := filepath.Join(dir, "rate", "rate.yaml")
	require.NoError(t, os.WriteFile(child, []byte(`
package: rate
imports:
  - path: example.com/units
    schema: ../units/dimensions.yaml
dimensions:
  - name: Information
    canonical: Bytes
    units:
      - name: Bytes
        ratio: 1 per canonical
`), 0o644))

	f, err := LoadFile(child)
	require.NoError(t, err)
	assert.Equal(t, child, f.Path)
	require.Len(t, f.Imports, 1)
	require.NotNil(t, f.Imports[0].File)
	assert.Equal(t, "units", f.Imports[0].File.Package)
	assert.Equal(t, filepath.Join(dir, "rate", "../units/dimensions.yaml"), f.Imports[0].File.Path)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read schema file")

	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "b.yaml")
	require.NoError(t, os.WriteFile(a, []byte("imports:\n  - path: b\n    schema: b.yaml\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("imports:\n  - path: a\n    schema: a.yaml\n"), 0o644))

	_, err = LoadFile(a)
	assert.ErrorContains(t, err, "import cycle")

	c := filepath.Join(dir, "c.yaml")
	require.NoError(t, os.WriteFile(c, []byte("imports:\n  - path: example.com/x\n"), 0o644))

	_, err = LoadFile(c)
	assert.ErrorContains(t, err, "has no schema file")
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	f, err := Parse([]byte(lengthSchema))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteFile(f, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f.Dimensions, loaded.Dimensions)
}
