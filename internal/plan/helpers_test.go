package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

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
    operations:
      - Self * Time => Length in Meters
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

func parseBase(t *testing.T) *schema.File {
	t.Helper()

	f, err := schema.Parse([]byte(baseSchema))
	require.NoError(t, err)

	return f
}

func mustRatio(t *testing.T, s string) schema.Ratio {
	t.Helper()

	r, err := schema.ParseRatio(s)
	require.NoError(t, err)

	return r
}

func mustOp(t *testing.T, s string) schema.OperationDef {
	t.Helper()

	op, err := schema.ParseOperation(s)
	require.NoError(t, err)

	return op
}

func childSchema(t *testing.T) *schema.File {
	t.Helper()

	return &schema.File{
		Package: "rate",
		Imports: []schema.Import{{Path: "example.com/units", File: parseBase(t)}},
		Dimensions: []schema.DimensionDef{
			{
				Name:      "Information",
				Canonical: "Bytes",
				Signature: map[string]int{"information": 1},
				Units: []schema.UnitDef{
					{Name: "Bytes", Ratio: mustRatio(t, "1 per canonical")},
					{Name: "Kilobytes", Ratio: mustRatio(t, "per 1000 canonical")},
				},
				Operations: []schema.OperationDef{mustOp(t, "Self / Time => DataRate in BytesPerSecond")},
			},
			{
				Name:      "DataRate",
				Canonical: "BytesPerSecond",
				Signature: map[string]int{"information": 1, "time": -1},
				Units: []schema.UnitDef{
					{Name: "BytesPerSecond", Ratio: mustRatio(t, "1 per canonical")},
				},
				Operations: []schema.OperationDef{mustOp(t, "Self * Time => Information in Bytes")},
			},
		},
		Units: []schema.UnitDef{
			{Name: "HalfInches", Dimension: "Length", Of: "Inches", Factor: schema.MustNumber("0.5")},
		},
		Operations: []schema.OperationDef{mustOp(t, "Time * DataRate => Information in Bytes")},
	}
}
