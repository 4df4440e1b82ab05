package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	unitsPkg    = "quantity-generator/units"
	dataRatePkg = "quantity-generator/examples/datarate"
)

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer := NewAnalyzer()
	report, err := analyzer.LoadPackages(unitsPkg, dataRatePkg)
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, []string{dataRatePkg, unitsPkg}, report.Packages)

	length := TypeID{PkgPath: unitsPkg, Name: "LengthDim"}
	require.Contains(t, report.Dimensions, length)
	assert.Equal(t, "Length", report.Dimensions[length].Name)
	assert.Equal(t, TypeID{PkgPath: unitsPkg, Name: "Length"}, report.Dimensions[length].Storage)

	assert.Contains(t, report.Dimensions, TypeID{PkgPath: dataRatePkg, Name: "InformationDim"})
	assert.Len(t, report.Dimensions, 20)
}

func TestAnalyzer_GeneratedUnits(t *testing.T) {
	analyzer := NewAnalyzer()
	report, err := analyzer.LoadPackages(unitsPkg)
	require.NoError(t, err)

	feet, ok := report.Unit(unitsPkg, "Feet")
	require.True(t, ok)
	assert.Equal(t, TypeID{PkgPath: unitsPkg, Name: "LengthDim"}, feet.Dimension)
	assert.Equal(t, "Length", feet.DimensionName())
	assert.True(t, feet.Linear)
	assert.True(t, feet.Generated)
	assert.Equal(t, "units.Feet (Length, linear, generated)", feet.String())
	assert.Contains(t, feet.Position.Filename, "length.go")

	celsius, ok := report.Unit(unitsPkg, "Celsius")
	require.True(t, ok)
	assert.False(t, celsius.Linear)

	// markers and storage types are not units
	_, ok = report.Unit(unitsPkg, "LengthDim")
	assert.False(t, ok)
	_, ok = report.Unit(unitsPkg, "Length")
	assert.False(t, ok)
}

func TestAnalyzer_CustomUnits(t *testing.T) {
	analyzer := NewAnalyzer()
	report, err := analyzer.LoadPackages(dataRatePkg)
	require.NoError(t, err)

	furlongs, ok := report.Unit(dataRatePkg, "Furlongs")
	require.True(t, ok)
	assert.False(t, furlongs.Generated)
	assert.Equal(t, TypeID{PkgPath: unitsPkg, Name: "LengthDim"}, furlongs.Dimension)

	// the units package was not loaded, so its marker is synthesized
	length := report.Dimensions[furlongs.Dimension]
	require.NotNil(t, length)
	assert.Equal(t, "Length", length.Name)
	assert.Empty(t, length.Storage.Name)
	assert.Contains(t, length.Units, furlongs.ID)

	nibbles, ok := report.Unit(dataRatePkg, "Nibbles")
	require.True(t, ok)
	assert.Equal(t, "Information", nibbles.DimensionName())

	info := report.Dimensions[TypeID{PkgPath: dataRatePkg, Name: "InformationDim"}]
	require.NotNil(t, info)
	assert.Contains(t, info.Units, nibbles.ID)
	assert.Contains(t, info.Units, TypeID{PkgPath: dataRatePkg, Name: "Bytes"})
}

func TestAnalyzer_SortedUnits(t *testing.T) {
	report := NewReport()
	report.Units[TypeID{PkgPath: "b", Name: "Feet"}] = &UnitInfo{
		ID: TypeID{PkgPath: "b", Name: "Feet"}, Dimension: TypeID{PkgPath: "a", Name: "LengthDim"},
	}
	report.Units[TypeID{PkgPath: "a", Name: "Meters"}] = &UnitInfo{
		ID: TypeID{PkgPath: "a", Name: "Meters"}, Dimension: TypeID{PkgPath: "a", Name: "LengthDim"},
	}
	report.Units[TypeID{PkgPath: "a", Name: "Seconds"}] = &UnitInfo{
		ID: TypeID{PkgPath: "a", Name: "Seconds"}, Dimension: TypeID{PkgPath: "a", Name: "TimeDim"},
	}

	var names []string
	for _, u := range report.SortedUnits() {
		names = append(names, u.ID.String())
	}

	assert.Equal(t, []string{"a.Meters", "b.Feet", "a.Seconds"}, names)
}

func TestAnalyzer_Check(t *testing.T) {
	analyzer := NewAnalyzer()
	require.NoError(t, analyzer.Check(unitsPkg))

	err := analyzer.Check("quantity-generator/does/not/exist")
	assert.Error(t, err)
}

func TestTrimMarker(t *testing.T) {
	name, ok := trimMarker("LengthDim")
	assert.True(t, ok)
	assert.Equal(t, "Length", name)

	_, ok = trimMarker("Dim")
	assert.False(t, ok)

	_, ok = trimMarker("Meters")
	assert.False(t, ok)
}
