package analyze

import (
	"cmp"
	"fmt"
	"go/token"
	"slices"
	"strings"

	"quantity-generator/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "quantity-generator/units"
	Name    string // e.g., "Feet"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Short returns the package-qualified name as written in code, e.g. "units.Feet".
func (t TypeID) Short() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return common.PkgAlias(t.PkgPath) + "." + t.Name
}

func compareIDs(a, b TypeID) int {
	return cmp.Or(cmp.Compare(a.PkgPath, b.PkgPath), cmp.Compare(a.Name, b.Name))
}

// UnitInfo describes a discovered unit type.
type UnitInfo struct {
	ID TypeID
	// Dimension is the marker type returned by the unit's Dimension method.
	Dimension TypeID
	// Linear is true when the unit has a Factor method.
	Linear bool
	// Generated is true when the unit is declared in a generated file.
	Generated bool
	Position  token.Position
}

// DimensionName is the marker name without its "Dim" suffix.
func (u *UnitInfo) DimensionName() string {
	return strings.TrimSuffix(u.Dimension.Name, markerSuffix)
}

// Kind is "linear" or "affine".
func (u *UnitInfo) Kind() string {
	if u.Linear {
		return "linear"
	}

	return "affine"
}

// Origin is "generated" or "custom".
func (u *UnitInfo) Origin() string {
	if u.Generated {
		return "generated"
	}

	return "custom"
}

func (u *UnitInfo) String() string {
	return fmt.Sprintf("%s (%s, %s, %s)", u.ID.Short(), u.DimensionName(), u.Kind(), u.Origin())
}

// DimensionInfo describes a discovered dimension marker.
type DimensionInfo struct {
	ID   TypeID
	Name string
	// Storage is the generic value type of the dimension; its Name is empty
	// when the package declares none.
	Storage TypeID
	// Units of this dimension found in any loaded package, sorted.
	Units []TypeID
}

// Report holds everything discovered in the loaded packages.
type Report struct {
	// Packages are the import paths of the loaded packages, sorted.
	Packages   []string
	Dimensions map[TypeID]*DimensionInfo
	Units      map[TypeID]*UnitInfo
}

// NewReport creates a new empty Report.
func NewReport() *Report {
	return &Report{
		Dimensions: make(map[TypeID]*DimensionInfo),
		Units:      make(map[TypeID]*UnitInfo),
	}
}

// SortedUnits returns all units ordered by dimension, then by package and name.
func (r *Report) SortedUnits() []*UnitInfo {
	res := make([]*UnitInfo, 0, len(r.Units))
	for _, u := range r.Units {
		res = append(res, u)
	}

	slices.SortFunc(res, func(a, b *UnitInfo) int {
		return cmp.Or(compareIDs(a.Dimension, b.Dimension), compareIDs(a.ID, b.ID))
	})

	return res
}

// SortedDimensions returns all dimension markers ordered by package and name.
func (r *Report) SortedDimensions() []*DimensionInfo {
	res := make([]*DimensionInfo, 0, len(r.Dimensions))
	for _, d := range r.Dimensions {
		res = append(res, d)
	}

	slices.SortFunc(res, func(a, b *DimensionInfo) int { return compareIDs(a.ID, b.ID) })

	return res
}

// Unit looks up a unit by package path and name.
func (r *Report) Unit(pkgPath, name string) (*UnitInfo, bool) {
	u, ok := r.Units[TypeID{PkgPath: pkgPath, Name: name}]
	return u, ok
}
