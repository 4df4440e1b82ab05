package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"
	"k8s.io/klog/v2"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

const markerSuffix = "Dim"

// Analyzer loads Go packages and discovers units in them.
type Analyzer struct {
	// Dir is the directory packages are resolved from; empty means the
	// current directory.
	Dir    string
	report *Report
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{report: NewReport()}
}

func (a *Analyzer) load(patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	})

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	return pkgs, nil
}

// LoadPackages loads the specified packages and records the dimensions and
// units they declare. Patterns are standard Go package patterns
// (e.g., "./units", "quantity-generator/examples/...").
func (a *Analyzer) LoadPackages(patterns ...string) (*Report, error) {
	pkgs, err := a.load(patterns)
	if err != nil {
		return nil, err
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	a.link()

	return a.report, nil
}

// Check type-checks the specified packages, including their dependencies,
// and returns every error found.
func (a *Analyzer) Check(patterns ...string) error {
	pkgs, err := a.load(patterns)
	if err != nil {
		return err
	}

	klog.V(2).InfoS("Type-checked packages", "patterns", patterns, "packages", len(pkgs))

	return nil
}

// Report returns the current report.
func (a *Analyzer) Report() *Report {
	return a.report
}

// processPackage extracts markers and units from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	if !slices.Contains(a.report.Packages, pkg.PkgPath) {
		a.report.Packages = append(a.report.Packages, pkg.PkgPath)
		slices.Sort(a.report.Packages)
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok || named.TypeParams().Len() > 0 {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}

		if isMarker(named) {
			a.addDimension(id, scope)
			continue
		}

		marker, linear, ok := unitShape(named)
		if !ok {
			continue
		}

		a.report.Units[id] = &UnitInfo{
			ID:        id,
			Dimension: marker,
			Linear:    linear,
			Generated: generatedFile(pkg, typeName),
			Position:  pkg.Fset.Position(typeName.Pos()),
		}

		klog.V(4).InfoS("Found unit", "unit", id, "dimension", marker)
	}
}

func (a *Analyzer) addDimension(id TypeID, scope *types.Scope) {
	d := &DimensionInfo{ID: id, Name: id.Name}

	if name, ok := trimMarker(id.Name); ok {
		d.Name = name

		if obj, ok := scope.Lookup(name).(*types.TypeName); ok {
			if named, ok := obj.Type().(*types.Named); ok && named.TypeParams().Len() == 1 {
				d.Storage = TypeID{PkgPath: id.PkgPath, Name: name}
			}
		}
	}

	a.report.Dimensions[id] = d
}

// link attaches every unit to its dimension marker.
func (a *Analyzer) link() {
	for _, d := range a.report.Dimensions {
		d.Units = d.Units[:0]
	}

	for _, u := range a.report.SortedUnits() {
		d, ok := a.report.Dimensions[u.Dimension]
		if !ok {
			// the marker lives in a package that was not loaded
			name, _ := trimMarker(u.Dimension.Name)
			d = &DimensionInfo{ID: u.Dimension, Name: name}
			a.report.Dimensions[u.Dimension] = d
		}

		d.Units = append(d.Units, u.ID)
	}
}

func trimMarker(name string) (string, bool) {
	trimmed, ok := strings.CutSuffix(name, markerSuffix)
	if !ok || trimmed == "" {
		return name, false
	}

	return trimmed, true
}

// isMarker reports whether t has Name() string and Canonical() string.
func isMarker(t types.Type) bool {
	ms := types.NewMethodSet(t)

	return matches(method(ms, "Name"), nil, types.String) &&
		matches(method(ms, "Canonical"), nil, types.String)
}

// unitShape reports whether t has the unit method set and returns its
// dimension marker.
func unitShape(t types.Type) (TypeID, bool, bool) {
	ms := types.NewMethodSet(t)

	dim := method(ms, "Dimension")
	if dim == nil || dim.Params().Len() != 0 || dim.Results().Len() != 1 {
		return TypeID{}, false, false
	}

	marker, ok := types.Unalias(dim.Results().At(0).Type()).(*types.Named)
	if !ok || !isMarker(marker) || marker.Obj().Pkg() == nil {
		return TypeID{}, false, false
	}

	float := []types.BasicKind{types.Float64}

	if !matches(method(ms, "Name"), nil, types.String) ||
		!matches(method(ms, "ToCanonical"), float, types.Float64) ||
		!matches(method(ms, "FromCanonical"), float, types.Float64) {
		return TypeID{}, false, false
	}

	id := TypeID{PkgPath: marker.Obj().Pkg().Path(), Name: marker.Obj().Name()}

	return id, matches(method(ms, "Factor"), nil, types.Float64), true
}

func method(ms *types.MethodSet, name string) *types.Signature {
	sel := ms.Lookup(nil, name)
	if sel == nil {
		return nil
	}

	sig, _ := sel.Type().(*types.Signature)

	return sig
}

// matches reports whether sig takes params and returns a single result,
// all of them basic types of the given kinds.
func matches(sig *types.Signature, params []types.BasicKind, result types.BasicKind) bool {
	if sig == nil || sig.Params().Len() != len(params) || sig.Results().Len() != 1 {
		return false
	}

	for i, kind := range params {
		if !isBasic(sig.Params().At(i).Type(), kind) {
			return false
		}
	}

	return isBasic(sig.Results().At(0).Type(), result)
}

func isBasic(t types.Type, kind types.BasicKind) bool {
	b, ok := types.Unalias(t).(*types.Basic)
	return ok && b.Kind() == kind
}

// generatedFile reports whether obj is declared in a generated file.
func generatedFile(pkg *packages.Package, obj types.Object) bool {
	for _, f := range pkg.Syntax {
		if f.FileStart <= obj.Pos() && obj.Pos() < f.FileEnd {
			return ast.IsGenerated(f)
		}
	}

	return false
}
