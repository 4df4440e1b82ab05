package plan

import (
	"errors"
	"fmt"
	"go/token"
	"slices"
	"strings"

	"quantity-generator/internal/common"
	"quantity-generator/internal/diagnostic"
	"quantity-generator/internal/match"
	"quantity-generator/internal/schema"
	"quantity-generator/quantity"
)

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	// MaxSuggestions is the maximum number of "did you mean" candidates.
	MaxSuggestions int
	// StrictMode fails resolution on warnings as well as errors.
	StrictMode bool
	// ReportMissingInverse emits an info for every edge nothing undoes.
	ReportMissingInverse bool
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{
		MaxSuggestions:       3,
		StrictMode:           false,
		ReportMissingInverse: true,
	}
}

type edgeKey struct {
	left  string
	op    quantity.Operator
	right string
}

// Resolver performs the resolution pipeline.
type Resolver struct {
	file   *schema.File
	config ResolutionConfig

	cat     *Catalog
	dimDefs map[*Dimension]*schema.DimensionDef
	// edges holds every edge known to the catalog, imported ones included.
	edges map[edgeKey]string
}

// NewResolver creates a new Resolver.
func NewResolver(file *schema.File, config ResolutionConfig) *Resolver {
	return &Resolver{
		file:    file,
		config:  config,
		dimDefs: make(map[*Dimension]*schema.DimensionDef),
		edges:   make(map[edgeKey]string),
	}
}

// Resolve is a shortcut for NewResolver(file, DefaultConfig()).Resolve().
func Resolve(file *schema.File) (*Catalog, error) {
	return NewResolver(file, DefaultConfig()).Resolve()
}

// Resolve runs the full resolution pipeline. The catalog is returned even
// when resolution fails so that callers can print its diagnostics.
func (r *Resolver) Resolve() (*Catalog, error) {
	if r.file == nil {
		return nil, errors.New("schema file is required")
	}

	r.cat = &Catalog{
		Package:    r.file.Package,
		dimensions: make(map[string]*Dimension),
		units:      make(map[string]*Unit),
	}

	if r.cat.Package != "" && !token.IsIdentifier(r.cat.Package) {
		r.diags().AddError("invalid_name",
			fmt.Sprintf("package name %q is not a Go identifier", r.cat.Package), "", "")
	}

	r.resolveImports()
	r.declareDimensions()
	r.declareUnits()
	r.resolveDerivedUnits()
	r.resolveCanonicals()
	r.resolveOperations()
	r.checkInverses()
	r.checkNames()

	if r.cat.Diagnostics.HasErrors() {
		return r.cat, r.cat.Diagnostics.Error()
	}

	if r.config.StrictMode && len(r.cat.Diagnostics.Warnings) > 0 {
		return r.cat, fmt.Errorf("strict mode: resolution produced %d warnings", len(r.cat.Diagnostics.Warnings))
	}

	return r.cat, nil
}

func (r *Resolver) diags() *diagnostic.Diagnostics {
	return &r.cat.Diagnostics
}

func (r *Resolver) suggest(name string, candidates []string) []string {
	return match.Suggest(name, candidates, r.config.MaxSuggestions)
}

func (r *Resolver) resolveImports() {
	for i := range r.file.Imports {
		def := &r.file.Imports[i]
		if def.File == nil {
			r.diags().AddError("unresolved_import",
				fmt.Sprintf("import %s was not loaded", def.Path), "", def.Path)

			continue
		}

		sub, err := NewResolver(def.File, r.config).Resolve()
		if err != nil {
			r.diags().AddError("invalid_import", fmt.Sprintf("import %s: %v", def.Path, err), "", def.Path)
			continue
		}

		alias := sub.Package
		if alias == "" {
			alias = common.PkgAlias(def.Path)
		}

		if slices.ContainsFunc(r.cat.Imports, func(imp *Import) bool { return imp.Alias == alias }) {
			r.diags().AddError("duplicate_import",
				fmt.Sprintf("import %s reuses package name %s", def.Path, alias), "", def.Path)

			continue
		}

		imp := &Import{Path: def.Path, Alias: alias, Catalog: sub}
		r.cat.Imports = append(r.cat.Imports, imp)

		for _, d := range sub.Dimensions {
			r.importDimension(imp, d)
		}

		for _, op := range sub.AllOperations() {
			r.edges[edgeKey{op.Left.Name, op.Op, op.Right.Name}] = op.String()
		}
	}
}

func (r *Resolver) importDimension(imp *Import, src *Dimension) {
	if prev, ok := r.cat.dimensions[src.Name]; ok {
		r.diags().AddError("duplicate_dimension",
			fmt.Sprintf("dimension %s is imported from both %s and %s", src.Name, prev.Import.Path, imp.Path),
			src.Name, "")

		return
	}

	d := &Dimension{
		Name:      src.Name,
		Doc:       src.Doc,
		Signature: src.Signature,
		Import:    imp,
	}

	for _, su := range src.Units {
		if !su.Local() {
			continue
		}

		u := *su
		u.Dimension = d
		u.Import = imp

		if _, ok := r.cat.units[u.Name]; ok {
			r.diags().AddError("duplicate_unit",
				fmt.Sprintf("unit %s is imported more than once", u.Name), d.Name, u.Name)

			continue
		}

		r.cat.units[u.Name] = &u
		d.Units = append(d.Units, &u)

		if su.IsCanonical() {
			d.Canonical = &u
		}
	}

	r.cat.dimensions[d.Name] = d
}

func (r *Resolver) declareDimensions() {
	for i := range r.file.Dimensions {
		def := &r.file.Dimensions[i]

		if !isExportedIdent(def.Name) {
			r.diags().AddError("invalid_name",
				fmt.Sprintf("dimension name %q is not an exported Go identifier", def.Name), def.Name, "")

			continue
		}

		if prev, ok := r.cat.dimensions[def.Name]; ok {
			msg := fmt.Sprintf("dimension %s is declared twice", def.Name)
			if !prev.Local() {
				msg = fmt.Sprintf("dimension %s is already imported from %s", def.Name, prev.Import.Path)
			}

			r.diags().AddError("duplicate_dimension", msg, def.Name, "")

			continue
		}

		d := &Dimension{
			Name:      def.Name,
			Doc:       def.Doc,
			Signature: NewSignature(def.Signature),
		}

		r.cat.dimensions[d.Name] = d
		r.cat.Dimensions = append(r.cat.Dimensions, d)
		r.dimDefs[d] = def
	}
}

func (r *Resolver) declareUnits() {
	for _, d := range r.cat.Dimensions {
		def := r.dimDefs[d]
		for i := range def.Units {
			if def.Units[i].Dimension != "" && def.Units[i].Dimension != d.Name {
				r.diags().AddWarning("ignored_dimension",
					fmt.Sprintf("unit declared under %s names dimension %s; the enclosing dimension wins",
						d.Name, def.Units[i].Dimension), d.Name, def.Units[i].Name)
			}

			r.declareUnit(&def.Units[i], d)
		}
	}

	for i := range r.file.Units {
		def := &r.file.Units[i]
		if def.Dimension == "" {
			r.diags().AddError("unknown_dimension",
				fmt.Sprintf("standalone unit %s must name its dimension", def.Name), "", def.Name)

			continue
		}

		d, ok := r.lookupDimension(def.Dimension, "", def.Name)
		if !ok {
			continue
		}

		r.declareUnit(def, d)
	}
}

func (r *Resolver) declareUnit(def *schema.UnitDef, d *Dimension) {
	if !isExportedIdent(def.Name) {
		r.diags().AddError("invalid_name",
			fmt.Sprintf("unit name %q is not an exported Go identifier", def.Name), d.Name, def.Name)

		return
	}

	if prev, ok := r.cat.units[def.Name]; ok {
		r.diags().AddError("duplicate_unit",
			fmt.Sprintf("unit %s is already declared for %s", def.Name, prev.Dimension.Name), d.Name, def.Name)

		return
	}

	u := &Unit{
		Name:      def.Name,
		Doc:       def.Doc,
		Dimension: d,
		Kind:      def.Kind(),
		def:       def,
	}

	switch u.Kind {
	case schema.KindRatio:
		r.linearUnit(u)
	case schema.KindAffine:
		r.affineUnit(u)
	case schema.KindDerived:
		// computed once every unit is declared
	default:
		r.diags().AddError("invalid_ratio",
			fmt.Sprintf("unit %s must declare exactly one of ratio, of/factor or affine (has %s)", u.Name, u.Kind),
			d.Name, u.Name)
	}

	r.cat.units[u.Name] = u
	r.cat.Units = append(r.cat.Units, u)
	d.Units = append(d.Units, u)
}

// checkPositive reports a zero or negative number and returns false.
func (r *Resolver) checkPositive(n schema.Number, what string, u *Unit) bool {
	switch {
	case n.Value == 0:
		r.diags().AddError("zero_ratio", fmt.Sprintf("%s of %s is zero", what, u.Name), u.Dimension.Name, u.Name)
		return false
	case n.Value < 0:
		r.diags().AddError("invalid_ratio",
			fmt.Sprintf("%s of %s must be positive, got %s", what, u.Name, n.Text), u.Dimension.Name, u.Name)

		return false
	default:
		return true
	}
}

func (r *Resolver) linearUnit(u *Unit) {
	ratio := u.def.Ratio
	if !r.checkPositive(ratio.Value, "ratio", u) {
		return
	}

	u.Factor = ratio.Factor()

	expr := ratio.Value.Expr

	switch {
	case ratio.Value.Value == 1:
		u.FactorExpr, u.ToExpr, u.FromExpr = "1", "v", "v"
	case ratio.Form == schema.UnitsPerCanonical:
		u.FactorExpr, u.ToExpr, u.FromExpr = "1.0 / "+expr, "v / "+expr, "v * "+expr
	default:
		u.FactorExpr, u.ToExpr, u.FromExpr = expr, "v * "+expr, "v / "+expr
	}
}

func (r *Resolver) affineUnit(u *Unit) {
	a := u.def.Affine
	if !r.checkPositive(a.Scale, "affine scale", u) {
		return
	}

	plus, minus := offsetTerms(a.Offset)

	switch {
	case a.Scale.Value == 1:
		u.ToExpr, u.FromExpr = "v"+plus, "v"+minus
	case plus == "":
		u.ToExpr, u.FromExpr = "v * "+a.Scale.Expr, "v / "+a.Scale.Expr
	default:
		u.ToExpr = "(v" + plus + ") * " + a.Scale.Expr
		u.FromExpr = "v / " + a.Scale.Expr + minus
	}
}

// offsetTerms returns " + n" and " - n", with the sign folded in for
// negative literals. Both are empty for a zero offset.
func offsetTerms(n schema.Number) (plus, minus string) {
	if n.Value == 0 {
		return "", ""
	}

	if abs, ok := strings.CutPrefix(n.Expr, "-"); ok {
		return " - " + abs, " + " + abs
	}

	return " + " + n.Expr, " - " + n.Expr
}

func (r *Resolver) resolveDerivedUnits() {
	var derived []*Unit

	for _, u := range r.cat.Units {
		if u.Kind == schema.KindDerived {
			derived = append(derived, u)
		}
	}

	bases := make([]*Unit, len(derived))

	for i, u := range derived {
		bases[i] = r.derivedBase(u)
	}

	order, stuck, err := topoSort(len(derived), func(i int) []int {
		if bases[i] == nil {
			return nil
		}

		if j := slices.Index(derived, bases[i]); j >= 0 {
			return []int{j}
		}

		return nil
	})
	if err != nil {
		names := make([]string, 0, len(stuck))
		for _, i := range stuck {
			names = append(names, derived[i].Name)
		}

		r.diags().AddError("derived_cycle",
			"derived units form a cycle: "+strings.Join(names, ", "), "", strings.Join(names, ", "))
	}

	for _, i := range order {
		u, base := derived[i], bases[i]
		if base == nil || base.Factor == 0 {
			continue
		}

		f := u.def.Factor
		u.Of = base
		u.OfFactor = f
		u.Factor = f.Value * base.Factor
		u.FactorExpr = f.Expr + " * " + base.Ref() + "{}.Factor()"
		u.ToExpr = "v * (" + u.FactorExpr + ")"
		u.FromExpr = "v / (" + u.FactorExpr + ")"
	}
}

// derivedBase validates the of/factor pair of u and returns its base unit,
// or nil after reporting why there is none.
func (r *Resolver) derivedBase(u *Unit) *Unit {
	def := u.def
	dim := u.Dimension.Name

	if def.Of == "" {
		r.diags().AddError("invalid_ratio", fmt.Sprintf("unit %s declares a factor but no of", u.Name), dim, u.Name)
		return nil
	}

	if def.Factor.IsZero() {
		r.diags().AddError("invalid_ratio",
			fmt.Sprintf("unit %s is of %s but declares no factor", u.Name, def.Of), dim, u.Name)

		return nil
	}

	if !r.checkPositive(def.Factor, "factor", u) {
		return nil
	}

	base, ok := r.cat.units[def.Of]
	if !ok {
		r.diags().AddError("unknown_unit",
			fmt.Sprintf("unit %s is of unknown unit %s", u.Name, def.Of), dim, u.Name,
			r.suggest(def.Of, unitNames(u.Dimension.Units))...)

		return nil
	}

	if base.Dimension.Name != dim {
		r.diags().AddError("invalid_ratio",
			fmt.Sprintf("unit %s is of %s, which belongs to %s", u.Name, base.Name, base.Dimension.Name), dim, u.Name)

		return nil
	}

	if !base.Linear() {
		r.diags().AddError("invalid_ratio",
			fmt.Sprintf("unit %s cannot be a multiple of affine unit %s", u.Name, base.Name), dim, u.Name)

		return nil
	}

	return base
}

func (r *Resolver) resolveCanonicals() {
	for _, d := range r.cat.Dimensions {
		def := r.dimDefs[d]

		if def.Canonical == "" {
			r.diags().AddError("missing_canonical",
				fmt.Sprintf("dimension %s declares no canonical unit", d.Name), d.Name, "")

			continue
		}

		c, ok := r.cat.units[def.Canonical]
		if !ok || c.Dimension != d {
			r.diags().AddError("missing_canonical",
				fmt.Sprintf("canonical unit %s is not a unit of %s", def.Canonical, d.Name), d.Name, def.Canonical,
				r.suggest(def.Canonical, unitNames(d.Units))...)

			continue
		}

		if c.Kind != schema.KindRatio || c.Factor != 1 {
			r.diags().AddError("canonical_ratio",
				fmt.Sprintf("canonical unit %s must declare ratio 1", c.Name), d.Name, c.Name)

			continue
		}

		d.Canonical = c
	}

	for _, u := range r.cat.Units {
		c := u.Dimension.Canonical
		if c == nil || c == u || !u.Linear() || u.Factor != 1 {
			continue
		}

		r.diags().AddError("duplicate_canonical",
			fmt.Sprintf("unit %s has ratio 1 like the canonical unit %s", u.Name, c.Name), u.Dimension.Name, u.Name)
	}
}

func (r *Resolver) lookupDimension(name, dim, subject string) (*Dimension, bool) {
	d, ok := r.cat.dimensions[name]
	if !ok {
		r.diags().AddError("unknown_dimension", fmt.Sprintf("unknown dimension %q", name), dim, subject,
			r.suggest(name, r.cat.DimensionNames())...)
	}

	return d, ok
}

func (r *Resolver) resolveOperations() {
	for _, d := range r.cat.Dimensions {
		def := r.dimDefs[d]
		for _, op := range def.Operations {
			if !op.IsSelf() && op.Left != d.Name {
				r.diags().AddError("foreign_left",
					fmt.Sprintf("operation declared under %s must start with Self or %s", d.Name, d.Name),
					d.Name, op.String())

				continue
			}

			r.addOperation(d, op)
		}
	}

	for _, op := range r.file.Operations {
		if op.IsSelf() {
			r.diags().AddError("foreign_left",
				"top-level operation must name its left dimension instead of Self", "", op.String())

			continue
		}

		left, ok := r.lookupDimension(op.Left, "", op.String())
		if !ok {
			continue
		}

		r.addOperation(left, op)
	}
}

func (r *Resolver) addOperation(left *Dimension, def schema.OperationDef) {
	def.Left = left.Name
	subject := def.String()

	right, okRight := r.lookupDimension(def.Right, left.Name, subject)
	output, okOutput := r.lookupDimension(def.Output, left.Name, subject)

	if !okRight || !okOutput {
		return
	}

	unit, ok := r.cat.units[def.Unit]
	if !ok {
		r.diags().AddError("unknown_unit", fmt.Sprintf("unknown output unit %q", def.Unit), left.Name, subject,
			r.suggest(def.Unit, unitNames(output.Units))...)

		return
	}

	if unit.Dimension != output {
		r.diags().AddError("unit_mismatch",
			fmt.Sprintf("output unit %s belongs to %s, not %s", unit.Name, unit.Dimension.Name, output.Name),
			left.Name, subject)

		return
	}

	if !unit.Linear() {
		r.diags().AddError("affine_output_unit",
			fmt.Sprintf("output unit %s is affine; raw products cannot carry an offset", unit.Name),
			left.Name, subject)

		return
	}

	key := edgeKey{left.Name, def.Op, right.Name}
	if prev, ok := r.edges[key]; ok {
		r.diags().AddError("duplicate_operation",
			fmt.Sprintf("%s %s %s is already declared as %s", left.Name, def.Op, right.Name, prev),
			left.Name, subject)

		return
	}

	op := &Operation{Left: left, Op: def.Op, Right: right, Output: output, Unit: unit}
	r.edges[key] = op.String()
	r.cat.Operations = append(r.cat.Operations, op)
	left.Operations = append(left.Operations, op)

	r.checkSignature(op)
}

func (r *Resolver) checkSignature(op *Operation) {
	var missing []string

	for _, d := range []*Dimension{op.Left, op.Right, op.Output} {
		if d.Signature == nil && !slices.Contains(missing, d.Name) {
			missing = append(missing, d.Name)
		}
	}

	if len(missing) > 0 {
		r.diags().AddWarning("unchecked_signature",
			fmt.Sprintf("cannot check %s: no signature for %s", op, strings.Join(missing, ", ")),
			op.Left.Name, op.String())

		return
	}

	got := op.Left.Signature.Combine(op.Op, op.Right.Signature)
	if !got.Equal(op.Output.Signature) {
		r.diags().AddError("inconsistent_signature",
			fmt.Sprintf("%s %s %s has signature %s, but %s is %s",
				op.Left.Name, op.Op, op.Right.Name, got, op.Output.Name, op.Output.Signature),
			op.Left.Name, op.String())
	}
}

// checkInverses reports edges that no other edge undoes.
func (r *Resolver) checkInverses() {
	if !r.config.ReportMissingInverse {
		return
	}

	for _, op := range r.cat.Operations {
		l, rt, o := op.Left.Name, op.Right.Name, op.Output.Name

		var candidates []edgeKey

		if op.Op == quantity.OpMul {
			candidates = []edgeKey{{o, quantity.OpDiv, rt}, {o, quantity.OpDiv, l}}
		} else {
			candidates = []edgeKey{{o, quantity.OpMul, rt}, {rt, quantity.OpMul, o}, {l, quantity.OpDiv, o}}
		}

		undone := slices.ContainsFunc(candidates, func(k edgeKey) bool {
			_, ok := r.edges[k]
			return ok
		})
		if undone {
			continue
		}

		r.diags().AddInfo("missing_inverse", fmt.Sprintf("no operation undoes %s", op), l, op.String())
	}
}

// checkNames reports generated identifiers declared twice in the package.
func (r *Resolver) checkNames() {
	owners := map[string]string{
		"Register": "the registry hook",
		"Registry": "the registry hook",
	}

	claim := func(ident, owner, dim string) {
		if prev, ok := owners[ident]; ok {
			r.diags().AddError("name_collision",
				fmt.Sprintf("identifier %s of %s collides with %s", ident, owner, prev), dim, ident)

			return
		}

		owners[ident] = owner
	}

	for _, d := range r.cat.Dimensions {
		owner := "dimension " + d.Name
		for _, ident := range []string{d.Name, d.Marker(), "New" + d.Name, d.Name + "FromCanonical", d.Name + "One"} {
			claim(ident, owner, d.Name)
		}
	}

	for _, u := range r.cat.Units {
		claim(u.Name, "unit "+u.Name, u.Dimension.Name)
	}

	for _, op := range r.cat.Operations {
		if !op.Method() {
			claim(op.Name(), "operation "+op.String(), op.Left.Name)
		}
	}
}

func isExportedIdent(s string) bool {
	return token.IsIdentifier(s) && common.IsExported(s)
}

func unitNames(units []*Unit) []string {
	names := make([]string, 0, len(units))
	for _, u := range units {
		names = append(names, u.Name)
	}

	return names
}
