package gen

import (
	"fmt"
	"maps"
	"slices"

	"quantity-generator/internal/common"
	"quantity-generator/internal/match"
	"quantity-generator/internal/plan"
	"quantity-generator/quantity"
)

const (
	operationsFilename = "operations.go"
	registryFilename   = "registry.go"
	quantityPkg        = "quantity"
)

// fileData holds all data needed by the file templates.
type fileData struct {
	Filename string
	Source   string
	Package  string
	Std      []importSpec
	Imports  []importSpec
	Comments bool

	Dimension *dimensionData
	Units     []unitData
	Functions []operationData
	Registry  *registryData
}

type importSpec struct {
	Alias string
	Path  string
}

type dimensionData struct {
	Name      string
	Marker    string
	Canonical string
	Doc       string
	Methods   []operationData
}

// operationData is an edge rendered either as a method or as a function.
type operationData struct {
	Name          string
	Left          string
	Right         string
	Output        string
	FromCanonical string
	Helper        string
	Unit          string
	Symbol        string
}

type unitData struct {
	Name       string
	Doc        string
	Marker     string
	Linear     bool
	FactorExpr string
	ToExpr     string
	FromExpr   string
}

type registryData struct {
	ImportPath string
	// Body holds the statements of the registration closure; an empty
	// line separates groups.
	Body []string
}

// importSet collects the imports of one file.
type importSet map[string]string

func (s importSet) add(imports ...*plan.Import) {
	for _, imp := range imports {
		if imp != nil {
			s[imp.Path] = imp.Alias
		}
	}
}

func (s importSet) specs() []importSpec {
	res := make([]importSpec, 0, len(s))

	for _, path := range slices.Sorted(maps.Keys(s)) {
		alias := s[path]
		if alias == common.PkgAlias(path) {
			alias = ""
		}

		res = append(res, importSpec{Alias: alias, Path: path})
	}

	return res
}

type builder struct {
	config GeneratorConfig
	cat    *plan.Catalog
	pkg    string
}

func newBuilder(config GeneratorConfig, cat *plan.Catalog) *builder {
	return &builder{config: config, cat: cat, pkg: packageName(config, cat)}
}

func (b *builder) newFile(filename string) *fileData {
	return &fileData{
		Filename: filename,
		Source:   b.config.SchemaName,
		Package:  b.pkg,
		Comments: b.config.GenerateComments,
	}
}

func (b *builder) importsWithQuantity() importSet {
	return importSet{b.config.QuantityImport: quantityPkg}
}

// dimensionFile builds the file of one local dimension.
func (b *builder) dimensionFile(d *plan.Dimension) *fileData {
	f := b.newFile(match.SnakeCase(d.Name) + ".go")
	f.Std = []importSpec{{Path: "cmp"}}

	imports := b.importsWithQuantity()

	doc := "is a quantity of the " + d.Name + " dimension."
	if d.Doc != "" {
		doc = common.LowerFirst(d.Doc)
	}

	dim := &dimensionData{
		Name:      d.Name,
		Marker:    d.Marker(),
		Canonical: d.Canonical.Name,
		Doc:       doc,
	}

	for _, op := range d.Operations {
		dim.Methods = append(dim.Methods, operation(op, imports))
	}

	for _, u := range b.cat.Units {
		if u.Dimension == d {
			f.Units = append(f.Units, unit(u, imports))
		}
	}

	f.Dimension = dim
	f.Imports = imports.specs()

	return f
}

// importedUnitFiles builds one file per imported dimension that gains
// local units, in order of first appearance.
func (b *builder) importedUnitFiles() []*fileData {
	var (
		files []*fileData
		byDim = make(map[*plan.Dimension]*fileData)
		sets  = make(map[*plan.Dimension]importSet)
	)

	for _, u := range b.cat.Units {
		d := u.Dimension
		if d.Local() {
			continue
		}

		f, ok := byDim[d]
		if !ok {
			f = b.newFile(match.SnakeCase(d.Name) + "_units.go")
			byDim[d] = f
			sets[d] = importSet{}
			files = append(files, f)
		}

		f.Units = append(f.Units, unit(u, sets[d]))
	}

	for d, f := range byDim {
		f.Imports = sets[d].specs()
	}

	return files
}

// operationsFile builds the file of edges rooted on imported dimensions,
// or returns nil when there are none.
func (b *builder) operationsFile() *fileData {
	imports := b.importsWithQuantity()

	var funcs []operationData

	for _, op := range b.cat.Operations {
		if !op.Method() {
			funcs = append(funcs, operation(op, imports))
		}
	}

	if len(funcs) == 0 {
		return nil
	}

	f := b.newFile(operationsFilename)
	f.Functions = funcs
	f.Imports = imports.specs()

	return f
}

func (b *builder) registryFile() *fileData {
	f := b.newFile(registryFilename)
	f.Std = []importSpec{{Path: "sync"}}

	imports := b.importsWithQuantity()

	importPath := b.config.ImportPath
	if importPath == "" {
		importPath = b.pkg
	}

	var includes, dims, units, edges []string

	for _, imp := range b.cat.Imports {
		imports.add(imp)
		includes = append(includes, imp.Alias+".Register(r)")
	}

	for _, d := range b.cat.Dimensions {
		dims = append(dims, fmt.Sprintf("r.MustAddDimension(%s{})", d.Marker()))
	}

	for _, u := range b.cat.Units {
		units = append(units, fmt.Sprintf("%s.MustRegister[%s](r, %s{})", quantityPkg, u.Dimension.MarkerRef(), u.Name))
	}

	for _, op := range b.cat.Operations {
		e := op.Edge()
		edges = append(edges, fmt.Sprintf(
			"r.MustAddEdge(%s.Edge{Left: %q, Op: %s, Right: %q, Output: %q, Unit: %q})",
			quantityPkg, e.Left, opConst(e.Op), e.Right, e.Output, e.Unit))
	}

	reg := &registryData{ImportPath: importPath}

	for _, group := range [][]string{includes, dims, units, edges} {
		if len(group) == 0 {
			continue
		}

		if len(reg.Body) > 0 {
			reg.Body = append(reg.Body, "")
		}

		reg.Body = append(reg.Body, group...)
	}

	f.Registry = reg
	f.Imports = imports.specs()

	return f
}

func operation(op *plan.Operation, imports importSet) operationData {
	imports.add(op.Left.Import, op.Right.Import, op.Output.Import, op.Unit.Import)

	helper := "Product"
	if op.Op == quantity.OpDiv {
		helper = "Quotient"
	}

	return operationData{
		Name:          op.Name(),
		Left:          op.Left.Ref(),
		Right:         op.Right.Ref(),
		Output:        op.Output.Ref(),
		FromCanonical: op.Output.FromCanonicalRef(),
		Helper:        helper,
		Unit:          op.Unit.Ref(),
		Symbol:        op.Op.String(),
	}
}

func unit(u *plan.Unit, imports importSet) unitData {
	imports.add(u.Dimension.Import)

	if u.Of != nil {
		imports.add(u.Of.Import)
	}

	return unitData{
		Name:       u.Name,
		Doc:        unitDoc(u),
		Marker:     u.Dimension.MarkerRef(),
		Linear:     u.Linear(),
		FactorExpr: u.FactorExpr,
		ToExpr:     u.ToExpr,
		FromExpr:   u.FromExpr,
	}
}

func unitDoc(u *plan.Unit) string {
	switch {
	case u.Doc != "":
		return common.LowerFirst(u.Doc)
	case !u.Linear():
		return "is an affine unit of " + u.Dimension.Name + "."
	case u.Derived():
		return fmt.Sprintf("is a unit of %s worth %s %s.", u.Dimension.Name, u.OfFactor, u.Of.Name)
	default:
		return "is a unit of " + u.Dimension.Name + "."
	}
}

func opConst(op quantity.Operator) string {
	return quantityPkg + ".Op" + op.Verb()
}
