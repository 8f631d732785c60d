package analyze

import (
	"fmt"
	"go/types"
	"reflect"
	"sort"

	"golang.org/x/tools/go/packages"

	"recdict/internal/diagnostic"
	"recdict/internal/schema"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and extracts record models.
type Analyzer struct {
	report *Report
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		report: &Report{},
	}
}

// LoadPackages loads the specified packages and inspects their exported structs.
// Patterns are standard Go package patterns (e.g., "./store", "recdict/store").
func (a *Analyzer) LoadPackages(patterns ...string) (*Report, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg.Types)
	}

	sort.Slice(a.report.Models, func(i, j int) bool {
		return a.report.Models[i].ID.String() < a.report.Models[j].ID.String()
	})

	return a.report, nil
}

// Report returns the models collected so far.
func (a *Analyzer) Report() *Report {
	return a.report
}

// processPackage extracts record models from a type-checked package.
func (a *Analyzer) processPackage(pkg *types.Package) {
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		st, ok := typeName.Type().Underlying().(*types.Struct)
		if !ok || isValueStruct(typeName.Type()) {
			continue
		}

		a.report.Models = append(a.report.Models, a.inspectStruct(pkg.Path(), name, st))
	}
}

func (a *Analyzer) inspectStruct(pkgPath, name string, st *types.Struct) Model {
	m := Model{ID: schema.TypeID{PkgPath: pkgPath, Name: name}}
	diags := &a.report.Diagnostics
	id := m.ID.Short()

	a.collectFields(&m, st, "")

	seen := make(map[string]string, len(m.Fields))
	for _, f := range m.Fields {
		if prev, dup := seen[f.Name]; dup {
			diags.AddError(diagnostic.CodeDuplicateName,
				fmt.Sprintf("dict name %q is also used by %s", f.Name, prev), id, f.GoName)
		}

		seen[f.Name] = f.GoName

		if f.Explicit {
			if msg := checkKind(f.Kind, f.Type); msg != "" {
				diags.AddWarning(diagnostic.CodeKindMismatch, msg, id, f.GoName)
			}
		}

		if f.Kind == schema.KindPrimaryKey && m.PK == "" {
			m.PK = f.Name
		}
	}

	if m.PK == "" {
		diags.AddInfo(diagnostic.CodeNoPrimaryKey, "no primary key; records are always treated as saved", id, "")
	}

	return m
}

// collectFields appends the fields of st, flattening embedded records.
func (a *Analyzer) collectFields(m *Model, st *types.Struct, prefix string) {
	id := m.ID.Short()

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		structTag := reflect.StructTag(st.Tag(i))
		goName := prefix + field.Name()

		tag, err := schema.ParseTag(structTag.Get(schema.TagKey))
		if err != nil {
			a.report.Diagnostics.AddError(diagnostic.CodeBadTag, err.Error(), id, goName)
			continue
		}

		if tag.Skip {
			continue
		}

		if field.Embedded() && !tag.HasKind {
			if inner, ok := deref(field.Type()).Underlying().(*types.Struct); ok && !isValueStruct(deref(field.Type())) {
				a.collectFields(m, inner, goName+".")
				continue
			}
		}

		if !field.Exported() {
			continue
		}

		kind := tag.Kind
		if !tag.HasKind {
			kind = infer(field.Name(), field.Type())
		}

		m.Fields = append(m.Fields, Field{
			Name:     schema.DictName(field.Name(), structTag, tag),
			GoName:   goName,
			Kind:     kind,
			Explicit: tag.HasKind,
			Type:     field.Type(),
		})
	}
}
