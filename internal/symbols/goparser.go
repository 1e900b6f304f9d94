package symbols

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"sort"
	"strings"

	"github.com/dshills/smartchunk-mcp/pkg/types"
)

// GoProvider extracts symbol boundaries from Go sources with the standard
// library AST parser. It needs no external tooling and is safe for
// concurrent use; each call builds its own FileSet.
type GoProvider struct{}

// NewGoProvider creates a native Go symbol provider
func NewGoProvider() *GoProvider {
	return &GoProvider{}
}

// ResolveSymbols implements Provider
func (g *GoProvider) ResolveSymbols(ctx context.Context, path string) ([]types.Symbol, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ext := &goSymbolExtractor{fset: fset}
	ast.Inspect(file, ext.visit)
	sort.SliceStable(ext.symbols, func(i, j int) bool {
		return ext.symbols[i].StartLine < ext.symbols[j].StartLine
	})
	return ext.symbols, nil
}

type goSymbolExtractor struct {
	fset    *token.FileSet
	symbols []types.Symbol
}

func (e *goSymbolExtractor) visit(node ast.Node) bool {
	switch n := node.(type) {
	case *ast.FuncDecl:
		e.extractFunction(n)
		return false
	case *ast.GenDecl:
		e.extractGenDecl(n)
		return false
	}
	return true
}

func (e *goSymbolExtractor) extractFunction(decl *ast.FuncDecl) {
	kind := "function"
	if decl.Recv != nil && len(decl.Recv.List) > 0 {
		kind = "method"
	}
	e.add(types.Symbol{
		Name:      decl.Name.Name,
		Kind:      kind,
		Signature: functionSignature(decl),
		Exported:  decl.Name.IsExported(),
	}, decl)
}

func (e *goSymbolExtractor) extractGenDecl(decl *ast.GenDecl) {
	switch decl.Tok {
	case token.TYPE:
		for _, spec := range decl.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			kind := "type"
			switch ts.Type.(type) {
			case *ast.StructType:
				kind = "struct"
			case *ast.InterfaceType:
				kind = "interface"
			}
			e.add(types.Symbol{
				Name:      ts.Name.Name,
				Kind:      kind,
				Signature: "type " + ts.Name.Name,
				Exported:  ts.Name.IsExported(),
			}, decl)
		}
	case token.CONST, token.VAR:
		kind := "const"
		if decl.Tok == token.VAR {
			kind = "var"
		}
		name := groupName(decl)
		if name == "" {
			return
		}
		e.add(types.Symbol{
			Name:     name,
			Kind:     kind,
			Exported: token.IsExported(name),
		}, decl)
	}
}

func (e *goSymbolExtractor) add(sym types.Symbol, node ast.Node) {
	sym.StartLine = e.fset.Position(node.Pos()).Line
	sym.EndLine = e.fset.Position(node.End()).Line
	if err := sym.Validate(); err != nil {
		return
	}
	e.symbols = append(e.symbols, sym)
}

// groupName names a const/var declaration group by its first identifier
func groupName(decl *ast.GenDecl) string {
	for _, spec := range decl.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok || len(vs.Names) == 0 {
			continue
		}
		return vs.Names[0].Name
	}
	return ""
}

// functionSignature builds a compact signature string for a function or
// method declaration
func functionSignature(decl *ast.FuncDecl) string {
	var sig strings.Builder
	sig.WriteString("func ")
	if decl.Recv != nil && len(decl.Recv.List) > 0 {
		sig.WriteString("(")
		sig.WriteString(exprString(decl.Recv.List[0].Type))
		sig.WriteString(") ")
	}
	sig.WriteString(decl.Name.Name)
	sig.WriteString("(")
	sig.WriteString(fieldListString(decl.Type.Params))
	sig.WriteString(")")
	if decl.Type.Results != nil && len(decl.Type.Results.List) > 0 {
		results := fieldListString(decl.Type.Results)
		if len(decl.Type.Results.List) == 1 && len(decl.Type.Results.List[0].Names) == 0 {
			sig.WriteString(" " + results)
		} else {
			sig.WriteString(" (" + results + ")")
		}
	}
	return sig.String()
}

func fieldListString(fields *ast.FieldList) string {
	if fields == nil {
		return ""
	}
	var parts []string
	for _, field := range fields.List {
		typeStr := exprString(field.Type)
		if len(field.Names) == 0 {
			parts = append(parts, typeStr)
			continue
		}
		for _, name := range field.Names {
			parts = append(parts, name.Name+" "+typeStr)
		}
	}
	return strings.Join(parts, ", ")
}

func exprString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + exprString(t.X)
	case *ast.SelectorExpr:
		return exprString(t.X) + "." + t.Sel.Name
	case *ast.ArrayType:
		return "[]" + exprString(t.Elt)
	case *ast.MapType:
		return "map[" + exprString(t.Key) + "]" + exprString(t.Value)
	case *ast.ChanType:
		return "chan " + exprString(t.Value)
	case *ast.FuncType:
		return "func(" + fieldListString(t.Params) + ")"
	case *ast.InterfaceType:
		return "interface{}"
	case *ast.Ellipsis:
		return "..." + exprString(t.Elt)
	default:
		return "any"
	}
}
