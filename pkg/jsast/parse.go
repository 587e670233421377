package jsast

import (
	"context"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// Parsers are not safe for concurrent use, so they are pooled.
var parserPool = sync.Pool{
	New: func() any {
		p := sitter.NewParser()
		p.SetLanguage(javascript.GetLanguage())
		return p
	},
}

// ExtractImports parses src as JavaScript and returns its top-level import
// declarations in source order. Only declarations whose module source is a
// string literal are returned; dynamic import() calls and re-export
// statements never parse to import_statement nodes, so they are naturally
// excluded.
func ExtractImports(ctx context.Context, src []byte) ([]*ImportDecl, error) {
	parser := parserPool.Get().(*sitter.Parser)
	defer parserPool.Put(parser)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	var decls []*ImportDecl
	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)
		if node.Type() != "import_statement" {
			continue
		}
		if decl, ok := importDeclFromNode(node, src); ok {
			decls = append(decls, decl)
		}
	}
	return decls, nil
}

// importDeclFromNode converts an import_statement node to an ImportDecl.
// Returns false when the module source is not a plain string literal.
func importDeclFromNode(node *sitter.Node, src []byte) (*ImportDecl, bool) {
	source := node.ChildByFieldName("source")
	if source == nil || source.Type() != "string" {
		return nil, false
	}

	point := node.StartPoint()
	decl := &ImportDecl{
		Source:  unquote(source.Content(src)),
		Span:    Span{Start: int(node.StartByte()), End: int(node.EndByte())},
		HasSpan: true,
		Line:    int(point.Row) + 1,
		Column:  int(point.Column) + 1,
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "import_clause" {
			decl.Specifiers = specifiersFromClause(child, src)
			break
		}
	}
	return decl, true
}

// specifiersFromClause collects the binding specifiers of an import clause,
// preserving their source order.
func specifiersFromClause(clause *sitter.Node, src []byte) []Specifier {
	var specs []Specifier
	for i := 0; i < int(clause.NamedChildCount()); i++ {
		child := clause.NamedChild(i)
		switch child.Type() {
		case "identifier":
			specs = append(specs, Specifier{Kind: SpecDefault, Local: child.Content(src)})
		case "namespace_import":
			for j := 0; j < int(child.NamedChildCount()); j++ {
				if ident := child.NamedChild(j); ident.Type() == "identifier" {
					specs = append(specs, Specifier{Kind: SpecNamespace, Local: ident.Content(src)})
				}
			}
		case "named_imports":
			for j := 0; j < int(child.NamedChildCount()); j++ {
				imp := child.NamedChild(j)
				if imp.Type() != "import_specifier" {
					continue
				}
				local := imp.ChildByFieldName("alias")
				if local == nil {
					local = imp.ChildByFieldName("name")
				}
				if local != nil {
					specs = append(specs, Specifier{Kind: SpecNamed, Local: local.Content(src)})
				}
			}
		}
	}
	return specs
}

// unquote strips a matching pair of surrounding quotes from a string
// literal. The raw literal is returned unchanged if the quotes do not match.
func unquote(lit string) string {
	if len(lit) >= 2 {
		if q := lit[0]; (q == '\'' || q == '"' || q == '`') && lit[len(lit)-1] == q {
			return lit[1 : len(lit)-1]
		}
	}
	return lit
}
