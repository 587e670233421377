// Package jsast exposes the small slice of the JavaScript syntax tree that
// the import-order rule needs: top-level import declarations, their
// specifiers, and their byte spans in the original source.
package jsast

// SpecifierKind distinguishes the binding shapes an import clause can carry.
type SpecifierKind int

const (
	// SpecDefault binds the module's default export to a local name.
	SpecDefault SpecifierKind = iota
	// SpecNamed binds one named export to a local name.
	SpecNamed
	// SpecNamespace binds the whole module namespace (import * as x).
	SpecNamespace
)

// Specifier is one binding clause within an import declaration.
type Specifier struct {
	Kind  SpecifierKind
	Local string // local binding name
}

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

// ImportDecl is one top-level `import ... from '<module>'` statement.
// Span is only meaningful when HasSpan is true; declarations built
// synthetically (e.g. in tests) may carry no span.
type ImportDecl struct {
	Source     string // module string, quotes stripped
	Specifiers []Specifier
	Span       Span
	HasSpan    bool
	Line       int // 1-based start line, for diagnostics
	Column     int // 1-based start column
}

// DefaultLocal returns the local name bound to the default export, if any.
func (d *ImportDecl) DefaultLocal() (string, bool) {
	for _, s := range d.Specifiers {
		if s.Kind == SpecDefault {
			return s.Local, true
		}
	}
	return "", false
}
