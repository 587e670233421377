package rule

import (
	"sort"

	"github.com/frontkit/js-imports-order/pkg/fix"
	"github.com/frontkit/js-imports-order/pkg/jsast"
)

const (
	// ID is the rule identifier.
	ID = "import-order"
	// Message is reported verbatim for every misordered import.
	Message = "Imports must be arranged in alphabetical order"
)

// Meta describes the rule to the host tool.
type Meta struct {
	ID          string
	Description string
	Type        string // "layout": the rule only touches rendering and order
	Fixable     bool
	Suggestions bool
	Options     []string // accepted configuration keys; none
}

// Metadata returns the rule's metadata.
func Metadata() Meta {
	return Meta{
		ID:          ID,
		Description: "Enforces reverse-alphabetical import order with relative/flat module grouping",
		Type:        "layout",
		Fixable:     true,
		Suggestions: true,
	}
}

// Diagnostic is one reported violation, anchored at the misplaced
// declaration, optionally carrying an auto-fix edit.
type Diagnostic struct {
	RuleID  string
	Message string
	Source  string // module source of the misplaced import
	Line    int
	Column  int
	Edit    *fix.TextEdit
}

// HasFix reports whether the diagnostic carries an auto-fix edit.
func (d Diagnostic) HasFix() bool {
	return d.Edit != nil
}

// Check runs the rule over a file's top-level import declarations, given in
// source order. It produces the fully sorted sequence, walks both sequences
// by index, and reports one diagnostic per mismatched slot with a fix that
// rewrites the slot with the declaration that belongs there. Slots are
// reported independently; convergence across passes is the caller's loop.
func Check(decls []*jsast.ImportDecl) []Diagnostic {
	sorted := Sort(decls)

	var diags []Diagnostic
	for i, decl := range decls {
		if sorted[i] == decl {
			continue
		}
		d := Diagnostic{
			RuleID:  ID,
			Message: Message,
			Source:  decl.Source,
			Line:    decl.Line,
			Column:  decl.Column,
		}
		if edit, ok := BuildReplacement(sorted[i], decl); ok {
			d.Edit = &edit
		}
		diags = append(diags, d)
	}
	return diags
}

// Sort returns a new slice with the declarations ordered by the comparator.
// The comparator never reports two sources as equal, so the relative
// placement of declarations with identical module sources is arbitrary but
// deterministic for a given input.
func Sort(decls []*jsast.ImportDecl) []*jsast.ImportDecl {
	sorted := make([]*jsast.ImportDecl, len(decls))
	copy(sorted, decls)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Compare(sorted[i].Source, sorted[j].Source) < 0
	})
	return sorted
}
