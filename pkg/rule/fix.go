package rule

import (
	"fmt"
	"strings"

	"github.com/frontkit/js-imports-order/pkg/fix"
	"github.com/frontkit/js-imports-order/pkg/jsast"
)

// BuildReplacement synthesizes the text edit that rewrites original's span
// with a freshly rendered import statement for target. The fix swaps content
// into the existing slot; applying the edits for every misplaced slot moves
// the file to sorted order in one pass.
//
// No edit is produced when original carries no byte span, or when target
// contains a specifier shape the canonical rendering cannot express
// (namespace imports). The diagnostic is still reported without a fix.
func BuildReplacement(target, original *jsast.ImportDecl) (fix.TextEdit, bool) {
	if !original.HasSpan {
		return fix.TextEdit{}, false
	}
	clause, ok := renderSpecifiers(target.Specifiers)
	if !ok {
		return fix.TextEdit{}, false
	}

	var text string
	if clause == "" {
		// Side-effect-only import.
		text = fmt.Sprintf("import '%s'", target.Source)
	} else {
		text = fmt.Sprintf("import %s from '%s'", clause, target.Source)
	}

	return fix.TextEdit{
		Start:   original.Span.Start,
		End:     original.Span.End,
		NewText: text,
	}, true
}

// renderSpecifiers renders the canonical specifier clause: the default name
// first and unqualified, then the named specifiers brace-wrapped and joined
// with ", ", in their original relative order. Returns false for specifier
// shapes outside default/named.
func renderSpecifiers(specs []jsast.Specifier) (string, bool) {
	var defaultName string
	hasDefault := false
	var named []string

	for _, s := range specs {
		switch s.Kind {
		case jsast.SpecDefault:
			defaultName = s.Local
			hasDefault = true
		case jsast.SpecNamed:
			named = append(named, s.Local)
		default:
			return "", false
		}
	}

	var b strings.Builder
	if hasDefault {
		b.WriteString(defaultName)
	}
	if len(named) > 0 {
		if hasDefault {
			b.WriteString(", ")
		}
		b.WriteString("{ ")
		b.WriteString(strings.Join(named, ", "))
		b.WriteString(" }")
	}
	return b.String(), true
}
