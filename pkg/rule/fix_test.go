package rule

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frontkit/js-imports-order/pkg/jsast"
)

func spanned(source string, start, end int, specs ...jsast.Specifier) *jsast.ImportDecl {
	return &jsast.ImportDecl{
		Source:     source,
		Specifiers: specs,
		Span:       jsast.Span{Start: start, End: end},
		HasSpan:    true,
	}
}

func TestBuildReplacement_rendering(t *testing.T) {
	original := spanned("old", 10, 30)

	tests := []struct {
		name   string
		target *jsast.ImportDecl
		want   string
	}{
		{
			name: "default and named specifiers",
			target: spanned("mod", 0, 0,
				jsast.Specifier{Kind: jsast.SpecDefault, Local: "X"},
				jsast.Specifier{Kind: jsast.SpecNamed, Local: "a"},
				jsast.Specifier{Kind: jsast.SpecNamed, Local: "b"},
			),
			want: "import X, { a, b } from 'mod'",
		},
		{
			name: "named only",
			target: spanned("mod", 0, 0,
				jsast.Specifier{Kind: jsast.SpecNamed, Local: "a"},
			),
			want: "import { a } from 'mod'",
		},
		{
			name: "default only",
			target: spanned("mod", 0, 0,
				jsast.Specifier{Kind: jsast.SpecDefault, Local: "X"},
			),
			want: "import X from 'mod'",
		},
		{
			name: "default after named keeps default first",
			target: spanned("mod", 0, 0,
				jsast.Specifier{Kind: jsast.SpecNamed, Local: "a"},
				jsast.Specifier{Kind: jsast.SpecDefault, Local: "X"},
			),
			want: "import X, { a } from 'mod'",
		},
		{
			name:   "no specifiers renders side-effect import",
			target: spanned("./styles.css", 0, 0),
			want:   "import './styles.css'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			edit, ok := BuildReplacement(tt.target, original)
			req.True(ok)
			req.Equal(tt.want, edit.NewText)
			req.Equal(10, edit.Start, "edit anchors at the original's span")
			req.Equal(30, edit.End)
		})
	}
}

func TestBuildReplacement_noSpan(t *testing.T) {
	req := require.New(t)
	target := spanned("mod", 0, 0, jsast.Specifier{Kind: jsast.SpecDefault, Local: "X"})
	original := &jsast.ImportDecl{Source: "old"}

	_, ok := BuildReplacement(target, original)
	req.False(ok, "a declaration without a span produces no fix")
}

func TestBuildReplacement_namespaceTarget(t *testing.T) {
	req := require.New(t)
	target := spanned("node:path", 0, 0, jsast.Specifier{Kind: jsast.SpecNamespace, Local: "path"})
	original := spanned("old", 5, 15)

	_, ok := BuildReplacement(target, original)
	req.False(ok, "namespace imports cannot be re-rendered canonically")
}
