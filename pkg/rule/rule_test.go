package rule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frontkit/js-imports-order/pkg/fix"
	"github.com/frontkit/js-imports-order/pkg/jsast"
)

func extract(t *testing.T, src string) []*jsast.ImportDecl {
	t.Helper()
	decls, err := jsast.ExtractImports(context.Background(), []byte(src))
	require.NoError(t, err)
	return decls
}

func sources(decls []*jsast.ImportDecl) []string {
	out := make([]string, len(decls))
	for i, d := range decls {
		out[i] = d.Source
	}
	return out
}

func TestMetadata(t *testing.T) {
	req := require.New(t)
	meta := Metadata()
	req.Equal("import-order", meta.ID)
	req.Equal("layout", meta.Type)
	req.True(meta.Fixable)
	req.True(meta.Suggestions)
	req.Empty(meta.Options)
}

func TestCheck_sortedFileReportsNothing(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "already sorted flat then relative",
			src:  "import b from 'bee'\nimport c from 'cee'\nimport a from './alpha'\n",
		},
		{
			name: "single import",
			src:  "import a from './a'\n",
		},
		{
			name: "no imports",
			src:  "const x = 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Empty(t, Check(extract(t, tt.src)))
		})
	}
}

func TestCheck_scenario(t *testing.T) {
	req := require.New(t)
	src := "import b from 'bee'\nimport a from './alpha'\nimport c from 'cee'\n"
	decls := extract(t, src)

	// 'bee' and 'cee' are flat and ascend among themselves; './alpha' is
	// alone in the relative group and loses every descending cross-group
	// comparison, so it sorts last.
	req.Equal([]string{"bee", "cee", "./alpha"}, sources(Sort(decls)))

	diags := Check(decls)
	req.Len(diags, 2, "slots 1 and 2 mismatch, slot 0 is already correct")

	first := diags[0]
	req.Equal("import-order", first.RuleID)
	req.Equal("Imports must be arranged in alphabetical order", first.Message)
	req.Equal("./alpha", first.Source, "diagnostic anchors at the misplaced declaration")
	req.Equal(2, first.Line)
	req.True(first.HasFix())
	req.Equal("import c from 'cee'", first.Edit.NewText)

	second := diags[1]
	req.Equal("cee", second.Source)
	req.Equal(3, second.Line)
	req.True(second.HasFix())
	req.Equal("import a from './alpha'", second.Edit.NewText)
}

func TestCheck_fixesConverge(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "scenario file",
			src:  "import b from 'bee'\nimport a from './alpha'\nimport c from 'cee'\n",
		},
		{
			name: "fully reversed relative imports",
			src:  "import c from './c'\nimport b from './b'\nimport a from './a'\n",
		},
		{
			name: "mixed shapes",
			src:  "import { z } from 'zed'\nimport App, { Header } from './app'\nimport a from 'aaa'\n",
		},
		{
			name: "scoped packages in the mix",
			src:  "import x from '@scope/x'\nimport y from 'why'\nimport z from './zed'\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			diags := Check(extract(t, tt.src))

			var edits []fix.TextEdit
			for _, d := range diags {
				req.True(d.HasFix(), "parsed declarations always have spans")
				edits = append(edits, *d.Edit)
			}

			// Applying every emitted fix simultaneously yields a file that
			// re-analyzes clean.
			fixed := fix.Apply([]byte(tt.src), edits)
			req.Empty(Check(extract(t, string(fixed))), "fixed source: %s", fixed)
		})
	}
}

func TestCheck_missingSpanDropsFixOnly(t *testing.T) {
	req := require.New(t)

	// Synthetic declarations without spans: diagnostics still surface,
	// just without an attached fix.
	decls := []*jsast.ImportDecl{
		{Source: "bee", Specifiers: []jsast.Specifier{{Kind: jsast.SpecDefault, Local: "b"}}},
		{Source: "./alpha", Specifiers: []jsast.Specifier{{Kind: jsast.SpecDefault, Local: "a"}}},
		{Source: "cee", Specifiers: []jsast.Specifier{{Kind: jsast.SpecDefault, Local: "c"}}},
	}

	diags := Check(decls)
	req.Len(diags, 2)
	for _, d := range diags {
		req.False(d.HasFix())
		req.Equal(Message, d.Message)
	}
}

func TestSort_identicalSourcesDeterministic(t *testing.T) {
	req := require.New(t)
	decls := []*jsast.ImportDecl{
		{Source: "./dup"},
		{Source: "./dup"},
		{Source: "./aaa"},
	}

	first := Sort(decls)
	second := Sort(decls)
	req.Equal(first, second, "sorting is deterministic for a given input")
	req.Equal("./aaa", first[0].Source)
	req.ElementsMatch(sources(decls), sources(first), "sorted sequence is a permutation")
}

func TestSort_doesNotMutateInput(t *testing.T) {
	req := require.New(t)
	decls := []*jsast.ImportDecl{
		{Source: "cee"},
		{Source: "bee"},
	}
	_ = Sort(decls)
	req.Equal("cee", decls[0].Source)
	req.Equal("bee", decls[1].Source)
}
