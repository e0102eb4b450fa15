package varcheck_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/varcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extraction(texts ...string) *varcheck.Extraction {
	return &varcheck.Extraction{
		TextNodes:   texts,
		IDs:         map[string]bool{},
		AnchorHrefs: map[string]bool{},
	}
}

func TestCompare_Identity(t *testing.T) {
	t.Parallel()

	base := &varcheck.Extraction{
		TextNodes:   []string{"Hello", "World"},
		IDs:         map[string]bool{"a": true},
		AnchorHrefs: map[string]bool{"/x": true, "": true},
	}

	for _, mode := range []varcheck.Mode{varcheck.ModeOrderedText, varcheck.ModeUnorderedText} {
		report := varcheck.Compare(base, base, mode)

		assert.True(t, report.OK(), "mode %s", mode)
		assert.True(t, report.Text.Equal)
		assert.True(t, report.IDs.Equal)
		assert.True(t, report.Hrefs.Equal)
	}
}

func TestCompare_OrderSensitivity(t *testing.T) {
	t.Parallel()

	base := extraction("Hello", "World")
	variant := extraction("World", "Hello")

	t.Run("ordered mode fails on permuted text", func(t *testing.T) {
		t.Parallel()

		report := varcheck.Compare(base, variant, varcheck.ModeOrderedText)

		assert.False(t, report.OK())
		assert.False(t, report.Text.Equal)
		require.NotEmpty(t, report.Text.Divergences)
		assert.Equal(t, 0, report.Text.Divergences[0].Index)
		assert.Equal(t, "Hello", report.Text.Divergences[0].Base)
		assert.Equal(t, "World", report.Text.Divergences[0].Variant)

		// A permutation passes the id and href checks regardless.
		assert.True(t, report.IDs.Equal)
		assert.True(t, report.Hrefs.Equal)
	})

	t.Run("unordered mode passes on permuted text", func(t *testing.T) {
		t.Parallel()

		report := varcheck.Compare(base, variant, varcheck.ModeUnorderedText)

		assert.True(t, report.OK())
	})
}

func TestCompare_OrderedShorterSequence(t *testing.T) {
	t.Parallel()

	base := extraction("a", "b", "c")
	variant := extraction("a")

	report := varcheck.Compare(base, variant, varcheck.ModeOrderedText)

	assert.False(t, report.Text.Equal)
	assert.Equal(t, 3, report.Text.BaseCount)
	assert.Equal(t, 1, report.Text.VariantCount)
	require.Len(t, report.Text.Divergences, 2)
	assert.Equal(t, varcheck.TextMissing, report.Text.Divergences[0].Variant)
	assert.Equal(t, varcheck.TextMissing, report.Text.Divergences[1].Variant)
}

func TestCompare_OrderedNodeBoundariesMatter(t *testing.T) {
	t.Parallel()

	// A record-separator byte inside a text node (reachable from HTML
	// via &#30;) must not make one node look like two.
	base := extraction("a\x1eb")
	variant := extraction("a", "b")

	report := varcheck.Compare(base, variant, varcheck.ModeOrderedText)

	assert.False(t, report.Text.Equal)
	assert.Equal(t, 1, report.Text.BaseCount)
	assert.Equal(t, 2, report.Text.VariantCount)
	require.Len(t, report.Text.Divergences, 2)
	assert.Equal(t, "a\x1eb", report.Text.Divergences[0].Base)
	assert.Equal(t, "a", report.Text.Divergences[0].Variant)
	assert.Equal(t, varcheck.TextMissing, report.Text.Divergences[1].Base)
}

func TestCompare_UnorderedMultisetCounts(t *testing.T) {
	t.Parallel()

	base := extraction("x", "x", "x", "y")
	variant := extraction("x", "y", "z")

	report := varcheck.Compare(base, variant, varcheck.ModeUnorderedText)

	assert.False(t, report.Text.Equal)
	require.Len(t, report.Text.Missing, 1)
	assert.Equal(t, varcheck.CountedText{Text: "x", Count: 2}, report.Text.Missing[0])
	require.Len(t, report.Text.Extra, 1)
	assert.Equal(t, varcheck.CountedText{Text: "z", Count: 1}, report.Text.Extra[0])
}

func TestCompare_UnorderedSortsByFrequency(t *testing.T) {
	t.Parallel()

	base := extraction("rare", "common", "common", "common")
	variant := extraction()

	report := varcheck.Compare(base, variant, varcheck.ModeUnorderedText)

	require.Len(t, report.Text.Missing, 2)
	assert.Equal(t, "common", report.Text.Missing[0].Text)
	assert.Equal(t, 3, report.Text.Missing[0].Count)
	assert.Equal(t, "rare", report.Text.Missing[1].Text)
}

func TestCompare_IDSets(t *testing.T) {
	t.Parallel()

	base := &varcheck.Extraction{
		IDs:         map[string]bool{"a": true, "b": true},
		AnchorHrefs: map[string]bool{},
	}
	variant := &varcheck.Extraction{
		IDs:         map[string]bool{"b": true, "c": true},
		AnchorHrefs: map[string]bool{},
	}

	report := varcheck.Compare(base, variant, varcheck.ModeOrderedText)

	assert.False(t, report.OK())
	assert.True(t, report.Text.Equal, "text check is independent of id check")
	assert.Equal(t, []string{"a"}, report.IDs.Missing)
	assert.Equal(t, []string{"c"}, report.IDs.Extra)
}

func TestCompare_HrefSets(t *testing.T) {
	t.Parallel()

	base := &varcheck.Extraction{
		IDs:         map[string]bool{},
		AnchorHrefs: map[string]bool{"/page": true},
	}
	variant := &varcheck.Extraction{
		IDs:         map[string]bool{},
		AnchorHrefs: map[string]bool{"/other": true},
	}

	report := varcheck.Compare(base, variant, varcheck.ModeOrderedText)

	assert.False(t, report.OK())
	assert.Equal(t, []string{"/page"}, report.Hrefs.Missing)
	assert.Equal(t, []string{"/other"}, report.Hrefs.Extra)
}

func TestCompare_AllChecksEvaluated(t *testing.T) {
	t.Parallel()

	// Every check diverges; the report must surface all three.
	base := &varcheck.Extraction{
		TextNodes:   []string{"a"},
		IDs:         map[string]bool{"one": true},
		AnchorHrefs: map[string]bool{"/a": true},
	}
	variant := &varcheck.Extraction{
		TextNodes:   []string{"b"},
		IDs:         map[string]bool{"two": true},
		AnchorHrefs: map[string]bool{"/b": true},
	}

	report := varcheck.Compare(base, variant, varcheck.ModeOrderedText)

	assert.False(t, report.Text.Equal)
	assert.False(t, report.IDs.Equal)
	assert.False(t, report.Hrefs.Equal)
}

func TestCompare_FullCollectionsBeyondPresentationCaps(t *testing.T) {
	t.Parallel()

	baseIDs := map[string]bool{}
	for i := 0; i < 50; i++ {
		baseIDs[fmt.Sprintf("id-%02d", i)] = true
	}
	base := &varcheck.Extraction{IDs: baseIDs, AnchorHrefs: map[string]bool{}}
	variant := &varcheck.Extraction{IDs: map[string]bool{}, AnchorHrefs: map[string]bool{}}

	report := varcheck.Compare(base, variant, varcheck.ModeOrderedText)

	// The comparison keeps everything; capping is presentation-only.
	assert.Len(t, report.IDs.Missing, 50)
	assert.IsIncreasing(t, report.IDs.Missing)
}
