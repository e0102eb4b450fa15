package varcheck

import "sort"

// Mode selects how text-node sequences are compared.
type Mode string

// Comparison modes.
const (
	// ModeOrderedText requires element-by-element sequence equality.
	ModeOrderedText Mode = "ordered-text"

	// ModeUnorderedText compares text nodes as multisets, ignoring
	// order. Useful when structure/layout changes.
	ModeUnorderedText Mode = "unordered-text"
)

// TextMissing is the placeholder used for out-of-range indices when one
// text sequence is shorter than the other.
const TextMissing = "<missing>"

// Divergence is a single position where the ordered text sequences
// differ. A sequence that ends before the index contributes TextMissing.
type Divergence struct {
	Index   int
	Base    string
	Variant string
}

// CountedText is a text value with its multiset occurrence count.
type CountedText struct {
	Text  string
	Count int
}

// TextDiff is the outcome of the text-node check.
type TextDiff struct {
	Mode         Mode
	Equal        bool
	BaseCount    int
	VariantCount int

	// Divergences lists every differing index (ordered mode only).
	Divergences []Divergence

	// Missing and Extra hold the multiset difference in each direction
	// (unordered mode only), most frequent first.
	Missing []CountedText
	Extra   []CountedText
}

// SetDiff is the outcome of a set equality check (ids, hrefs).
type SetDiff struct {
	Equal bool

	// Missing holds values present in base but absent in variant;
	// Extra the reverse. Both are sorted.
	Missing []string
	Extra   []string
}

// Report is the full comparison outcome. All three checks are always
// evaluated; a failure in one never suppresses the others.
type Report struct {
	Text  TextDiff
	IDs   SetDiff
	Hrefs SetDiff
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	return r.Text.Equal && r.IDs.Equal && r.Hrefs.Equal
}

// Compare evaluates the variant extraction against the base. The
// returned report holds the full difference collections; any output
// capping is left to presentation.
func Compare(base, variant *Extraction, mode Mode) *Report {
	return &Report{
		Text:  compareText(base.TextNodes, variant.TextNodes, mode),
		IDs:   compareSets(base.IDs, variant.IDs),
		Hrefs: compareSets(base.AnchorHrefs, variant.AnchorHrefs),
	}
}

func compareText(base, variant []string, mode Mode) TextDiff {
	diff := TextDiff{
		Mode:         mode,
		BaseCount:    len(base),
		VariantCount: len(variant),
	}

	if mode == ModeUnorderedText {
		baseCounts := countOccurrences(base)
		variantCounts := countOccurrences(variant)
		diff.Missing = multisetDifference(baseCounts, variantCounts)
		diff.Extra = multisetDifference(variantCounts, baseCounts)
		diff.Equal = len(diff.Missing) == 0 && len(diff.Extra) == 0
		return diff
	}

	maxLen := len(base)
	if len(variant) > maxLen {
		maxLen = len(variant)
	}
	for i := 0; i < maxLen; i++ {
		baseVal, variantVal := TextMissing, TextMissing
		if i < len(base) {
			baseVal = base[i]
		}
		if i < len(variant) {
			variantVal = variant[i]
		}
		if baseVal == variantVal {
			continue
		}
		diff.Divergences = append(diff.Divergences, Divergence{Index: i, Base: baseVal, Variant: variantVal})
	}
	diff.Equal = len(diff.Divergences) == 0
	return diff
}

func compareSets(base, variant map[string]bool) SetDiff {
	diff := SetDiff{}
	for v := range base {
		if !variant[v] {
			diff.Missing = append(diff.Missing, v)
		}
	}
	for v := range variant {
		if !base[v] {
			diff.Extra = append(diff.Extra, v)
		}
	}
	sort.Strings(diff.Missing)
	sort.Strings(diff.Extra)
	diff.Equal = len(diff.Missing) == 0 && len(diff.Extra) == 0
	return diff
}

func countOccurrences(texts []string) map[string]int {
	counts := make(map[string]int, len(texts))
	for _, t := range texts {
		counts[t]++
	}
	return counts
}

// multisetDifference returns the values with a higher count in a than
// in b, with the surplus count, most frequent first. Ties are broken by
// text order to keep output deterministic.
func multisetDifference(a, b map[string]int) []CountedText {
	var out []CountedText
	for text, count := range a {
		if surplus := count - b[text]; surplus > 0 {
			out = append(out, CountedText{Text: text, Count: surplus})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Text < out[j].Text
	})
	return out
}
