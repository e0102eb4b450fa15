package varcheck

import (
	"fmt"
	"io"
	"strings"
)

// Presentation caps. The comparison itself always considers the full
// collections; these only bound console output on large documents.
const (
	maxOrderedEntries   = 10
	maxUnorderedEntries = 20
	maxSetEntries       = 30
)

// WriteReport writes a diagnostic for every failing check in r to w.
// Passing checks produce no output.
func WriteReport(w io.Writer, r *Report) {
	if !r.Text.Equal {
		writeTextDiff(w, &r.Text)
	}
	if !r.IDs.Equal {
		fmt.Fprintln(w, "ID set mismatch.")
		writeSetDiff(w, &r.IDs, "IDs")
	}
	if !r.Hrefs.Equal {
		fmt.Fprintln(w, "Anchor href set mismatch.")
		writeSetDiff(w, &r.Hrefs, "hrefs")
	}
}

func writeTextDiff(w io.Writer, diff *TextDiff) {
	if diff.Mode == ModeUnorderedText {
		fmt.Fprintln(w, "Text nodes mismatch (unordered).")
	} else {
		fmt.Fprintln(w, "Text nodes mismatch.")
	}
	fmt.Fprintf(w, "Base text nodes: %d\n", diff.BaseCount)
	fmt.Fprintf(w, "Var  text nodes: %d\n", diff.VariantCount)

	if diff.Mode == ModeUnorderedText {
		writeCountedTexts(w, diff.Missing, "Missing")
		writeCountedTexts(w, diff.Extra, "Extra")
		return
	}

	for i, d := range diff.Divergences {
		if i >= maxOrderedEntries {
			break
		}
		fmt.Fprintf(w, "- idx %d: base=%s\n", d.Index, quote(d.Base))
		fmt.Fprintf(w, "          var =%s\n", quote(d.Variant))
	}
}

func writeCountedTexts(w io.Writer, entries []CountedText, label string) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(w, "%s text (top %d):\n", label, maxUnorderedEntries)
	for i, e := range entries {
		if i >= maxUnorderedEntries {
			break
		}
		fmt.Fprintf(w, "- %dx %s\n", e.Count, quote(e.Text))
	}
}

func writeSetDiff(w io.Writer, diff *SetDiff, noun string) {
	if len(diff.Missing) > 0 {
		fmt.Fprintf(w, "Missing %s (%d): %s\n", noun, len(diff.Missing), quoteList(diff.Missing, maxSetEntries))
	}
	if len(diff.Extra) > 0 {
		fmt.Fprintf(w, "Extra %s (%d): %s\n", noun, len(diff.Extra), quoteList(diff.Extra, maxSetEntries))
	}
}

// quote renders s the way Python's repr does, which the report format
// inherited from the original tooling: single quotes unless the value
// itself contains one, with control characters escaped so they cannot
// garble the report line.
func quote(s string) string {
	q := byte('\'')
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		q = '"'
	}

	var b strings.Builder
	b.WriteByte(q)
	for _, r := range s {
		switch {
		case r == rune(q):
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(q)
	return b.String()
}

func quoteList(values []string, limit int) string {
	if len(values) > limit {
		values = values[:limit]
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = quote(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
