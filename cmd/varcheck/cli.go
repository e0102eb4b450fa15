package main

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	// Paths stay exactly as given so error messages can echo them back.
	Base     string   `arg:"" help:"Base HTML file (e.g., index.html)"`
	Variants []string `arg:"" name:"variant" help:"Variant HTML file(s) to verify"`

	UnorderedText bool   `help:"Compare text nodes as a multiset (ignoring order). Useful when structure/layout changes."`
	Scope         string `help:"CSS selector limiting the comparison to matching subtrees (e.g., main)." placeholder:"SELECTOR"`
	Verbose       bool   `short:"v" help:"Enable debug logging."`
}
