// Package portfolio catalogs a collection of small, self-contained
// solutions to programming challenges. Each challenge lives in its own
// package under this module and shares nothing with the others beyond the
// grid package; this package only describes what is available.
package portfolio

// Challenge describes one challenge solution in the collection.
type Challenge struct {
	// Package is the name of the package implementing the solution.
	Package string
	// Synopsis is a one-line description of the problem being solved.
	Synopsis string
	// Operations lists the package's exported entry points.
	Operations []string
}

// Challenges returns the catalog of challenge solutions, ordered by package
// name.
func Challenges() []Challenge {
	return []Challenge{
		{
			Package:    "aliasing",
			Synopsis:   "find variables whose references violate mutability xor aliasing",
			Operations: []string{"Violations"},
		},
		{
			Package:    "bloxorz",
			Synopsis:   "model the block-rolling game Bloxorz and solve its stages",
			Operations: []string{"ParseBoard", "Block.Move", "Game.Status", "Solve"},
		},
		{
			Package:    "islands",
			Synopsis:   "measure the islands in a grid of water and land",
			Operations: []string{"Parse", "Sizes"},
		},
		{
			Package:    "nbonacci",
			Synopsis:   "classify sequences by the n-bonacci recurrence they follow",
			Operations: []string{"Follows", "Order"},
		},
		{
			Package:    "quoted",
			Synopsis:   "extract quoted string literals, with doubled-delimiter escapes",
			Operations: []string{"Extract", "Extractor.Extract"},
		},
		{
			Package:    "rainfall",
			Synopsis:   "identify the drainage basins of a region of land",
			Operations: []string{"IdentifyBasins"},
		},
		{
			Package:    "runs",
			Synopsis:   "split strings into runs of repeated characters",
			Operations: []string{"Split"},
		},
		{
			Package:    "sqfree",
			Synopsis:   "generate the square-difference-free sequence",
			Operations: []string{"Generator.Next", "First"},
		},
		{
			Package:    "subseq",
			Synopsis:   "decide subsequence containment between strings",
			Operations: []string{"Matches"},
		},
	}
}
