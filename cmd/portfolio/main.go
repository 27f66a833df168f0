// Command portfolio exposes a few of the challenge solutions on the command
// line.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/peterh/liner"
	"github.com/xlab/treeprint"

	portfolio "github.com/shape-warrior-t/challenge-portfolio"
	"github.com/shape-warrior-t/challenge-portfolio/bloxorz"
	"github.com/shape-warrior-t/challenge-portfolio/grid"
	"github.com/shape-warrior-t/challenge-portfolio/quoted"
	"github.com/shape-warrior-t/challenge-portfolio/sqfree"
)

func exit(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

func nofail(err error) {
	if err != nil {
		exit(err.Error())
	}
}

func usage() {
	exit(`usage: portfolio <command> [arguments]

commands:
  list     show the challenge catalog
  extract  extract quoted string literals from the arguments, or stdin
  repl     extract quoted string literals interactively
  sqfree   print terms of the square-difference-free sequence
  solve    find a shortest solution to a Bloxorz stage read from stdin`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	command, args := os.Args[1], os.Args[2:]
	switch command {
	case "list":
		list()
	case "extract":
		extract(args)
	case "repl":
		repl(args)
	case "sqfree":
		sqfreeTerms(args)
	case "solve":
		solve(args)
	default:
		usage()
	}
}

func list() {
	tree := treeprint.NewWithRoot("challenge-portfolio")
	for _, challenge := range portfolio.Challenges() {
		branch := tree.AddBranch(challenge.Package + ": " + challenge.Synopsis)
		for _, operation := range challenge.Operations {
			branch.AddNode(operation)
		}
	}
	fmt.Print(tree.String())
}

// delimiterFlag registers the -d flag on fs and returns a function that
// builds the configured extractor once fs is parsed.
func delimiterFlag(fs *flag.FlagSet) func() *quoted.Extractor {
	delim := fs.String("d", "'", "delimiter `character` for string literals")
	return func() *quoted.Extractor {
		runes := []rune(*delim)
		if len(runes) != 1 {
			exit("-d must be a single character")
		}
		return quoted.NewExtractor(&quoted.Options{Delimiter: runes[0]})
	}
}

func extract(args []string) {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	extractor := delimiterFlag(fs)
	nofail(fs.Parse(args))

	text := strings.Join(fs.Args(), " ")
	if fs.NArg() == 0 {
		input, err := io.ReadAll(os.Stdin)
		nofail(err)
		text = string(input)
	}

	literals, err := extractor().Extract(text)
	nofail(err)
	for _, literal := range literals {
		fmt.Println(literal)
	}
	// The count goes to stderr so stdout stays one literal per line.
	fmt.Fprintln(os.Stderr, english.Plural(len(literals), "literal", ""))
}

func repl(args []string) {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	extractor := delimiterFlag(fs)
	nofail(fs.Parse(args))
	x := extractor()

	prompt := liner.NewLiner()
	defer prompt.Close()
	prompt.SetCtrlCAborts(true)

	for {
		input, err := prompt.Prompt("extract> ")
		switch err {
		case nil:
		case liner.ErrPromptAborted, io.EOF:
			fmt.Println()
			return
		default:
			prompt.Close()
			exit(err.Error())
		}
		prompt.AppendHistory(input)

		literals, err := x.Extract(input)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		for i, literal := range literals {
			fmt.Printf("%d: %q\n", i+1, literal)
		}
	}
}

func sqfreeTerms(args []string) {
	fs := flag.NewFlagSet("sqfree", flag.ExitOnError)
	n := fs.Int("n", 20, "number of `terms` to print")
	nofail(fs.Parse(args))
	if *n < 0 {
		exit("-n must be non-negative")
	}

	for _, term := range sqfree.First(*n) {
		fmt.Println(humanize.Comma(int64(term)))
	}
}

func solve(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	x := fs.Int("x", 0, "starting `x` coordinate of the block")
	y := fs.Int("y", 0, "starting `y` coordinate of the block")
	orientation := fs.String("o", "upright", "starting `orientation`: upright, horizontal or vertical")
	nofail(fs.Parse(args))

	input, err := io.ReadAll(os.Stdin)
	nofail(err)
	board, err := bloxorz.ParseBoard(string(input))
	nofail(err)

	var o bloxorz.Orientation
	switch *orientation {
	case "upright":
		o = bloxorz.Upright
	case "horizontal":
		o = bloxorz.Horizontal
	case "vertical":
		o = bloxorz.Vertical
	default:
		exit("-o must be upright, horizontal or vertical")
	}

	game := bloxorz.Game{
		Board: board,
		Block: bloxorz.Block{Pos: grid.Point{X: *x, Y: *y}, Orientation: o},
	}
	moves, ok := bloxorz.Solve(game)
	if !ok {
		exit("the stage cannot be won from this position")
	}

	fmt.Printf("solved in %s moves\n", humanize.Comma(int64(len(moves))))
	for i, move := range moves {
		fmt.Printf("%s: %s\n", humanize.Ordinal(i+1), move)
	}
}
