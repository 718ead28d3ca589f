package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"

	"github.com/g-m-twostay/avlset/Sets/AvlSet"
	"github.com/g-m-twostay/avlset/Trees"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/urfave/cli/v2"
)

var log = slog.Default().With("system", "setdemo")

// pair is ordered by a, then by b.
type pair struct {
	a, b int
}

func (p pair) LessThan(o pair) bool {
	if p.a != o.a {
		return p.a < o.a
	}
	return p.b < o.b
}

func main() {
	if err := run(os.Stdout, os.Args); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(w io.Writer, args []string) error {
	app := cli.App{
		Name:   "setdemo",
		Usage:  "fill an ordered set with random values and print it in order",
		Writer: w,
	}

	app.Flags = []cli.Flag{
		&cli.Int64Flag{
			Name:    "seed",
			Value:   100,
			EnvVars: []string{"SETDEMO_SEED"},
		},
		&cli.IntFlag{
			Name:    "count",
			Usage:   "number of values drawn",
			Value:   25,
			EnvVars: []string{"SETDEMO_COUNT"},
		},
		&cli.BoolFlag{
			Name:  "reverse",
			Usage: "print in descending order",
		},
	}
	app.Action = runPairs
	app.Commands = []*cli.Command{
		&cli.Command{
			Name:   "pairs",
			Usage:  "pairs of integers in 1..max",
			Action: runPairs,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "max",
					Value: 5,
				},
			},
		},
		&cli.Command{
			Name:   "words",
			Usage:  "random words, with an optional lower bound query",
			Action: runWords,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "query",
					Usage: "print the first word not less than this one",
				},
			},
		},
	}
	return app.Run(args)
}

func runPairs(cctx *cli.Context) error {
	hi := 5
	if cctx.IsSet("max") {
		hi = cctx.Int("max")
	}
	if hi < 1 {
		return fmt.Errorf("max must be positive, got %d", hi)
	}
	rg := rand.New(rand.NewSource(cctx.Int64("seed")))
	set := AvlSet.NewLesser[pair, uint32](0)
	for range cctx.Int("count") {
		set.Insert(pair{rg.Intn(hi) + 1, rg.Intn(hi) + 1})
	}
	log.Debug("filled", "kind", "pairs", "size", set.Size())

	w := cctx.App.Writer
	fmt.Fprintf(w, "Set size = %d\n", set.Size())
	seq := set.All()
	if cctx.Bool("reverse") {
		seq = set.Backward()
	}
	for p := range seq {
		fmt.Fprintf(w, "%d %d\n", p.a, p.b)
	}
	return nil
}

func runWords(cctx *cli.Context) error {
	faker := gofakeit.New(cctx.Int64("seed"))
	set := AvlSet.New[string, uint32](0)
	for range cctx.Int("count") {
		set.Insert(faker.Word())
	}
	log.Debug("filled", "kind", "words", "size", set.Size())

	w := cctx.App.Writer
	fmt.Fprintf(w, "Set size = %d\n", set.Size())
	if cctx.Bool("reverse") {
		printAll(w, set.End().Prev(), true)
	} else {
		printAll(w, set.Begin(), false)
	}
	if cctx.IsSet("query") {
		q := cctx.String("query")
		if it := set.LowerBound(q); it != set.End() {
			fmt.Fprintf(w, "lower bound of %q = %q\n", q, it.Value())
		} else {
			fmt.Fprintf(w, "lower bound of %q = end\n", q)
		}
	}
	return nil
}

// printAll steps the cursor from it until it leaves the set.
func printAll(w io.Writer, it Trees.Iter[string, uint32], backward bool) {
	for it.Valid() {
		fmt.Fprintln(w, it.Value())
		if backward {
			it = it.Prev()
		} else {
			it = it.Next()
		}
	}
}
