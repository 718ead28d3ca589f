package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/g-m-twostay/avlset/Sets/cmps"

	"github.com/urfave/cli/v2"
)

var log = slog.Default().With("system", "setbench")

var refs = []string{cmps.BTree, cmps.Gods, cmps.LLRB, cmps.AVL}

func main() {
	if err := run(os.Args); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:  "setbench",
		Usage: "time the avl set against a reference ordered set",
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "experiment",
			Usage:   "one of add, lb, add-erase",
			Value:   "add",
			EnvVars: []string{"SETBENCH_EXPERIMENT"},
		},
		&cli.StringFlag{
			Name:    "ref",
			Usage:   "reference implementation: " + strings.Join(refs, ", "),
			Value:   cmps.BTree,
			EnvVars: []string{"SETBENCH_REF"},
		},
		&cli.IntFlag{
			Name:    "step",
			Usage:   "operations per block",
			Value:   1 << 9,
			EnvVars: []string{"SETBENCH_STEP"},
		},
		&cli.IntFlag{
			Name:    "blocks",
			Usage:   "number of timed blocks",
			Value:   1 << 6,
			EnvVars: []string{"SETBENCH_BLOCKS"},
		},
		&cli.IntFlag{
			Name:    "iter",
			Usage:   "repetitions averaged per block",
			Value:   2,
			EnvVars: []string{"SETBENCH_ITER"},
		},
		&cli.Int64Flag{
			Name:    "seed",
			Value:   512,
			EnvVars: []string{"SETBENCH_SEED"},
		},
		&cli.Int64Flag{
			Name:  "max",
			Usage: "values are drawn from [-max, max]",
			Value: 1e9,
		},
	}
	app.Action = runSeries
	app.Commands = []*cli.Command{
		&cli.Command{
			Name:   "summary",
			Usage:  "run every experiment through testing.Benchmark and print ns/op",
			Action: runSummary,
		},
	}
	return app.Run(args)
}

func parseConfig(cctx *cli.Context) (config, string, error) {
	c := config{
		step:   cctx.Int("step"),
		blocks: cctx.Int("blocks"),
		iter:   cctx.Int("iter"),
		seed:   cctx.Int64("seed"),
		maxc:   cctx.Int64("max"),
	}
	if c.step < 1 || c.blocks < 1 || c.iter < 1 || c.maxc < 0 {
		return c, "", fmt.Errorf("step, blocks and iter must be positive and max non-negative")
	}
	ref := cctx.String("ref")
	if !slices.Contains(refs, ref) {
		return c, "", fmt.Errorf("unknown reference %q", ref)
	}
	return c, ref, nil
}

func runSeries(cctx *cli.Context) error {
	c, ref, err := parseConfig(cctx)
	if err != nil {
		return err
	}
	name := cctx.String("experiment")
	e, ok := experiments[name]
	if !ok {
		return fmt.Errorf("unknown experiment %q", name)
	}
	log.Info("running", "experiment", name, "ref", ref, "step", c.step, "blocks", c.blocks, "iter", c.iter)
	rs := measure(e, ref, c)
	as := measure(e, cmps.AVL, c)
	if err := report(cctx.App.Writer, c, rs, as); err != nil {
		return err
	}
	if rs.sum != as.sum {
		return fmt.Errorf("checksum mismatch: ref %d, avl %d", rs.sum, as.sum)
	}
	return nil
}

func runSummary(cctx *cli.Context) error {
	c, ref, err := parseConfig(cctx)
	if err != nil {
		return err
	}
	testing.Init()
	for _, name := range []string{"add", "lb", "add-erase"} {
		for _, impl := range []string{ref, cmps.AVL} {
			e := experiments[name]
			ns := make([]int64, c.blocks)
			br := testing.Benchmark(func(b *testing.B) {
				rg := rand.New(rand.NewSource(c.seed))
				for range b.N {
					e(cmps.NewOrdered(impl), c, rg, ns)
				}
			})
			fmt.Fprintf(cctx.App.Writer, "%-10s %-6s %s\n", name, impl, br.String())
			log.Debug("benchmark done", "experiment", name, "impl", impl, "n", br.N)
		}
	}
	return nil
}
