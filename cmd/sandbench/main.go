// Command sandbench settles a scene under a grid of chunk sizes, seeds and
// fire spread chances and reports how long each run stayed active.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"sandfall/internal/scenario"
	"sandfall/internal/sims/sand"
)

type runSet struct {
	chunk  int
	seed   int64
	spread float64
}

func (r runSet) String() string {
	return fmt.Sprintf("chunk=%d seed=%d spread=%.3f", r.chunk, r.seed, r.spread)
}

type runResult struct {
	set     runSet
	result  sand.SettleResult
	elapsed time.Duration
}

func main() {
	width := flag.Int("w", 256, "grid width")
	height := flag.Int("h", 192, "grid height")
	maxTicks := flag.Int("ticks", 2000, "tick limit per run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	chunks := flag.String("chunks", "16,32,64", "comma separated chunk sizes")
	seeds := flag.Int("seeds", 4, "seeds per configuration")
	spreads := flag.String("spread", "0.05", "comma separated fire spread chances")
	scenarioPath := flag.String("scenario", "", "YAML scenario to settle instead of the sandbox")
	flag.Parse()

	base := sand.DefaultConfig()
	base.Width, base.Height = *width, *height
	scene := sand.PaintSandbox
	if *scenarioPath != "" {
		s, err := scenario.Load(*scenarioPath)
		if err != nil {
			log.Fatal(err)
		}
		base = sand.FromMap(s.Merge(map[string]string{"w": strconv.Itoa(*width), "h": strconv.Itoa(*height)}))
		scene = s.Paint
	}

	chunkSizes, err := parseInts(*chunks)
	if err != nil {
		log.Fatalf("-chunks: %v", err)
	}
	spreadChances, err := parseFloats(*spreads)
	if err != nil {
		log.Fatalf("-spread: %v", err)
	}
	sets := buildSets(chunkSizes, *seeds, spreadChances)

	fmt.Printf("Settling %d runs on %dx%d (%d workers, %d tick limit)\n", len(sets), base.Width, base.Height, *workers, *maxTicks)
	start := time.Now()
	all, err := sweep(context.Background(), base, scene, sets, *maxTicks, *workers)
	if err != nil {
		log.Fatal(err)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].result.ActiveTickSum < all[j].result.ActiveTickSum })
	fmt.Printf("\nResults by total chunk work (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for i, res := range all {
		r := res.result
		fmt.Printf("%2d) settled=%v ticks=%d peak=%d work=%d sand=%d fire=%d time=%s %s\n",
			i+1, r.Settled, r.Ticks, r.PeakActiveChunks, r.ActiveTickSum, r.Count(sand.Sand), r.Count(sand.Fire),
			res.elapsed.Round(time.Microsecond), res.set)
	}
}

func buildSets(chunks []int, seeds int, spreads []float64) []runSet {
	var sets []runSet
	for _, chunk := range chunks {
		for _, spread := range spreads {
			for seed := 1; seed <= seeds; seed++ {
				sets = append(sets, runSet{chunk: chunk, seed: int64(seed), spread: spread})
			}
		}
	}
	return sets
}

// sweep runs every set on at most workers goroutines. Each run owns its
// world, so nothing is shared but the result slice.
func sweep(ctx context.Context, base sand.Config, scene func(*sand.World), sets []runSet, maxTicks, workers int) ([]runResult, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	var mu sync.Mutex
	results := make([]runResult, 0, len(sets))
	for _, set := range sets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg := base
			cfg.ChunkSize = set.chunk
			cfg.Seed = set.seed
			cfg.Params.FireSpreadChance = set.spread
			started := time.Now()
			res := sand.Settle(cfg, scene, maxTicks)
			mu.Lock()
			results = append(results, runResult{set: set, result: res, elapsed: time.Since(started)})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		if v <= 0 {
			return nil, fmt.Errorf("value %d must be positive", v)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("chance %g outside [0,1]", v)
		}
		out = append(out, v)
	}
	return out, nil
}
