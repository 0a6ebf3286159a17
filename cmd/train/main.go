// Command train plays robot-only hands and tallies how each seat fares.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"github.com/fatih/color"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/shangdaren/consts"
	mconsts "github.com/ratel-online/shangdaren/mahjong/consts"
	"github.com/ratel-online/shangdaren/mahjong/game"
	"golang.org/x/sync/errgroup"
)

var (
	games   = flag.Int("games", 1000, "hands to play")
	workers = flag.Int("workers", runtime.NumCPU(), "hands played at once")
	seed    = flag.Int64("seed", 1, "seed of the first hand, hand i uses seed+i")
)

var lineup = []mconsts.Strategy{mconsts.Level1, mconsts.Random, mconsts.Random}

type tally struct {
	sync.Mutex
	wins  [consts.MaxPlayers]int
	draws int
}

func (t *tally) add(winner int) {
	t.Lock()
	defer t.Unlock()
	if winner == mconsts.NoWinner {
		t.draws++
		return
	}
	t.wins[winner]++
}

func play(seed int64) (int, error) {
	g := game.New(rand.New(rand.NewSource(seed)))
	for _, strategy := range lineup {
		if _, err := g.AddRobot(strategy); err != nil {
			return 0, err
		}
	}
	if err := g.Start(); err != nil {
		return 0, err
	}
	return g.Winner(), nil
}

func main() {
	flag.Parse()

	result := &tally{}
	group, _ := errgroup.WithContext(context.Background())
	group.SetLimit(*workers)
	for i := 0; i < *games; i++ {
		s := *seed + int64(i)
		group.Go(func() error {
			winner, err := play(s)
			if err != nil {
				return fmt.Errorf("hand %d: %w", s, err)
			}
			result.add(winner)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		log.Error(err)
		return
	}

	title := color.New(color.FgHiWhite, color.Bold).SprintfFunc()
	best := color.New(color.FgHiGreen).SprintfFunc()
	fmt.Println(title("%d hands", *games))
	for i, strategy := range lineup {
		line := fmt.Sprintf("seat %d %-7s wins %6d  %5.1f%%", i, strategy, result.wins[i], percent(result.wins[i], *games))
		if strategy == mconsts.Level1 {
			line = best(line)
		}
		fmt.Println(line)
	}
	fmt.Printf("draws          %6d  %5.1f%%\n", result.draws, percent(result.draws, *games))
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) * 100 / float64(total)
}
