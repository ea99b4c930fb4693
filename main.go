package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := LoadConfig(os.Getenv("CHOMP_CONFIG"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("log_level", config.LogLevel).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	geo, err := NewGeometry(config.XDim, config.YDim, config.ZDim)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid board shape")
	}

	solver := NewSolver(geo, NewMemoTable(), config.Workers)
	initial := geo.FullState()

	log.Info().
		Int("x_dim", geo.XDim).
		Int("y_dim", geo.YDim).
		Int("z_dim", geo.ZDim).
		Int("blocks", geo.Total).
		Int("workers", solver.workers).
		Msg("starting solve")

	start := time.Now()
	firstPlayerWins := solver.IsWinning(initial)
	picks := solver.WinningMoves(initial)

	log.Info().
		Dur("elapsed", time.Since(start)).
		Uint64("nodes", solver.Nodes()).
		Uint64("memo_hits", solver.MemoHits()).
		Int("memo_states", solver.memo.Count()).
		Int("winning_moves", len(picks)).
		Msg("solve complete")

	// The report itself goes to stdout: one boolean line, then one
	// line per winning first move.
	fmt.Printf("first player wins: %t\n", firstPlayerWins)
	for _, pick := range picks {
		fmt.Println(pick)
	}
}
