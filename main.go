package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dimaq12/minesweeper-term/game"
)

func main() {
	params, err := game.LoadParams(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "minesweeper:", err)
		game.Usage(os.Stderr)
		os.Exit(2)
	}

	closeLog, err := game.SetupLogging(params.LogFile, params.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "minesweeper:", err)
		os.Exit(2)
	}
	defer closeLog()
	log := game.Logger()

	session, err := game.NewSession(params.Rows, params.Cols, params.MineCount(), game.WithSeed(params.Seed))
	if err != nil {
		closeLog()
		fmt.Fprintln(os.Stderr, "minesweeper:", err)
		game.Usage(os.Stderr)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service := game.NewMinesweeperService(session)
	if err := service.Run(ctx); err != nil {
		log.WithError(err).Error("terminal failed")
		stop()
		closeLog()
		fmt.Fprintln(os.Stderr, "minesweeper:", err)
		os.Exit(1)
	}
}
