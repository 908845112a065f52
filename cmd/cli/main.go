package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/newsroom/internal/admincli"
	"github.com/dmitrijs2005/newsroom/internal/server/config"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"help"}
	}

	cfg, err := config.Load(args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	app := admincli.NewApp(cfg, os.Stdin, os.Stdout)
	err = app.Run(ctx, args[0], args[1:])
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, admincli.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
