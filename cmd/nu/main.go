package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fennewald/nushell/internal/config"
	"github.com/fennewald/nushell/internal/shell"
)

func main() {
	exitCode := run()
	os.Exit(exitCode)
}

func run() int {
	cfg, exitResult := config.Parse(os.Args)
	if exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return shell.New(cfg).Run(ctx)
}
