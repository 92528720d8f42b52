package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lexv0lk/transfer-engine/internal/cli"
	"github.com/Lexv0lk/transfer-engine/internal/pkg/logging"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(mainCtx); err != nil {
		logging.StdoutLogger.Error("transferd failed", "error", err.Error())
		stop()
		os.Exit(1)
	}
}
