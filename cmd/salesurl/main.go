// cmd/salesurl/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/law-makers/salesurl/internal/cli"
)

func main() {
	// An interrupt cancels the run; the converter checks it before touching output.json
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.Execute(ctx)
}
