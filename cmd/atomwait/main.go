package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/llxisdsh/atomwait/internal/cli"
)

const (
	cmdName   = "atomwait"
	shortDesc = "Drive and time the atomwait synchronization primitives."
	longDesc  = `Drive and time the atomwait synchronization primitives.

barrier   meets goroutines at a one-shot barrier and reports progress.
locks     times lock/unlock cycles under varying goroutine counts.
fairness  checks that the ticket lock admits goroutines in ticket order.
`
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
