// Command fsmctl drives a state machine loaded from a definition file.
//
// It reads one action per line from standard input and prints every state
// change. The line "cancel" sends the cancel notification, "help" lists the
// actions available in the current state, and "quit" exits.
//
// Configuration comes from the environment (or a .env file):
//
//	FSM_DEFINITION  path to an .xml, .yaml, .yml or .json definition
//	APP_ENV         development, staging or production (default development)
//	LOG_LEVEL       overrides the environment's default log level
//
// A definition path given as the first argument takes precedence over
// FSM_DEFINITION.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			stop()
			os.Exit(1)
		}
	}
}
