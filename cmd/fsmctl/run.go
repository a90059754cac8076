package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/statebus/pkg/broadcast"
	"github.com/dmitrymomot/statebus/pkg/config"
	"github.com/dmitrymomot/statebus/pkg/controller"
	"github.com/dmitrymomot/statebus/pkg/environment"
	"github.com/dmitrymomot/statebus/pkg/facade"
	"github.com/dmitrymomot/statebus/pkg/injector"
	"github.com/dmitrymomot/statebus/pkg/logger"
	"github.com/dmitrymomot/statebus/pkg/observer"
	"github.com/dmitrymomot/statebus/pkg/statemachine"
)

const (
	serviceName = "fsmctl"

	// inputNote carries one line of user input as its type.
	inputNote = "fsmctl/input"

	changesRelay = "fsmctl/changes"
)

var errMissingDefinition = errors.New("no definition file: set FSM_DEFINITION or pass a path")

type appConfig struct {
	Definition string `env:"FSM_DEFINITION"`
	Env        string `env:"APP_ENV" envDefault:"development"`
	LogLevel   string `env:"LOG_LEVEL"`
	Buffer     int    `env:"FSM_CHANGES_BUFFER" envDefault:"64"`
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Definition = args[0]
	}
	if cfg.Definition == "" {
		return errMissingDefinition
	}

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithOutput(stderr),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	log := logger.New(opts...)
	ctx = environment.WithContext(ctx, environment.Parse(cfg.Env))

	def, err := injector.LoadFile(ctx, cfg.Definition)
	if err != nil {
		return err
	}

	out := &syncWriter{w: stdout}
	f := facade.New(facade.WithLogger(log), facade.WithKey(serviceName))

	changes := broadcast.NewMemoryBroadcaster[observer.Notification](cfg.Buffer, broadcast.WithLogger(log))
	printed := printChanges(ctx, changes.Subscribe(ctx), out)
	defer func() {
		_ = changes.Close()
		<-printed
	}()

	relay := broadcast.NewRelay(changesRelay, changes, []string{statemachine.Changed}, broadcast.WithRelayLogger(log))
	if err := f.RegisterMediator(ctx, relay); err != nil {
		return err
	}
	defer f.RemoveMediator(ctx, changesRelay)

	sm, err := injector.New(def, injector.WithLogger(log)).Inject(ctx, f)
	if err != nil {
		return err
	}

	f.RegisterCommand(inputNote, func() controller.Command {
		return &inputCommand{notifier: f, machine: sm, out: out}
	})

	log.InfoContext(ctx, "state machine ready",
		slog.String("definition", cfg.Definition),
		logger.State(def.Initial),
	)

	lines := readLines(stdin)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			line = strings.TrimSpace(line)
			switch line {
			case "":
				continue
			case "quit", "exit":
				return nil
			}
			if err := f.SendNotification(ctx, inputNote, nil, line); err != nil {
				log.ErrorContext(ctx, "input failed", slog.String("input", line), logger.Error(err))
			}
		}
	}
}

// inputCommand interprets one line of user input.
type inputCommand struct {
	notifier observer.Notifier
	machine  *statemachine.StateMachine
	out      io.Writer
}

func (c *inputCommand) Execute(ctx context.Context, n observer.Notification) error {
	switch input := n.Type(); input {
	case "cancel":
		return statemachine.SendCancel(ctx, c.notifier)
	case "help":
		c.printActions(ctx)
		return nil
	default:
		return statemachine.SendAction(ctx, c.notifier, input, nil)
	}
}

func (c *inputCommand) printActions(ctx context.Context) {
	cur := c.machine.CurrentState()
	if cur == nil {
		fmt.Fprintln(c.out, "no current state")
		return
	}

	actions := make([]string, 0)
	for action, target := range cur.Transitions() {
		if environment.IsDevelopment(ctx) {
			action += " -> " + target
		}
		actions = append(actions, action)
	}
	slices.Sort(actions)
	fmt.Fprintf(c.out, "%s: %s\n", cur.Name(), strings.Join(actions, ", "))
}

// printChanges writes every relayed state change to out. The returned channel
// is closed once sub is closed.
func printChanges(ctx context.Context, sub broadcast.Subscriber[observer.Notification], out io.Writer) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range sub.Receive(ctx) {
			fmt.Fprintf(out, "state: %s\n", msg.Data.Type())
		}
	}()
	return done
}

func readLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
