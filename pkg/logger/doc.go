// Package logger builds *slog.Logger values for statebus components and
// keeps attribute naming consistent across them.
//
// New creates a logger from functional options: output format (text or
// json), minimum level, static attributes and ContextExtractor callbacks that
// pull attributes from the context passed to the *Context logging methods.
// Every component in statebus (view, controller, facade, statemachine)
// accepts a logger through its own WithLogger option and falls back to
// Discard when none is supplied.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "fsmctl"),
//	    logger.WithLevelName(cfg.LogLevel),
//	)
//
//	f := facade.New(facade.WithLogger(log))
//
// Attribute helpers such as Notification, Mediator, State, Action and
// Transition return slog.Attr values with fixed keys:
//
//	log.DebugContext(ctx, "transition vetoed",
//	    logger.Transition(cur.Name(), next.Name()),
//	)
//
// # Error Handling
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally. WithFormat and WithLevelName panic on invalid input
// so misconfiguration stops the process at startup.
package logger
