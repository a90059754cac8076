// Package environment names the deployment environment a process runs in
// and carries it through context.Context.
//
// Parse accepts full names and the short aliases "dev", "stage" and "prod".
// The logger package uses it to pick its presets, and LoggerExtractor adds
// the environment found in a context to every log record.
//
//	ctx = environment.WithContext(ctx, environment.Parse(cfg.Env))
//	if environment.IsDevelopment(ctx) {
//	    // verbose tracing of notifications
//	}
//
// All helpers return the zero value ("") for missing data and never fail.
package environment
