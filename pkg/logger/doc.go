// Package logger builds *slog.Logger instances for fsm binaries and provides
// attribute helpers that keep key names consistent across packages.
//
// New creates a logger configured by Option functions:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   - WithLevel – minimum slog.Level; ParseLevel converts level names.
//   - WithOutput – destination, stderr by default.
//   - WithAttr – static attributes added to every record.
//   - WithContextValue – attributes pulled from context.Context on *Context calls.
//   - WithDevelopment / WithStaging / WithProduction / WithEnvironment – presets.
//
// NewNop returns a logger that discards everything; it is the default trace
// sink of statemachine.Machine.
//
// # Usage
//
//	log := logger.New(logger.WithDevelopment("fsm"))
//	sm, _ := statemachine.New(Idle, table, statemachine.WithLogger(log))
//	log.Info("machine ready", logger.State(sm.CurrentState()))
//
// Attribute helpers such as Machine, State, FromState, Event and Error return
// slog.Attr values; Error and Errors return an empty Attr for nil errors so
// they can be passed unconditionally.
package logger
