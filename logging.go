package listcrdt

import "go.uber.org/zap"

// logger is a package-level, nil-safe debug tracer. It defaults to a
// no-op logger so production callers pay nothing unless they opt in with
// SetLogger; this mirrors the structured-logging convention used
// throughout edirooss-zmux-server's redis client rather than inventing a
// bespoke tracing mechanism for a library this small.
var logger = zap.NewNop().Sugar()

// SetLogger installs l as the package's debug tracer. Integration
// routines log each placement decision (the item's id, the chosen dest
// and the resolved origin bounds) at Debug level; pass
// zap.NewNop().Sugar() (the default) or nil to silence tracing again.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	logger = l
}
