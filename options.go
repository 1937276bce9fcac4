package supertrie

import (
	"log/slog"

	"github.com/exacttw/supertrie/internal/reorder"
	"github.com/exacttw/supertrie/internal/trie"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	policy           RebuildPolicy
	fastPath         bool
}

// Option configures an Index.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &supertrie.BasicMetricsCollector{}
//	idx, _ := supertrie.New(n, w, supertrie.WithMetricsCollector(metrics))
//	// ... use idx ...
//	stats := metrics.GetStats()
//	fmt.Printf("Queries: %d, pruned nodes: %d\n", stats.QueryCount, stats.QueryPruned)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithRebuildPolicy sets when the trie is rebuilt with a fresh vertex order.
// Pass nil to restore the default, DoublingPolicy(DefaultMinRebuild).
func WithRebuildPolicy(p RebuildPolicy) Option {
	return func(o *options) {
		if p == nil {
			p = DoublingPolicy(DefaultMinRebuild)
		}
		o.policy = p
	}
}

// WithoutReordering keeps vertices in ascending id order for the lifetime
// of the index.
func WithoutReordering() Option {
	return func(o *options) {
		o.policy = NeverRebuild()
	}
}

// WithFastPath forces the word-level pruning path on or off. By default it
// is enabled when the CPU has a hardware population count.
func WithFastPath(enabled bool) Option {
	return func(o *options) {
		o.fastPath = enabled
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		policy:           reorder.Doubling{Min: reorder.DefaultMinRebuild},
		fastPath:         trie.FastPathSupported(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
