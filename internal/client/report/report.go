// Package report defines the external sink that view failures are forwarded
// to, in addition to the view's own error state.
package report

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/studydash/internal/logging"
)

// Reporter receives one message per failure.
type Reporter interface {
	Report(ctx context.Context, message string)
}

// Func adapts a plain function to Reporter.
type Func func(ctx context.Context, message string)

func (f Func) Report(ctx context.Context, message string) { f(ctx, message) }

// Nop discards reports.
var Nop Reporter = Func(func(context.Context, string) {})

// LogReporter writes reports to a Logger at error level.
type LogReporter struct {
	log logging.Logger
}

func NewLogReporter(log logging.Logger) *LogReporter {
	return &LogReporter{log: log}
}

func (r *LogReporter) Report(ctx context.Context, message string) {
	r.log.Error(ctx, "view failure", "message", message)
}

// Recorder keeps every report in memory. Safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

func (r *Recorder) Report(_ context.Context, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

// Messages returns a copy of the recorded messages in arrival order.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}

// Multi fans a report out to several reporters in order.
func Multi(rs ...Reporter) Reporter {
	return Func(func(ctx context.Context, message string) {
		for _, r := range rs {
			r.Report(ctx, message)
		}
	})
}
