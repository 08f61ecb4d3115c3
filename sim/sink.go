package sim

import "github.com/charmbracelet/log"

// Sink receives presentation updates: the running score and the final outcome.
type Sink interface {
	ScoreChanged(score int)
	Finished(outcome Outcome)
}

// MultiSink fans every update out to each sink in order.
type MultiSink []Sink

func (m MultiSink) ScoreChanged(score int) {
	for _, s := range m {
		s.ScoreChanged(score)
	}
}

func (m MultiSink) Finished(outcome Outcome) {
	for _, s := range m {
		s.Finished(outcome)
	}
}

// LogSink writes updates as structured log lines.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink returns a sink logging through logger.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (l *LogSink) ScoreChanged(score int) {
	l.logger.Debug("score changed", "score", score)
}

func (l *LogSink) Finished(outcome Outcome) {
	l.logger.Info("game finished", "outcome", outcome, "message", outcome.Message())
}
