package logging

import "log/slog"

// BuildListener writes build diagnostics to a slog.Logger.
type BuildListener struct {
	logger *slog.Logger
}

// NewBuildListener creates a BuildListener. A nil logger falls back to slog.Default.
func NewBuildListener(logger *slog.Logger) *BuildListener {
	if logger == nil {
		logger = slog.Default()
	}

	return &BuildListener{logger: logger}
}

// Error logs msg at error level with err as the "error" attribute.
func (l *BuildListener) Error(msg string, err error) {
	if err == nil {
		l.logger.Error(msg)

		return
	}

	l.logger.Error(msg, slog.String("error", err.Error()))
}
