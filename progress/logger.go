package progress

import (
	"go.uber.org/zap"

	marketplace "go-marketplace-core"
)

// Logger reports download progress through a structured zap logger. It
// implements models.ProgressCallback; wrap it with AsAsync for the
// context-aware client family.
type Logger struct {
	log *zap.Logger
}

// NewLogger creates a logging progress callback. A nil logger falls back to
// zap.NewNop
func NewLogger(log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{log: log}
}

// OnStart logs the start of the operation with the known total, if any
func (l *Logger) OnStart(total int64) {
	if total < 0 {
		l.log.Info("download started", zap.String("total", "unknown"))
		return
	}
	l.log.Info("download started", zap.String("total", marketplace.FormatBytes(total)))
}

// OnProgress logs the current position and percentage when the total is known
func (l *Logger) OnProgress(current, total int64) {
	fields := []zap.Field{zap.String("current", marketplace.FormatBytes(current))}
	if total > 0 {
		fields = append(fields,
			zap.String("total", marketplace.FormatBytes(total)),
			zap.Float64("percent", float64(current)/float64(total)*100))
	}
	l.log.Debug("download progress", fields...)
}

// OnComplete logs successful completion
func (l *Logger) OnComplete() {
	l.log.Info("download complete")
}

// OnError logs the failure with its triggering error
func (l *Logger) OnError(err error) {
	l.log.Error("download failed", zap.Error(err))
}
