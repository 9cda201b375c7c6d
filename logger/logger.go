package logger

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/mwittig/logger-winston/transport"
)

// Logger is a per-topic logger holding an ordered set of owned
// transports. Level filtering happens per transport, so one topic can
// log debug to a file while the console stays at info.
type Logger struct {
	logger     zerolog.Logger
	topic      string
	transports []transport.Transport
}

func newLogger(topic string, transports []transport.Transport) *Logger {
	var w io.Writer
	switch len(transports) {
	case 0:
		// A container with no transports logs nowhere. Not an error.
		w = io.Discard
	case 1:
		w = transports[0]
	default:
		writers := make([]io.Writer, len(transports))
		for i, t := range transports {
			writers[i] = t
		}
		w = zerolog.MultiLevelWriter(writers...)
	}

	zl := zerolog.New(w).Level(zerolog.TraceLevel).
		With().Timestamp().Str(FieldTopic, topic).Logger()

	return &Logger{
		logger:     zl,
		topic:      topic,
		transports: transports,
	}
}

// Topic returns the topic this logger was resolved for.
func (l *Logger) Topic() string { return l.topic }

// Transports returns the logger's transports in configuration order.
func (l *Logger) Transports() []transport.Transport {
	out := make([]transport.Transport, len(l.transports))
	copy(out, l.transports)
	return out
}

// GetLogger returns the underlying zerolog.Logger.
func (l *Logger) GetLogger() zerolog.Logger {
	return l.logger
}

// WithFields returns a logger with additional fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	zc := l.logger.With()
	for k, v := range fields {
		zc = zc.Interface(k, v)
	}
	return &Logger{logger: zc.Logger(), topic: l.topic, transports: l.transports}
}

// WithError returns a logger with an error field.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		logger:     l.logger.With().Err(err).Logger(),
		topic:      l.topic,
		transports: l.transports,
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	event := l.logger.Debug()
	addFields(event, fields...)
	event.Msg(msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	event := l.logger.Info()
	addFields(event, fields...)
	event.Msg(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	event := l.logger.Warn()
	addFields(event, fields...)
	event.Msg(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	event := l.logger.Error()
	addFields(event, fields...)
	event.Msg(msg)
}

// Fatal logs a fatal message and exits.
func (l *Logger) Fatal(msg string, fields ...map[string]interface{}) {
	event := l.logger.Fatal()
	addFields(event, fields...)
	event.Msg(msg)
}

// Close closes every owned transport and returns the first error.
func (l *Logger) Close() error {
	var first error
	for _, t := range l.transports {
		if err := t.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func addFields(event *zerolog.Event, fields ...map[string]interface{}) {
	for _, fm := range fields {
		for k, v := range fm {
			event.Interface(k, v)
		}
	}
}
