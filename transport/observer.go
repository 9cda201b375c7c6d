package transport

import (
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// The diagnostic sink receives transport runtime errors. It defaults to
// plain JSON on stderr so a broken transport still leaves a trace.
var (
	diagMu   sync.RWMutex
	diagSink = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// SetDiagnosticSink replaces the diagnostic sink. Tests use this to
// capture transport errors.
func SetDiagnosticSink(l zerolog.Logger) {
	diagMu.Lock()
	defer diagMu.Unlock()
	diagSink = l
}

func diag() zerolog.Logger {
	diagMu.RLock()
	defer diagMu.RUnlock()
	return diagSink
}

// observedTransport swallows write errors and panics from the wrapped
// transport, reporting them to the diagnostic sink. The logging call
// site always sees a successful write.
type observedTransport struct {
	Transport
	topic string
	id    string
}

// Observe wraps a transport so runtime errors are reported against the
// owning topic and the transport's configured name, and never propagate.
func Observe(t Transport, topic string) Transport {
	return &observedTransport{
		Transport: t,
		topic:     topic,
		id:        uuid.NewString(),
	}
}

func (o *observedTransport) Write(p []byte) (n int, err error) {
	return o.WriteLevel(zerolog.NoLevel, p)
}

func (o *observedTransport) WriteLevel(level zerolog.Level, p []byte) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			o.report("transport panicked", nil, r)
			n, err = len(p), nil
		}
	}()

	if _, werr := o.Transport.WriteLevel(level, p); werr != nil {
		o.report("transport write failed", werr, nil)
	}
	return len(p), nil
}

func (o *observedTransport) report(msg string, err error, panicked any) {
	sink := diag()
	ev := sink.Error().
		Str("transport", o.Name()).
		Str("kind", o.Kind()).
		Str("instance_id", o.id).
		Str("topic", o.topic)
	if err != nil {
		ev = ev.Err(err)
	}
	if panicked != nil {
		ev = ev.Interface("panic", panicked)
	}
	ev.Msg(msg)
}
