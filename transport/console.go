package transport

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mwittig/logger-winston/config"
)

// ConsoleOptions configures a console transport.
type ConsoleOptions struct {
	Options `mapstructure:",squash"`

	NoColor   bool   `mapstructure:"no_color"`
	Timestamp bool   `mapstructure:"timestamp"`
	Output    string `mapstructure:"output" validate:"omitempty,oneof=stdout stderr"`
	// JSON writes raw event lines instead of the pretty console format.
	JSON bool `mapstructure:"json"`
}

type consoleTransport struct {
	opts  ConsoleOptions
	level zerolog.Level
	mu    sync.Mutex
	out   io.Writer
}

// NewConsole constructs a console transport writing to stdout or stderr.
func NewConsole(cfg config.TransportConfig) (Transport, error) {
	opts := ConsoleOptions{Timestamp: true}
	if err := decodeOptions(cfg, &opts); err != nil {
		return nil, fmt.Errorf("console transport: %w", err)
	}

	var out io.Writer = outputWriter(opts.Output)
	if !opts.JSON {
		out = consoleWriter(out, opts)
	}
	return &consoleTransport{
		opts:  opts,
		level: opts.MinLevel(),
		out:   out,
	}, nil
}

func (t *consoleTransport) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.out.Write(p)
}

func (t *consoleTransport) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < t.level {
		return len(p), nil
	}
	return t.Write(p)
}

func (t *consoleTransport) Name() string  { return t.opts.Name }
func (t *consoleTransport) Kind() string  { return "Console" }
func (t *consoleTransport) Label() string { return t.opts.Label }

func (t *consoleTransport) Level() zerolog.Level { return t.level }
func (t *consoleTransport) Close() error         { return nil }

func outputWriter(output string) *os.File {
	switch strings.ToLower(output) {
	case "stderr":
		return os.Stderr
	default:
		return os.Stdout
	}
}

// consoleWriter builds the pretty writer: short level tags, optional
// color, and a three-letter label tag for labeled transports.
func consoleWriter(out io.Writer, opts ConsoleOptions) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
		NoColor:    opts.NoColor,
		FormatTimestamp: func(i interface{}) string {
			if !opts.Timestamp || i == nil {
				return ""
			}
			return fmt.Sprintf("%s", i)
		},
		FormatLevel: func(i interface{}) string {
			lvl := levelTag(strings.ToUpper(fmt.Sprintf("%s", i)), !opts.NoColor)
			if tag := labelTag(opts.Label); tag != "" {
				if !opts.NoColor {
					return fmt.Sprintf("\033[34m[%s]\033[0m%s", tag, lvl)
				}
				return fmt.Sprintf("[%s]%s", tag, lvl)
			}
			return lvl
		},
		FormatMessage: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return fmt.Sprintf("%s", i)
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s:", i)
		},
		FormatFieldValue: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return fmt.Sprintf("%s", i)
		},
	}
}

func levelTag(lvl string, color bool) string {
	if color {
		switch lvl {
		case "DEBUG":
			return "\033[36m[DBG]\033[0m"
		case "INFO":
			return "\033[32m[INF]\033[0m"
		case "WARN":
			return "\033[33m[WRN]\033[0m"
		case "ERROR":
			return "\033[31m[ERR]\033[0m"
		case "FATAL":
			return "\033[35m[FTL]\033[0m"
		}
		return fmt.Sprintf("[%s]", lvl)
	}
	switch lvl {
	case "DEBUG":
		return "[DBG]"
	case "INFO":
		return "[INF]"
	case "WARN":
		return "[WRN]"
	case "ERROR":
		return "[ERR]"
	case "FATAL":
		return "[FTL]"
	}
	return fmt.Sprintf("[%s]", lvl)
}

func labelTag(label string) string {
	if label == "" || label == config.DefaultTopic || len(label) < 3 {
		return ""
	}
	return strings.ToUpper(label[:3])
}
