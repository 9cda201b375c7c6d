package transport

import (
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mwittig/logger-winston/config"
	"github.com/mwittig/logger-winston/util"
)

// FileOptions configures a file transport. Rotation is handled by
// lumberjack; sizes are megabytes, ages are days.
type FileOptions struct {
	Options `mapstructure:",squash"`

	Filename   string `mapstructure:"filename" validate:"required"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
	LocalTime  bool   `mapstructure:"local_time"`
}

// ApplyDefaults applies default rotation settings.
func (o *FileOptions) ApplyDefaults() {
	if o.MaxSize == 0 {
		o.MaxSize = 100
	}
	if o.MaxBackups == 0 {
		o.MaxBackups = 3
	}
	if o.MaxAge == 0 {
		o.MaxAge = 28
	}
}

type fileTransport struct {
	opts  FileOptions
	level zerolog.Level
	out   *lumberjack.Logger
}

// NewFile constructs a rotating file transport. Events are written as
// raw JSON lines. The max_size option also accepts human-readable sizes
// such as "10MB".
func NewFile(cfg config.TransportConfig) (Transport, error) {
	if s, ok := cfg["max_size"].(string); ok {
		cfg = cfg.Clone()
		cfg["max_size"] = util.ParseSizeMB(s, 0)
	}

	var opts FileOptions
	if err := decodeOptions(cfg, &opts); err != nil {
		return nil, fmt.Errorf("file transport: %w", err)
	}
	opts.ApplyDefaults()

	return &fileTransport{
		opts:  opts,
		level: opts.MinLevel(),
		out: &lumberjack.Logger{
			Filename:   opts.Filename,
			MaxSize:    opts.MaxSize,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAge,
			Compress:   opts.Compress,
			LocalTime:  opts.LocalTime,
		},
	}, nil
}

func (t *fileTransport) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

func (t *fileTransport) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < t.level {
		return len(p), nil
	}
	return t.Write(p)
}

func (t *fileTransport) Name() string  { return t.opts.Name }
func (t *fileTransport) Kind() string  { return "File" }
func (t *fileTransport) Label() string { return t.opts.Label }

func (t *fileTransport) Level() zerolog.Level { return t.level }
func (t *fileTransport) Close() error         { return t.out.Close() }
