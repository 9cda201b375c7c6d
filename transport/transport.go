package transport

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"

	"github.com/mwittig/logger-winston/config"
)

// Transport is a level-aware log sink owned by a single logger. Each
// transport filters events against its own minimum level; the owning
// logger itself does no level filtering.
type Transport interface {
	zerolog.LevelWriter

	// Name returns the configured transport key, discriminator included.
	Name() string
	// Kind returns the capitalized transport kind, e.g. "Console".
	Kind() string
	// Label returns the transport label; it defaults to the owning topic.
	Label() string
	// Level returns the transport's minimum level.
	Level() zerolog.Level
	// Close releases any resources held by the transport.
	Close() error
}

// Options carries the cross-cutting settings shared by every transport
// kind. Kind-specific option structs embed it.
type Options struct {
	Level string `mapstructure:"level"`
	Label string `mapstructure:"label"`
	Name  string `mapstructure:"name"`
}

// MinLevel parses the configured level. An empty level lets everything
// through; an invalid one degrades to info, matching the framework.
func (o Options) MinLevel() zerolog.Level {
	if o.Level == "" {
		return zerolog.TraceLevel
	}
	level, err := zerolog.ParseLevel(o.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeOptions decodes free-form transport options into a typed option
// struct and validates it.
func decodeOptions(cfg config.TransportConfig, out any) error {
	if err := mapstructure.Decode(map[string]any(cfg), out); err != nil {
		return err
	}
	return validate.Struct(out)
}
