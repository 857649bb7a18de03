package settings

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel        = "info"
	defaultInitialCapacity = 16
)

var validate = validator.New()

// Default returns the configuration used when a key is absent from the file.
func Default() *Config {
	return &Config{
		Logger: Logger{
			LogLevel: defaultLogLevel,
		},
		Queue: Queue{
			InitialCapacity: defaultInitialCapacity,
			Backend:         BackendRing,
		},
	}
}

// Load reads a YAML file and overlays it on Default.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	return Parse(raw)
}

// Parse decodes YAML content, overlays it on Default and validates the result.
func Parse(raw []byte) (*Config, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create config decoder")
	}
	if err := decoder.Decode(doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints declared in struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
