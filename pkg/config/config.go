package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-orderform/pkg/order"
)

// EnvEndpoint overrides the configured endpoint when set.
const EnvEndpoint = "ORDERFORM_ENDPOINT"

//go:embed default.yaml
var defaultYAML []byte

// Config is the full application configuration.
type Config struct {
	Endpoint string          `yaml:"endpoint"`
	Timeout  time.Duration   `yaml:"timeout"`
	Messages Messages        `yaml:"messages"`
	Toppings []order.Topping `yaml:"toppings"`
	Theme    Theme           `yaml:"theme"`
	Web      Web             `yaml:"web"`
	Stub     Stub            `yaml:"stub"`
}

// Messages holds the fallback texts used when the endpoint reply carries none.
type Messages struct {
	Success string `yaml:"success"`
	Failure string `yaml:"failure"`
}

// Web configures the HTML form server. TemplatesDir, when set, holds an
// order_form.tpl that replaces the embedded page.
type Web struct {
	Addr         string `yaml:"addr"`
	TemplatesDir string `yaml:"templates_dir"`
}

// Stub configures the development order endpoint.
type Stub struct {
	Addr       string   `yaml:"addr"`
	OutOfStock []string `yaml:"out_of_stock"`
}

// Default returns the embedded configuration.
func Default() (Config, error) {
	var cfg Config
	if err := decode(bytes.NewReader(defaultYAML), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode defaults: %w", err)
	}
	return cfg, nil
}

// Load reads the defaults, overlays the file at path when path is not empty and
// applies environment overrides. The result is validated.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(path) != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: open %s: %w", path, err)
		}
		defer f.Close()
		if err := decode(f, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	cfg.applyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse overlays raw YAML onto the defaults without touching the environment.
func Parse(raw []byte) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}
	if err := decode(bytes.NewReader(raw), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvEndpoint); ok && strings.TrimSpace(v) != "" {
		c.Endpoint = strings.TrimSpace(v)
	}
}

// Validate checks the values the rest of the module relies on.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return ErrEndpointRequired
	}
	if c.Timeout < 0 {
		return ErrNegativeTimeout
	}
	seen := make(map[string]struct{}, len(c.Toppings))
	for i, t := range c.Toppings {
		id := strings.TrimSpace(t.ID)
		if id == "" {
			return fmt.Errorf("%w: entry %d has no id", ErrInvalidTopping, i)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidTopping, id)
		}
		seen[id] = struct{}{}
	}
	if v := c.Theme.Variant; v != "" {
		if _, ok := c.Theme.Variants[v]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownVariant, v)
		}
	}
	return nil
}

// Catalog builds the topping catalog in configured order.
func (c Config) Catalog() (order.Catalog, error) {
	catalog, err := order.NewCatalog(c.Toppings)
	if err != nil {
		return order.Catalog{}, fmt.Errorf("config: %w", err)
	}
	return catalog, nil
}
