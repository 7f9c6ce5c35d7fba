package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-orderform/pkg/order"
)

func TestDefault_MatchesBuiltInCatalog(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	if diff := cmp.Diff(order.DefaultToppings(), cfg.Toppings); diff != "" {
		t.Fatalf("toppings mismatch (-want +got):\n%s", diff)
	}
	if cfg.Timeout != 0 {
		t.Fatalf("timeout = %v, want none", cfg.Timeout)
	}
	if cfg.Messages.Success != "Thank you for your order!" || cfg.Messages.Failure != "Something went wrong" {
		t.Fatalf("unexpected messages: %+v", cfg.Messages)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestParse_OverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
endpoint: https://pizza.example.com/orders
timeout: 5s
toppings:
  - id: olives
    label: Olives
stub:
  out_of_stock: ["olives"]
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Endpoint != "https://pizza.example.com/orders" {
		t.Fatalf("endpoint = %q", cfg.Endpoint)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("timeout = %v", cfg.Timeout)
	}
	if diff := cmp.Diff([]order.Topping{{ID: "olives", Label: "Olives"}}, cfg.Toppings); diff != "" {
		t.Fatalf("toppings mismatch (-want +got):\n%s", diff)
	}
	if cfg.Web.Addr != ":8080" {
		t.Fatalf("web addr should keep default, got %q", cfg.Web.Addr)
	}
	if diff := cmp.Diff([]string{"olives"}, cfg.Stub.OutOfStock); diff != "" {
		t.Fatalf("out of stock mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	if _, err := Parse([]byte("endpont: typo\n")); err == nil {
		t.Fatalf("expected unknown key to be rejected")
	}
}

func TestValidate(t *testing.T) {
	base, err := Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{name: "empty endpoint", mutate: func(c *Config) { c.Endpoint = "  " }, want: ErrEndpointRequired},
		{name: "negative timeout", mutate: func(c *Config) { c.Timeout = -time.Second }, want: ErrNegativeTimeout},
		{name: "empty topping id", mutate: func(c *Config) { c.Toppings = []order.Topping{{Label: "x"}} }, want: ErrInvalidTopping},
		{
			name: "duplicate topping id",
			mutate: func(c *Config) {
				c.Toppings = []order.Topping{{ID: "1"}, {ID: "1"}}
			},
			want: ErrInvalidTopping,
		},
		{name: "unknown variant", mutate: func(c *Config) { c.Theme.Variant = "neon" }, want: ErrUnknownVariant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.Toppings = append([]order.Topping(nil), base.Toppings...)
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orderform.yaml")
	if err := os.WriteFile(path, []byte("endpoint: http://file.example/api/order\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Endpoint != "http://file.example/api/order" {
		t.Fatalf("endpoint = %q", cfg.Endpoint)
	}

	t.Setenv(EnvEndpoint, "http://env.example/api/order")
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("load with env: %v", err)
	}
	if cfg.Endpoint != "http://env.example/api/order" {
		t.Fatalf("env override not applied, got %q", cfg.Endpoint)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not exist", err)
	}
}

func TestConfig_Catalog(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if catalog.Len() != 5 {
		t.Fatalf("catalog len = %d", catalog.Len())
	}
	if got, ok := catalog.Lookup("3"); !ok || got.Label != "Pineapple" {
		t.Fatalf("lookup 3 = %+v, %v", got, ok)
	}
}
