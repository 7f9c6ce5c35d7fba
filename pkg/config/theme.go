package config

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

const themeVersion = "1.0.0"

// Theme selects the visual tokens handed to the HTML renderer.
type Theme struct {
	Name     string                       `yaml:"name"`
	Variant  string                       `yaml:"variant"`
	Tokens   map[string]string            `yaml:"tokens"`
	Variants map[string]map[string]string `yaml:"variants"`
	Assets   string                       `yaml:"assets"`
}

// Manifest converts the theme section into a go-theme manifest.
func (t Theme) Manifest() *theme.Manifest {
	manifest := &theme.Manifest{
		Name:    t.name(),
		Version: themeVersion,
		Tokens:  copyTokens(t.Tokens),
		Assets: theme.Assets{
			Prefix: strings.TrimRight(t.Assets, "/"),
		},
	}
	if len(t.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(t.Variants))
		for name, tokens := range t.Variants {
			manifest.Variants[name] = theme.Variant{Tokens: copyTokens(tokens)}
		}
	}
	return manifest
}

// RendererConfig registers the manifest with a go-theme registry and derives
// the renderer configuration for the selected variant. Variant tokens override
// base tokens; every token is also exposed as a "--name" CSS variable.
func (t Theme) RendererConfig() (*theme.RendererConfig, error) {
	manifest := t.Manifest()

	var variant theme.Variant
	if t.Variant != "" {
		v, ok := manifest.Variants[t.Variant]
		if !ok {
			return nil, fmt.Errorf("%w: %q has no variant %q", ErrUnknownVariant, manifest.Name, t.Variant)
		}
		variant = v
	}

	registry := theme.NewRegistry()
	if err := registry.Register(manifest); err != nil {
		return nil, fmt.Errorf("config: register theme %q: %w", manifest.Name, err)
	}

	tokens := copyTokens(manifest.Tokens)
	if tokens == nil && len(variant.Tokens) > 0 {
		tokens = make(map[string]string, len(variant.Tokens))
	}
	for key, value := range variant.Tokens {
		tokens[key] = value
	}

	prefix := manifest.Assets.Prefix
	return &theme.RendererConfig{
		Theme:   manifest.Name,
		Variant: t.Variant,
		Tokens:  tokens,
		CSSVars: cssVars(tokens),
		AssetURL: func(key string) string {
			if key == "" || prefix == "" {
				return ""
			}
			return prefix + "/" + strings.TrimLeft(key, "/")
		},
	}, nil
}

func (t Theme) name() string {
	if name := strings.TrimSpace(t.Name); name != "" {
		return name
	}
	return "orderform"
}

func cssVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		out["--"+strings.TrimPrefix(key, "--")] = value
	}
	return out
}

func copyTokens(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
