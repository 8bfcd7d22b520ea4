package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/staffsight/staffsight/core/engine"
	"github.com/staffsight/staffsight/core/match"
	"github.com/staffsight/staffsight/core/metrics"
)

type Config struct {
	Data      DataConfig      `json:"data"`
	Engine    engine.Config   `json:"engine"`
	Match     match.Config    `json:"match"`
	Analytics AnalyticsConfig `json:"analytics"`
	Metrics   metrics.Config  `json:"metrics"`
	API       APIConfig       `json:"api"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides. The "." delimiter unflattens the
	// transformed keys so they merge over the nested file config.
	if err := k.Load(env.Provider("STAFF_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "staff_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Engine.SetDefaults()
	cfg.Match.SetDefaults()
	cfg.Analytics.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.API.SetDefaults()
	if err := cfg.Engine.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Match.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Analytics.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Data.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
