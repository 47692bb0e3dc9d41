package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ha1tch/fsmviz/pkg/diagram"
	"github.com/ha1tch/fsmviz/pkg/render"
)

// FileConfig is the on-disk configuration:
//
//	[layout]
//	radius = 20
//	gap = 15
//	arrow_size = 10
//	margin = 10
//	scale = 1.5
//
//	[render]
//	font_size = 14
//	title = ""
type FileConfig struct {
	Layout diagram.Config `toml:"layout"`
	Render render.Options `toml:"render"`
}

// DefaultFileConfig returns the built-in defaults.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		Layout: diagram.DefaultConfig(),
		Render: render.DefaultOptions(),
	}
}

// LoadConfig reads a TOML config file over the defaults. An empty path
// returns the defaults. Keys missing from the file keep their default
// value; unknown keys are an error.
func LoadConfig(path string) (FileConfig, error) {
	cfg := DefaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Layout.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: [layout] %w", path, err)
	}
	if err := cfg.Render.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: [render] %w", path, err)
	}
	return cfg, nil
}
