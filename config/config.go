//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config holds the runtime settings of pascal. Settings come from
// command line flags and PASCAL_* environment variables only.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/spf13/viper"
)

const EnvPrefix = "PASCAL"

// Config holds all configuration options for pascal.
type Config struct {
	TabWidth int    `mapstructure:"tab_width"` // spaces inserted by the Tab key
	Theme    string `mapstructure:"theme"`     // chroma style name
	LogFile  string `mapstructure:"log"`
	Debug    bool   `mapstructure:"debug"` // enables the log file
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		TabWidth: 4,
		Theme:    "monokai",
		LogFile:  defaultLogFile(),
	}
}

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pascallog"
	}
	return filepath.Join(home, ".pascallog")
}

// SetDefaults registers defaults and environment lookup on v.
func SetDefaults(v *viper.Viper) {
	defaults := Defaults()
	v.SetDefault("tab_width", defaults.TabWidth)
	v.SetDefault("theme", defaults.Theme)
	v.SetDefault("log", defaults.LogFile)
	v.SetDefault("debug", defaults.Debug)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
}

// Load reads the settings held by v and validates them.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("reading settings: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TabWidth < 1 || c.TabWidth > 16 {
		return fmt.Errorf("tab_width must be between 1 and 16, got %d", c.TabWidth)
	}
	if !slices.Contains(styles.Names(), c.Theme) {
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	return nil
}
