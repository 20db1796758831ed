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
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pascal-editor/pascal/commander"
	"github.com/pascal-editor/pascal/config"
	"github.com/pascal-editor/pascal/editor"
	"github.com/pascal-editor/pascal/log"
	"github.com/pascal-editor/pascal/screen"
	pascal "github.com/pascal-editor/pascal/types"
)

const name = "pascal"

// Build information injected via ldflags at build time.
var version = "0.1.0"

func newRootCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:          name + " [file]",
		Short:        "A modal terminal text editor",
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			var fileName string
			if len(args) == 1 {
				fileName = args[0]
			}
			return run(cfg, fileName)
		},
	}
	defaults := config.Defaults()
	cmd.Flags().Int("tab-width", defaults.TabWidth, "spaces inserted by the Tab key")
	cmd.Flags().String("theme", defaults.Theme, "syntax highlighting theme")
	cmd.Flags().String("log", defaults.LogFile, "log file")
	cmd.Flags().Bool("debug", false, "write a log file")

	config.SetDefaults(v)
	_ = v.BindPFlag("tab_width", cmd.Flags().Lookup("tab-width"))
	_ = v.BindPFlag("theme", cmd.Flags().Lookup("theme"))
	_ = v.BindPFlag("log", cmd.Flags().Lookup("log"))
	_ = v.BindPFlag("debug", cmd.Flags().Lookup("debug"))
	return cmd
}

func run(cfg config.Config, fileName string) error {
	// Open a log file.
	if cfg.Debug {
		closeLog, err := log.Init(cfg.LogFile)
		if err != nil {
			return err
		}
		defer closeLog()
		log.SetMinLevel(log.LevelDebug)
	}
	log.Info(log.CatConfig, "starting", "version", version, "tab_width", cfg.TabWidth, "theme", cfg.Theme)

	// The editor manages all text manipulation.
	e := editor.NewEditor(func(path string) pascal.Lexer {
		return editor.NewChromaHighlighter(path, cfg.Theme)
	})

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e, commander.SystemClipboard{}, cfg.TabWidth)

	if fileName != "" {
		if info, err := os.Stat(fileName); err == nil && info.IsDir() {
			return fmt.Errorf("%s is a directory", fileName)
		}
		if err := e.ReadFile(fileName); err != nil {
			log.ErrorErr(log.CatIO, "read failed", err, "path", fileName)
			c.SetMessage(err.Error())
		}
	}

	// Create a screen to manage display.
	s, err := screen.NewScreen(name, version)
	if err != nil {
		return err
	}
	defer s.Close()

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			log.Debug(log.CatInput, "event failed", "error", err)
		}
	}
	log.Info(log.CatEditor, "exiting")
	return nil
}

func main() {
	if err := newRootCommand(viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}
