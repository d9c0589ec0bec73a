// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/l3montree-dev/incidentscan/config"
	"github.com/l3montree-dev/incidentscan/shared"
)

// flags that share their environment variable with the server
var envKeys = map[string]string{
	"log-level":      "LOG_LEVEL",
	"model":          "EXTRACTION_MODEL",
	"schema-version": "EXTRACTION_SCHEMA_VERSION",
	"timeout":        "EXTRACTION_TIMEOUT",
}

var rootCmd = &cobra.Command{
	Use:          "incidentscan-cli",
	Short:        "Management cli",
	SilenceUsage: true,
	Long: `The incidentscan cli manages the incident database and runs extractions
locally. It reads the same environment variables (and .env file) as the server,
flags take precedence.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		shared.LoadConfig() // nolint: errcheck
		if err := initializeConfig(cmd); err != nil {
			return err
		}
		initLogger(viper.GetString("log-level"))
		return nil
	},
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "Set the log level. Options: debug, info, warn, error")
}

func initLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      lvl,
			TimeFormat: time.Kitchen,
		}),
	))
}

func initializeConfig(cmd *cobra.Command) error {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for key, env := range envKeys {
		if err := viper.BindEnv(key, env); err != nil {
			return fmt.Errorf("could not bind %s: %w", env, err)
		}
	}

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := viper.BindPFlag(f.Name, f); err != nil && bindErr == nil {
			bindErr = fmt.Errorf("could not bind flag %s: %w", f.Name, err)
		}
	})
	return bindErr
}

// cliConfig is the server configuration with flag overrides applied
func cliConfig() config.AppConfig {
	cfg := config.FromEnv()
	if model := viper.GetString("model"); model != "" {
		cfg.Model = model
	}
	if version := viper.GetString("schema-version"); version != "" {
		cfg.SchemaVersion = version
	}
	if timeout := viper.GetDuration("timeout"); timeout > 0 {
		cfg.ExtractionTimeout = timeout
	}
	return cfg
}
