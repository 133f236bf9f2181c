package main

import (
	"fmt"

	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cyclonite69/shadowcheck-static-sub002/internal/config"
)

const envPrefix = "SHADOWCHECK"

func NewRootCommand() *cobra.Command {
	cfg := config.NewConfigurationWithOptionsAndDefaults()

	var configFile string

	root := &cobra.Command{
		Use:          "shadowcheck",
		Short:        "Compile and run wireless observation filters",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cobrautil.SyncViperPreRunE(envPrefix)(cmd, args); err != nil {
				return err
			}
			if err := loadConfigFile(cmd.Flags(), configFile); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := setupLogger(cfg); err != nil {
				return err
			}
			zap.S().Debugw("configuration loaded",
				"server", cfg.Server.DebugMap(),
				"query", cfg.Query.DebugMap(),
				"auth", cfg.Auth.DebugMap(),
			)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "YAML or JSON file with flag values keyed by flag name")
	registerGlobalFlags(root.PersistentFlags(), cfg)

	root.AddCommand(
		NewServeCommand(cfg),
		NewExplainCommand(cfg),
		NewQueryCommand(cfg),
		NewTokenCommand(cfg),
	)
	return root
}

func registerGlobalFlags(fs *pflag.FlagSet, cfg *config.Configuration) {
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (console, json)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	fs.StringVar(&cfg.Database.URL, "database-url", cfg.Database.URL, "postgres connection string")
	fs.Int32Var(&cfg.Database.MaxConns, "database-max-conns", cfg.Database.MaxConns, "maximum pool connections")
	fs.Int32Var(&cfg.Database.MinConns, "database-min-conns", cfg.Database.MinConns, "minimum idle pool connections")
	fs.DurationVar(&cfg.Database.ConnectTimeout, "database-connect-timeout", cfg.Database.ConnectTimeout, "timeout per connection attempt")
	fs.DurationVar(&cfg.Database.MaxConnectElapsed, "database-connect-retry", cfg.Database.MaxConnectElapsed, "total time spent retrying the initial connection")

	fs.Uint64Var(&cfg.Query.DefaultPageSize, "default-page-size", cfg.Query.DefaultPageSize, "network list page size")
	fs.Uint64Var(&cfg.Query.MaxPageSize, "max-page-size", cfg.Query.MaxPageSize, "upper bound for pageSize")
	fs.Uint64Var(&cfg.Query.GeospatialLimit, "geospatial-limit", cfg.Query.GeospatialLimit, "default observation points")
	fs.Uint64Var(&cfg.Query.MaxGeospatialLimit, "max-geospatial-limit", cfg.Query.MaxGeospatialLimit, "upper bound for the geospatial limit")
	fs.Uint64Var(&cfg.Query.TopNetworks, "top-networks", cfg.Query.TopNetworks, "rows in the top_networks aggregate")
	fs.Float64Var(&cfg.Query.Stationary.MaxDistanceMeters, "stationary-max-distance", cfg.Query.Stationary.MaxDistanceMeters, "spread in meters at which a network stops looking stationary")
	fs.Float64Var(&cfg.Query.Stationary.MaxSpanHours, "stationary-max-span", cfg.Query.Stationary.MaxSpanHours, "observation span in hours that counts fully")
	fs.Float64Var(&cfg.Query.Stationary.SaturationCount, "stationary-saturation", cfg.Query.Stationary.SaturationCount, "observation count at which density saturates")

	fs.BoolVar(&cfg.Auth.Enabled, "auth-enabled", cfg.Auth.Enabled, "require bearer tokens on /api/v1")
	fs.StringVar(&cfg.Auth.Secret, "auth-secret", cfg.Auth.Secret, "HMAC secret for bearer tokens")
}

// loadConfigFile applies file values to flags not set on the command line.
// Environment variables still win over the file.
func loadConfigFile(fs *pflag.FlagSet, path string) error {
	if path == "" {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var setErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if setErr != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		if err := fs.Set(f.Name, v.GetString(f.Name)); err != nil {
			setErr = fmt.Errorf("invalid value for %s in %s: %w", f.Name, path, err)
		}
	})
	return setErr
}

func setupLogger(cfg *config.Configuration) error {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	var zc zap.Config
	if cfg.LogFormat == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return nil
}
