// Package cmd implements the trendyol CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/donaldgifford/trendyol-seller/internal/config"
	"github.com/donaldgifford/trendyol-seller/internal/telemetry"
	"github.com/donaldgifford/trendyol-seller/pkg/logger"
	"github.com/donaldgifford/trendyol-seller/pkg/trendyol"
)

const (
	envPrefix         = "TRENDYOL"
	defaultConfigName = ".trendyol.yaml"
	flushTimeout      = 5 * time.Second
)

// app holds the state shared by one command tree. Each tree gets its own
// viper instance so trees built in tests do not share flags.
type app struct {
	v       *viper.Viper
	cfgFile string
}

var rootCmd = newRootCmd()

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command, canceling in-flight requests on SIGINT or
// SIGTERM.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "trendyol",
		Short: "CLI for the Trendyol seller API",
		Long: "trendyol is a command-line client for the Trendyol seller API.\n" +
			"It lists catalog data, products, orders, questions, claims and\n" +
			"settlements for a seller account.",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default $HOME/"+defaultConfigName+")")
	pf.String("seller-id", "", "seller (supplier) id")
	pf.String("api-key", "", "API key")
	pf.String("api-secret", "", "API secret")
	pf.String("environment", "", "API environment (production, sandbox)")
	pf.String("base-url", "", "override the API gateway URL")
	pf.Duration("timeout", 0, "per-request timeout")
	pf.String("output", "table", "output format (table, json)")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-format", "", "log format (text, json, console)")
	pf.String("otlp-endpoint", "", "OTLP gRPC endpoint for trace export")

	for _, name := range []string{
		"seller-id", "api-key", "api-secret", "environment", "base-url", "timeout",
		"output", "log-level", "log-format", "otlp-endpoint",
	} {
		cobra.CheckErr(a.v.BindPFlag(name, pf.Lookup(name)))
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		a.pingCmd(),
		a.brandsCmd(),
		a.categoriesCmd(),
		a.productsCmd(),
		a.ordersCmd(),
		a.questionsCmd(),
		a.claimsCmd(),
		a.settlementsCmd(),
		a.webhooksCmd(),
		versionCmd(),
	)

	return root
}

// readConfigFile returns the contents of the config file. Without --config
// the default file is optional.
func (a *app) readConfigFile() ([]byte, error) {
	path := a.cfgFile
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil
		}
		path = filepath.Join(home, defaultConfigName)
	}

	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return data, nil
}

// config parses the config file, overlays flags and TRENDYOL_* environment
// variables, then validates the result.
func (a *app) config() (*config.Config, error) {
	data, err := a.readConfigFile()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Parse(data)
	if err != nil {
		return nil, err
	}
	a.overlay(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func (a *app) overlay(cfg *config.Config) {
	str := func(key string, dst *string) {
		if a.v.IsSet(key) {
			*dst = a.v.GetString(key)
		}
	}
	str("seller-id", &cfg.Trendyol.SellerID)
	str("api-key", &cfg.Trendyol.APIKey)
	str("api-secret", &cfg.Trendyol.APISecret)
	str("environment", &cfg.Trendyol.Environment)
	str("base-url", &cfg.Trendyol.BaseURL)
	str("log-level", &cfg.Logging.Level)
	str("log-format", &cfg.Logging.Format)
	str("otlp-endpoint", &cfg.Telemetry.OTLPEndpoint)

	if a.v.IsSet("timeout") {
		if d := a.v.GetDuration("timeout"); d > 0 {
			cfg.Trendyol.Timeout = d
		}
	}
}

// newClient builds a client from the layered config. The returned func
// flushes pending trace spans and must be called when the command is done.
func (a *app) newClient(cmd *cobra.Command) (*trendyol.Client, func(), error) {
	cfg, err := a.config()
	if err != nil {
		return nil, nil, err
	}

	log := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)

	tp, shutdown, err := telemetry.Setup(cmd.Context(), cfg.Telemetry, Version)
	if err != nil {
		return nil, nil, fmt.Errorf("setting up telemetry: %w", err)
	}

	opts := append(cfg.ClientOptions(),
		trendyol.WithLogger(log),
		trendyol.WithTracerProvider(tp),
	)
	client := trendyol.New(cfg.Credentials(), opts...)

	done := func() {
		ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			log.Warn("flushing traces", "error", err)
		}
	}
	return client, done, nil
}

func (a *app) jsonOutput() bool {
	return a.v.GetString("output") == "json"
}
