package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dodocode/blathers/config"
	"github.com/dodocode/blathers/nookipedia"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *nookipedia.Client

	appVersion = "dev"

	// Command flags
	filterExpr string
	preset     string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "blathers",
	Short: "Query the Nookipedia encyclopedia from your terminal",
	Long: `blathers is a CLI for the Nookipedia API. It looks up villagers,
critters, and events for Animal Crossing: New Horizons, with expression
filters for narrowing results client-side.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records the build version for the version and update commands.
func SetVersion(version, built string) {
	appVersion = version
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, built)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create Nookipedia client
	client, err = nookipedia.NewClient(cfg.Nookipedia.APIKey,
		nookipedia.WithBaseURL(cfg.Nookipedia.URL),
		nookipedia.WithTimeout(time.Duration(cfg.Nookipedia.Timeout)*time.Second),
		nookipedia.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create Nookipedia client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; only color when stderr is a terminal
	useColor := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to the Nookipedia API",
	Long:  `Verify the configured API key by issuing a request against the Nookipedia API.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to Nookipedia at %s...\n", cfg.Nookipedia.URL)

	ctx := context.Background()
	if err := client.TestConnection(ctx); err != nil {
		return err
	}

	fmt.Println("✓ Connection successful!")
	fmt.Printf("- API version: %s\n", nookipedia.APIVersion)
	fmt.Printf("- Island hemisphere: %s\n", cfg.Island.Hemisphere)

	return nil
}

// getFilterExpression determines the filter expression to use, if any
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset > default
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if presetFilter, ok := cfg.Filter.Presets[preset]; ok {
			return presetFilter, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return cfg.Filter.DefaultExpression, nil
}
