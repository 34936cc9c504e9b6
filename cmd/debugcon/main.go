// Package main provides the debugcon CLI entry point. debugcon is an
// embeddable interactive command console; this binary runs it as a
// standalone shell.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"debugcon/internal/engine"
	"debugcon/internal/logger"
	"debugcon/internal/output"
	"debugcon/internal/shell"
	"debugcon/internal/version"
)

var (
	logLevel    string
	logFile     string
	testMode    bool
	plainOutput bool
	historySize int
)

// rootCmd starts the interactive console when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "debugcon",
	Short: "debugcon - embeddable interactive command console",
	Long: `debugcon is a lightweight in-process debug console. It parses free-form
text input into command invocations, dispatches them to registered handlers,
and keeps a navigable command history with suggestion lookup.`,
	RunE: runShell,
}

// versionCmd prints the build version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.String())
	},
}

func main() {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: warn]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")
	rootCmd.PersistentFlags().BoolVar(&plainOutput, "plain", false, "Disable styled output")
	rootCmd.PersistentFlags().IntVar(&historySize, "history-size", 100, "Maximum number of retained history entries")

	for _, flag := range []string{"log-level", "log-file", "test-mode", "plain", "history-size"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
			os.Exit(1)
		}
	}
	viper.SetEnvPrefix("DEBUGCON")
	viper.AutomaticEnv()

	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := logger.Configure(logLevel, logFile, testMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func runShell(_ *cobra.Command, _ []string) error {
	logger.Info("Starting debugcon", "version", version.Version)

	options := []output.Option{}
	if plainOutput || testMode {
		options = append(options, output.PlainText())
	}
	sink := output.NewPrinter(options...)

	eng, err := engine.New(engine.Config{
		MaxHistorySize: viper.GetInt("history-size"),
		Sink:           sink,
	})
	if err != nil {
		return fmt.Errorf("console setup failed: %w", err)
	}
	if err := eng.Initialize(); err != nil {
		return fmt.Errorf("console setup failed: %w", err)
	}

	fmt.Println(version.String())
	fmt.Println(`Type "help" for available commands, "exit" to quit.`)

	return shell.New(eng).Run()
}
