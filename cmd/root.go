// Package cmd wires the cobra command tree for rusty-sweeper: scan,
// clean, tui, monitor, and completions, plus the shared config/logging
// bootstrap every subcommand relies on.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rusty-sweeper/internal/config"
)

// Exit codes per §6/§7.
const (
	ExitSuccess          = 0
	ExitGeneralError     = 1
	ExitConfigError      = 2
	ExitPermissionDenied = 3
	ExitInterrupted      = 4
	ExitPartialFailure   = 5
)

var (
	version = "dev" // set during build via -ldflags
	cfgFile string
	verboseCount int
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "rusty-sweeper",
	Short:   "Find and reclaim disk space, and watch for it running low",
	Version: version,
	Long: `rusty-sweeper scans directory trees for disk usage, detects
reclaimable build-tool artifacts, browses the result interactively,
and can run as a background monitor that alerts when a filesystem
fills up.`,
}

// Execute runs the root command and returns the process exit code the
// caller should pass to os.Exit.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// exitCodeFor maps a returned error to the §6/§7 exit-code taxonomy.
// Subcommands that need a specific code (partial failure, interrupted)
// wrap their error with the matching sentinel via withExitCode.
func exitCodeFor(err error) int {
	var ce *exitCodeError
	if errors.As(err, &ce) {
		return ce.code
	}
	if errors.Is(err, os.ErrPermission) {
		return ExitPermissionDenied
	}
	return ExitGeneralError
}

// exitCodeError pins a specific exit code to an error without losing
// the wrapped message on %w unwrapping.
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string { return e.err.Error() }
func (e *exitCodeError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitCodeError{code: code, err: err}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (overrides the default lookup order)")
	rootCmd.PersistentFlags().CountVarP(&verboseCount, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress all but error-level logging")

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}

func initConfig() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	})

	viper.SetConfigType("toml")

	switch {
	case cfgFile != "":
		viper.SetConfigFile(cfgFile)
	default:
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			viper.AddConfigPath(filepath.Join(xdgConfig, "rusty-sweeper"))
		} else if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "rusty-sweeper"))
		}
		viper.AddConfigPath("/etc/rusty-sweeper")
		viper.SetConfigName("config")
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.SetEnvPrefix("RUSTY_SWEEPER")

	setConfigDefaults()

	if rootCmd.PersistentFlags().Lookup("quiet") != nil {
		_ = viper.BindPFlag(config.KeyQuiet, rootCmd.PersistentFlags().Lookup("quiet"))
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Debug().Msg("no config file found, using built-in defaults")
		} else {
			log.Warn().Err(err).Msg("error reading config file, using built-in defaults")
		}
	} else {
		log.Debug().Str("config", viper.ConfigFileUsed()).Msg("using config file")
	}

	updateLoggingLevel()
}

func setConfigDefaults() {
	viper.SetDefault(config.KeyMonitorInterval, "5m")
	viper.SetDefault(config.KeyMonitorWarnThreshold, 80)
	viper.SetDefault(config.KeyMonitorCriticalThreshold, 90)
	viper.SetDefault(config.KeyMonitorMountPoints, []string{})
	viper.SetDefault(config.KeyMonitorNotificationBackend, "auto")

	viper.SetDefault(config.KeyCleanerProjectTypes, []string{})
	viper.SetDefault(config.KeyCleanerExcludePatterns, []string{})
	viper.SetDefault(config.KeyCleanerMinAgeDays, 0)
	viper.SetDefault(config.KeyCleanerMaxDepth, 10)
	viper.SetDefault(config.KeyCleanerParallelJobs, 4)

	viper.SetDefault(config.KeyScannerParallelThreads, 0)
	viper.SetDefault(config.KeyScannerCrossFilesystems, false)
	viper.SetDefault(config.KeyScannerUseCache, true)
	viper.SetDefault(config.KeyScannerCacheTTL, "1h")

	viper.SetDefault(config.KeyTUIColorScheme, "nord")
	viper.SetDefault(config.KeyTUIShowHidden, false)
	viper.SetDefault(config.KeyTUIDefaultSort, "size")
	viper.SetDefault(config.KeyTUILargeDirThreshold, 10)
}

// updateLoggingLevel maps -q/-v onto zerolog's level, per SPEC_FULL §6:
// -q forces error level; each repeated -v drops one step from info,
// through debug, bottoming out at trace.
func updateLoggingLevel() {
	if viper.GetBool(config.KeyQuiet) {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
		return
	}

	level := zerolog.InfoLevel
	switch {
	case verboseCount >= 2:
		level = zerolog.TraceLevel
	case verboseCount == 1:
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
}

func fatalConfigError(msg string, err error) error {
	log.Error().Err(err).Msg(msg)
	return withExitCode(ExitConfigError, fmt.Errorf("%s: %w", msg, err))
}
