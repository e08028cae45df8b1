// internal/commands/root.go
package lwbench

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mwiater/lwbench/internal/appconfig"
	"github.com/mwiater/lwbench/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	configLoaded  bool
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "lwbench",
	Short:        "lwbench turns Living Worlds benchmark runs into GIFs, charts and portable slides",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		if !cmd.Flags().Changed("debug") {
			_ = cmd.Flags().Set("debug", strconv.FormatBool(viper.GetBool("debug")))
		}

		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = cfgFile
		currentConfig = &cfg

		if err := logging.Init(currentConfig.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.LogEvent("lwbench %s: %s (config=%s loaded=%v)", appVersion, cmd.CommandPath(), cfgFile, configLoaded)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		_ = logging.Close()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")
	flags.Bool("debug", false, "enable debug output")
	flags.String("logFile", "", "path to the log file")
	flags.String("root", "", "project root that relative paths resolve against (default .)")

	flags.String("recordingsDir", "", "directory scanned for benchmark recordings")
	flags.String("gifsDir", "", "directory that receives converted GIFs")
	flags.String("resultsDir", "", "directory scanned for benchmark result tables")
	flags.String("plotsDir", "", "directory that receives charts and the summary table")
	flags.String("resultsPattern", "", "glob matching result tables (default grid*.csv)")
	flags.String("videoExt", "", "extension of recordings to convert (default .mp4)")
	flags.String("ffmpeg", "", "path to the ffmpeg binary (default ffmpeg on PATH)")
	flags.Int("gifFrameRate", 0, "GIF frame rate (0 = default 10)")
	flags.Int("gifWidth", 0, "GIF width in pixels (0 = default 480)")
	flags.String("analysis-output", "", "write grouped benchmark aggregates to this JSON file")

	bindFlag("debug", "debug")
	bindFlag("logFile", "logFile")
	bindFlag("projectRoot", "root")
	bindFlag("recordingsDir", "recordingsDir")
	bindFlag("gifsDir", "gifsDir")
	bindFlag("resultsDir", "resultsDir")
	bindFlag("plotsDir", "plotsDir")
	bindFlag("resultsPattern", "resultsPattern")
	bindFlag("videoExt", "videoExt")
	bindFlag("ffmpegBinary", "ffmpeg")
	bindFlag("gifFrameRate", "gifFrameRate")
	bindFlag("gifWidth", "gifWidth")
	bindFlag("analysisOutput", "analysis-output")
}

func bindFlag(key, flag string) {
	_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetConfigType("json")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded validates and reads the config file. A missing file
// leaves every value at its default.
func ensureConfigLoaded() error {
	configLoaded = false
	if cfgFile == "" {
		return clearConfig()
	}
	if err := appconfig.ValidateFile(cfgFile); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return clearConfig()
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return clearConfig()
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	configLoaded = true
	return nil
}

// clearConfig drops values read by an earlier load so only flags and defaults apply.
func clearConfig() error {
	return viper.ReadConfig(strings.NewReader("{}"))
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	if currentConfig == nil {
		return &appconfig.Config{}
	}
	return currentConfig
}

// DebugEnabled returns true if debug mode is enabled.
func DebugEnabled() bool { return viper.GetBool("debug") }

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

func newConsole(cmd *cobra.Command) *logging.Console {
	return logging.NewConsole(cmd.OutOrStdout(), GetConfig().Debug)
}
