package questlinks

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dohaquest/questlinks/logging"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultConfigPath = "./.questlinks.toml"
	defaultImage      = "/assets/logo.png"
)

var (
	cfgFile  string
	logLevel string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "questlinks",
	Short: "Serve the Quest Doha links page",
	Long: `Questlinks renders the Quest Doha link-in-bio page: the outbound links,
the social badges and the about, privacy and safety dialogs.
It can serve the page over HTTP or preview it in the terminal.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.questlinks.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
}

func initConfig() {
	if cfgFile != "" {
		slog.Debug("Using config file", "path", cfgFile)
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".questlinks" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".questlinks")
	}
	// Set environment variable prefix
	viper.SetEnvPrefix("questlinks")
	viper.AutomaticEnv()

	// Read config
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// Config file not found, create an example config
			if err := createExampleConfig(defaultConfigPath); err != nil {
				slog.Error("Error creating example config file", "error", err)
				os.Exit(1)
			}

			slog.Info("Example config file created", "path", defaultConfigPath)
		} else {
			// Other errors
			slog.Error("Error reading config file", "error", err)
			os.Exit(1)
		}
	}
}

// exampleConfig mirrors the command flags. Keys drop the hyphens of the flag
// names, see bindFlags.
type exampleConfig struct {
	Port            int    `toml:"port"`
	Dev             bool   `toml:"dev"`
	AssetsDir       string `toml:"assetsDir"`
	LogoImage       string `toml:"logoImage"`
	LogoFallback    string `toml:"logoFallback"`
	BackgroundImage string `toml:"backgroundImage"`
	OtlpEndpoint    string `toml:"otlpEndpoint"`
	ServiceName     string `toml:"serviceName"`
	LogLevel        string `toml:"logLevel"`
}

func defaultConfig() exampleConfig {
	return exampleConfig{
		Port:            8080,
		LogoImage:       defaultImage,
		BackgroundImage: defaultImage,
		ServiceName:     "questlinks",
		LogLevel:        "info",
	}
}

func createExampleConfig(path string) error {
	data, err := toml.Marshal(defaultConfig())
	if err != nil {
		return fmt.Errorf("could not encode example config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}

	return nil
}

func setup(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd, args); err != nil {
		return err
	}

	slog.SetDefault(logging.NewLogger(os.Stderr, logging.ParseLevel(logLevel)))

	if used := viper.ConfigFileUsed(); used != "" {
		slog.Debug("Config loaded", "file", used, "settings", viper.AllSettings())
	}

	return nil
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) error {
	var errs []error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// If using camelCase in the config file, replace hyphens with a camelCased string.
		// Since viper does case-insensitive comparisons, we don't need to bother fixing the case, and only need to remove the hyphens.
		configName := strings.ReplaceAll(f.Name, "-", "")

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && viper.IsSet(configName) {
			val := viper.Get(configName)

			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				errs = append(errs, fmt.Errorf("could not set flag %s from config: %w", f.Name, err))

				return
			}

			slog.Debug("Flag set to config value", "flag", f.Name, "value", val)
		}
	})

	return errors.Join(errs...)
}
