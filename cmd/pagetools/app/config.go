package app

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/s2wiki/pagetools/internal/config"
	"github.com/s2wiki/pagetools/pkg/constants"
	pterrors "github.com/s2wiki/pagetools/pkg/errors"
	"github.com/s2wiki/pagetools/pkg/sources"
)

// EnvPrefix prefixes every environment variable read by the CLI.
const EnvPrefix = "PAGETOOLS"

// Config holds the application configuration loaded from .env files, the
// environment, an optional config file and command-line flags.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Output  string

	// ConfigFile is the config file in use, empty when none was found.
	ConfigFile string

	// Wiki layout
	Root         string
	DumpDir      string
	OverridesDir string
	OutputDir    string
	PagesDir     string
	IndexPath    string
	Format       string

	// Games replaces the built-in registry when non-empty.
	Games []sources.Game

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. PAGETOOLS_ environment variables
//  3. .env and .env.local
//  4. Config file (configFile, or .pagetools.yaml in $HOME or the working directory)
//  5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	setDefaults(v)

	if configFile == "" {
		configFile = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".pagetools")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, pterrors.NewConfigError("config", "cannot read config file", err)
		}
	}

	games, err := config.LoadGames(v)
	if err != nil {
		return nil, err
	}

	return &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color") || os.Getenv("NO_COLOR") != "",
		Output:  v.GetString("output"),

		ConfigFile: v.ConfigFileUsed(),

		Root:         v.GetString("root"),
		DumpDir:      v.GetString("dump_dir"),
		OverridesDir: v.GetString("overrides_dir"),
		OutputDir:    v.GetString("output_dir"),
		PagesDir:     v.GetString("pages_dir"),
		IndexPath:    v.GetString("index_path"),
		Format:       v.GetString("format"),
		Games:        games,

		LogLevel:  config.GetString(v, "LOG_LEVEL"),
		LogFormat: v.GetString("log_format"),
		LogOutput: v.GetString("log_output"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("root", ".")
	v.SetDefault("dump_dir", constants.DumpFolder)
	v.SetDefault("overrides_dir", constants.OverridesFolder)
	v.SetDefault("output_dir", constants.DocsFolder)
	v.SetDefault("pages_dir", constants.PagesFolder)
	v.SetDefault("index_path", constants.IndexPath)
	v.SetDefault("format", "json")
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
}

// UpdateFromFlags applies parsed command flags. Flag values take precedence
// over the config file and environment.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, output, logLevel, root string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if output != "" {
		c.Output = output
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if root != "" {
		c.Root = root
	}
}

// loadEnvFiles loads .env then .env.local. Existing variables are kept.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}
