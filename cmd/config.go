package cmd

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

const (
	configName      = ".tptester"
	envPrefix       = "TPTESTER"
	defaultLogLevel = "warn"
)

// Configuration keys shared by flags, environment and config file.
const (
	keyLogLevel        = "log.level"
	keyNoColor         = "no_color"
	keyHistoryPath     = "history.path"
	keyValgrind        = "valgrind"
	keyWrapper         = "wrapper"
	keyOutputTransform = "output.transform"
	keyGraphEnabled    = "graph.enabled"
	keyGraphDir        = "graph.dir"
	keyGraphTitle      = "graph.title"
	keyGraphX          = "graph.x"
	keyGraphY          = "graph.y"
)

// initConfig reads the config file and environment. A missing config file
// is not an error; an unreadable or malformed one is.
func initConfig(configFile string) error {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("..")
		viper.AddConfigPath("../..")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(keyLogLevel, defaultLogLevel)
	viper.SetDefault(keyGraphDir, ".")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}

		return errors.Wrap(err, "failed to read config")
	}

	return nil
}

// newLogger builds the stderr logger with the configured level. An unknown
// level falls back to warn and is reported once the logger exists.
func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "tptester"})
	logger.SetStyles(logStyles())

	parsed, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		logger.SetLevel(log.WarnLevel)
		logger.Warn("unknown log level, using warn", "level", level)

		return logger
	}

	logger.SetLevel(parsed)

	return logger
}

func logStyles() *log.Styles {
	styles := log.DefaultStyles()
	badge := func(name, bg string) lipgloss.Style {
		return lipgloss.NewStyle().
			SetString(name).
			Background(lipgloss.Color(bg)).
			Foreground(lipgloss.Color("#000000")).
			Padding(0, 1)
	}

	styles.Levels[log.DebugLevel] = badge("DEBUG", "#3F51B5")
	styles.Levels[log.InfoLevel] = badge("INFO", "#4CAF50")
	styles.Levels[log.WarnLevel] = badge("WARN", "#FF9800")
	styles.Levels[log.ErrorLevel] = badge("ERROR", "#F44336")
	styles.Key = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Bold(true)

	return styles
}
