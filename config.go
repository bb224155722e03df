package medcard

import (
	"errors"

	"github.com/spf13/viper"
)

// Config carries the application settings read once at startup.
type Config struct {
	DataDir          string
	InitialTherapies int
	InitialSessions  int
	Language         Language
	Theme            ThemeName
	LogLevel         string
}

// LoadConfig reads medcard.yaml from dir when present, with MEDCARD_*
// environment overrides. A missing config file is not an error; every
// setting has a default.
func LoadConfig(dir string) (Config, error) {
	v := viper.New()
	v.SetConfigName("medcard")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("medcard")
	v.AutomaticEnv()

	v.SetDefault("data_dir", dir)
	v.SetDefault("initial_therapies", 1)
	v.SetDefault("initial_sessions", 1)
	v.SetDefault("language", string(LangES))
	v.SetDefault("theme", string(ThemeLightName))
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	cfg := Config{
		DataDir:          v.GetString("data_dir"),
		InitialTherapies: v.GetInt("initial_therapies"),
		InitialSessions:  v.GetInt("initial_sessions"),
		Language:         Language(v.GetString("language")),
		Theme:            ThemeName(v.GetString("theme")),
		LogLevel:         v.GetString("log_level"),
	}
	if cfg.InitialTherapies < 1 {
		cfg.InitialTherapies = 1
	}
	if cfg.InitialSessions < 1 {
		cfg.InitialSessions = 1
	}
	return cfg, nil
}
