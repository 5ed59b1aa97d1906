// Package config wraps the persistent key-value store the CLI keeps its
// server URL, session credential and theme in.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	keyServerURL = "server_url"
	keySession   = "session_token"
	keyTheme     = "theme"
	keyLogLevel  = "log_level"
)

// InitConfig reads in the config file and ENV variables if set.
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sarv-cli")
	}

	viper.SetEnvPrefix("SARV")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

func persist() error {
	if err := viper.WriteConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return viper.SafeWriteConfig()
		}
		home, _ := os.UserHomeDir()
		path := filepath.Join(home, ".sarv-cli.yaml")
		return viper.WriteConfigAs(path)
	}
	return nil
}

// ServerURL returns the configured backend base URL.
func ServerURL() string { return viper.GetString(keyServerURL) }

// SaveServerURL persists the backend base URL.
func SaveServerURL(url string) error {
	viper.Set(keyServerURL, url)
	return persist()
}

// LogLevel returns the configured zerolog level name ("" means default).
func LogLevel() string { return viper.GetString(keyLogLevel) }

// Theme returns the persisted UI theme ("dark" when unset).
func Theme() string {
	if t := viper.GetString(keyTheme); t != "" {
		return t
	}
	return "dark"
}

// SaveTheme persists the UI theme.
func SaveTheme(theme string) error {
	viper.Set(keyTheme, theme)
	return persist()
}

// SessionStore adapts the config file to the api.TokenStore interface.
type SessionStore struct{}

func (SessionStore) Load() string { return viper.GetString(keySession) }

func (SessionStore) Save(token string) error {
	viper.Set(keySession, token)
	return persist()
}

func (SessionStore) Clear() error {
	viper.Set(keySession, "")
	return persist()
}
