package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kickoff-dev/kickoff/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Well-known config keys consumed by the drivers.
const (
	KeyDefaultDescription = "defaults.description"
	KeyDefaultVariant     = "defaults.variant"
	KeyGitUserName        = "git.user_name"
	KeyGitUserEmail       = "git.user_email"
)

// Dir returns the path to the Kickoff config directory (~/.kickoff/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.kickoff/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read from the config file and environment.
// Missing config files are not an error; defaults simply stay empty.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetOr returns the config value for key, or fallback when unset.
func GetOr(key, fallback string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

// GitIdentity returns the author name and email used for the initial commit
// of a scaffolded repository, falling back to the branded identity so the
// commit succeeds on hosts with no global git configuration.
func GitIdentity() (name, email string) {
	return GetOr(KeyGitUserName, branding.CommitName()),
		GetOr(KeyGitUserEmail, branding.CommitEmail())
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	viper.Set(key, value)

	configFile := FilePath()
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
