package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/forcekit/hubkit/internal/domain"
	"github.com/spf13/viper"
)

// Environment variables the test harness uses to hand credentials to
// this process. The reuse transfer writes the same names back so
// sibling harness processes see identical state.
const (
	EnvJWTClientID = "TESTKIT_JWT_CLIENT_ID"
	EnvHubUsername = "TESTKIT_HUB_USERNAME"
	EnvJWTKey      = "TESTKIT_JWT_KEY"
	EnvAuthURL     = "TESTKIT_AUTH_URL"
	EnvHubInstance = "TESTKIT_HUB_INSTANCE"
)

const (
	configName    = "config"
	configType    = "toml"
	configDir     = ".hubkit"
	cliBinaryKey  = "cli.binary"
	instanceKey   = "hub.instance_url"
	defaultBinary = "sfdx"
)

// Config is the startup snapshot of everything the auth flow needs.
// It is populated once and threaded through explicitly; nothing below
// the cmd layer reads the environment on its own.
type Config struct {
	JWTClientID string
	HubUsername string
	JWTKey      string
	AuthURL     string
	HubInstance string
	HomeDir     string
	CLIBinary   string
}

func Load(cfg *viper.Viper) (*Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := resolveHomeDir()
	if err != nil {
		return nil, err
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetDefault(cliBinaryKey, defaultBinary)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	if err := bindEnv(cfg); err != nil {
		return nil, err
	}

	return &Config{
		JWTClientID: cfg.GetString("jwt.client_id"),
		HubUsername: cfg.GetString("hub.username"),
		JWTKey:      cfg.GetString("jwt.key"),
		AuthURL:     cfg.GetString("hub.auth_url"),
		HubInstance: cfg.GetString(instanceKey),
		HomeDir:     homeDir,
		CLIBinary:   cfg.GetString(cliBinaryKey),
	}, nil
}

// Credentials projects the snapshot into the domain's strategy input.
func (c *Config) Credentials() domain.Credentials {
	return domain.Credentials{
		JWTClientID: c.JWTClientID,
		HubUsername: c.HubUsername,
		JWTKey:      c.JWTKey,
		AuthURL:     c.AuthURL,
	}
}

func bindEnv(cfg *viper.Viper) error {
	binds := map[string]string{
		"jwt.client_id": EnvJWTClientID,
		"hub.username":  EnvHubUsername,
		"jwt.key":       EnvJWTKey,
		"hub.auth_url":  EnvAuthURL,
		instanceKey:     EnvHubInstance,
	}

	for key, envName := range binds {
		if err := cfg.BindEnv(key, envName); err != nil {
			return fmt.Errorf("bind %s: %w", envName, err)
		}
	}

	return nil
}

func resolveHomeDir() (string, error) {
	if home := os.Getenv("HOME"); home != "" {
		return home, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return homeDir, nil
}
