package config

import "github.com/joho/godotenv"

type Config interface {
	EnvConfig
	PlatformConfig
	AdminConfig
	LocalStoreConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
}

type mainConfig struct {
	EnvVars
	Platform
	Admin
	LocalStore
}

// New loads an optional .env file from the working directory and returns a Config
// backed by the process environment. Variables already set take precedence over the file.
func New() Config {
	_ = godotenv.Load()
	return mainConfig{}
}
