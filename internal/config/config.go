package config

import "time"

type Config interface {
	EnvConfig
	ClientConfig
	SessionConfig
	LogConfig
}

type EnvConfig interface {
	GetAppName() string
	GetEnv() string
	GetMetricsEnabled() bool
}

// ClientConfig describes how the transport reaches the backend.
type ClientConfig interface {
	GetBaseURL() string
	GetTenantHeader() string
	GetRequestTimeout() time.Duration
}

type SessionConfig interface {
	GetSessionFile() string
}

type LogConfig interface {
	GetEnv() string
	GetLogLevel() string
}

type mainConfig struct {
	EnvVars
}

// New returns a Config that reads the environment and falls back to defaults.
func New() Config {
	return mainConfig{EnvVars{}}
}
