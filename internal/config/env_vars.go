package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	appNameVar        = "AINOTE_APP_NAME"
	envVar            = "AINOTE_ENV"
	baseURLVar        = "AINOTE_API_BASE_URL"
	tenantHeaderVar   = "AINOTE_TENANT_HEADER"
	requestTimeoutVar = "AINOTE_REQUEST_TIMEOUT_SEC"
	sessionFileVar    = "AINOTE_SESSION_FILE"
	logLevelVar       = "AINOTE_LOG_LEVEL"
	metricsVar        = "AINOTE_METRICS"
)

// EnvVars resolves every setting from the environment, then from the
// optional file values, then from the built-in default.
type EnvVars struct {
	file *fileValues
}

var _ Config = mainConfig{}

func (e EnvVars) GetAppName() string {
	return e.lookup(appNameVar, e.file.appName(), "AI Note")
}

func (e EnvVars) GetEnv() string {
	return strings.ToUpper(e.lookup(envVar, e.file.env(), "DEV"))
}

// GetBaseURL returns the backend base URL (e.g. "https://api.example.com")
// without a trailing slash.
func (e EnvVars) GetBaseURL() string {
	return strings.TrimRight(e.lookup(baseURLVar, e.file.baseURL(), "http://localhost:8080"), "/")
}

func (e EnvVars) GetTenantHeader() string {
	return e.lookup(tenantHeaderVar, e.file.tenantHeader(), "tenant")
}

func (e EnvVars) GetRequestTimeout() time.Duration {
	seconds := e.lookup(requestTimeoutVar, e.file.requestTimeout(), "30")
	n, err := strconv.Atoi(seconds)
	if err != nil || n <= 0 {
		return 30 * time.Second
	}
	return time.Duration(n) * time.Second
}

func (e EnvVars) GetSessionFile() string {
	return e.lookup(sessionFileVar, e.file.sessionFile(), "./data/session.json")
}

func (e EnvVars) GetLogLevel() string {
	return strings.ToLower(e.lookup(logLevelVar, e.file.logLevel(), "info"))
}

func (e EnvVars) GetMetricsEnabled() bool {
	enabled, err := strconv.ParseBool(e.lookup(metricsVar, e.file.metrics(), "false"))
	return err == nil && enabled
}

func (e EnvVars) lookup(envVar, fileValue, defaultValue string) string {
	return GetEnv(envVar, GetValue(fileValue, defaultValue))
}

func GetEnv(envVar, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(envVar))
	if value == "" {
		return defaultValue
	}
	return value
}

func GetValue(value, defaultValue string) string {
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return strings.TrimSpace(value)
}
