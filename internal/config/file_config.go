package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// fileValues mirrors the optional YAML configuration file:
//
//	app_name: AI Note
//	env: PROD
//	api:
//	  base_url: https://api.example.com
//	  tenant_header: tenant
//	  request_timeout_sec: 20
//	session:
//	  file: /home/me/.ainote/session.json
//	log:
//	  level: debug
//	metrics: true
type fileValues struct {
	AppName string `yaml:"app_name"`
	Env     string `yaml:"env"`
	API     struct {
		BaseURL           string `yaml:"base_url"`
		TenantHeader      string `yaml:"tenant_header"`
		RequestTimeoutSec int    `yaml:"request_timeout_sec"`
	} `yaml:"api"`
	Session struct {
		File string `yaml:"file"`
	} `yaml:"session"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Metrics *bool `yaml:"metrics"`
}

// Load reads a YAML configuration file. Environment variables still take
// precedence over anything the file sets.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("[config.Load] read %s: %w", path, err)
	}
	var parsed fileValues
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("[config.Load] parse %s: %w", path, err)
	}
	return mainConfig{EnvVars{file: &parsed}}, nil
}

func (f *fileValues) appName() string {
	if f == nil {
		return ""
	}
	return f.AppName
}

func (f *fileValues) env() string {
	if f == nil {
		return ""
	}
	return f.Env
}

func (f *fileValues) baseURL() string {
	if f == nil {
		return ""
	}
	return f.API.BaseURL
}

func (f *fileValues) tenantHeader() string {
	if f == nil {
		return ""
	}
	return f.API.TenantHeader
}

func (f *fileValues) requestTimeout() string {
	if f == nil || f.API.RequestTimeoutSec <= 0 {
		return ""
	}
	return strconv.Itoa(f.API.RequestTimeoutSec)
}

func (f *fileValues) sessionFile() string {
	if f == nil {
		return ""
	}
	return f.Session.File
}

func (f *fileValues) logLevel() string {
	if f == nil {
		return ""
	}
	return f.Log.Level
}

func (f *fileValues) metrics() string {
	if f == nil || f.Metrics == nil {
		return ""
	}
	return strconv.FormatBool(*f.Metrics)
}
