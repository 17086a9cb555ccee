// Copyright (C) 2026 SellerKit Project
//
// This file is part of mws-go.
//
// mws-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mws-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with mws-go.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	mws "github.com/sellerkit-project/mws-go"
	"github.com/sellerkit-project/mws-go/pkg/protocol"
)

// Config holds the process-wide client configuration. It is initialized
// once at startup and treated as read-only by the request pipeline; no
// component mutates it after construction.
type Config struct {
	// AccessKey is the marketplace access key id
	AccessKey string `yaml:"access_key"`

	// SecretKey is the HMAC signing secret
	SecretKey string `yaml:"secret_key"`

	// Host is the API endpoint host
	Host string `yaml:"host"`

	// Port is the API endpoint port
	Port int `yaml:"port"`

	// Protocol selects the transport: "https" (encrypted) or "http"
	Protocol string `yaml:"protocol"`

	// BasePath is prefixed to every request path
	BasePath string `yaml:"base_path"`

	// Timeout bounds one request from connection attempt to full response
	Timeout time.Duration `yaml:"-"`

	// AppName identifies the calling application in the User-Agent
	AppName string `yaml:"app_name"`

	// AppVersion is the calling application's version
	AppVersion string `yaml:"app_version"`
}

// Default returns a Config with production endpoint defaults. Credentials
// are left empty and must be supplied by the caller.
func Default() *Config {
	return &Config{
		Host:       "mws.amazonservices.com",
		Port:       443,
		Protocol:   "https",
		Timeout:    30 * time.Second,
		AppName:    "mws-go",
		AppVersion: mws.Version,
	}
}

// FromEnv creates a Config from environment variables, over defaults.
// Supported environment variables:
//   - MWS_ACCESS_KEY, MWS_SECRET_KEY: credentials
//   - MWS_HOST, MWS_PORT, MWS_PROTOCOL, MWS_BASE_PATH: endpoint
//   - MWS_TIMEOUT: request timeout as a Go duration (default: 30s)
//   - MWS_APP_NAME, MWS_APP_VERSION: User-Agent identity
func FromEnv() *Config {
	cfg := Default()

	if v := os.Getenv("MWS_ACCESS_KEY"); v != "" {
		cfg.AccessKey = v
	}
	if v := os.Getenv("MWS_SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("MWS_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("MWS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("MWS_PROTOCOL"); v != "" {
		cfg.Protocol = v
	}
	if v := os.Getenv("MWS_BASE_PATH"); v != "" {
		cfg.BasePath = v
	}
	if v := os.Getenv("MWS_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv("MWS_APP_NAME"); v != "" {
		cfg.AppName = v
	}
	if v := os.Getenv("MWS_APP_VERSION"); v != "" {
		cfg.AppVersion = v
	}

	return cfg
}

// fileConfig mirrors Config for YAML decoding; the timeout travels as a
// duration string ("45s", "2m").
type fileConfig struct {
	Config  `yaml:",inline"`
	Timeout string `yaml:"timeout"`
}

// Load reads a YAML configuration file over defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	fc := fileConfig{Config: *Default()}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := fc.Config
	cfg.Timeout = Default().Timeout
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", fc.Timeout, err)
		}
		cfg.Timeout = d
	}

	return &cfg, nil
}

// Validate checks that the configuration is usable for signed requests.
func (c *Config) Validate() error {
	if c.AccessKey == "" {
		return fmt.Errorf("access key is required")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret key is required")
	}
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}
	if c.Protocol != "http" && c.Protocol != "https" {
		return fmt.Errorf("protocol must be http or https, got %q", c.Protocol)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// Credentials returns the signing credential pair.
func (c *Config) Credentials() protocol.Credentials {
	return protocol.Credentials{AccessKey: c.AccessKey, SecretKey: c.SecretKey}
}

// UserAgent derives the client identifier string sent with every request.
func (c *Config) UserAgent() string {
	name := c.AppName
	if name == "" {
		name = "mws-go"
	}
	version := c.AppVersion
	if version == "" {
		version = mws.Version
	}
	return fmt.Sprintf("%s/%s (Language=Go/%s; Platform=%s/%s)",
		name, version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
