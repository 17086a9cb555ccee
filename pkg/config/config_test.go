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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := Default()
	cfg.AccessKey = "AKIDEXAMPLE"
	cfg.SecretKey = "secret"
	return cfg
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "mws.amazonservices.com", cfg.Host)
	assert.Equal(t, 443, cfg.Port)
	assert.Equal(t, "https", cfg.Protocol)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.AccessKey)
	assert.Empty(t, cfg.SecretKey)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("MWS_ACCESS_KEY", "env-key")
	t.Setenv("MWS_SECRET_KEY", "env-secret")
	t.Setenv("MWS_HOST", "mws.example.com")
	t.Setenv("MWS_PORT", "8443")
	t.Setenv("MWS_PROTOCOL", "http")
	t.Setenv("MWS_BASE_PATH", "/api")
	t.Setenv("MWS_TIMEOUT", "45s")
	t.Setenv("MWS_APP_NAME", "order-sync")

	cfg := FromEnv()

	assert.Equal(t, "env-key", cfg.AccessKey)
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, "mws.example.com", cfg.Host)
	assert.Equal(t, 8443, cfg.Port)
	assert.Equal(t, "http", cfg.Protocol)
	assert.Equal(t, "/api", cfg.BasePath)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.Equal(t, "order-sync", cfg.AppName)
}

func TestFromEnv_BadValuesKeepDefaults(t *testing.T) {
	t.Setenv("MWS_PORT", "not-a-port")
	t.Setenv("MWS_TIMEOUT", "not-a-duration")

	cfg := FromEnv()

	assert.Equal(t, 443, cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mws.yaml")
	content := `
access_key: file-key
secret_key: file-secret
host: mws.example.com
port: 8080
protocol: http
base_path: /mws
timeout: 2m
app_name: feed-loader
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.AccessKey)
	assert.Equal(t, "file-secret", cfg.SecretKey)
	assert.Equal(t, "mws.example.com", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "http", cfg.Protocol)
	assert.Equal(t, "/mws", cfg.BasePath)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.Equal(t, "feed-loader", cfg.AppName)
}

func TestLoad_DefaultTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mws.yaml")
	require.NoError(t, os.WriteFile(path, []byte("access_key: k\nsecret_key: s\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: [nope"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)

	path = filepath.Join(t.TempDir(), "badtimeout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: soon"), 0o600))
	_, err = Load(path)
	assert.ErrorContains(t, err, "invalid timeout")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	cfg := validConfig()
	cfg.AccessKey = ""
	assert.ErrorContains(t, cfg.Validate(), "access key")

	cfg = validConfig()
	cfg.SecretKey = ""
	assert.ErrorContains(t, cfg.Validate(), "secret key")

	cfg = validConfig()
	cfg.Host = ""
	assert.ErrorContains(t, cfg.Validate(), "host")

	cfg = validConfig()
	cfg.Protocol = "ftp"
	assert.ErrorContains(t, cfg.Validate(), "protocol")

	cfg = validConfig()
	cfg.Port = 70000
	assert.ErrorContains(t, cfg.Validate(), "port")

	cfg = validConfig()
	cfg.Timeout = 0
	assert.ErrorContains(t, cfg.Validate(), "timeout")
}

func TestCredentials(t *testing.T) {
	cfg := validConfig()
	creds := cfg.Credentials()

	assert.Equal(t, "AKIDEXAMPLE", creds.AccessKey)
	assert.Equal(t, "secret", creds.SecretKey)
}

func TestUserAgent(t *testing.T) {
	cfg := validConfig()
	cfg.AppName = "order-sync"
	cfg.AppVersion = "3.1.4"

	ua := cfg.UserAgent()
	assert.Contains(t, ua, "order-sync/3.1.4")
	assert.Contains(t, ua, "Language=Go/")

	// Falls back to library identity when unset
	cfg.AppName = ""
	cfg.AppVersion = ""
	assert.Contains(t, cfg.UserAgent(), "mws-go/")
}
