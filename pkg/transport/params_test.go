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

package transport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sellerkit-project/mws-go/pkg/config"
	"github.com/sellerkit-project/mws-go/pkg/protocol"
)

func testConfig() *config.Config {
	return &config.Config{
		Host:     "mws.example.com",
		Port:     443,
		Protocol: "https",
		BasePath: "",
		Timeout:  30 * time.Second,
	}
}

func TestBuildParams_GETQueryString(t *testing.T) {
	spec := protocol.RequestSpec{
		Method: "get",
		Path:   "/Orders/2009-01-01",
		Data:   protocol.Params{"Action": "ListOrders", "Marker": "m 1"},
	}

	params, body := BuildParams(spec, "", "ua/1.0", testConfig())

	assert.Equal(t, "GET", params.Method)
	assert.Equal(t, "mws.example.com", params.Host)
	assert.Equal(t, 443, params.Port)
	assert.Equal(t, "/Orders/2009-01-01?Action=ListOrders&Marker=m%201", params.Path)
	assert.Nil(t, body)
}

func TestBuildParams_POSTBody(t *testing.T) {
	spec := protocol.RequestSpec{
		Method: "POST",
		Path:   "/Feeds/2009-01-01",
		Data:   protocol.Params{"FeedType": "_POST_ORDER_"},
	}

	params, body := BuildParams(spec, "", "ua/1.0", testConfig())

	assert.Equal(t, "/Feeds/2009-01-01", params.Path)
	assert.Equal(t, "FeedType=_POST_ORDER_", string(body))
	assert.Equal(t, ContentMD5(body), params.Headers["Content-MD5"])
}

func TestBuildParams_HostOverride(t *testing.T) {
	spec := protocol.RequestSpec{Method: "GET", Path: "/"}

	params, _ := BuildParams(spec, "feeds.example.com", "ua/1.0", testConfig())
	assert.Equal(t, "feeds.example.com", params.Host)

	params, _ = BuildParams(spec, "", "ua/1.0", testConfig())
	assert.Equal(t, "mws.example.com", params.Host)
}

func TestBuildParams_BasePathPrefix(t *testing.T) {
	cfg := testConfig()
	cfg.BasePath = "/api"
	spec := protocol.RequestSpec{Method: "GET", Path: "/Orders/2009-01-01"}

	params, _ := BuildParams(spec, "", "ua/1.0", cfg)
	assert.Equal(t, "/api/Orders/2009-01-01", params.Path)
}

func TestBuildParams_DefaultHeaders(t *testing.T) {
	spec := protocol.RequestSpec{Method: "GET", Path: "/"}

	params, _ := BuildParams(spec, "", "order-sync/3.1.4", testConfig())

	assert.Equal(t, "text/xml", params.Headers["Accept"])
	assert.Equal(t, "text/xml", params.Headers["Content-Type"])
	assert.Equal(t, "order-sync/3.1.4", params.Headers["User-Agent"])
	// Digest of the empty body
	assert.Equal(t, "1B2M2Y8AsgTpgAmY7PhCfg==", params.Headers["Content-MD5"])
}

func TestBuildParams_CallerHeadersWin(t *testing.T) {
	spec := protocol.RequestSpec{
		Method:  "GET",
		Path:    "/",
		Headers: map[string]string{"Accept": "application/xml", "X-Extra": "1"},
	}

	params, _ := BuildParams(spec, "", "ua/1.0", testConfig())

	assert.Equal(t, "application/xml", params.Headers["Accept"])
	assert.Equal(t, "1", params.Headers["X-Extra"])
	// Non-overridden computed headers survive the merge
	assert.Equal(t, "text/xml", params.Headers["Content-Type"])
}

func TestContentMD5(t *testing.T) {
	// printf 'hello' | md5 | base64
	assert.Equal(t, "XUFAKrxLKna5cZ2REBfFkg==", ContentMD5([]byte("hello")))
	assert.Equal(t, "1B2M2Y8AsgTpgAmY7PhCfg==", ContentMD5(nil))
}

func TestHTTPTransport_URL(t *testing.T) {
	tr := NewHTTPTransport("https", 0, nil, nil)

	assert.Equal(t, "https://mws.example.com/path",
		tr.URL(Params{Host: "mws.example.com", Port: 443, Path: "/path"}))
	assert.Equal(t, "https://mws.example.com:8443/path",
		tr.URL(Params{Host: "mws.example.com", Port: 8443, Path: "/path"}))

	plain := NewHTTPTransport("http", 0, nil, nil)
	assert.Equal(t, "http://mws.example.com/path",
		plain.URL(Params{Host: "mws.example.com", Port: 80, Path: "/path"}))
	assert.Equal(t, "http", plain.Scheme())
}
