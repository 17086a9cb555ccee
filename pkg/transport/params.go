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
	"crypto/md5"
	"encoding/base64"
	"strings"

	"github.com/sellerkit-project/mws-go/pkg/config"
	"github.com/sellerkit-project/mws-go/pkg/protocol"
)

// Params are the low-level connection parameters for one request.
type Params struct {
	// Host is the endpoint host (resource override or configured host)
	Host string

	// Port is the endpoint port
	Port int

	// Path is the request path; for GET requests it already carries the
	// signed query string
	Path string

	// Method is the HTTP method
	Method string

	// Headers are the complete request headers
	Headers map[string]string
}

// BuildParams derives connection parameters and the request body from a
// request spec and the shared configuration. Pure construction, no side
// effects.
//
// overrideHost takes precedence over the configured host when a resource
// declares its own endpoint. The spec's parameter map is serialized
// canonically: onto the query string for GET requests, into the body for
// every other method. Caller headers are merged over the computed ones.
func BuildParams(spec protocol.RequestSpec, overrideHost, userAgent string, cfg *config.Config) (Params, []byte) {
	host := overrideHost
	if host == "" {
		host = cfg.Host
	}

	method := strings.ToUpper(spec.Method)
	path := cfg.BasePath + spec.Path
	encoded := spec.Data.Encode()

	var body []byte
	if method == "GET" {
		if encoded != "" {
			path += "?" + encoded
		}
	} else if encoded != "" {
		body = []byte(encoded)
	}

	headers := map[string]string{
		"Accept":       "text/xml",
		"Content-Type": "text/xml",
		"Content-MD5":  ContentMD5(body),
		"User-Agent":   userAgent,
	}
	for k, v := range spec.Headers {
		headers[k] = v
	}

	return Params{
		Host:    host,
		Port:    cfg.Port,
		Path:    path,
		Method:  method,
		Headers: headers,
	}, body
}

// ContentMD5 returns the base64 MD5 digest of the serialized body, as
// carried in the Content-MD5 request header. An empty body digests the
// empty string.
func ContentMD5(body []byte) string {
	sum := md5.Sum(body)
	return base64.StdEncoding.EncodeToString(sum[:])
}
