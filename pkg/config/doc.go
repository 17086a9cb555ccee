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

// Package config holds the process-wide client configuration: credentials,
// endpoint, transport protocol, request timeout, and the application
// identity used to build the User-Agent string.
//
// A Config is constructed once (from code, environment, or a YAML file)
// and then shared read-only with the request pipeline:
//
//	cfg := config.FromEnv()
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// Loading from a file:
//
//	cfg, err := config.Load("mws.yaml")
//
// with contents such as:
//
//	access_key: AKID...
//	secret_key: ...
//	host: mws.amazonservices.com
//	protocol: https
//	timeout: 45s
//
// Nothing in the pipeline mutates a Config after construction, so no
// locking is needed even with many requests in flight.
package config
