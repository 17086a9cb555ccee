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

// Package transport issues signed marketplace requests over HTTP or HTTPS
// and owns each request's lifecycle from connection attempt to the single
// terminal outcome.
//
// # Connection Parameters
//
// BuildParams derives the low-level parameters from a request spec and the
// shared configuration: host (with per-resource override), port, method,
// path, and headers. GET requests carry the canonical parameter string as
// their query; other methods carry it as the body. Headers always include
// Accept and Content-Type of text/xml and a base64 Content-MD5 digest of
// the serialized body.
//
//	spec := protocol.RequestSpec{Method: "GET", Path: "/Orders/2009-01-01", Data: signed}
//	params, body := transport.BuildParams(spec, "", cfg.UserAgent(), cfg)
//
// # Request Lifecycle
//
// Each request moves through connecting, body-written, and exactly one of
// three terminal states: response received, timed out, or errored. A
// per-request timer is armed before the connection attempt; when it fires
// the request is first marked aborted and only then is the connection torn
// down, so the error event caused by the teardown is attributed to the
// timeout rather than delivered as a second outcome. The aborted/completed
// flags on the request state are the sole guard; nothing assumes the
// underlying event sources are mutually exclusive.
//
//	tr := transport.NewHTTPTransport(cfg.Protocol, cfg.Timeout, nil, logger)
//
//	// Blocking
//	resp, err := tr.Do(ctx, params, body)
//
//	// Callback style; delivery is deferred off the caller's goroutine
//	tr.Send(ctx, params, body, func(resp *transport.Response, err error) { ... })
//
// Timeouts and transport failures both surface as *protocol.ConnectionError;
// protocol.IsTimeout distinguishes them.
//
// # Buffered Responses
//
// The body is accumulated in full before the Response is delivered; the
// decoder never sees a partial stream. Each Response carries the
// correlation id logged for its request.
package transport
