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

package protocol

import (
	"errors"
	"fmt"
)

// ConnectionError reports that a request never produced a usable response:
// dial or TLS failure, a fired timeout, a canceled context, or a body read
// cut short. Timeout distinguishes the armed-timer path from other causes.
type ConnectionError struct {
	// URL is the request URL, for diagnostics
	URL string

	// Timeout is true when the request's own timer fired and aborted the
	// connection; the underlying Cause is then the abort fallout, not an
	// independent failure
	Timeout bool

	// Cause is the underlying transport error
	Cause error
}

func (e *ConnectionError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("connection to %s timed out: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("connection to %s failed: %v", e.URL, e.Cause)
}

func (e *ConnectionError) Unwrap() error { return e.Cause }

// ResponseParseError reports a response body that could not be decoded as
// well-formed XML. The raw body is retained so callers can inspect what the
// service actually returned.
type ResponseParseError struct {
	// RawBody is the undecoded response body
	RawBody []byte

	// Cause is the parser error
	Cause error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("cannot parse response body (%d bytes): %v", len(e.RawBody), e.Cause)
}

func (e *ResponseParseError) Unwrap() error { return e.Cause }

// ErrorResponse is an error envelope reported by the service inside a
// well-formed XML body. It is delivered to the caller as the error value
// itself, unwrapped, so the parsed fields are directly accessible.
type ErrorResponse struct {
	// Type is the reported fault class (e.g. "Sender")
	Type string

	// Code is the machine-readable error code
	Code string

	// Message is the human-readable description
	Message string

	// Detail carries any additional detail text
	Detail string

	// RequestID is the service-assigned request identifier
	RequestID string

	// Envelope is the full parsed error body as delivered on the wire
	Envelope map[string]any
}

func (e *ErrorResponse) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("service error %s: %s (request id %s)", e.Code, e.Message, e.RequestID)
	}
	return fmt.Sprintf("service error %s: %s", e.Code, e.Message)
}

// IsTimeout reports whether err is a ConnectionError caused by the request
// timer firing.
func IsTimeout(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce) && ce.Timeout
}
