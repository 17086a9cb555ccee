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

// Credentials is the access key / secret pair used to sign requests.
// Credentials are process-wide and read-only for the pipeline's lifetime;
// the secret itself is never transmitted.
type Credentials struct {
	// AccessKey identifies the caller and is sent as AWSAccessKeyId
	AccessKey string

	// SecretKey is the HMAC signing key
	SecretKey string
}

// RequestSpec describes one outbound API call. A spec is created per call,
// owned by exactly one in-flight request, and treated as immutable once
// signing begins.
type RequestSpec struct {
	// Method is the HTTP method (GET, POST, PUT, DELETE, ...)
	Method string

	// Path is the request path relative to the configured base path
	Path string

	// Data is the flat parameter map for the call
	Data Params

	// Headers are caller-supplied headers merged over the computed ones
	Headers map[string]string
}
