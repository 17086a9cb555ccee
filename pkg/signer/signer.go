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

package signer

import (
	"context"
	"time"

	"github.com/sellerkit-project/mws-go/pkg/protocol"
)

// RequestSigner signs marketplace request parameters with V2 canonical
// signatures.
type RequestSigner interface {
	// SignParams signs the parameter set for one request using default
	// options. The input map is not mutated; the returned map carries the
	// injected authentication parameters.
	SignParams(ctx context.Context, method, host, path string, params protocol.Params, creds protocol.Credentials) (protocol.Params, error)

	// SignParamsWithOptions signs the parameter set with custom options
	SignParamsWithOptions(ctx context.Context, method, host, path string, params protocol.Params, creds protocol.Credentials, opts *SigningOptions) (protocol.Params, error)
}

// SigningOptions contains options for signing request parameters
type SigningOptions struct {
	// Timestamp is injected as the Timestamp parameter.
	// If zero, the current time is used.
	Timestamp time.Time

	// APIVersion overrides the Version parameter (if empty, the library's
	// default API version is used)
	APIVersion string
}
