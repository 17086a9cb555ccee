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

// Package protocol defines the wire-level types shared across the mws-go
// request pipeline: request parameters and their canonical serialization,
// credentials, and the closed error taxonomy delivered to callers.
//
// # Canonical Parameter Encoding
//
// Marketplace requests are flat key/value parameter sets. Params.Encode
// produces the canonical serialization used both for the request itself
// (query string or form body) and for the string-to-sign: keys sorted in
// byte order, keys and values percent-encoded per RFC 3986 (space as %20,
// tilde unescaped), pairs joined with '&'.
//
//	params := protocol.Params{"Action": "ListOrders", "MarketplaceId": "ATVPDKIKX0DER"}
//	encoded := params.Encode()
//	// "Action=ListOrders&MarketplaceId=ATVPDKIKX0DER"
//
// Because Encode sorts keys, the serialization is deterministic regardless
// of map iteration order, which is what makes V2 signatures reproducible.
//
// # Error Taxonomy
//
// Every failure surfaced by the pipeline is one of three kinds:
//
//   - ConnectionError: the request never produced a usable response
//     (dial failure, TLS failure, timeout, aborted body read). Timeout is
//     flagged explicitly.
//   - ResponseParseError: a response arrived but its body could not be
//     decoded as well-formed XML. Carries the raw body for diagnostics.
//   - ErrorResponse: the service answered with a well-formed error envelope.
//     The parsed envelope is the error value itself, not a wrapper.
//
// Raw transport or parser errors never cross the client boundary; they are
// always wrapped into one of these kinds and reachable via errors.Unwrap.
package protocol
