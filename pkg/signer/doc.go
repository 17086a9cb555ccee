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

// Package signer provides AWS-style Signature Version 2 request signing
// for the marketplace API.
//
// # Signing Request Parameters
//
// Use RequestSigner to sign the flat parameter set of an outgoing call:
//
//	s := signer.NewDefaultV2Signer()
//	params := protocol.Params{"Action": "ListOrders"}
//	creds := protocol.Credentials{AccessKey: "AKID...", SecretKey: "secret"}
//
//	signed, err := s.SignParams(ctx, "GET", "mws.example.com", "/Orders/2009-01-01", params, creds)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Signing injects the authentication parameters:
//
//   - AWSAccessKeyId - the caller's access key
//   - Timestamp - full ISO 8601 UTC timestamp
//   - SignatureVersion - "2"
//   - SignatureMethod - "HmacSHA256"
//   - Version - the wire API version
//   - Signature - base64(HMAC-SHA256(secret, string-to-sign))
//
// # String To Sign
//
// The string-to-sign is deterministic over the request:
//
//	GET\n
//	mws.example.com\n
//	/Orders/2009-01-01\n
//	Action=ListOrders&AWSAccessKeyId=...&SignatureMethod=HmacSHA256&...
//
// Parameters are serialized sorted by key in byte order with RFC 3986
// percent-encoding (see protocol.Params.Encode), so permuting the input
// map never changes the signature. The Signature parameter itself is
// excluded from the serialization it authenticates.
//
// # GET-Only Signing
//
// Only GET parameter sets are signed. POST and PUT bodies travel unsigned
// under this scheme; the server authenticates body-carrying methods by
// other means. SignParams returns the parameters unchanged for non-GET
// methods rather than failing, so one call site can serve every verb.
//
// # Custom Signing Options
//
// Fix the timestamp for reproducible signatures (useful in tests) or pin a
// different API version:
//
//	opts := &signer.SigningOptions{
//	    Timestamp:  time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
//	    APIVersion: "2011-07-01",
//	}
//	signed, err := s.SignParamsWithOptions(ctx, "GET", host, path, params, creds, opts)
//
// # Error Handling
//
// Common signing errors:
//
//   - Empty access key or secret: credentials misconfigured
//   - Empty host: transport parameters incomplete
//   - Context canceled: operation interrupted
//
// A rejected signature is reported by the server as a generic signature
// error envelope; the signer itself cannot detect canonicalization drift,
// which is why the serialization rules above are load-bearing.
package signer
