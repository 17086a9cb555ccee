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
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	mws "github.com/sellerkit-project/mws-go"
	"github.com/sellerkit-project/mws-go/pkg/protocol"
)

// TimestampFormat is the layout of the injected Timestamp parameter: a full
// ISO 8601 timestamp in UTC, not just a date.
const TimestampFormat = "2006-01-02T15:04:05Z"

// DefaultV2Signer implements RequestSigner with AWS-style Signature
// Version 2: HMAC-SHA256 over the canonical serialization of the sorted
// parameter set plus method, host, and path.
type DefaultV2Signer struct{}

// NewDefaultV2Signer creates a new DefaultV2Signer
func NewDefaultV2Signer() *DefaultV2Signer {
	return &DefaultV2Signer{}
}

// SignParams signs the parameter set for one request using default options
func (s *DefaultV2Signer) SignParams(ctx context.Context, method, host, path string, params protocol.Params, creds protocol.Credentials) (protocol.Params, error) {
	return s.SignParamsWithOptions(ctx, method, host, path, params, creds, nil)
}

// SignParamsWithOptions signs the parameter set with custom options.
//
// Only GET parameter sets receive authentication parameters. POST and PUT
// bodies are deliberately not signed under this scheme; the parameter map
// is returned unchanged (copied) for those methods. This mirrors the wire
// protocol as deployed and is a policy, not an oversight.
func (s *DefaultV2Signer) SignParamsWithOptions(ctx context.Context, method, host, path string, params protocol.Params, creds protocol.Credentials, opts *SigningOptions) (protocol.Params, error) {
	// Check context
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	// Validate inputs
	if creds.AccessKey == "" {
		return nil, fmt.Errorf("access key cannot be empty")
	}

	if creds.SecretKey == "" {
		return nil, fmt.Errorf("secret key cannot be empty")
	}

	if host == "" {
		return nil, fmt.Errorf("host cannot be empty")
	}

	// Use default options if nil
	if opts == nil {
		opts = &SigningOptions{}
	}

	signed := params.Clone()
	if signed == nil {
		signed = protocol.Params{}
	}

	// GET-only signing policy
	if !strings.EqualFold(method, http.MethodGet) {
		return signed, nil
	}

	// Set timestamp if not provided
	ts := opts.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	apiVersion := opts.APIVersion
	if apiVersion == "" {
		apiVersion = mws.APIVersion
	}

	// Inject authentication parameters
	signed["AWSAccessKeyId"] = creds.AccessKey
	signed["Timestamp"] = ts.UTC().Format(TimestampFormat)
	signed["SignatureVersion"] = mws.SignatureVersion
	signed["SignatureMethod"] = mws.SignatureMethod
	signed["Version"] = apiVersion

	// The Signature parameter itself is excluded from the string-to-sign:
	// it is appended only after the HMAC is computed
	stringToSign := StringToSign(method, host, path, signed)

	mac := hmac.New(sha256.New, []byte(creds.SecretKey))
	mac.Write([]byte(stringToSign))
	signed["Signature"] = base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return signed, nil
}

// StringToSign builds the canonical V2 signing payload: the uppercased
// method, lowercased host, request path, and the canonical parameter
// serialization, newline-joined.
func StringToSign(method, host, path string, params protocol.Params) string {
	if path == "" {
		path = "/"
	}

	return strings.Join([]string{
		strings.ToUpper(method),
		strings.ToLower(host),
		path,
		params.Encode(),
	}, "\n")
}
