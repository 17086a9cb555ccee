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

package verifier

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/sellerkit-project/mws-go/pkg/protocol"
	"github.com/sellerkit-project/mws-go/pkg/transport"
)

// ErrContentMD5Mismatch reports that the response body does not match the
// digest the service attached to it.
var ErrContentMD5Mismatch = errors.New("response body does not match Content-MD5 header")

// ContentMD5Verifier implements ResponseVerifier by recomputing the body
// digest and comparing it with the Content-MD5 response header. Responses
// without the header pass unless the verifier is constructed as required.
type ContentMD5Verifier struct {
	required bool
}

// NewContentMD5Verifier creates a verifier that checks the digest when the
// header is present.
func NewContentMD5Verifier() *ContentMD5Verifier {
	return &ContentMD5Verifier{}
}

// NewRequiredContentMD5Verifier creates a verifier that additionally
// rejects responses missing the Content-MD5 header. Useful for feed
// endpoints where the digest is part of the contract.
func NewRequiredContentMD5Verifier() *ContentMD5Verifier {
	return &ContentMD5Verifier{required: true}
}

// Verify checks the response body against its Content-MD5 header. A
// mismatch or a missing-but-required header yields a
// *protocol.ResponseParseError wrapping ErrContentMD5Mismatch: the body is
// unusable and must not be decoded.
func (v *ContentMD5Verifier) Verify(resp *transport.Response) error {
	header := resp.Headers.Get("Content-MD5")
	if header == "" {
		if v.required {
			return &protocol.ResponseParseError{
				RawBody: resp.Body,
				Cause:   fmt.Errorf("%w: header missing", ErrContentMD5Mismatch),
			}
		}
		return nil
	}

	computed := transport.ContentMD5(resp.Body)
	if subtle.ConstantTimeCompare([]byte(computed), []byte(header)) != 1 {
		return &protocol.ResponseParseError{
			RawBody: resp.Body,
			Cause:   fmt.Errorf("%w: got %s, want %s", ErrContentMD5Mismatch, computed, header),
		}
	}

	return nil
}
