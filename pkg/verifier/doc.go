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

// Package verifier checks response integrity before decoding.
//
// The marketplace attaches a base64 MD5 digest of the body to responses on
// digest-bearing endpoints. ContentMD5Verifier recomputes the digest over
// the buffered body and rejects responses that fail the comparison, so a
// corrupted payload surfaces as a classified error rather than a confusing
// parse failure deeper in the pipeline.
//
//	v := verifier.NewContentMD5Verifier()
//	if err := v.Verify(resp); err != nil {
//	    // *protocol.ResponseParseError wrapping ErrContentMD5Mismatch
//	}
//
// Feed endpoints treat the digest as mandatory; use
// NewRequiredContentMD5Verifier there to reject responses that omit the
// header entirely.
package verifier
