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
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerkit-project/mws-go/pkg/protocol"
	"github.com/sellerkit-project/mws-go/pkg/transport"
)

func respWithDigest(body, digest string) *transport.Response {
	headers := http.Header{}
	if digest != "" {
		headers.Set("Content-MD5", digest)
	}
	return &transport.Response{StatusCode: 200, Headers: headers, Body: []byte(body)}
}

func TestContentMD5Verifier_Match(t *testing.T) {
	body := "<Response><Ok>1</Ok></Response>"
	resp := respWithDigest(body, transport.ContentMD5([]byte(body)))

	assert.NoError(t, NewContentMD5Verifier().Verify(resp))
}

func TestContentMD5Verifier_Mismatch(t *testing.T) {
	resp := respWithDigest("<tampered/>", transport.ContentMD5([]byte("<original/>")))

	err := NewContentMD5Verifier().Verify(resp)
	require.Error(t, err)

	var parseErr *protocol.ResponseParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, ErrContentMD5Mismatch)
	assert.Equal(t, []byte("<tampered/>"), parseErr.RawBody)
}

func TestContentMD5Verifier_MissingHeaderOptional(t *testing.T) {
	resp := respWithDigest("<ok/>", "")

	assert.NoError(t, NewContentMD5Verifier().Verify(resp))
}

func TestContentMD5Verifier_MissingHeaderRequired(t *testing.T) {
	resp := respWithDigest("<ok/>", "")

	err := NewRequiredContentMD5Verifier().Verify(resp)
	assert.ErrorIs(t, err, ErrContentMD5Mismatch)
}
