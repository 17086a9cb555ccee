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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerkit-project/mws-go/pkg/protocol"
)

var testCreds = protocol.Credentials{
	AccessKey: "AKIDEXAMPLE",
	SecretKey: "wJalrXUtnFEMI/K7MDENG+bPxRfiCYEXAMPLEKEY",
}

var testTimestamp = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func signFixed(t *testing.T, method string, params protocol.Params) protocol.Params {
	t.Helper()

	s := NewDefaultV2Signer()
	signed, err := s.SignParamsWithOptions(context.Background(), method,
		"mws.example.com", "/Orders/2009-01-01", params, testCreds,
		&SigningOptions{Timestamp: testTimestamp})
	require.NoError(t, err)
	return signed
}

func TestDefaultV2Signer_InjectsAuthParams(t *testing.T) {
	signed := signFixed(t, "GET", protocol.Params{"Action": "ListOrders"})

	assert.Equal(t, "ListOrders", signed["Action"])
	assert.Equal(t, testCreds.AccessKey, signed["AWSAccessKeyId"])
	assert.Equal(t, "2026-03-14T09:26:53Z", signed["Timestamp"])
	assert.Equal(t, "2", signed["SignatureVersion"])
	assert.Equal(t, "HmacSHA256", signed["SignatureMethod"])
	assert.Equal(t, "2009-01-01", signed["Version"])
	assert.NotEmpty(t, signed["Signature"])

	// Signature is valid standard base64
	_, err := base64.StdEncoding.DecodeString(signed["Signature"])
	assert.NoError(t, err)
}

func TestDefaultV2Signer_Deterministic(t *testing.T) {
	// Same inputs and timestamp must always produce the same signature
	first := signFixed(t, "GET", protocol.Params{"Action": "ListOrders", "Marker": "m1"})

	for i := 0; i < 10; i++ {
		again := signFixed(t, "GET", protocol.Params{"Action": "ListOrders", "Marker": "m1"})
		assert.Equal(t, first["Signature"], again["Signature"])
	}
}

func TestDefaultV2Signer_KeyOrderInvariance(t *testing.T) {
	// Building the input map in different insertion orders must not change
	// the signed parameter set
	forward := protocol.Params{}
	forward["Action"] = "GetOrder"
	forward["AmazonOrderId"] = "123-456"
	forward["MarketplaceId"] = "ATVPDKIKX0DER"

	backward := protocol.Params{}
	backward["MarketplaceId"] = "ATVPDKIKX0DER"
	backward["AmazonOrderId"] = "123-456"
	backward["Action"] = "GetOrder"

	assert.Equal(t, signFixed(t, "GET", forward), signFixed(t, "GET", backward))
}

func TestDefaultV2Signer_SignatureMatchesManualHMAC(t *testing.T) {
	signed := signFixed(t, "GET", protocol.Params{"Action": "ListOrders"})

	// Recompute the signature from the returned parameters minus Signature
	unsigned := signed.Clone()
	delete(unsigned, "Signature")
	stringToSign := StringToSign("GET", "mws.example.com", "/Orders/2009-01-01", unsigned)

	mac := hmac.New(sha256.New, []byte(testCreds.SecretKey))
	mac.Write([]byte(stringToSign))
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	assert.Equal(t, expected, signed["Signature"])
}

func TestDefaultV2Signer_GETOnlyPolicy(t *testing.T) {
	// POST and PUT parameter sets pass through without any injected fields
	for _, method := range []string{"POST", "PUT", "DELETE"} {
		signed := signFixed(t, method, protocol.Params{"FeedType": "_POST_ORDER_"})

		assert.Equal(t, "_POST_ORDER_", signed["FeedType"])
		assert.NotContains(t, signed, "AWSAccessKeyId", method)
		assert.NotContains(t, signed, "Signature", method)
		assert.NotContains(t, signed, "Timestamp", method)
		assert.Len(t, signed, 1, method)
	}
}

func TestDefaultV2Signer_DoesNotMutateInput(t *testing.T) {
	params := protocol.Params{"Action": "ListOrders"}
	_ = signFixed(t, "GET", params)

	assert.Len(t, params, 1)
	assert.NotContains(t, params, "Signature")
}

func TestDefaultV2Signer_NilParams(t *testing.T) {
	signed := signFixed(t, "GET", nil)

	assert.NotEmpty(t, signed["Signature"])
	assert.Equal(t, testCreds.AccessKey, signed["AWSAccessKeyId"])
}

func TestDefaultV2Signer_SecretChangesSignature(t *testing.T) {
	s := NewDefaultV2Signer()
	opts := &SigningOptions{Timestamp: testTimestamp}

	first, err := s.SignParamsWithOptions(context.Background(), "GET",
		"mws.example.com", "/", protocol.Params{"Action": "A"}, testCreds, opts)
	require.NoError(t, err)

	other := testCreds
	other.SecretKey = "another-secret"
	second, err := s.SignParamsWithOptions(context.Background(), "GET",
		"mws.example.com", "/", protocol.Params{"Action": "A"}, other, opts)
	require.NoError(t, err)

	assert.NotEqual(t, first["Signature"], second["Signature"])
}

func TestDefaultV2Signer_APIVersionOverride(t *testing.T) {
	s := NewDefaultV2Signer()
	signed, err := s.SignParamsWithOptions(context.Background(), "GET",
		"mws.example.com", "/", nil, testCreds,
		&SigningOptions{Timestamp: testTimestamp, APIVersion: "2011-07-01"})
	require.NoError(t, err)

	assert.Equal(t, "2011-07-01", signed["Version"])
}

func TestDefaultV2Signer_ValidationErrors(t *testing.T) {
	s := NewDefaultV2Signer()
	ctx := context.Background()

	_, err := s.SignParams(ctx, "GET", "mws.example.com", "/", nil,
		protocol.Credentials{SecretKey: "s"})
	assert.ErrorContains(t, err, "access key")

	_, err = s.SignParams(ctx, "GET", "mws.example.com", "/", nil,
		protocol.Credentials{AccessKey: "a"})
	assert.ErrorContains(t, err, "secret key")

	_, err = s.SignParams(ctx, "GET", "", "/", nil, testCreds)
	assert.ErrorContains(t, err, "host")
}

func TestDefaultV2Signer_ContextCanceled(t *testing.T) {
	s := NewDefaultV2Signer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.SignParams(ctx, "GET", "mws.example.com", "/", nil, testCreds)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStringToSign_Layout(t *testing.T) {
	params := protocol.Params{"b": "2", "a": "1"}
	got := StringToSign("get", "MWS.Example.COM", "/Orders/2009-01-01", params)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "GET", lines[0])
	assert.Equal(t, "mws.example.com", lines[1])
	assert.Equal(t, "/Orders/2009-01-01", lines[2])
	assert.Equal(t, "a=1&b=2", lines[3])
}

func TestStringToSign_EmptyPath(t *testing.T) {
	got := StringToSign("GET", "mws.example.com", "", nil)
	assert.Equal(t, "GET\nmws.example.com\n/\n", got)
}
