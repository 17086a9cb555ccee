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

package decoder

import (
	"github.com/clbanning/mxj/v2"

	"github.com/sellerkit-project/mws-go/pkg/protocol"
	"github.com/sellerkit-project/mws-go/pkg/transport"
)

// ResponseDecoder converts a buffered transport response into a structured
// Result or a classified error.
type ResponseDecoder interface {
	// Decode parses the response body. It returns exactly one of a Result
	// or an error from the protocol taxonomy; it never panics on malformed
	// input.
	Decode(resp *transport.Response) (*Result, error)
}

// XMLDecoder implements ResponseDecoder for the marketplace XML wire
// format.
type XMLDecoder struct{}

// NewXMLDecoder creates a new XMLDecoder
func NewXMLDecoder() *XMLDecoder {
	return &XMLDecoder{}
}

// Decode parses the XML body into a map-structured document.
//
// A body that is not well-formed XML yields a *protocol.ResponseParseError
// carrying the raw bytes. A well-formed body whose root is an ErrorResponse
// envelope yields the parsed *protocol.ErrorResponse as the error value.
// Anything else is a success and the Result retains the raw response for
// diagnostics.
func (d *XMLDecoder) Decode(resp *transport.Response) (*Result, error) {
	m, err := mxj.NewMapXml(resp.Body)
	if err != nil {
		return nil, &protocol.ResponseParseError{RawBody: resp.Body, Cause: err}
	}

	if envelope, ok := m["ErrorResponse"]; ok {
		return nil, errorResponse(envelope)
	}

	return &Result{values: map[string]any(m), raw: resp}, nil
}

// errorResponse lifts the parsed ErrorResponse envelope into the typed
// error, extracting the conventional fields best-effort.
func errorResponse(envelope any) *protocol.ErrorResponse {
	er := &protocol.ErrorResponse{}

	env, ok := envelope.(map[string]any)
	if !ok {
		er.Envelope = map[string]any{"ErrorResponse": envelope}
		return er
	}
	er.Envelope = env

	if e, ok := env["Error"].(map[string]any); ok {
		er.Type = text(e["Type"])
		er.Code = text(e["Code"])
		er.Message = text(e["Message"])
		er.Detail = text(e["Detail"])
	}

	// Both spellings occur in the wild
	if id := text(env["RequestID"]); id != "" {
		er.RequestID = id
	} else {
		er.RequestID = text(env["RequestId"])
	}

	return er
}

func text(v any) string {
	s, _ := v.(string)
	return s
}
