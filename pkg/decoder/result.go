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
	"encoding/json"

	"github.com/clbanning/mxj/v2"

	"github.com/sellerkit-project/mws-go/pkg/transport"
)

// Result is a decoded response document. The structured content is exposed
// through Map and JSON marshaling; the raw transport response rides along
// for diagnostics only and is reachable solely through LastResponse, so it
// never leaks into serialization, iteration, or equality over Map output.
type Result struct {
	values map[string]any
	raw    *transport.Response
}

// NewResult builds a Result from an already-decoded document. Intended for
// tests and custom ResponseDecoder implementations.
func NewResult(values map[string]any, raw *transport.Response) *Result {
	return &Result{values: values, raw: raw}
}

// Map returns the decoded document.
func (r *Result) Map() map[string]any {
	return r.values
}

// Values returns all values matching a dotted path into the document,
// e.g. "ListOrdersResponse.ListOrdersResult.Orders.Order".
func (r *Result) Values(path string) ([]any, error) {
	return mxj.Map(r.values).ValuesForPath(path)
}

// LastResponse returns the raw transport response the document was decoded
// from.
func (r *Result) LastResponse() *transport.Response {
	return r.raw
}

// MarshalJSON serializes the decoded document only; the raw transport
// response is deliberately omitted.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.values)
}
