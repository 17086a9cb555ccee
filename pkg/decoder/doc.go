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

// Package decoder converts buffered XML responses into structured results
// and classifies service-reported errors.
//
// # Decoding
//
//	d := decoder.NewXMLDecoder()
//	result, err := d.Decode(resp)
//	if err != nil {
//	    // *protocol.ErrorResponse or *protocol.ResponseParseError
//	}
//
//	orders, _ := result.Values("ListOrdersResponse.ListOrdersResult.Orders.Order")
//
// Decoding operates on the complete body only; the transport buffers the
// stream before the decoder ever sees it.
//
// # Error Envelopes
//
// A response whose root element is ErrorResponse is a service-reported
// failure even when it arrives on an otherwise successful exchange. Decode
// returns it as the error value with the conventional fields (Type, Code,
// Message, Detail, RequestID) extracted and the full parsed envelope
// attached, so callers handle upstream errors and transport errors through
// one channel.
//
// # The Raw Response Handle
//
// A successful Result keeps the originating transport response reachable
// via LastResponse for status and header inspection. The handle is held in
// an unexported field: JSON marshaling, Map iteration, and comparisons of
// Map output never observe it.
package decoder
