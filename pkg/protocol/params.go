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

package protocol

import (
	"sort"
	"strings"
)

// Params is a flat request parameter map. One Params value belongs to a
// single in-flight request and must not be mutated once signing begins.
type Params map[string]string

// Clone returns an independent copy of the parameter map.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// SortedKeys returns the parameter names in byte order.
func (p Params) SortedKeys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Encode serializes the parameters in canonical form: keys sorted in byte
// order, keys and values percent-encoded, pairs joined with '&'. The same
// serialization is used for the string-to-sign and for the request query
// string or form body, so a signature computed over Encode output verifies
// against the bytes actually sent.
func (p Params) Encode() string {
	var b strings.Builder
	for i, k := range p.SortedKeys() {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(PercentEncode(k))
		b.WriteByte('=')
		b.WriteString(PercentEncode(p[k]))
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

// PercentEncode escapes s per RFC 3986 as required by the V2 signing
// scheme: unreserved characters (ALPHA / DIGIT / "-" / "_" / "." / "~")
// pass through, everything else becomes %XX. Note that space encodes as
// %20, not '+', which is why net/url query encoding cannot be used here.
func PercentEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xF])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	case c == '-' || c == '_' || c == '.' || c == '~':
		return true
	}
	return false
}
