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
	"github.com/sellerkit-project/mws-go/pkg/transport"
)

// ResponseVerifier checks the integrity of a buffered response before it
// is handed to the decoder.
type ResponseVerifier interface {
	// Verify returns nil when the response passes, or an error from the
	// protocol taxonomy when it must not be decoded.
	Verify(resp *transport.Response) error
}
