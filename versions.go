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

// Package mws provides version information for mws-go and the marketplace
// wire protocol it speaks.
package mws

const (
	// Version is the current version of mws-go
	Version = "1.0.0-dev"

	// APIVersion is the marketplace API version injected into every signed
	// parameter set as the Version parameter
	APIVersion = "2009-01-01"

	// SignatureVersion is the request signing scheme version (AWS-style V2)
	SignatureVersion = "2"

	// SignatureMethod is the HMAC algorithm name advertised in signed requests
	SignatureMethod = "HmacSHA256"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	MWSGoVersion     string
	APIVersion       string
	SignatureVersion string
	SignatureMethod  string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		MWSGoVersion:     Version,
		APIVersion:       APIVersion,
		SignatureVersion: SignatureVersion,
		SignatureMethod:  SignatureMethod,
	}
}
