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

package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/sellerkit-project/mws-go/pkg/decoder"
	"github.com/sellerkit-project/mws-go/pkg/protocol"
)

// Operation is a reusable request builder shared across resource types.
// Resource types hold references to the operations they support and call
// them explicitly; nothing is grafted onto a resource at construction
// time.
type Operation func(ctx context.Context, c *Client, res Resource, data protocol.Params, opts *RequestOptions) (*decoder.Result, error)

// The shared operation table. Each entry issues a call against a
// resource's path and endpoint with the corresponding verb.
var (
	Get    = methodOperation(http.MethodGet)
	Post   = methodOperation(http.MethodPost)
	Put    = methodOperation(http.MethodPut)
	Delete = methodOperation(http.MethodDelete)
)

func methodOperation(method string) Operation {
	return func(ctx context.Context, c *Client, res Resource, data protocol.Params, opts *RequestOptions) (*decoder.Result, error) {
		merged := RequestOptions{}
		if opts != nil {
			merged = *opts
		}
		if merged.Host == "" {
			merged.Host = res.Host
		}
		return c.Request(ctx, method, res.Path, data, &merged)
	}
}

// Resource names one API section: its path and, when the section lives on
// its own endpoint, a host override.
type Resource struct {
	// Name identifies the resource in logs and errors
	Name string

	// Path is the resource path, possibly with {placeholder} segments
	Path string

	// Host overrides the configured endpoint host when non-empty
	Host string
}

// At returns a copy of the resource with {placeholder} segments in its
// path replaced by the given arguments.
func (r Resource) At(args map[string]string) Resource {
	r.Path = ExpandPath(r.Path, args)
	return r
}

// Do invokes one of the shared operations against this resource.
func (r Resource) Do(ctx context.Context, c *Client, op Operation, data protocol.Params, opts *RequestOptions) (*decoder.Result, error) {
	return op(ctx, c, r, data, opts)
}

// ExpandPath interpolates {name} placeholders in a path template.
// Unmatched placeholders are left intact.
func ExpandPath(template string, args map[string]string) string {
	if len(args) == 0 {
		return template
	}
	pairs := make([]string, 0, len(args)*2)
	for k, v := range args {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
