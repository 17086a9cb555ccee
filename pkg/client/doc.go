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

// Package client is the entry point of the mws-go signed request pipeline.
//
// # Basic Usage
//
//	cfg := config.FromEnv()
//	c, err := client.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := c.Request(ctx, "GET", "/Orders/2009-01-01",
//	    protocol.Params{"Action": "ListOrders", "MarketplaceId": "ATVPDKIKX0DER"}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	orders, _ := result.Values("ListOrdersResponse.ListOrdersResult.Orders.Order")
//
// # Request Flow
//
// Each call runs the same pipeline: the parameter map is signed (GET only,
// per the V2 scheme), connection parameters are derived from the shared
// configuration, the transport issues the request under an armed timeout,
// and the buffered XML body is decoded into a Result. Every failure
// arrives as exactly one classified error: *protocol.ConnectionError,
// *protocol.ResponseParseError, or *protocol.ErrorResponse. The pipeline
// never retries; surface policy belongs to the caller.
//
// # Callback Style
//
//	c.RequestAsync(ctx, "GET", "/Orders/2009-01-01", params, nil,
//	    func(result *decoder.Result, err error) { ... })
//
// The callback is delivered off the calling goroutine, exactly once.
//
// # Resources
//
// Resource types share one table of request-building operations instead of
// copying methods onto themselves:
//
//	orders := client.Resource{Name: "Orders", Path: "/Orders/2009-01-01"}
//	result, err := orders.Do(ctx, c, client.Get,
//	    protocol.Params{"Action": "ListOrders"}, nil)
//
// A resource on a dedicated endpoint sets Host; per-request options can
// still override it.
//
// # Per-Request Options
//
//	opts := &client.RequestOptions{
//	    Headers: map[string]string{"X-Trace": "on"},
//	    Host:    "feeds.example.com",
//	}
//	result, err := c.Request(ctx, "POST", "/Feeds/2009-01-01", params, opts)
package client
