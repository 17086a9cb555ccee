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

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sellerkit-project/mws-go/pkg/client"
	"github.com/sellerkit-project/mws-go/pkg/config"
	"github.com/sellerkit-project/mws-go/pkg/protocol"
)

func main() {
	fmt.Println("mws-go - List Orders Example")
	fmt.Println("============================")

	ctx := context.Background()

	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Set MWS_ACCESS_KEY, MWS_SECRET_KEY and MWS_HOST first: %v", err)
	}

	c, err := client.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	// Resource types share one operation table instead of carrying their
	// own request methods
	orders := client.Resource{Name: "Orders", Path: "/Orders/2009-01-01"}

	fmt.Println("\n1. Listing orders created in the last 24 hours...")
	result, err := orders.Do(ctx, c, client.Get, protocol.Params{
		"Action":          "ListOrders",
		"MarketplaceId.1": "ATVPDKIKX0DER",
		"CreatedAfter":    time.Now().Add(-24 * time.Hour).UTC().Format(time.RFC3339),
	}, nil)
	if err != nil {
		log.Fatalf("ListOrders failed: %v", err)
	}

	items, err := result.Values("ListOrdersResponse.ListOrdersResult.Orders.Order")
	if err != nil {
		log.Fatalf("Unexpected response shape: %v", err)
	}
	fmt.Printf("   Found %d order(s)\n", len(items))
	for i, item := range items {
		fmt.Printf("   %d: %+v\n", i+1, item)
	}

	// The raw response stays reachable for debugging without leaking into
	// serialized output
	fmt.Printf("\n2. HTTP status was %d\n", result.LastResponse().StatusCode)

	fmt.Println("\nExample completed!")
}
