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
	"errors"
	"fmt"
	"log"
	"os"

	ilog "github.com/sellerkit-project/mws-go/internal/log"
	"github.com/sellerkit-project/mws-go/pkg/client"
	"github.com/sellerkit-project/mws-go/pkg/config"
	"github.com/sellerkit-project/mws-go/pkg/protocol"
)

func main() {
	fmt.Println("mws-go - Simple Client Example")
	fmt.Println("==============================")

	ctx := context.Background()

	// Load configuration from the environment
	fmt.Println("\n1. Loading configuration from environment...")
	cfg := config.FromEnv()
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		fmt.Println("   MWS_ACCESS_KEY / MWS_SECRET_KEY not set, using placeholders")
		cfg.AccessKey = "AKIDEXAMPLE"
		cfg.SecretKey = "example-secret"
	}
	fmt.Printf("   Endpoint: %s://%s:%d\n", cfg.Protocol, cfg.Host, cfg.Port)

	// Create the client
	fmt.Println("\n2. Creating client...")
	c, err := client.New(cfg, client.WithLogger(ilog.New(ilog.FromEnv())))
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	fmt.Println("   Client created successfully!")

	// Issue a signed GET request
	fmt.Println("\n3. Issuing a signed request...")
	fmt.Println("   (Note: This will fail without real credentials and network access)")

	result, err := c.Request(ctx, "GET", "/Sellers/2011-07-01", protocol.Params{
		"Action": "GetServiceStatus",
	}, nil)
	if err != nil {
		classify(err)
		os.Exit(0)
	}

	fmt.Printf("   Response: %+v\n", result.Map())
	fmt.Println("\nExample completed!")
}

// classify demonstrates the three-way error taxonomy every request
// resolves into.
func classify(err error) {
	var envelope *protocol.ErrorResponse
	var parseErr *protocol.ResponseParseError
	var connErr *protocol.ConnectionError

	switch {
	case protocol.IsTimeout(err):
		fmt.Printf("   Timed out: %v\n", err)
	case errors.As(err, &envelope):
		fmt.Printf("   Service error %s: %s\n", envelope.Code, envelope.Message)
	case errors.As(err, &parseErr):
		fmt.Printf("   Unparseable response: %v\n", parseErr)
	case errors.As(err, &connErr):
		fmt.Printf("   Connection failed: %v\n", connErr)
	default:
		fmt.Printf("   Error: %v\n", err)
	}
	fmt.Println("\nExample completed (expected without a real endpoint)")
}
