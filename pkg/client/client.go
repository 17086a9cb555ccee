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
	"fmt"
	"log/slog"
	"net/http"

	ilog "github.com/sellerkit-project/mws-go/internal/log"
	"github.com/sellerkit-project/mws-go/pkg/config"
	"github.com/sellerkit-project/mws-go/pkg/decoder"
	"github.com/sellerkit-project/mws-go/pkg/protocol"
	"github.com/sellerkit-project/mws-go/pkg/signer"
	"github.com/sellerkit-project/mws-go/pkg/transport"
	"github.com/sellerkit-project/mws-go/pkg/verifier"
)

// Transport issues one request and produces its single terminal outcome.
// *transport.HTTPTransport satisfies it; tests substitute mocks.
type Transport interface {
	Do(ctx context.Context, params transport.Params, body []byte) (*transport.Response, error)
	Send(ctx context.Context, params transport.Params, body []byte, cb transport.Callback)
}

// Client is the entry point of the signed request pipeline. It owns the
// collaborators for one endpoint: shared read-only configuration, the
// parameter signer, the transport, the decoder, and an optional response
// verifier. A Client is safe for concurrent use; in-flight requests share
// nothing but the read-only configuration and credentials.
type Client struct {
	cfg        *config.Config
	signer     signer.RequestSigner
	transport  Transport
	decoder    decoder.ResponseDecoder
	verifier   verifier.ResponseVerifier
	logger     *slog.Logger
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client) error

// WithSigner sets a custom request signer.
func WithSigner(s signer.RequestSigner) Option {
	return func(c *Client) error {
		c.signer = s
		return nil
	}
}

// WithTransport sets a custom transport.
func WithTransport(t Transport) Option {
	return func(c *Client) error {
		c.transport = t
		return nil
	}
}

// WithHTTPClient sets the underlying HTTP client used by the default
// transport. Ignored when WithTransport is also given.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		c.httpClient = hc
		return nil
	}
}

// WithDecoder sets a custom response decoder.
func WithDecoder(d decoder.ResponseDecoder) Option {
	return func(c *Client) error {
		c.decoder = d
		return nil
	}
}

// WithVerifier enables response integrity verification.
func WithVerifier(v verifier.ResponseVerifier) Option {
	return func(c *Client) error {
		c.verifier = v
		return nil
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}

// New creates a Client for the given configuration. The configuration is
// validated once here and never mutated afterwards.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	c := &Client{
		cfg:     cfg,
		signer:  signer.NewDefaultV2Signer(),
		decoder: decoder.NewXMLDecoder(),
		logger:  ilog.Discard(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.transport == nil {
		c.transport = transport.NewHTTPTransport(cfg.Protocol, cfg.Timeout, c.httpClient, c.logger)
	}

	return c, nil
}

// AuthOptions is a placeholder for future authentication variants. It is
// accepted on every request and currently ignored.
type AuthOptions struct{}

// RequestOptions carries per-request adjustments.
type RequestOptions struct {
	// Headers are merged over the computed request headers
	Headers map[string]string

	// Host overrides the configured endpoint host for this request
	Host string

	// Auth is reserved for future auth variants
	Auth *AuthOptions
}

// Callback receives the single terminal outcome of an asynchronous
// request.
type Callback func(result *decoder.Result, err error)

// Request signs and issues one API call and blocks for its outcome.
//
// GET parameter sets receive the injected authentication parameters; other
// methods travel unsigned per the V2 scheme. The returned error is always
// one of the protocol taxonomy: *protocol.ConnectionError,
// *protocol.ResponseParseError, or *protocol.ErrorResponse.
func (c *Client) Request(ctx context.Context, method, path string, data protocol.Params, opts *RequestOptions) (*decoder.Result, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}

	host := opts.Host
	if host == "" {
		host = c.cfg.Host
	}

	// The signature covers the path as it appears on the wire
	signed, err := c.signer.SignParams(ctx, method, host, c.cfg.BasePath+path, data, c.cfg.Credentials())
	if err != nil {
		return nil, fmt.Errorf("failed to sign request: %w", err)
	}

	spec := protocol.RequestSpec{
		Method:  method,
		Path:    path,
		Data:    signed,
		Headers: opts.Headers,
	}

	// The client identifier must be in hand before the connection attempt
	userAgent := c.cfg.UserAgent()
	params, body := transport.BuildParams(spec, opts.Host, userAgent, c.cfg)

	c.logger.Debug("issuing request",
		ilog.MethodKey, params.Method,
		"host", params.Host,
		"path", spec.Path)

	resp, err := c.transport.Do(ctx, params, body)
	if err != nil {
		return nil, err
	}

	if c.verifier != nil {
		if err := c.verifier.Verify(resp); err != nil {
			return nil, err
		}
	}

	return c.decoder.Decode(resp)
}

// RequestAsync issues the call and delivers the outcome to cb exactly
// once. Delivery always happens off the caller's goroutine, so callers
// mixing blocking and callback styles observe consistent ordering.
func (c *Client) RequestAsync(ctx context.Context, method, path string, data protocol.Params, opts *RequestOptions, cb Callback) {
	go func() {
		cb(c.Request(ctx, method, path, data, opts))
	}()
}

// Config returns the shared configuration.
func (c *Client) Config() *config.Config {
	return c.cfg
}
