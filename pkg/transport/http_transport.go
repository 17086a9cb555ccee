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

package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptrace"
	"strconv"
	"time"

	"github.com/google/uuid"

	ilog "github.com/sellerkit-project/mws-go/internal/log"
)

// DefaultTimeout bounds a request when the configuration does not supply
// its own timeout.
const DefaultTimeout = 30 * time.Second

// errAbortedByTimeout is the cause recorded when the timer fires after the
// response was technically received but before it was delivered.
var errAbortedByTimeout = errors.New("request aborted by timeout")

// HTTPTransport owns the lifecycle of outbound requests: it selects the
// plaintext or encrypted transport, arms a per-request timeout, issues the
// request, buffers the full response body, and guarantees exactly one
// terminal outcome per request.
type HTTPTransport struct {
	scheme  string
	timeout time.Duration
	client  *http.Client
	logger  *slog.Logger
}

// NewHTTPTransport creates a transport for the given scheme ("http" or
// "https"; empty selects "https") and timeout (non-positive selects
// DefaultTimeout). If httpClient is nil a default client is used; if
// logger is nil logging is disabled.
func NewHTTPTransport(scheme string, timeout time.Duration, httpClient *http.Client, logger *slog.Logger) *HTTPTransport {
	if scheme == "" {
		scheme = "https"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = ilog.Discard()
	}

	return &HTTPTransport{
		scheme:  scheme,
		timeout: timeout,
		client:  httpClient,
		logger:  logger,
	}
}

// Scheme returns the selected transport scheme.
func (t *HTTPTransport) Scheme() string { return t.scheme }

// URL assembles the full request URL for the given connection parameters.
func (t *HTTPTransport) URL(params Params) string {
	host := params.Host
	if params.Port > 0 && !isDefaultPort(t.scheme, params.Port) {
		host = net.JoinHostPort(host, strconv.Itoa(params.Port))
	}
	return t.scheme + "://" + host + params.Path
}

func isDefaultPort(scheme string, port int) bool {
	return (scheme == "https" && port == 443) || (scheme == "http" && port == 80)
}

// Send issues the request and delivers exactly one terminal callback:
// (resp, nil) on success, (nil, *protocol.ConnectionError) on timeout or
// transport failure. Delivery is deferred to a separate goroutine so the
// callback never runs inside the caller's synchronous turn.
func (t *HTTPTransport) Send(ctx context.Context, params Params, body []byte, cb Callback) {
	go t.run(ctx, params, body, cb)
}

// Do issues the request and blocks for its single terminal outcome.
func (t *HTTPTransport) Do(ctx context.Context, params Params, body []byte) (*Response, error) {
	type outcome struct {
		resp *Response
		err  error
	}
	ch := make(chan outcome, 1)
	t.run(ctx, params, body, func(resp *Response, err error) {
		ch <- outcome{resp: resp, err: err}
	})
	o := <-ch
	return o.resp, o.err
}

func (t *HTTPTransport) run(ctx context.Context, params Params, body []byte, cb Callback) {
	reqID := uuid.NewString()
	url := t.URL(params)
	logger := t.logger.With(ilog.RequestIDKey, reqID)
	state := newRequestState(cb, url, logger)
	start := time.Now()

	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Arm the timeout before the connection attempt. On fire the state is
	// marked aborted first, then the connection is torn down; the error
	// event produced by the teardown is attributed to the timeout instead
	// of being delivered as a second outcome.
	timer := time.AfterFunc(t.timeout, func() {
		if state.abort() {
			logger.Debug("request timed out, aborting connection", ilog.URLKey, url)
			cancel()
		}
	})
	defer timer.Stop()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(reqCtx, params.Method, url, reader)
	if err != nil {
		state.fail(fmt.Errorf("failed to create request: %w", err))
		return
	}
	for k, v := range params.Headers {
		req.Header.Set(k, v)
	}

	// net/http writes the body only after the handshake of the selected
	// transport completes (plaintext connect vs. TLS handshake); the trace
	// hooks expose those readiness signals for the timeout budget.
	trace := &httptrace.ClientTrace{
		ConnectDone: func(network, addr string, err error) {
			if err == nil {
				logger.Log(reqCtx, ilog.LevelTrace, "connection established", "addr", addr)
			}
		},
		TLSHandshakeDone: func(cs tls.ConnectionState, err error) {
			if err == nil {
				logger.Log(reqCtx, ilog.LevelTrace, "tls handshake complete")
			}
		},
		WroteRequest: func(info httptrace.WroteRequestInfo) {
			logger.Log(reqCtx, ilog.LevelTrace, "request body written", "err", info.Err)
		},
	}
	req = req.WithContext(httptrace.WithClientTrace(reqCtx, trace))

	logger.Debug("sending request",
		ilog.MethodKey, params.Method,
		ilog.URLKey, url)

	httpResp, err := t.client.Do(req)
	if err != nil {
		state.fail(err)
		return
	}
	defer httpResp.Body.Close()

	// Accumulate the full body before any decoding happens downstream
	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		state.fail(fmt.Errorf("failed to read response body: %w", err))
		return
	}

	logger.Debug("response received",
		ilog.StatusKey, httpResp.StatusCode,
		ilog.DurationKey, time.Since(start).Milliseconds(),
		"bytes", len(respBody))

	state.succeed(&Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
		RequestID:  reqID,
	})
}
