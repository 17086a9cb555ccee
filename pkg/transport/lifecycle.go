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
	"log/slog"
	"sync"

	ilog "github.com/sellerkit-project/mws-go/internal/log"
	"github.com/sellerkit-project/mws-go/pkg/protocol"
)

// Callback receives the single terminal outcome of one request: either a
// buffered response or a classified error, never both, never twice.
type Callback func(resp *Response, err error)

// requestState tracks the terminal status of one in-flight request. The
// timeout timer and the transport event handlers share it; the flags, not
// any assumed mutual exclusion between event sources, are what guarantee a
// single terminal callback. The timer fires on its own goroutine, so every
// transition holds the mutex.
type requestState struct {
	mu        sync.Mutex
	aborted   bool
	completed bool

	cb     Callback
	url    string
	logger *slog.Logger
}

func newRequestState(cb Callback, url string, logger *slog.Logger) *requestState {
	return &requestState{cb: cb, url: url, logger: logger}
}

// abort marks the request as aborted by its timer. It must be called
// before the connection teardown that follows, so that the error event
// produced by the teardown is attributed to the timeout and suppressed as
// a duplicate. Returns false when a terminal outcome has already been
// delivered; a late timer must then leave the connection alone.
func (s *requestState) abort() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completed {
		return false
	}
	s.aborted = true
	return true
}

// fail delivers a failure outcome exactly once. When the request was
// previously aborted by its timer, the cause is attributed to the timeout
// regardless of what the transport reported. Duplicate terminal events are
// logged and dropped.
func (s *requestState) fail(cause error) {
	s.mu.Lock()
	if s.completed {
		s.mu.Unlock()
		s.logger.Debug("suppressing duplicate terminal event", ilog.URLKey, s.url, "cause", cause)
		return
	}
	s.completed = true
	timedOut := s.aborted
	s.mu.Unlock()

	s.cb(nil, &protocol.ConnectionError{URL: s.url, Timeout: timedOut, Cause: cause})
}

// succeed delivers a success outcome exactly once. If the timer fired
// while the response was already in hand, the timeout wins and the
// response is discarded.
func (s *requestState) succeed(resp *Response) {
	s.mu.Lock()
	if s.completed {
		s.mu.Unlock()
		s.logger.Debug("suppressing duplicate terminal event", ilog.URLKey, s.url)
		return
	}
	s.completed = true
	timedOut := s.aborted
	s.mu.Unlock()

	if timedOut {
		s.cb(nil, &protocol.ConnectionError{URL: s.url, Timeout: true, Cause: errAbortedByTimeout})
		return
	}
	s.cb(resp, nil)
}
