// Copyright (c) 2026 TTBT Enterprises LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package capture

import (
	"context"
	"log"
	"sync"

	"github.com/chromedp/chromedp"
)

// SessionOptions selects how the browser is acquired.
type SessionOptions struct {
	// ChromeURL attaches to a remote debugging port instead of launching
	// a local browser.
	ChromeURL string
}

// Session is an exclusively-owned browser handle. It must be closed exactly
// once; Close is safe to call on every exit path.
type Session struct {
	ctx     context.Context
	cancels []context.CancelFunc
	once    sync.Once
}

// NewSession prepares a browser context. With an empty ChromeURL a local
// headless Chrome is launched on first use; otherwise the session attaches
// to the remote debugging URL.
func NewSession(parent context.Context, opts SessionOptions) *Session {
	s := &Session{}

	var allocCtx context.Context
	var cancel context.CancelFunc
	if opts.ChromeURL != "" {
		allocCtx, cancel = chromedp.NewRemoteAllocator(parent, opts.ChromeURL)
	} else {
		execOpts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.Flag("mute-audio", true),
		)
		allocCtx, cancel = chromedp.NewExecAllocator(parent, execOpts...)
	}
	s.cancels = append(s.cancels, cancel)

	ctx, cancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(log.Printf))
	s.cancels = append(s.cancels, cancel)
	s.ctx = ctx
	return s
}

// Context returns the browser context to run actions against.
func (s *Session) Context() context.Context {
	return s.ctx
}

// Close releases the browser. Idempotent.
func (s *Session) Close() {
	s.once.Do(func() {
		for i := len(s.cancels) - 1; i >= 0; i-- {
			s.cancels[i]()
		}
	})
}
