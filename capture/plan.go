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
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

type step struct {
	name    string
	timeout time.Duration
	action  chromedp.Action
}

// steps expands a config into the ordered action sequence it executes.
func steps(cfg Config) []step {
	var out []step

	if cfg.Viewport != nil {
		out = append(out, step{
			name:    fmt.Sprintf("emulate-viewport %dx%d", cfg.Viewport.Width, cfg.Viewport.Height),
			timeout: DefaultStepTimeout,
			action:  EmulateViewport(*cfg.Viewport),
		})
	}

	out = append(out, step{
		name:    "navigate " + cfg.URL,
		timeout: DefaultNavTimeout,
		action:  chromedp.Navigate(cfg.URL),
	})

	if cfg.WaitSelector != "" {
		timeout := cfg.WaitTimeout
		if timeout <= 0 {
			timeout = DefaultWaitTimeout
		}
		out = append(out, step{
			name:    "wait-visible " + cfg.WaitSelector,
			timeout: timeout,
			action:  chromedp.WaitVisible(cfg.WaitSelector, chromedp.ByQuery),
		})
	}

	if cfg.PauseDelay > 0 {
		out = append(out, step{
			name:    "pause " + cfg.PauseDelay.String(),
			timeout: cfg.PauseDelay + DefaultStepTimeout,
			action:  chromedp.Sleep(cfg.PauseDelay),
		})
	}

	for _, id := range cfg.HideIDs {
		out = append(out, step{
			name:    "hide #" + id,
			timeout: DefaultStepTimeout,
			action:  HideElementByID(id),
		})
	}

	if cfg.Click != nil {
		out = append(out, step{
			name:    fmt.Sprintf("click center%+.0f bottom%+.0f", cfg.Click.OffsetCenterX, cfg.Click.OffsetBottomY),
			timeout: DefaultStepTimeout,
			action:  ClickAt(*cfg.Click),
		})
	}

	if cfg.SettleDelay > 0 {
		out = append(out, step{
			name:    "settle " + cfg.SettleDelay.String(),
			timeout: cfg.SettleDelay + DefaultStepTimeout,
			action:  chromedp.Sleep(cfg.SettleDelay),
		})
	}

	out = append(out, step{
		name:    "screenshot " + cfg.OutputPath,
		timeout: DefaultStepTimeout,
		action:  ScreenshotToFile(cfg.OutputPath),
	})

	return out
}

// Plan returns the ordered step names a config will execute. Useful for
// logging the sequence up front and for golden tests pinning it down.
func Plan(cfg Config) []string {
	ss := steps(cfg)
	names := make([]string, len(ss))
	for i, s := range ss {
		names[i] = s.name
	}
	return names
}
