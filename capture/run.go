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
	"fmt"
	"log"

	"github.com/chromedp/chromedp"
)

// Run executes the plan sequentially against the session context. The first
// failing step aborts the run: the failure is logged, a best-effort error
// screenshot is taken when the config names one, and the error is returned.
// No retries.
func Run(ctx context.Context, cfg Config) error {
	for _, s := range steps(cfg) {
		if err := runStep(ctx, s); err != nil {
			if cfg.ErrorPath != "" {
				if serr := chromedp.Run(ctx, ScreenshotToFile(cfg.ErrorPath)); serr != nil {
					log.Printf("Failed to capture error screenshot: %v", serr)
				}
			}
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

// runStep executes one action bounded by its timeout, dumping debug state
// on failure.
func runStep(ctx context.Context, s step) error {
	stepCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := chromedp.Run(stepCtx, s.action); err != nil {
		log.Printf("Step '%s' failed: %v", s.name, err)
		debugFailure(ctx, s.name)
		return err
	}
	return nil
}

// debugFailure logs the page HTML so a failed run leaves something to
// inspect even when the error screenshot cannot be taken.
func debugFailure(ctx context.Context, name string) {
	var htmlContent string
	if err := chromedp.Run(ctx, chromedp.OuterHTML("html", &htmlContent)); err != nil {
		log.Printf("DEBUG: Failed to capture HTML after '%s': %v", name, err)
		return
	}
	log.Printf("DEBUG: HTML dump after '%s':\n%s", name, htmlContent)
}
