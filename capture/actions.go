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
	"os"
	"path/filepath"
	"strconv"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"
)

// EmulateViewport overrides the device metrics so layout-dependent
// coordinates are stable across environments.
func EmulateViewport(v Viewport) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		return emulation.SetDeviceMetricsOverride(v.Width, v.Height, 1, false).Do(ctx)
	})
}

// hideElementScript guards against the element being absent: hiding a
// missing ID must stay a silent no-op, not an error.
func hideElementScript(id string) string {
	return fmt.Sprintf(`(() => {
	const el = document.getElementById(%s);
	if (el) el.style.display = 'none';
})()`, strconv.Quote(id))
}

// HideElementByID hides an element so it cannot intercept pointer events.
func HideElementByID(id string) chromedp.Action {
	return chromedp.Evaluate(hideElementScript(id), nil)
}

// ClickAt resolves the spec against the live viewport and dispatches a
// mouse click there. The live size is read from the page because the menu
// scene lays itself out against the window, not the emulated metrics alone.
func ClickAt(spec ClickSpec) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		var dims [2]float64
		if err := chromedp.Evaluate(`[window.innerWidth, window.innerHeight]`, &dims).Do(ctx); err != nil {
			return fmt.Errorf("failed to read viewport size: %w", err)
		}
		x, y := spec.Point(dims[0], dims[1])
		log.Printf("Clicking at (%.0f, %.0f)", x, y)
		return chromedp.MouseClickXY(x, y).Do(ctx)
	})
}

// ScreenshotToFile captures the page and writes it to filename, creating
// the parent directory and overwriting any previous artifact.
func ScreenshotToFile(filename string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		var buf []byte
		if err := chromedp.CaptureScreenshot(&buf).Do(ctx); err != nil {
			return fmt.Errorf("failed to capture screenshot: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
			return fmt.Errorf("failed to create directory for screenshot: %w", err)
		}
		if err := os.WriteFile(filename, buf, 0644); err != nil {
			return fmt.Errorf("failed to write screenshot to file: %w", err)
		}
		log.Printf("Saved screenshot to %s", filename)
		return nil
	})
}
