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

// demoshot starts a quick demo game: it waits for the canvas, hides the
// unsupported-engine banner, clicks the QUICK DEMO button of the menu scene
// and captures the loaded game scene. On failure it keeps a screenshot of
// whatever was on screen.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/ttbt-io/gameverify/capture"
)

var (
	chromeURL   = flag.String("chrome-url", "", "Attach to a remote debugging port instead of launching a local headless Chrome")
	targetURL   = flag.String("url", capture.DefaultBaseURL, "The game page to capture")
	output      = flag.String("output", "verification/verification.png", "Screenshot output path")
	errorOutput = flag.String("error-output", "verification/error.png", "Where to keep the on-failure screenshot")
	clickDX     = flag.Float64("click-offset-x", capture.MenuButton.OffsetCenterX, "QUICK DEMO button x offset from the horizontal center")
	clickDY     = flag.Float64("click-offset-y", capture.MenuButton.OffsetBottomY, "QUICK DEMO button y offset from the bottom edge")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	sess := capture.NewSession(context.Background(), capture.SessionOptions{ChromeURL: *chromeURL})
	defer sess.Close()

	cfg := capture.DemoConfig()
	cfg.URL = *targetURL
	cfg.OutputPath = *output
	cfg.ErrorPath = *errorOutput
	cfg.Click = &capture.ClickSpec{OffsetCenterX: *clickDX, OffsetBottomY: *clickDY}

	if err := capture.Run(sess.Context(), cfg); err != nil {
		log.Printf("Error: %v", err)
		return 1
	}
	return 0
}
