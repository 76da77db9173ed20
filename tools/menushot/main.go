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

// menushot waits for the game canvas to come up and captures the menu
// scene at the engine's default page size.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/ttbt-io/gameverify/capture"
)

var (
	chromeURL = flag.String("chrome-url", "", "Attach to a remote debugging port instead of launching a local headless Chrome")
	targetURL = flag.String("url", capture.DefaultBaseURL, "The game page to capture")
	output    = flag.String("output", "verification/menu.png", "Screenshot output path")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	sess := capture.NewSession(context.Background(), capture.SessionOptions{ChromeURL: *chromeURL})
	defer sess.Close()

	cfg := capture.MenuConfig()
	cfg.URL = *targetURL
	cfg.OutputPath = *output

	if err := capture.Run(sess.Context(), cfg); err != nil {
		log.Printf("Error: %v", err)
		return 1
	}
	return 0
}
