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

// Package capture drives a headless browser through a fixed plan against
// the game page and writes screenshot artifacts for visual inspection.
package capture

import "time"

const (
	// DefaultBaseURL is where the game dev server listens.
	DefaultBaseURL = "http://localhost:3200"

	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720

	// CanvasSelector is the readiness signal: the game engine has booted
	// once its canvas is attached and visible.
	CanvasSelector = "canvas"

	// UnsupportedBannerID is the overlay the game shows on engines it does
	// not recognize. It sits above the canvas and would swallow clicks.
	UnsupportedBannerID = "unsupported-banner"

	DefaultWaitTimeout = 10 * time.Second
	DefaultNavTimeout  = 30 * time.Second
	DefaultStepTimeout = 15 * time.Second
)

// MenuButton locates the QUICK DEMO button of the menu scene. The menu lays
// its start buttons out relative to the scale size: x offset from the
// horizontal center, y offset from the bottom edge. These values track the
// game's MenuScene layout and must be updated when it changes.
var MenuButton = ClickSpec{
	OffsetCenterX: -215,
	OffsetBottomY: -60,
}

// Viewport is an emulated page size. The zero value means the engine default.
type Viewport struct {
	Width  int64
	Height int64
}

// Config is one capture plan. The zero values of the optional fields switch
// the corresponding steps off.
type Config struct {
	// URL is the page to navigate to.
	URL string

	// Viewport, when non-nil, is emulated before navigation.
	Viewport *Viewport

	// WaitSelector, when set, is waited on (visible) after navigation,
	// bounded by WaitTimeout.
	WaitSelector string
	WaitTimeout  time.Duration

	// PauseDelay is an unconditional pause after navigation, used when the
	// page offers no readiness signal to wait on.
	PauseDelay time.Duration

	// HideIDs are element IDs hidden before clicking. A missing ID is a
	// silent no-op.
	HideIDs []string

	// Click, when non-nil, dispatches a mouse click at the point resolved
	// from the live viewport size.
	Click *ClickSpec

	// SettleDelay runs after the interaction, letting asynchronous
	// rendering finish before the capture.
	SettleDelay time.Duration

	// OutputPath is where the screenshot is written. Overwritten each run.
	OutputPath string

	// ErrorPath, when set, receives a best-effort screenshot of whatever
	// is on screen when a step fails.
	ErrorPath string
}

// LandingConfig captures the landing page as served, with no readiness
// signal beyond a short pause.
func LandingConfig() Config {
	return Config{
		URL:        DefaultBaseURL,
		Viewport:   &Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight},
		PauseDelay: 2 * time.Second,
		OutputPath: "verification/landing_debug.png",
	}
}

// MenuConfig captures the menu scene once the game canvas is up, at the
// engine's default page size.
func MenuConfig() Config {
	return Config{
		URL:          DefaultBaseURL,
		WaitSelector: CanvasSelector,
		WaitTimeout:  DefaultWaitTimeout,
		SettleDelay:  3 * time.Second,
		OutputPath:   "verification/menu.png",
	}
}

// DemoConfig starts a quick demo game: it hides the unsupported-engine
// banner, clicks the QUICK DEMO button and captures the loaded game scene.
func DemoConfig() Config {
	click := MenuButton
	return Config{
		URL:          DefaultBaseURL,
		Viewport:     &Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight},
		WaitSelector: CanvasSelector,
		WaitTimeout:  DefaultWaitTimeout,
		HideIDs:      []string{UnsupportedBannerID},
		Click:        &click,
		SettleDelay:  3 * time.Second,
		OutputPath:   "verification/verification.png",
		ErrorPath:    "verification/error.png",
	}
}
