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
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pmezard/go-difflib/difflib"
)

// checkPlanGolden compares a plan to a golden file. Set UPDATE_GOLDENS=true
// to rewrite the file instead.
func checkPlanGolden(t *testing.T, goldenFilename string, plan []string) {
	t.Helper()
	actual := strings.Join(plan, "\n") + "\n"
	goldenPath := filepath.Join("goldens", goldenFilename)

	if os.Getenv("UPDATE_GOLDENS") == "true" {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0755); err != nil {
			t.Fatalf("Failed to create golden directory: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(actual), 0644); err != nil {
			t.Fatalf("Failed to write golden file %s: %v", goldenPath, err)
		}
		t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	expectedBytes, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("Failed to read golden file %s: %v", goldenPath, err)
	}
	expected := string(expectedBytes)
	if expected == actual {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: goldenPath,
		ToFile:   "actual",
		Context:  3,
	})
	t.Errorf("Plan does not match golden %s:\n%s", goldenPath, diff)
}

func TestLandingPlan(t *testing.T) {
	checkPlanGolden(t, "landing.txt", Plan(LandingConfig()))
}

func TestMenuPlan(t *testing.T) {
	checkPlanGolden(t, "menu.txt", Plan(MenuConfig()))
}

func TestDemoPlan(t *testing.T) {
	checkPlanGolden(t, "demo.txt", Plan(DemoConfig()))
}

func TestPlanOmitsUnsetSteps(t *testing.T) {
	cfg := Config{
		URL:        "http://localhost:3200",
		OutputPath: "out.png",
	}
	plan := Plan(cfg)
	want := []string{
		"navigate http://localhost:3200",
		"screenshot out.png",
	}
	if len(plan) != len(want) {
		t.Fatalf("Plan = %v, want %v", plan, want)
	}
	for i := range want {
		if plan[i] != want[i] {
			t.Errorf("Plan[%d] = %q, want %q", i, plan[i], want[i])
		}
	}
}

func TestPlanWaitTimeoutDefault(t *testing.T) {
	cfg := Config{
		URL:          "http://localhost:3200",
		WaitSelector: CanvasSelector,
		OutputPath:   "out.png",
	}
	ss := steps(cfg)
	for _, s := range ss {
		if s.name == "wait-visible canvas" {
			if s.timeout != DefaultWaitTimeout {
				t.Errorf("wait step timeout = %v, want %v", s.timeout, DefaultWaitTimeout)
			}
			return
		}
	}
	t.Fatal("wait-visible step missing from plan")
}

func TestPlanSettleStepOutlivesDelay(t *testing.T) {
	cfg := MenuConfig()
	cfg.SettleDelay = 3 * time.Second
	for _, s := range steps(cfg) {
		if s.name == "settle 3s" && s.timeout <= cfg.SettleDelay {
			t.Errorf("settle step timeout %v must exceed the delay %v", s.timeout, cfg.SettleDelay)
		}
	}
}
