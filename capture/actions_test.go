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
	"strings"
	"testing"
)

func TestHideElementScriptGuardsMissingElement(t *testing.T) {
	script := hideElementScript(UnsupportedBannerID)
	if !strings.Contains(script, `getElementById("unsupported-banner")`) {
		t.Errorf("script does not look up the element by ID:\n%s", script)
	}
	// A missing element must be a silent no-op, so the style write has to
	// be behind an existence check.
	if !strings.Contains(script, "if (el)") {
		t.Errorf("script does not guard against a missing element:\n%s", script)
	}
}

func TestHideElementScriptEscapesID(t *testing.T) {
	script := hideElementScript(`bad"id`)
	if strings.Contains(script, `getElementById("bad"id")`) {
		t.Errorf("ID not escaped:\n%s", script)
	}
	if !strings.Contains(script, `"bad\"id"`) {
		t.Errorf("expected quoted ID in script:\n%s", script)
	}
}
