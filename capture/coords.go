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

// ClickSpec names a click target by its offsets from the viewport edges:
// OffsetCenterX from the horizontal center, OffsetBottomY from the bottom
// edge. The game scales the canvas to the window, so the target tracks the
// viewport rather than fixed pixels.
type ClickSpec struct {
	OffsetCenterX float64
	OffsetBottomY float64
}

// Point resolves the spec against a viewport of the given size.
// For MenuButton on 1280x720 this is (425, 660).
func (c ClickSpec) Point(width, height float64) (x, y float64) {
	return width/2 + c.OffsetCenterX, height + c.OffsetBottomY
}
