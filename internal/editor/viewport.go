package editor

import (
	"github.com/dshills/formstorm/internal/geometry"
	"github.com/dshills/formstorm/internal/notify"
)

func clampZoom(z float64) float64 {
	return geometry.Clamp(z, MinZoom, MaxZoom)
}

func clampArtboardWidth(w float64) float64 {
	return geometry.Clamp(w, MinArtboardWidth, MaxArtboardWidth)
}

func clampArtboardHeight(h float64) float64 {
	return geometry.Clamp(h, MinArtboardHeight, MaxArtboardHeight)
}

// viewport applies fn under the lock and publishes a viewport change.
func (s *Store) viewport(fn func()) {
	s.mu.Lock()
	fn()
	s.mu.Unlock()

	s.publish(notify.ActionViewport)
}

// SetZoom sets the zoom, clamped to [MinZoom, MaxZoom].
func (s *Store) SetZoom(zoom float64) {
	s.viewport(func() { s.zoom = clampZoom(zoom) })
}

// ZoomIn increases zoom by ZoomStep.
func (s *Store) ZoomIn() {
	s.viewport(func() { s.zoom = clampZoom(s.zoom + ZoomStep) })
}

// ZoomOut decreases zoom by ZoomStep.
func (s *Store) ZoomOut() {
	s.viewport(func() { s.zoom = clampZoom(s.zoom - ZoomStep) })
}

// ResetZoom sets zoom back to 1.
func (s *Store) ResetZoom() {
	s.viewport(func() { s.zoom = DefaultZoom })
}

// SetPan sets the canvas pan offset.
func (s *Store) SetPan(pan geometry.Point) {
	s.viewport(func() { s.pan = pan })
}

// ToggleGrid shows or hides the grid.
func (s *Store) ToggleGrid() {
	s.viewport(func() { s.showGrid = !s.showGrid })
}

// ToggleSnapToGrid turns snapping on or off.
func (s *Store) ToggleSnapToGrid() {
	s.viewport(func() { s.snapToGrid = !s.snapToGrid })
}

// SetGridSize sets the snap grid. Non-positive sizes are ignored.
func (s *Store) SetGridSize(size float64) {
	if size <= 0 {
		s.log.Debug("setGridSize: ignoring non-positive size %v", size)
		return
	}
	s.viewport(func() { s.gridSize = size })
}

// SetArtboardWidth sets the artboard width, clamped to [360, 1440].
func (s *Store) SetArtboardWidth(w float64) {
	s.viewport(func() { s.artboardWidth = clampArtboardWidth(w) })
}

// SetArtboardHeight sets the artboard height, clamped to [400, 2000].
func (s *Store) SetArtboardHeight(h float64) {
	s.viewport(func() { s.artboardHeight = clampArtboardHeight(h) })
}

// SetLeftPanelTab switches the left panel. Unknown tabs are ignored.
func (s *Store) SetLeftPanelTab(tab LeftPanelTab) {
	if !tab.Valid() {
		s.log.Debug("setLeftPanelTab: unknown tab %q", tab)
		return
	}
	s.viewport(func() { s.leftTab = tab })
}

// SetRightPanelTab switches the right panel. Unknown tabs are ignored.
func (s *Store) SetRightPanelTab(tab RightPanelTab) {
	if !tab.Valid() {
		s.log.Debug("setRightPanelTab: unknown tab %q", tab)
		return
	}
	s.viewport(func() { s.rightTab = tab })
}

// TogglePreviewMode flips preview mode.
func (s *Store) TogglePreviewMode() {
	s.viewport(func() { s.preview = !s.preview })
}

// project applies fn under the lock and publishes a project change.
func (s *Store) project(fn func()) {
	s.mu.Lock()
	fn()
	s.mu.Unlock()

	s.publish(notify.ActionProject)
}

// SetProjectName renames the project.
func (s *Store) SetProjectName(name string) {
	s.project(func() { s.projectName = name })
}

// SetFormTitle sets the form heading.
func (s *Store) SetFormTitle(title string) {
	s.project(func() { s.formTitle = title })
}

// SetFormDescription sets the text under the form heading.
func (s *Store) SetFormDescription(desc string) {
	s.project(func() { s.formDescription = desc })
}

// SetFormLayout sets the column layout. Unknown layouts are ignored.
func (s *Store) SetFormLayout(layout FormLayout) {
	if !layout.Valid() {
		s.log.Debug("setFormLayout: unknown layout %q", layout)
		return
	}
	s.project(func() { s.formLayout = layout })
}
