package editor

import (
	"fmt"

	"github.com/dshills/formstorm/internal/geometry"
	"github.com/dshills/formstorm/internal/notify"
)

func stepName(n int) string {
	return fmt.Sprintf("Step %d", n)
}

// SetCurrentStepIndex switches the active step, clamping i into range.
func (s *Store) SetCurrentStepIndex(i int) {
	s.mu.Lock()
	s.currentStep = geometry.ClampInt(i, 0, len(s.steps)-1)
	id := s.steps[s.currentStep].ID
	s.mu.Unlock()

	s.publish(notify.ActionStep, id)
}

// AddStep appends an empty step and makes it current. An empty name becomes
// "Step N". Returns the new step's id.
func (s *Store) AddStep(name string) string {
	s.mu.Lock()
	if name == "" {
		name = stepName(len(s.steps) + 1)
	}
	page := Page{ID: s.newID(), Name: name}
	s.steps = append(s.steps, page)
	s.currentStep = len(s.steps) - 1
	s.mu.Unlock()

	s.publish(notify.ActionStep, page.ID)
	return page.ID
}

// RemoveStep deletes the step at index. The last remaining step cannot be
// removed. Elements listed only on the removed step stay in the document and
// the global order.
func (s *Store) RemoveStep(index int) {
	s.mu.Lock()
	if len(s.steps) <= 1 {
		s.mu.Unlock()
		s.log.Debug("removeStep: refusing to remove the only step")
		return
	}
	if index < 0 || index >= len(s.steps) {
		s.mu.Unlock()
		s.log.Debug("removeStep: index %d out of range", index)
		return
	}
	id := s.steps[index].ID
	steps := make([]Page, 0, len(s.steps)-1)
	steps = append(steps, s.steps[:index]...)
	steps = append(steps, s.steps[index+1:]...)
	s.steps = steps
	s.currentStep = geometry.ClampInt(s.currentStep, 0, len(s.steps)-1)
	s.mu.Unlock()

	s.publish(notify.ActionStep, id)
}

// RenameStep sets the display name of the step at index.
func (s *Store) RenameStep(index int, name string) {
	s.mu.Lock()
	if index < 0 || index >= len(s.steps) {
		s.mu.Unlock()
		s.log.Debug("renameStep: index %d out of range", index)
		return
	}
	s.steps[index].Name = name
	id := s.steps[index].ID
	s.mu.Unlock()

	s.publish(notify.ActionStep, id)
}
