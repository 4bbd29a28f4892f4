// Package wizard drives the four-step traveler registration flow: it owns
// the draft, runs the per-step validators, and gates navigation so a draft
// only ever finalizes once every step passed.
package wizard

import (
	"errors"

	"go-traveler-registry/models"
)

// ErrNotAtContactStep is returned when Submit is called before the flow
// reached the contact step. That is a caller defect, not a user-data
// problem, and must never be folded into the field error map.
var ErrNotAtContactStep = errors.New("submit called before the contact step")

// ErrStepInvalid is returned when the final step fails revalidation on
// submit; the field errors are available through Errors.
var ErrStepInvalid = errors.New("current step has invalid fields")

// Wizard is the state machine behind one add/edit traveler flow. It is owned
// by a single flow and is not safe for concurrent use.
type Wizard struct {
	step   Step
	draft  models.TravelerDraft
	errors map[Field]string
	editID string
}

// New opens a wizard for a new traveler: personal step, empty draft.
func New() *Wizard {
	return &Wizard{
		step:   StepPersonal,
		errors: map[Field]string{},
	}
}

// NewForEdit opens a wizard pre-populated from an existing traveler. The id
// is retained so that submission updates instead of creating.
func NewForEdit(t models.Traveler) *Wizard {
	return &Wizard{
		step:   StepPersonal,
		draft:  t.TravelerDraft,
		errors: map[Field]string{},
		editID: t.Id,
	}
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	return w.step
}

// Draft returns a copy of the draft collected so far.
func (w *Wizard) Draft() models.TravelerDraft {
	return w.draft
}

// Errors returns the field errors recorded for the current step.
func (w *Wizard) Errors() map[Field]string {
	out := make(map[Field]string, len(w.errors))
	for f, msg := range w.errors {
		out[f] = msg
	}
	return out
}

// SetField updates one draft field and clears that field's error, leaving
// any other recorded errors in place until their own field is edited or the
// step is revalidated. Unknown field names report false.
func (w *Wizard) SetField(f Field, value string) bool {
	if !setFieldValue(&w.draft, f, value) {
		return false
	}
	delete(w.errors, f)
	return true
}

// Next validates the current step and advances when it is clean, recording
// per-field errors and staying put when it is not. It reports whether the
// wizard advanced; at the contact step it never does.
func (w *Wizard) Next() bool {
	if errs := validateStep(w.step, w.draft); len(errs) > 0 {
		w.errors = errs
		return false
	}

	idx := stepIndex(w.step)
	if idx == len(stepOrder)-1 {
		return false
	}

	w.step = stepOrder[idx+1]
	w.errors = map[Field]string{}
	return true
}

// Back moves to the previous step without validating, reporting whether it
// moved; at the personal step it never does.
func (w *Wizard) Back() bool {
	idx := stepIndex(w.step)
	if idx == 0 {
		return false
	}

	w.step = stepOrder[idx-1]
	w.errors = map[Field]string{}
	return true
}

// Submit revalidates the contact step and finalizes the draft into a
// Traveler. Calling it from any other step returns ErrNotAtContactStep;
// failed revalidation returns ErrStepInvalid with the field errors recorded.
func (w *Wizard) Submit() (models.Traveler, error) {
	if w.step != StepContact {
		return models.Traveler{}, ErrNotAtContactStep
	}

	if errs := validateStep(w.step, w.draft); len(errs) > 0 {
		w.errors = errs
		return models.Traveler{}, ErrStepInvalid
	}

	return models.Traveler{Id: w.editID, TravelerDraft: w.draft}, nil
}

func stepIndex(s Step) int {
	for i, step := range stepOrder {
		if step == s {
			return i
		}
	}
	return 0
}

// State is a serializable snapshot of a wizard, used by the HTTP layer to
// park open sessions in storage between calls.
type State struct {
	Step   Step                 `json:"step"`
	Draft  models.TravelerDraft `json:"draft"`
	Errors map[Field]string     `json:"errors,omitempty"`
	EditId string               `json:"edit_id,omitempty"`
}

// Snapshot captures the wizard for storage.
func (w *Wizard) Snapshot() State {
	return State{
		Step:   w.step,
		Draft:  w.draft,
		Errors: w.Errors(),
		EditId: w.editID,
	}
}

// FromSnapshot rebuilds a wizard from a stored snapshot. Unknown steps land
// back on the personal step rather than panicking on corrupted state.
func FromSnapshot(s State) *Wizard {
	step := s.Step
	if stepIndex(step) == 0 && step != StepPersonal {
		step = StepPersonal
	}

	errs := s.Errors
	if errs == nil {
		errs = map[Field]string{}
	}

	return &Wizard{
		step:   step,
		draft:  s.Draft,
		errors: errs,
		editID: s.EditId,
	}
}
