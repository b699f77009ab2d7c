package wizard

import (
	"github.com/idilsaglam/dieta/internal/form"
	"github.com/idilsaglam/dieta/internal/model"
)

// Phase of a form screen.
type Phase int

const (
	Editing Phase = iota
	Navigated
)

func (p Phase) String() string {
	if p == Navigated {
		return "navigated"
	}
	return "editing"
}

// Event is something the user did on a form screen.
type Event interface{ isEvent() }

// FieldChanged sets one field to a new value.
type FieldChanged struct {
	Field string
	Value string
}

// Submitted asks to validate the form and move on.
type Submitted struct{}

func (FieldChanged) isEvent() {}
func (Submitted) isEvent()    {}

// CreateState is the step 2 screen state.
type CreateState struct {
	Input  model.CreateInput
	Errors form.FieldErrors
	Phase  Phase
}

// Transition is the step 2 state function. It has no side effects; the
// store write and navigation happen in CreateScreen.Dispatch.
func Transition(s CreateState, ev Event) CreateState {
	switch e := ev.(type) {
	case FieldChanged:
		switch e.Field {
		case model.FieldGender:
			s.Input.Gender = e.Value
		case model.FieldObjective:
			s.Input.Objective = e.Value
		case model.FieldLevel:
			s.Input.Level = e.Value
		default:
			return s
		}
		s.Phase = Editing
	case Submitted:
		_, errs := form.ValidateCreate(s.Input)
		s.Errors = errs
		if len(errs) > 0 {
			s.Phase = Editing
		} else {
			s.Phase = Navigated
		}
	}
	return s
}

// PersonalState is the step 1 screen state.
type PersonalState struct {
	Input  model.PersonalInput
	Errors form.FieldErrors
	Phase  Phase
}

func TransitionPersonal(s PersonalState, ev Event) PersonalState {
	switch e := ev.(type) {
	case FieldChanged:
		switch e.Field {
		case model.FieldName:
			s.Input.Name = e.Value
		case model.FieldWeight:
			s.Input.Weight = e.Value
		case model.FieldAge:
			s.Input.Age = e.Value
		case model.FieldHeight:
			s.Input.Height = e.Value
		default:
			return s
		}
		s.Phase = Editing
	case Submitted:
		_, errs := form.ValidatePersonal(s.Input)
		s.Errors = errs
		if len(errs) > 0 {
			s.Phase = Editing
		} else {
			s.Phase = Navigated
		}
	}
	return s
}
