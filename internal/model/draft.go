package model

import "time"

// Draft is the diet plan being assembled across the wizard steps.
// Each step fills its own slice; nothing here is derived.
type Draft struct {
	ID string `json:"id"`

	// step 1
	Name   string `json:"name"`
	Weight string `json:"weight"`
	Age    string `json:"age"`
	Height string `json:"height"`

	// step 2
	Gender    string `json:"gender"`
	Objective string `json:"objective"`
	Level     string `json:"level"`

	UpdatedAt time.Time `json:"updated_at"`
}

// PersonalInput is the step 1 form.
type PersonalInput struct {
	Name   string `json:"name" validate:"required"`
	Weight string `json:"weight" validate:"required"`
	Age    string `json:"age" validate:"required"`
	Height string `json:"height" validate:"required"`
}

// CreateInput is the step 2 form: gender, objective and activity level.
type CreateInput struct {
	Gender    string `json:"gender" validate:"required"`
	Objective string `json:"objective" validate:"required"`
	Level     string `json:"level" validate:"required"`
}

// Field names as they appear in error maps and FieldChanged events.
const (
	FieldName      = "name"
	FieldWeight    = "weight"
	FieldAge       = "age"
	FieldHeight    = "height"
	FieldGender    = "gender"
	FieldObjective = "objective"
	FieldLevel     = "level"
)

// Profile returns the step 2 slice of the draft.
func (d Draft) Profile() CreateInput {
	return CreateInput{Gender: d.Gender, Objective: d.Objective, Level: d.Level}
}

// Personal returns the step 1 slice of the draft.
func (d Draft) Personal() PersonalInput {
	return PersonalInput{Name: d.Name, Weight: d.Weight, Age: d.Age, Height: d.Height}
}
