// Package draft holds the diet plan draft shared by the wizard steps.
package draft

import (
	"time"

	"github.com/google/uuid"

	"github.com/idilsaglam/dieta/internal/model"
)

// Store owns the draft for one wizard run. It is passed explicitly to the
// screens that write to it and is not safe for concurrent use.
type Store struct {
	d   model.Draft
	now func() time.Time
}

func New() *Store {
	return &Store{d: model.Draft{ID: uuid.NewString()}, now: time.Now}
}

// SetPersonal overwrites the step 1 slice.
func (s *Store) SetPersonal(in model.PersonalInput) {
	s.d.Name = in.Name
	s.d.Weight = in.Weight
	s.d.Age = in.Age
	s.d.Height = in.Height
	s.d.UpdatedAt = s.now()
}

// SetProfile overwrites the step 2 slice.
func (s *Store) SetProfile(in model.CreateInput) {
	s.d.Gender = in.Gender
	s.d.Objective = in.Objective
	s.d.Level = in.Level
	s.d.UpdatedAt = s.now()
}

func (s *Store) Snapshot() model.Draft { return s.d }

// Restore replaces the draft, e.g. with one loaded from disk. A draft with
// no ID gets a fresh one.
func (s *Store) Restore(d model.Draft) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	s.d = d
}

// Reset empties the draft and starts a new ID.
func (s *Store) Reset() {
	s.d = model.Draft{ID: uuid.NewString()}
}
