package draft

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/dieta/internal/model"
)

func fixedStore() *Store {
	s := New()
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return s
}

func TestNew_Empty(t *testing.T) {
	s := New()
	d := s.Snapshot()
	assert.NotEmpty(t, d.ID)
	if diff := cmp.Diff(model.Draft{}, d, cmpopts.IgnoreFields(model.Draft{}, "ID")); diff != "" {
		t.Errorf("new draft not empty (-want +got):\n%s", diff)
	}
}

func TestSetProfile(t *testing.T) {
	s := fixedStore()
	s.SetPersonal(model.PersonalInput{Name: "Ana", Weight: "60", Age: "30", Height: "165"})
	s.SetProfile(model.CreateInput{Gender: "feminino", Objective: "Definição", Level: "Sedentário"})

	d := s.Snapshot()
	assert.Equal(t, model.CreateInput{Gender: "feminino", Objective: "Definição", Level: "Sedentário"}, d.Profile())
	assert.Equal(t, "Ana", d.Name, "step 1 slice kept")
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), d.UpdatedAt)
}

func TestSetProfile_Idempotent(t *testing.T) {
	s := fixedStore()
	in := model.CreateInput{Gender: "masculino", Objective: "Emagrecer", Level: "Sedentário"}
	s.SetProfile(in)
	first := s.Snapshot()
	s.SetProfile(in)
	assert.Equal(t, first, s.Snapshot())
}

func TestRestoreAndReset(t *testing.T) {
	s := New()
	s.Restore(model.Draft{Gender: "feminino"})
	d := s.Snapshot()
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "feminino", d.Gender)

	old := d.ID
	s.Reset()
	d = s.Snapshot()
	assert.Empty(t, d.Gender)
	assert.NotEqual(t, old, d.ID)
}
