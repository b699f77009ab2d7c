package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/idilsaglam/dieta/internal/draft"
	"github.com/idilsaglam/dieta/internal/form"
	"github.com/idilsaglam/dieta/internal/model"
)

func newScreen(t *testing.T) (*CreateScreen, *draft.Store, *Recorder) {
	t.Helper()
	store := draft.New()
	nav := &Recorder{}
	return NewCreateScreen(NewBridge(store, nav, nil)), store, nav
}

func fill(s *CreateScreen, in model.CreateInput) {
	s.Dispatch(FieldChanged{Field: model.FieldGender, Value: in.Gender})
	s.Dispatch(FieldChanged{Field: model.FieldObjective, Value: in.Objective})
	s.Dispatch(FieldChanged{Field: model.FieldLevel, Value: in.Level})
}

func TestTransition_FieldChanged(t *testing.T) {
	s := Transition(CreateState{}, FieldChanged{Field: model.FieldLevel, Value: "Sedentário"})
	assert.Equal(t, "Sedentário", s.Input.Level)
	assert.Equal(t, Editing, s.Phase)

	same := Transition(s, FieldChanged{Field: "unknown", Value: "x"})
	assert.Equal(t, s, same)
}

func TestTransition_EditKeepsOtherErrors(t *testing.T) {
	s := Transition(CreateState{}, Submitted{})
	require.Len(t, s.Errors, 3)
	s = Transition(s, FieldChanged{Field: model.FieldGender, Value: "feminino"})
	assert.Len(t, s.Errors, 3, "errors only refresh on submit")
	s = Transition(s, Submitted{})
	assert.False(t, s.Errors.Has(model.FieldGender))
	assert.Len(t, s.Errors, 2)
}

func TestCreateScreen_MissingField(t *testing.T) {
	valid := model.CreateInput{Gender: "masculino", Objective: "Emagrecer", Level: "Sedentário"}
	cases := map[string]func(*model.CreateInput){
		model.FieldGender:    func(in *model.CreateInput) { in.Gender = "" },
		model.FieldObjective: func(in *model.CreateInput) { in.Objective = "" },
		model.FieldLevel:     func(in *model.CreateInput) { in.Level = "" },
	}
	for field, clear := range cases {
		t.Run(field, func(t *testing.T) {
			screen, store, nav := newScreen(t)
			in := valid
			clear(&in)
			fill(screen, in)

			st := screen.Dispatch(Submitted{})
			require.Len(t, st.Errors, 1)
			assert.True(t, st.Errors.Has(field))
			assert.Equal(t, Editing, st.Phase)
			assert.Empty(t, nav.Routes)
			assert.Equal(t, model.CreateInput{}, store.Snapshot().Profile())
		})
	}
}

func TestCreateScreen_ValidSubmit(t *testing.T) {
	screen, store, nav := newScreen(t)
	in := model.CreateInput{Gender: "masculino", Objective: "Emagrecer", Level: "Sedentário"}
	fill(screen, in)

	st := screen.Dispatch(Submitted{})
	assert.Empty(t, st.Errors)
	assert.Equal(t, Navigated, st.Phase)
	assert.Equal(t, in, store.Snapshot().Profile())
	assert.Equal(t, []model.Route{model.RouteNutrition}, nav.Routes)
}

func TestCreateScreen_GenderScenario(t *testing.T) {
	screen, _, nav := newScreen(t)
	fill(screen, model.CreateInput{Objective: "Hipertrofia", Level: "Sedentário"})

	st := screen.Dispatch(Submitted{})
	assert.Equal(t, form.FieldErrors{model.FieldGender: "O sexo é obrigatório"}, st.Errors)
	assert.Empty(t, nav.Routes)
}

func TestCreateScreen_ResubmitRepeats(t *testing.T) {
	screen, store, nav := newScreen(t)
	in := model.CreateInput{Gender: "feminino", Objective: "Definição", Level: model.LevelOptions[2].Value}
	fill(screen, in)

	screen.Dispatch(Submitted{})
	first := store.Snapshot()
	screen.Dispatch(Submitted{})

	assert.Equal(t, []model.Route{model.RouteNutrition, model.RouteNutrition}, nav.Routes)
	assert.Equal(t, first.Profile(), store.Snapshot().Profile())
	assert.Equal(t, first.ID, store.Snapshot().ID)
}

func TestCreateScreen_CorrectAndResubmit(t *testing.T) {
	screen, store, nav := newScreen(t)
	fill(screen, model.CreateInput{Objective: "Hipertrofia", Level: "Sedentário"})
	screen.Dispatch(Submitted{})
	require.Empty(t, nav.Routes)

	screen.Dispatch(FieldChanged{Field: model.FieldGender, Value: "masculino"})
	st := screen.Dispatch(Submitted{})
	assert.Equal(t, Navigated, st.Phase)
	assert.Equal(t, "masculino", store.Snapshot().Gender)
	assert.Equal(t, model.RouteNutrition, nav.Last())
}

func TestPersonalScreen(t *testing.T) {
	store := draft.New()
	nav := &Recorder{}
	screen := NewPersonalScreen(NewBridge(store, nav, nil))

	st := screen.Dispatch(Submitted{})
	assert.Len(t, st.Errors, 4)
	assert.Empty(t, nav.Routes)

	screen.Dispatch(FieldChanged{Field: model.FieldName, Value: "Ana"})
	screen.Dispatch(FieldChanged{Field: model.FieldWeight, Value: "60"})
	screen.Dispatch(FieldChanged{Field: model.FieldAge, Value: "30"})
	screen.Dispatch(FieldChanged{Field: model.FieldHeight, Value: "165"})
	st = screen.Dispatch(Submitted{})

	assert.Equal(t, Navigated, st.Phase)
	assert.Equal(t, model.PersonalInput{Name: "Ana", Weight: "60", Age: "30", Height: "165"}, store.Snapshot().Personal())
	assert.Equal(t, []model.Route{model.RouteCreate}, nav.Routes)
}

func TestBridge_StoreWrittenBeforeNavigate(t *testing.T) {
	store := draft.New()
	in := model.CreateInput{Gender: "feminino", Objective: "Emagrecer", Level: "Sedentário"}
	var seen model.CreateInput
	nav := NavigatorFunc(func(model.Route) { seen = store.Snapshot().Profile() })

	core, logs := observer.New(zap.InfoLevel)
	NewBridge(store, nav, zap.New(core)).CommitProfile(in)

	assert.Equal(t, in, seen)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "profile stored", entry.Message)
	assert.Equal(t, "/nutrition", entry.ContextMap()["next"])
}
