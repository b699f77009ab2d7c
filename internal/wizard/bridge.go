// Package wizard drives the diet wizard steps without any rendering: pure
// state transitions per screen, and the bridge that hands validated forms to
// the draft store and moves navigation forward.
package wizard

import (
	"go.uber.org/zap"

	"github.com/idilsaglam/dieta/internal/draft"
	"github.com/idilsaglam/dieta/internal/model"
)

// Navigator receives forward navigation requests.
type Navigator interface {
	Navigate(to model.Route)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(to model.Route)

func (f NavigatorFunc) Navigate(to model.Route) { f(to) }

// Recorder is a Navigator that remembers every request.
type Recorder struct {
	Routes []model.Route
}

func (r *Recorder) Navigate(to model.Route) { r.Routes = append(r.Routes, to) }

// Last returns the most recent request, or "" when none.
func (r *Recorder) Last() model.Route {
	if len(r.Routes) == 0 {
		return ""
	}
	return r.Routes[len(r.Routes)-1]
}

// Bridge copies validated forms into the draft store and then navigates.
// Callers only hand it input that already passed validation.
type Bridge struct {
	Store *draft.Store
	Nav   Navigator
	Log   *zap.Logger
}

func NewBridge(store *draft.Store, nav Navigator, log *zap.Logger) *Bridge {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bridge{Store: store, Nav: nav, Log: log}
}

// CommitPersonal stores step 1 and moves to step 2.
func (b *Bridge) CommitPersonal(in model.PersonalInput) {
	b.Store.SetPersonal(in)
	b.Log.Info("personal data stored",
		zap.String("draft", b.Store.Snapshot().ID),
		zap.String("next", string(model.RouteCreate)))
	b.Nav.Navigate(model.RouteCreate)
}

// CommitProfile stores gender, objective and level, then moves to the
// nutrition step. The store is fully written before navigation is requested.
func (b *Bridge) CommitProfile(in model.CreateInput) {
	b.Store.SetProfile(in)
	b.Log.Info("profile stored",
		zap.String("draft", b.Store.Snapshot().ID),
		zap.String("gender", in.Gender),
		zap.String("objective", in.Objective),
		zap.String("level", in.Level),
		zap.String("next", string(model.RouteNutrition)))
	b.Nav.Navigate(model.RouteNutrition)
}
