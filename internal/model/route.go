package model

// Route identifies a wizard step.
type Route string

const (
	RouteStep      Route = "/step"
	RouteCreate    Route = "/create"
	RouteNutrition Route = "/nutrition"
)

// Routes in wizard order.
var Routes = []Route{RouteStep, RouteCreate, RouteNutrition}

// Step returns the header label shown above the screen ("Passo 2").
func (r Route) Step() string {
	switch r {
	case RouteStep:
		return "Passo 1"
	case RouteCreate:
		return "Passo 2"
	case RouteNutrition:
		return "Passo 3"
	}
	return ""
}

func (r Route) Title() string {
	switch r {
	case RouteStep:
		return "Vamos começar"
	case RouteCreate:
		return "Finalizando dieta"
	case RouteNutrition:
		return "Sua dieta"
	}
	return ""
}

// Index is the 1-based position of r in Routes, 0 when unknown.
func (r Route) Index() int {
	for i, x := range Routes {
		if x == r {
			return i + 1
		}
	}
	return 0
}

// ParseRoute accepts a route with or without its leading slash.
func ParseRoute(s string) (Route, bool) {
	for _, r := range Routes {
		if string(r) == s || string(r)[1:] == s {
			return r, true
		}
	}
	return "", false
}
