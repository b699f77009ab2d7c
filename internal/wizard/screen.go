package wizard

// CreateScreen is one visit of step 2. It owns its form state and hands a
// valid submission to the bridge.
type CreateScreen struct {
	state  CreateState
	bridge *Bridge
}

func NewCreateScreen(b *Bridge) *CreateScreen {
	return &CreateScreen{bridge: b}
}

func (c *CreateScreen) State() CreateState { return c.state }

// Dispatch applies ev. A valid submit writes the draft and navigates once;
// submitting again repeats both.
func (c *CreateScreen) Dispatch(ev Event) CreateState {
	c.state = Transition(c.state, ev)
	if _, ok := ev.(Submitted); ok && c.state.Phase == Navigated {
		c.bridge.CommitProfile(c.state.Input)
	}
	return c.state
}

// PersonalScreen is one visit of step 1.
type PersonalScreen struct {
	state  PersonalState
	bridge *Bridge
}

func NewPersonalScreen(b *Bridge) *PersonalScreen {
	return &PersonalScreen{bridge: b}
}

func (p *PersonalScreen) State() PersonalState { return p.state }

func (p *PersonalScreen) Dispatch(ev Event) PersonalState {
	p.state = TransitionPersonal(p.state, ev)
	if _, ok := ev.(Submitted); ok && p.state.Phase == Navigated {
		p.bridge.CommitPersonal(p.state.Input)
	}
	return p.state
}
