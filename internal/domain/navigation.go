package domain

// NavigationState is the resolved destination of the most recent navigation
// request: the view actually rendered plus the one-shot seed parameter
// threaded into it. Both fields are replaced atomically on every request.
//
// The seed is only ever meaningful to the dictionary view (a pre-selected
// letter); it must be empty whenever View is anything else, so a stale seed
// can never leak into a later render.
type NavigationState struct {
	View View   `json:"view"`
	Seed string `json:"seed,omitempty"`
}

// DefaultNavigationState is the initial state: home view, no seed.
func DefaultNavigationState() NavigationState {
	return NavigationState{View: ViewHome}
}
