package entity

// SessionPhase is a state of the session gate.
type SessionPhase int

const (
	SessionUnchecked SessionPhase = iota
	SessionChecking
	SessionSignedOut
	SessionSignedIn
)

// String returns the phase name.
func (p SessionPhase) String() string {
	switch p {
	case SessionUnchecked:
		return "unchecked"
	case SessionChecking:
		return "checking"
	case SessionSignedOut:
		return "signed_out"
	case SessionSignedIn:
		return "signed_in"
	default:
		return "unknown"
	}
}

// SessionState is the observable state of the session gate.
// OnboardingRequired and UID are meaningful only in SessionSignedIn.
type SessionState struct {
	Phase              SessionPhase
	UID                string
	OnboardingRequired bool
}

// SessionStatus is the result of one session check.
type SessionStatus struct {
	Authenticated      bool
	OnboardingRequired bool
}

// Status derives the check result from the state.
func (s SessionState) Status() SessionStatus {
	if s.Phase != SessionSignedIn {
		return SessionStatus{}
	}

	return SessionStatus{Authenticated: true, OnboardingRequired: s.OnboardingRequired}
}
