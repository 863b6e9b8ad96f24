package screen

import "github.com/abhisek/kanatui/internal/session"

// Kind enumerates the three outcomes of a page update.
type Kind int

const (
	KindStay Kind = iota
	KindNavigate
	KindTerminate
)

func (k Kind) String() string {
	switch k {
	case KindNavigate:
		return "navigate"
	case KindTerminate:
		return "terminate"
	default:
		return "stay"
	}
}

// Transition is returned by every page update.
type Transition struct {
	Kind Kind
	// To is set only when Kind is KindNavigate.
	To Destination
}

// Stay keeps the current page live.
func Stay() Transition {
	return Transition{Kind: KindStay}
}

// Navigate replaces the current page with the one built for dest.
func Navigate(dest Destination) Transition {
	return Transition{Kind: KindNavigate, To: dest}
}

// Terminate ends the application.
func Terminate() Transition {
	return Transition{Kind: KindTerminate}
}

// Destination names the page to construct next. The set is closed: only the
// types in this package implement it.
type Destination interface {
	destination()
	Name() string
}

// ToHome leads to the main menu.
type ToHome struct{}

// ToConfigure leads to the settings page.
type ToConfigure struct{}

// ToStudy starts a new session from the current settings.
type ToStudy struct{}

// ToResult shows the summary of a finished session.
type ToResult struct {
	Summary session.Summary
}

func (ToHome) destination()      {}
func (ToConfigure) destination() {}
func (ToStudy) destination()     {}
func (ToResult) destination()    {}

func (ToHome) Name() string      { return "home" }
func (ToConfigure) Name() string { return "configure" }
func (ToStudy) Name() string     { return "study" }
func (ToResult) Name() string    { return "result" }
