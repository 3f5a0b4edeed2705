// Package action carries chrome taps from the renderer to the code that
// decides what they mean.
package action

// Kind identifies a chrome action.
type Kind int

const (
	Search Kind = iota
	ChangeTheme
	ChangeMode
)

var kindNames = map[Kind]string{
	Search:      "search",
	ChangeTheme: "change_theme",
	ChangeMode:  "change_mode",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// DefaultSet is the action set every non-search screen shows, in display
// order.
func DefaultSet() []Kind {
	return []Kind{ChangeTheme, ChangeMode}
}
