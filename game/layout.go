package game

import (
	"fmt"

	"smartchess/input"
)

// Layout assigns roles to buttons. Buttons 1..Coords enter files and ranks.
type Layout struct {
	Name    string
	Buttons int
	Coords  int
	OK      input.ButtonID
	Hint    input.ButtonID
}

// Layout8 is the eight-button panel: 1..6 coordinates, 7 OK, 8 Hint.
var Layout8 = Layout{Name: "8", Buttons: 8, Coords: 6, OK: 7, Hint: 8}

// Layout10 is the ten-button panel: 1..8 coordinates, 9 OK, 10 Hint.
var Layout10 = Layout{Name: "10", Buttons: 10, Coords: 8, OK: 9, Hint: 10}

// LayoutByName returns the layout called name ("8" or "10").
func LayoutByName(name string) (Layout, error) {
	switch name {
	case Layout8.Name:
		return Layout8, nil
	case Layout10.Name:
		return Layout10, nil
	}
	return Layout{}, fmt.Errorf("game: unknown button layout %q", name)
}

// IsCoord reports whether b enters a coordinate digit.
func (l Layout) IsCoord(b input.ButtonID) bool {
	return b >= 1 && int(b) <= l.Coords
}

// File returns the file letter for a coordinate button.
func (l Layout) File(b input.ButtonID) byte { return 'a' + byte(b-1) }

// Rank returns the rank digit for a coordinate button.
func (l Layout) Rank(b input.ButtonID) byte { return '0' + byte(b) }

func (l Layout) validate() error {
	if l.Buttons <= 0 || l.Coords <= 0 || l.Coords > 8 || l.Coords > l.Buttons {
		return fmt.Errorf("game: layout %s: bad button counts", l.Name)
	}
	if int(l.OK) < 1 || int(l.OK) > l.Buttons || int(l.Hint) < 1 || int(l.Hint) > l.Buttons || l.OK == l.Hint {
		return fmt.Errorf("game: layout %s: bad OK/Hint assignment", l.Name)
	}
	return nil
}
