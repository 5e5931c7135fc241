package led

import "fmt"

// Square is a board coordinate. File 0..7 is a..h, Rank 0..7 is 1..8.
type Square struct {
	File, Rank int
}

// ParseSquare parses a two character algebraic square such as "e4". The file may be
// upper case.
func ParseSquare(s string) (Square, bool) {
	if len(s) < 2 {
		return Square{}, false
	}
	f, r := s[0], s[1]
	if f >= 'A' && f <= 'H' {
		f += 'a' - 'A'
	}
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return Square{}, false
	}
	return Square{File: int(f - 'a'), Rank: int(r - '1')}, true
}

func (s Square) String() string {
	return fmt.Sprintf("%c%c", 'a'+byte(s.File), '1'+byte(s.Rank))
}
