package core

// Side identifies which side of the boat a paddle stroke acts on
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

// SideCount is the number of paddle sides, used to size per-side state arrays
const SideCount = 2

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}
