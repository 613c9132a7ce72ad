package control

import "github.com/benoitkugler/roadsign/scene"

// IntControl describes an integer input widget.
type IntControl struct {
	Name     string
	Label    string
	Min, Max int
	Step     int
}

// Clamp restricts v to [Min, Max].
func (ic IntControl) Clamp(v int) uint32 {
	if v < ic.Min {
		v = ic.Min
	}
	if v > ic.Max {
		v = ic.Max
	}
	return uint32(v)
}

// BoolControl describes a checkbox.
type BoolControl struct {
	Name  string
	Label string
}

var (
	// LimitControl edits SignState.Limit
	LimitControl = IntControl{Name: "limit", Label: "Speed limit", Min: scene.MinLimit, Max: scene.MaxLimit, Step: 1}
	// TempControl edits SignState.IsTemp
	TempControl = BoolControl{Name: "isTemp", Label: "Temporary"}
)
