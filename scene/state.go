package scene

import (
	"fmt"
	"strconv"

	"github.com/benoitkugler/roadsign/signcolor"
)

// Bounds of the speed limit.
const (
	MinLimit = 5
	MaxLimit = 110
)

// SignState is the pair of user editable parameters.
// It is owned by the UI layer.
type SignState struct {
	Limit  uint32
	IsTemp bool
}

// DefaultState returns the state shown at startup.
func DefaultState() SignState {
	return SignState{Limit: 90, IsTemp: false}
}

// Validate checks that the limit is in [MinLimit, MaxLimit].
func (s SignState) Validate() error {
	if s.Limit < MinLimit || s.Limit > MaxLimit {
		return fmt.Errorf("speed limit %d out of range [%d, %d]", s.Limit, MinLimit, MaxLimit)
	}
	return nil
}

// TempFill returns the color of the temp background:
// yellow for temporary signs, white otherwise.
func TempFill(isTemp bool) signcolor.RGB {
	if isTemp {
		return signcolor.Yellow
	}
	return signcolor.White
}

// FormatLimit renders the limit as displayed on the sign.
func FormatLimit(limit uint32) string {
	return strconv.FormatUint(uint64(limit), 10)
}
