package main

import (
	"math"
	"testing"

	"github.com/benoitkugler/roadsign/scene"
)

func TestLimitFromFlag(t *testing.T) {
	for _, v := range []uint{5, 42, 110} {
		got, err := limitFromFlag(v)
		if err != nil || got != uint32(v) {
			t.Errorf("%d: got %d, %v", v, got, err)
		}
	}
	invalid := []uint{0, 4, 111, math.MaxUint32}
	// 2^32 + 90 would truncate to a valid limit
	var wide uint64 = 1<<32 + 90
	if uint64(uint(wide)) == wide {
		invalid = append(invalid, uint(wide))
	}
	for _, v := range invalid {
		if _, err := limitFromFlag(v); err == nil {
			t.Errorf("%d: expected an error", v)
		}
	}
	if _, err := limitFromFlag(uint(scene.DefaultState().Limit)); err != nil {
		t.Error(err)
	}
}
