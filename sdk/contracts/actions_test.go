package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActiveClampsOutOfRangeCount(t *testing.T) {
	ev := EventActions{Count: 4}
	assert.Len(t, ev.Active(), 4)

	// A count beyond the array, as a tampered flash image could carry, must
	// never produce a slice past the backing storage.
	ev.Count = MaxActionsPerEvent + 3
	assert.Len(t, ev.Active(), MaxActionsPerEvent)
}

func TestActionValid(t *testing.T) {
	tests := []struct {
		name string
		a    Action
		want bool
	}{
		{"inert", Action{}, true},
		{"note in range", Action{Kind: KindNote, Channel: 15, Param1: 127, Param2: 127}, true},
		{"unknown kind", Action{Kind: 4}, false},
		{"channel out of range", Action{Kind: KindControlChange, Channel: 16}, false},
		{"param1 out of range", Action{Kind: KindControlChange, Param1: 128}, false},
		{"param2 out of range", Action{Kind: KindControlChange, Param2: 128}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Valid())
		})
	}
}
