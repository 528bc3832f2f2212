package elev

import (
	"testing"

	"elevsim/src/types"
)

func TestStopAggregatorBoardAndAlight(t *testing.T) {
	s := NewStopAggregator()
	if !s.Empty() {
		t.Fatal("new aggregator is not empty")
	}
	s.Board(5, 9)
	s.Board(7, 9)
	s.Board(7, 2)

	if got := s.above[9]; got != 2 {
		t.Errorf("above[9] = %d, expected 2", got)
	}
	if got := s.below[2]; got != 1 {
		t.Errorf("below[2] = %d, expected 1", got)
	}
	if got := s.Riders(); got != 3 {
		t.Errorf("Riders() = %d, expected 3", got)
	}

	if got := s.Alight(9); got != 2 {
		t.Errorf("Alight(9) = %d, expected 2", got)
	}
	if _, ok := s.above[9]; ok {
		t.Error("floor 9 still present after everyone alighted")
	}
	if got := s.Alight(9); got != 0 {
		t.Errorf("second Alight(9) = %d, expected 0", got)
	}
	s.Alight(2)
	if !s.Empty() {
		t.Errorf("aggregator not empty after all passengers alighted: %v %v", s.above, s.below)
	}
}

func TestStopAggregatorFarthest(t *testing.T) {
	s := NewStopAggregator()
	s.Board(2, 6)
	s.Board(2, 8)
	s.Board(9, 3)

	tests := []struct {
		floor  int
		dir    types.Direction
		want   int
		wantOK bool
	}{
		{4, types.Up, 8, true},
		{4, types.Down, 3, true},
		{8, types.Up, 0, false},
		{3, types.Down, 0, false},
		{1, types.Up, 8, true},
	}
	for _, tt := range tests {
		got, ok := s.Farthest(tt.floor, tt.dir)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Farthest(%d, %s) = %d, %v, expected %d, %v", tt.floor, tt.dir, got, ok, tt.want, tt.wantOK)
		}
	}
}
