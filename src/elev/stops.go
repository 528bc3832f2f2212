package elev

import "elevsim/src/types"

// StopAggregator counts boarded passengers per destination floor, split by whether the
// destination lay above or below the floor they boarded at. A floor is present only while
// its count is positive.
type StopAggregator struct {
	above types.Stops
	below types.Stops
}

func NewStopAggregator() *StopAggregator {
	return &StopAggregator{
		above: make(types.Stops),
		below: make(types.Stops),
	}
}

// Board adds one passenger travelling from floor to destination.
func (s *StopAggregator) Board(floor, destination int) {
	s.forDir(types.Towards(floor, destination))[destination]++
}

// Alight removes every passenger bound for floor and returns how many left.
func (s *StopAggregator) Alight(floor int) int {
	n := s.above[floor] + s.below[floor]
	delete(s.above, floor)
	delete(s.below, floor)
	return n
}

func (s *StopAggregator) Empty() bool {
	return len(s.above)+len(s.below) == 0
}

func (s *StopAggregator) Riders() int {
	n := 0
	for _, count := range s.above {
		n += count
	}
	for _, count := range s.below {
		n += count
	}
	return n
}

// Farthest returns the boarded destination farthest from floor in dir. Only destinations
// strictly beyond floor qualify.
func (s *StopAggregator) Farthest(floor int, dir types.Direction) (int, bool) {
	best, found := 0, false
	for _, stops := range []types.Stops{s.above, s.below} {
		for dest := range stops {
			if !beyond(floor, dest, dir) {
				continue
			}
			if !found || beyond(best, dest, dir) {
				best, found = dest, true
			}
		}
	}
	return best, found
}

func (s *StopAggregator) forDir(dir types.Direction) types.Stops {
	if dir == types.Down {
		return s.below
	}
	return s.above
}

// beyond reports whether floor lies strictly past from when travelling in dir.
func beyond(from, floor int, dir types.Direction) bool {
	if dir == types.Down {
		return floor < from
	}
	return floor > from
}
