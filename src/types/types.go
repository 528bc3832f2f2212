package types

import "fmt"

type Direction int

const (
	Up   Direction = 1
	Down Direction = -1
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	}
	return "UNKNOWN"
}

// Opposite returns the reversed direction. Unknown directions are returned unchanged.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	}
	return d
}

func (d Direction) Valid() bool {
	return d == Up || d == Down
}

// Towards returns the direction pointing from one floor to another. Equal floors count as Up.
func Towards(from, to int) Direction {
	if to < from {
		return Down
	}
	return Up
}

type ElevBehaviour int

const (
	Idle ElevBehaviour = iota
	MovingUp
	MovingDown
)

func (b ElevBehaviour) String() string {
	switch b {
	case Idle:
		return "IDLE"
	case MovingUp:
		return "MOVING_UP"
	case MovingDown:
		return "MOVING_DOWN"
	}
	return "UNKNOWN"
}

// Request is a pickup at Origin for a passenger who wants to travel in Dir towards Destination.
type Request struct {
	Origin      int       `json:"originFloor"`
	Dir         Direction `json:"direction"`
	Destination int       `json:"destinationFloor"`
}

func (r Request) String() string {
	return fmt.Sprintf("%s(%d->%d)", r.Dir, r.Origin, r.Destination)
}

// Stops maps a destination floor to the number of boarded passengers bound there.
type Stops map[int]int

// State is a read-only snapshot of the car, its queue and its passengers.
type State struct {
	Floor      int
	Dir        Direction
	RequestDir Direction
	InMotion   bool
	Target     int
	Requests   []Request
	StopsAbove Stops
	StopsBelow Stops
}

func (s State) Behaviour() ElevBehaviour {
	if !s.InMotion {
		return Idle
	}
	if s.Dir == Down {
		return MovingDown
	}
	return MovingUp
}

// Riders counts boarded passengers in both directions.
func (s State) Riders() int {
	n := 0
	for _, count := range s.StopsAbove {
		n += count
	}
	for _, count := range s.StopsBelow {
		n += count
	}
	return n
}

type EventKind int

const (
	EventSubmitted EventKind = iota
	EventTick
	EventIdle
)

func (k EventKind) String() string {
	switch k {
	case EventSubmitted:
		return "Submitted"
	case EventTick:
		return "Tick"
	case EventIdle:
		return "Idle"
	}
	return "Unknown"
}

// Event is published to subscribers after every state change.
type Event struct {
	Kind     EventKind
	State    State
	Boarded  int
	Alighted int
}
