package elev

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"elevsim/src/types"

	"github.com/tiendc/go-deepcopy"
)

var (
	ErrInvalidDestination = errors.New("invalid destination floor")
	ErrInvalidOrigin      = errors.New("invalid origin floor")
	ErrInvalidDirection   = errors.New("invalid direction")
)

// NewElevState creates an idle car on the first floor of building.
func NewElevState(building Building, opts Options) *ElevState {
	numFloors := building.NumberOfFloors()
	if numFloors < 1 {
		slog.Error("Building without floors, using a single floor", "numFloors", numFloors)
		numFloors = 1
	}
	if opts.EnforceCapacity && opts.MaxPeople < 1 {
		slog.Warn("Capacity enforcement needs room for one passenger, not enforcing", "maxPeople", opts.MaxPeople)
		opts.EnforceCapacity = false
	}
	elevator := &ElevState{
		numFloors:  numFloors,
		opts:       opts,
		log:        slog.Default(),
		floor:      1,
		dir:        types.Up,
		requestDir: types.Up,
		stops:      NewStopAggregator(),
	}
	elevator.log.Debug("Elevator initialized", "numFloors", numFloors, "maxPeople", opts.MaxPeople, "enforceCapacity", opts.EnforceCapacity)
	return elevator
}

// AddRequest validates req and appends it to the queue. An idle car is dispatched right away.
// A rejected request leaves the state untouched.
func (e *ElevState) AddRequest(req types.Request) error {
	if err := e.validate(req); err != nil {
		return err
	}
	e.queue.Push(req)
	e.log.Debug("Request queued", "request", req, "queued", e.queue.Len())
	e.Dispatch()
	return nil
}

func (e *ElevState) validate(req types.Request) error {
	switch {
	case req.Destination < 1 || req.Destination > e.numFloors:
		return fmt.Errorf("%w: %d outside [1, %d]", ErrInvalidDestination, req.Destination, e.numFloors)
	case req.Destination == req.Origin:
		return fmt.Errorf("%w: %d equals origin", ErrInvalidDestination, req.Destination)
	case req.Origin < 1 || req.Origin > e.numFloors:
		return fmt.Errorf("%w: %d outside [1, %d]", ErrInvalidOrigin, req.Origin, e.numFloors)
	case !req.Dir.Valid():
		return fmt.Errorf("%w: %d", ErrInvalidDirection, req.Dir)
	}
	return nil
}

func (e *ElevState) Floor() int                  { return e.floor }
func (e *ElevState) Dir() types.Direction        { return e.dir }
func (e *ElevState) RequestDir() types.Direction { return e.requestDir }
func (e *ElevState) InMotion() bool              { return e.inMotion }
func (e *ElevState) NumFloors() int              { return e.numFloors }
func (e *ElevState) Queued() int                 { return e.queue.Len() }
func (e *ElevState) Riders() int                 { return e.stops.Riders() }

func (e *ElevState) Behaviour() types.ElevBehaviour {
	switch {
	case !e.inMotion:
		return types.Idle
	case e.dir == types.Down:
		return types.MovingDown
	default:
		return types.MovingUp
	}
}

// Snapshot returns a deep copy of the state that shares nothing with the elevator.
func (e *ElevState) Snapshot() types.State {
	view := types.State{
		Floor:      e.floor,
		Dir:        e.dir,
		RequestDir: e.requestDir,
		InMotion:   e.inMotion,
		Target:     e.target,
		Requests:   e.queue.requests,
		StopsAbove: e.stops.above,
		StopsBelow: e.stops.below,
	}
	snap := types.State{}
	if err := deepcopy.Copy(&snap, &view); err != nil {
		panic(err)
	}
	return snap
}

// simulation rebuilds the elevator from a snapshot with logging discarded.
func (e *ElevState) simulation() *ElevState {
	snap := e.Snapshot()
	sim := &ElevState{
		numFloors:  e.numFloors,
		opts:       e.opts,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		floor:      snap.Floor,
		dir:        snap.Dir,
		requestDir: snap.RequestDir,
		inMotion:   snap.InMotion,
		target:     snap.Target,
		queue:      RequestQueue{requests: snap.Requests},
		stops:      &StopAggregator{above: snap.StopsAbove, below: snap.StopsBelow},
	}
	if sim.stops.above == nil {
		sim.stops.above = make(types.Stops)
	}
	if sim.stops.below == nil {
		sim.stops.below = make(types.Stops)
	}
	return sim
}

// TicksToIdle runs the elevator on a copy and counts the ticks needed to serve every queued
// request and boarded passenger. ok is false if the copy is still busy after limit ticks.
func (e *ElevState) TicksToIdle(limit int) (ticks int, ok bool) {
	sim := e.simulation()
	for ticks = 0; ticks < limit; ticks++ {
		if !sim.inMotion {
			return ticks, true
		}
		sim.Tick()
	}
	return ticks, !sim.inMotion
}
