// State types are defined in elev package to make method receivers possible in fsm.go and dispatch.go.
package elev

import (
	"log/slog"

	"elevsim/src/types"
)

// Building is the topology an elevator is constructed from.
type Building interface {
	NumberOfFloors() int
}

type Options struct {
	// MaxPeople is advisory unless EnforceCapacity is set.
	MaxPeople       int
	EnforceCapacity bool
}

// ElevState is the dispatcher. It exclusively owns the car position, the request queue and the
// boarded passengers. It is not safe for concurrent use; ElevStateMgr serializes access to it.
type ElevState struct {
	numFloors  int
	opts       Options
	log        *slog.Logger
	floor      int
	dir        types.Direction
	requestDir types.Direction
	inMotion   bool
	target     int
	queue      RequestQueue
	stops      *StopAggregator
}

// TickResult describes what one tick of the motion controller did.
type TickResult struct {
	Moved    bool
	Boarded  int
	Alighted int
	// Stopped is set on the tick where the car went idle.
	Stopped bool
}

// ElevStateCmd is executed on the goroutine owning the elevator.
type ElevStateCmd struct {
	Exec func(elevator *ElevState)
}

// ElevStateMgr owns the elevator and serializes its access.
type ElevStateMgr struct {
	cmds      chan ElevStateCmd
	done      chan struct{}
	numFloors int
	// Owned by the manager goroutine.
	subscribers []chan types.Event
	// Written once before done is closed.
	final types.State
}
