package elev

import (
	"context"
	"log/slog"
	"time"

	"elevsim/src/timer"
	"elevsim/src/types"
)

// StartStateMgr starts the goroutine that owns the elevator and drives it with a tick every
// period. Submissions and ticks run on that goroutine, one at a time. Cancelling ctx stops it.
func StartStateMgr(ctx context.Context, building Building, opts Options, period time.Duration) *ElevStateMgr {
	elevator := NewElevState(building, opts)
	elevMgr := &ElevStateMgr{
		cmds:      make(chan ElevStateCmd),
		done:      make(chan struct{}),
		numFloors: elevator.NumFloors(),
	}
	go elevMgr.run(ctx, elevator, timer.New(period))
	return elevMgr
}

func (elevMgr *ElevStateMgr) run(ctx context.Context, elevator *ElevState, tickTimer *timer.TickTimer) {
	defer close(elevMgr.done)
	defer tickTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			elevMgr.final = elevator.Snapshot()
			for _, sub := range elevMgr.subscribers {
				close(sub)
			}
			elevMgr.subscribers = nil
			slog.Debug("Elevator manager stopped", "floor", elevator.Floor())
			return
		case cmd := <-elevMgr.cmds:
			cmd.Exec(elevator)
			if elevator.InMotion() {
				tickTimer.Start()
			}
		case <-tickTimer.C():
			tickTimer.Fired()
			res := elevator.Tick()
			if res.Moved || res.Boarded > 0 || res.Alighted > 0 || res.Stopped {
				kind := types.EventTick
				if res.Stopped {
					kind = types.EventIdle
				}
				elevMgr.publish(types.Event{
					Kind:     kind,
					State:    elevator.Snapshot(),
					Boarded:  res.Boarded,
					Alighted: res.Alighted,
				})
			}
			if elevator.InMotion() {
				tickTimer.Start()
			}
		}
	}
}

// exec runs fn on the manager goroutine. It returns false once the manager has stopped.
func (elevMgr *ElevStateMgr) exec(fn func(elevator *ElevState)) bool {
	select {
	case elevMgr.cmds <- ElevStateCmd{Exec: fn}:
		return true
	case <-elevMgr.done:
		return false
	}
}

// Submit queues a pickup at origin for a passenger travelling in dir to destination.
// Invalid requests are dropped without changing anything and Submit returns false.
func (elevMgr *ElevStateMgr) Submit(origin int, dir types.Direction, destination int) bool {
	req := types.Request{Origin: origin, Dir: dir, Destination: destination}
	reply := make(chan bool, 1)
	ok := elevMgr.exec(func(elevator *ElevState) {
		if err := elevator.AddRequest(req); err != nil {
			slog.Warn("Request rejected", "request", req, "err", err)
			reply <- false
			return
		}
		elevMgr.publish(types.Event{Kind: types.EventSubmitted, State: elevator.Snapshot()})
		reply <- true
	})
	if !ok {
		slog.Warn("Request after shutdown", "request", req)
		return false
	}
	return <-reply
}

func (elevMgr *ElevStateMgr) SubmitUp(origin, destination int) bool {
	return elevMgr.Submit(origin, types.Up, destination)
}

func (elevMgr *ElevStateMgr) SubmitDown(origin, destination int) bool {
	return elevMgr.Submit(origin, types.Down, destination)
}

// GetState returns a deep copy of the elevator state. After shutdown it returns the final state.
func (elevMgr *ElevStateMgr) GetState() types.State {
	reply := make(chan types.State, 1)
	if !elevMgr.exec(func(elevator *ElevState) {
		reply <- elevator.Snapshot()
	}) {
		return elevMgr.final
	}
	return <-reply
}

// Subscribe returns a channel receiving an event after every submission and every tick that
// changed the elevator. Events are dropped while the channel is full. The channel is closed
// when the manager stops.
func (elevMgr *ElevStateMgr) Subscribe(buffer int) <-chan types.Event {
	ch := make(chan types.Event, buffer)
	if !elevMgr.exec(func(elevator *ElevState) {
		elevMgr.subscribers = append(elevMgr.subscribers, ch)
	}) {
		close(ch)
	}
	return ch
}

// EstimateTicks returns how many ticks the elevator needs to serve everything pending now.
func (elevMgr *ElevStateMgr) EstimateTicks() (int, bool) {
	type estimate struct {
		ticks int
		ok    bool
	}
	reply := make(chan estimate, 1)
	if !elevMgr.exec(func(elevator *ElevState) {
		work := elevator.Queued() + elevator.Riders() + 1
		ticks, ok := elevator.TicksToIdle(2 * elevMgr.numFloors * work)
		reply <- estimate{ticks, ok}
	}) {
		return 0, true
	}
	r := <-reply
	return r.ticks, r.ok
}

func (elevMgr *ElevStateMgr) NumberOfFloors() int {
	return elevMgr.numFloors
}

// Done is closed once the manager goroutine has exited.
func (elevMgr *ElevStateMgr) Done() <-chan struct{} {
	return elevMgr.done
}

func (elevMgr *ElevStateMgr) publish(event types.Event) {
	for _, sub := range elevMgr.subscribers {
		select {
		case sub <- event:
		default:
		}
	}
}
