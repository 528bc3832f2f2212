package elev

import "elevsim/src/types"

// Dispatch starts an idle elevator when there is work. It reports whether the car is in motion
// afterwards. Calling it on an idle elevator with nothing to do changes nothing.
func (e *ElevState) Dispatch() bool {
	if e.inMotion {
		return true
	}
	if e.queue.Empty() && e.stops.Empty() {
		return false
	}
	target, ok := e.chooseTarget()
	if !ok {
		e.log.Error("No target for pending work", "floor", e.floor, "queued", e.queue.Len(), "riders", e.stops.Riders())
		return false
	}
	e.target = target
	e.inMotion = true
	e.log.Info("Elevator dispatched",
		"floor", e.floor,
		"target", target,
		"behaviour", e.Behaviour(),
		"requestDir", e.requestDir)
	return true
}

// selectSweep picks the direction of the next sweep from the oldest queued request. Only
// called when no passengers are aboard.
func (e *ElevState) selectSweep() {
	oldest, ok := e.queue.Oldest()
	if !ok {
		return
	}
	e.requestDir = oldest.Dir
	if oldest.Origin == e.floor {
		e.dir = types.Towards(e.floor, oldest.Destination)
	} else {
		e.dir = types.Towards(e.floor, oldest.Origin)
	}
}

// Algorithm for choosing the next target floor.
//  1. With passengers aboard, keep the current direction.
//  2. Without passengers, take the direction towards the oldest queued request.
//  3. Target the farthest stop in that direction.
//  4. If nothing qualifies, reverse once and retry.
func (e *ElevState) chooseTarget() (int, bool) {
	if e.stops.Empty() {
		e.selectSweep()
	}
	if floor, ok := e.farthestFloor(e.dir); ok {
		return floor, true
	}
	e.dir = e.dir.Opposite()
	floor, ok := e.farthestFloor(e.dir)
	if ok {
		e.log.Debug("Reversing direction", "floor", e.floor, "dir", e.dir, "target", floor)
	}
	return floor, ok
}

func (e *ElevState) farthestFloor(dir types.Direction) (int, bool) {
	if !e.stops.Empty() {
		return e.stops.Farthest(e.floor, dir)
	}
	return e.farthestRequest(dir)
}

// farthestRequest returns the pickup of the current sweep lying farthest in dir. A request
// waiting on the current floor counts by its destination. Ties keep the earliest request.
func (e *ElevState) farthestRequest(dir types.Direction) (int, bool) {
	best, found := 0, false
	e.queue.Each(func(_ int, req types.Request) {
		if req.Dir != e.requestDir {
			return
		}
		floor := req.Origin
		if floor == e.floor {
			floor = req.Destination
		}
		if !beyond(e.floor, floor, dir) {
			return
		}
		if !found || beyond(best, floor, dir) {
			best, found = floor, true
		}
	})
	return best, found
}
