// Motion controller: one call to Tick advances the car by at most one floor.
package elev

import "elevsim/src/types"

// Tick runs one step of the motion controller.
//   - An idle car is dispatched first, and stays put if there is nothing to do
//   - Passengers are exchanged at the current floor before moving
//   - The car moves one floor towards its target and exchanges passengers on arrival
//   - The car goes idle once no request or passenger is left
func (e *ElevState) Tick() TickResult {
	var res TickResult
	if !e.inMotion && !e.Dispatch() {
		return res
	}

	res.Alighted, res.Boarded = e.handleFloorArrival()
	target, ok := e.chooseTarget()
	if !ok {
		e.stop()
		res.Stopped = true
		return res
	}
	e.target = target

	e.step()
	res.Moved = true
	alighted, boarded := e.handleFloorArrival()
	res.Alighted += alighted
	res.Boarded += boarded

	if target, ok = e.chooseTarget(); !ok {
		e.stop()
		res.Stopped = true
		return res
	}
	e.target = target
	e.log.Debug("Tick",
		"floor", e.floor,
		"dir", e.dir,
		"target", e.target,
		"queued", e.queue.Len(),
		"riders", e.stops.Riders())
	return res
}

// handleFloorArrival lets every passenger bound for the current floor off, then boards waiting
// requests heading in the sweep direction.
func (e *ElevState) handleFloorArrival() (alighted, boarded int) {
	alighted = e.stops.Alight(e.floor)
	if e.stops.Empty() {
		e.selectSweep()
	}
	boarded = e.board()
	if alighted > 0 || boarded > 0 {
		e.log.Debug("Stopping at floor",
			"floor", e.floor,
			"alighted", alighted,
			"boarded", boarded,
			"requestDir", e.requestDir)
	}
	return alighted, boarded
}

func (e *ElevState) board() int {
	limit := -1
	if e.opts.EnforceCapacity {
		limit = max(e.opts.MaxPeople-e.stops.Riders(), 0)
	}
	taken := e.queue.TakeWhere(func(req types.Request) bool {
		return req.Origin == e.floor && req.Dir == e.requestDir
	}, limit)
	for _, req := range taken {
		e.stops.Board(e.floor, req.Destination)
	}
	if limit >= 0 && len(taken) == limit && e.queue.Len() > 0 {
		e.log.Debug("Car full", "floor", e.floor, "riders", e.stops.Riders())
	}
	return len(taken)
}

// step moves the car one floor in its direction, clamped to the building.
func (e *ElevState) step() {
	next := e.floor + int(e.dir)
	if next < 1 || next > e.numFloors {
		e.log.Error("Floor outside building, clamping", "floor", next, "numFloors", e.numFloors, "dir", e.dir)
		next = min(max(next, 1), e.numFloors)
	}
	e.floor = next
}

func (e *ElevState) stop() {
	if !e.queue.Empty() || !e.stops.Empty() {
		e.log.Error("Stopping with pending work", "floor", e.floor, "queued", e.queue.Len(), "riders", e.stops.Riders())
	}
	e.inMotion = false
	e.target = 0
	e.log.Info("Elevator idle", "floor", e.floor)
}
