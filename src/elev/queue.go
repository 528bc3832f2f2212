package elev

import "elevsim/src/types"

// RequestQueue holds pending pickups in arrival order. Identical requests are kept as
// separate passengers.
type RequestQueue struct {
	requests []types.Request
}

func (q *RequestQueue) Push(req types.Request) {
	q.requests = append(q.requests, req)
}

func (q *RequestQueue) Len() int {
	return len(q.requests)
}

func (q *RequestQueue) Empty() bool {
	return len(q.requests) == 0
}

// Oldest returns the earliest unserved request.
func (q *RequestQueue) Oldest() (types.Request, bool) {
	if len(q.requests) == 0 {
		return types.Request{}, false
	}
	return q.requests[0], true
}

// TakeWhere removes and returns, in arrival order, up to limit requests matching keep.
// A negative limit means no limit.
func (q *RequestQueue) TakeWhere(keep func(types.Request) bool, limit int) []types.Request {
	var taken []types.Request
	remaining := q.requests[:0]
	for _, req := range q.requests {
		if (limit < 0 || len(taken) < limit) && keep(req) {
			taken = append(taken, req)
			continue
		}
		remaining = append(remaining, req)
	}
	clear(q.requests[len(remaining):])
	q.requests = remaining
	return taken
}

// Each calls fn for every request in arrival order.
func (q *RequestQueue) Each(fn func(i int, req types.Request)) {
	for i, req := range q.requests {
		fn(i, req)
	}
}
