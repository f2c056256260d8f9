package main

// History is the undo stack of whole-canvas snapshots.
type History struct {
	snapshots []*Canvas
	limit     int // 0 means unbounded
}

func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Push stores a deep copy of c. When the limit is reached the oldest
// snapshot is dropped.
func (h *History) Push(c *Canvas) {
	h.snapshots = append(h.snapshots, c.Clone())
	if h.limit > 0 && len(h.snapshots) > h.limit {
		h.snapshots[0] = nil
		h.snapshots = h.snapshots[1:]
	}
}

// Pop removes and returns the most recent snapshot.
func (h *History) Pop() (*Canvas, bool) {
	if len(h.snapshots) == 0 {
		return nil, false
	}
	last := len(h.snapshots) - 1
	c := h.snapshots[last]
	h.snapshots[last] = nil
	h.snapshots = h.snapshots[:last]
	return c, true
}

func (h *History) Len() int {
	return len(h.snapshots)
}
