package model

import "time"

// IDSource hands out item ids based on the wall clock in milliseconds.
// Ids are strictly increasing for the lifetime of the source, so a deleted
// item's id is never handed out again even when two adds land in the same
// millisecond.
type IDSource struct {
	now  func() time.Time
	last int64
}

// NewIDSource returns a source that never issues an id at or below the
// largest id in seen.
func NewIDSource(now func() time.Time, seen []Item) *IDSource {
	if now == nil {
		now = time.Now
	}
	s := &IDSource{now: now}
	for _, it := range seen {
		if it.ID > s.last {
			s.last = it.ID
		}
	}
	return s
}

// Next returns a fresh id.
func (s *IDSource) Next() int64 {
	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
