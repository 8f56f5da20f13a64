package participation

import (
	"fmt"
	"strconv"
	"time"
)

// Tracker records exercise-session participation per course and
// answers queries over the recorded history. It holds no state of its
// own: every operation loads from and saves to the injected store.
type Tracker struct {
	store Store
}

// New creates a Tracker backed by the given store.
func New(store Store) *Tracker {
	return &Tracker{store: store}
}

// Record appends one session observation to a course's history,
// creating the course record (group size 1) on first use. The course
// name is refreshed on every call so renames propagate. An empty date
// defaults to today's local calendar date.
//
// Duplicate exercise labels and out-of-order dates are accepted as-is:
// a session recorded twice is two data points.
func (t *Tracker) Record(courseID int, courseName, exercise string, wasCalled bool, date string) error {
	h := t.store.Load()
	key := strconv.Itoa(courseID)

	c, ok := h[key]
	if !ok {
		c = &Course{GroupSize: 1}
		h[key] = c
	}
	c.CourseName = courseName

	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	c.Sessions = append(c.Sessions, Session{
		Date:      date,
		Exercise:  exercise,
		WasCalled: wasCalled,
	})

	if err := t.store.Save(h); err != nil {
		return fmt.Errorf("save participation history: %w", err)
	}
	return nil
}

// SetGroupSize updates the assumed peer-group size for a course.
// Unknown courses are a no-op: group size is meaningless before the
// first recorded session. Sizes below 1 are clamped to 1.
func (t *Tracker) SetGroupSize(courseID, size int) error {
	h := t.store.Load()
	c, ok := h[strconv.Itoa(courseID)]
	if !ok {
		return nil
	}

	if size < 1 {
		size = 1
	}
	c.GroupSize = size

	if err := t.store.Save(h); err != nil {
		return fmt.Errorf("save participation history: %w", err)
	}
	return nil
}

// Course returns the record for one course, or nil if untracked.
func (t *Tracker) Course(courseID int) *Course {
	return t.store.Load()[strconv.Itoa(courseID)]
}

// AllCourses returns every tracked course keyed by integer id.
func (t *Tracker) AllCourses() map[int]*Course {
	h := t.store.Load()
	result := make(map[int]*Course, len(h))
	for key, c := range h {
		id, err := strconv.Atoi(key)
		if err != nil {
			// Non-numeric keys can only come from a hand-edited file.
			continue
		}
		result[id] = c
	}
	return result
}

// DeleteCourse removes all data for a course. It reports whether
// anything was deleted.
func (t *Tracker) DeleteCourse(courseID int) (bool, error) {
	h := t.store.Load()
	key := strconv.Itoa(courseID)
	if _, ok := h[key]; !ok {
		return false, nil
	}
	delete(h, key)

	if err := t.store.Save(h); err != nil {
		return false, fmt.Errorf("save participation history: %w", err)
	}
	return true, nil
}
