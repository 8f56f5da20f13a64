package participation

// Session is one recorded exercise occurrence. Date is a plain
// YYYY-MM-DD calendar date; it is caller-supplied and not validated
// against earlier entries, so out-of-order history is legal.
type Session struct {
	Date      string `json:"date"`
	Exercise  string `json:"exercise"`
	WasCalled bool   `json:"was_called"`
}

// Course holds the tracked participation record for one course.
// CourseName is refreshed on every recorded session so renames
// propagate. Sessions is append-only; only whole-course deletion is
// exposed.
type Course struct {
	CourseName string    `json:"course_name"`
	GroupSize  int       `json:"group_size"`
	Sessions   []Session `json:"sessions"`
}

// History maps decimal course ids to their records. String keys are
// the on-disk JSON contract; Tracker exposes integer ids.
type History map[string]*Course
