package participation

import "strconv"

// AdjustmentFactor controls how strongly the fairness correction
// perturbs the naive base probability. 0 disables the correction,
// 1 applies the full computed gap.
const AdjustmentFactor = 0.5

// RecentSessionWindow is how many trailing sessions Stats carries for
// display.
const RecentSessionWindow = 5

// Stats is the estimator output for one course. Probabilities are
// percentages in [0, 100].
type Stats struct {
	CourseID            int
	CourseName          string
	TotalSessions       int
	TimesCalled         int
	GroupSize           int
	BaseProbability     float64
	AdjustedProbability float64
	ExpectedCalls       float64
	Recent              []Session
}

// Estimate computes call-probability statistics for a course. It
// returns nil when the course is untracked or has no recorded
// sessions — probability is undefined without at least one data point.
func (t *Tracker) Estimate(courseID int) *Stats {
	return computeStats(courseID, t.Course(courseID))
}

// computeStats is the probability model. The base rate assumes each
// session draws one student uniformly from a group of groupSize; the
// adjustment assumes instructors informally balance calls, so a
// student called less than expected gets a raised estimate and one
// called more gets a lowered one.
func computeStats(courseID int, c *Course) *Stats {
	if c == nil || len(c.Sessions) == 0 {
		return nil
	}

	groupSize := c.GroupSize
	if groupSize < 1 {
		groupSize = 1
	}

	totalSessions := len(c.Sessions)
	timesCalled := 0
	for _, s := range c.Sessions {
		if s.WasCalled {
			timesCalled++
		}
	}

	baseProb := 1.0 / float64(groupSize)
	expectedCalls := float64(totalSessions) / float64(groupSize)

	adjustedProb := baseProb
	if expectedCalls > 0 {
		gap := (expectedCalls - float64(timesCalled)) / expectedCalls
		gap = clamp(gap, -1, 1)
		adjustedProb = clamp(baseProb*(1+gap*AdjustmentFactor), 0, 1)
	}

	name := c.CourseName
	if name == "" {
		name = "Course " + strconv.Itoa(courseID)
	}

	recent := c.Sessions
	if len(recent) > RecentSessionWindow {
		recent = recent[len(recent)-RecentSessionWindow:]
	}

	return &Stats{
		CourseID:            courseID,
		CourseName:          name,
		TotalSessions:       totalSessions,
		TimesCalled:         timesCalled,
		GroupSize:           groupSize,
		BaseProbability:     baseProb * 100,
		AdjustedProbability: adjustedProb * 100,
		ExpectedCalls:       expectedCalls,
		Recent:              recent,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
