package order

import "time"

const (
	// timelineStepInterval is the fixed spacing between the projected
	// timestamps of consecutive timeline steps.
	timelineStepInterval = 8 * time.Minute

	// timePlaceholder is shown for steps not yet reached.
	timePlaceholder = "--"

	// timeFormat renders step timestamps like "3:04 PM".
	timeFormat = "3:04 PM"
)

// TimelineStep is one entry in an order's presentational history.
type TimelineStep struct {
	Status    Status
	Label     string
	Completed bool
	At        string
}

// BuildTimeline materializes the timeline for an order at the given
// status. Every step at or before the current status is complete and
// stamped base + rank * interval; later steps carry the placeholder.
func BuildTimeline(current Status, base time.Time) []TimelineStep {
	currentRank := current.Rank()

	steps := make([]TimelineStep, 0, len(statusSequence))
	for rank, status := range statusSequence {
		step := TimelineStep{
			Status: status,
			Label:  status.Label(),
			At:     timePlaceholder,
		}
		if rank <= currentRank {
			step.Completed = true
			step.At = base.Add(time.Duration(rank) * timelineStepInterval).Format(timeFormat)
		}
		steps = append(steps, step)
	}
	return steps
}
