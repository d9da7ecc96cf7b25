// Package progress computes completion figures from subject records.
// Every function is pure.
package progress

import (
	"math"

	"github.com/templui/studytracker/internal/model"
)

// Percent returns hoursStudied/goal as a percentage clamped to [0, 100].
// Only the percentage is clamped, never the stored hours.
func Percent(s model.Subject) float64 {
	hours := s.HoursStudied.Float()
	goal := s.Goal.Float()

	if math.IsNaN(hours) || hours <= 0 {
		return 0
	}
	// A goal of zero cannot come from the repository, but records can be
	// hand-edited in the store.
	if math.IsNaN(goal) || goal <= 0 {
		return 100
	}

	return math.Min(hours*100/goal, 100)
}

func IsComplete(s model.Subject) bool {
	return s.HoursStudied >= s.Goal
}

// Ratio is the unclamped hoursStudied/goal used for ordering.
func Ratio(s model.Subject) float64 {
	goal := s.Goal.Float()
	if goal <= 0 || math.IsNaN(goal) {
		return math.Inf(1)
	}
	return s.HoursStudied.Float() / goal
}

// Crossed reports whether a change moved a subject from incomplete to complete.
func Crossed(before, after model.Subject) bool {
	return !IsComplete(before) && IsComplete(after)
}

func TotalHours(subjects []model.Subject) model.Hours {
	var total model.Hours
	for _, s := range subjects {
		total += s.HoursStudied
	}
	return total
}
