package progress

import (
	"math"
	"testing"

	"github.com/templui/studytracker/internal/model"
)

func TestPercentScenario(t *testing.T) {
	math10 := model.Subject{Subject: "Math", Goal: 10, HoursStudied: 4}
	if got := Percent(math10); got != 40 {
		t.Fatalf("expected 40, got %v", got)
	}

	math10.HoursStudied += 7
	if got := Percent(math10); got != 100 {
		t.Fatalf("expected clamped 100, got %v", got)
	}
	if !IsComplete(math10) {
		t.Fatalf("expected complete")
	}
	if math10.HoursStudied != 11 {
		t.Fatalf("hours must not be clamped, got %v", math10.HoursStudied)
	}
}

func TestPercentBounds(t *testing.T) {
	for _, hours := range []model.Hours{0, 0.5, 3, 10, 99, 1e9, model.Hours(math.Inf(1))} {
		p := Percent(model.Subject{Subject: "x", Goal: 10, HoursStudied: hours})
		if p < 0 || p > 100 || math.IsNaN(p) {
			t.Fatalf("percent out of range for %v: %v", hours, p)
		}
	}
}

func TestPercentGuardsZeroGoal(t *testing.T) {
	if got := Percent(model.Subject{Goal: 0, HoursStudied: 0}); got != 0 {
		t.Fatalf("expected 0 for empty record, got %v", got)
	}
	if got := Percent(model.Subject{Goal: 0, HoursStudied: 3}); got != 100 {
		t.Fatalf("expected 100 for zero goal with hours, got %v", got)
	}
	if got := Percent(model.Subject{Goal: -2, HoursStudied: 1}); got != 100 {
		t.Fatalf("expected 100 for negative goal, got %v", got)
	}
}

func TestCrossed(t *testing.T) {
	before := model.Subject{Goal: 5, HoursStudied: 4}
	after := model.Subject{Goal: 5, HoursStudied: 5}
	if !Crossed(before, after) {
		t.Fatalf("expected crossing at goal")
	}
	if Crossed(after, model.Subject{Goal: 5, HoursStudied: 7}) {
		t.Fatalf("already complete must not cross again")
	}
	if Crossed(before, model.Subject{Goal: 5, HoursStudied: 4.5}) {
		t.Fatalf("still incomplete must not cross")
	}
}

func TestTotalHours(t *testing.T) {
	subjects := []model.Subject{
		{Subject: "Math", Goal: 5, HoursStudied: 5},
		{Subject: "Art", Goal: 10, HoursStudied: 2},
		{Subject: "Bio", Goal: 1, HoursStudied: 0.5},
	}
	if got := TotalHours(subjects); got != 7.5 {
		t.Fatalf("expected 7.5, got %v", got)
	}
	if got := TotalHours(nil); got != 0 {
		t.Fatalf("expected 0 for empty collection, got %v", got)
	}
}

func TestRatio(t *testing.T) {
	if got := Ratio(model.Subject{Goal: 5, HoursStudied: 5}); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
	if got := Ratio(model.Subject{Goal: 10, HoursStudied: 2}); got != 0.2 {
		t.Fatalf("expected 0.2, got %v", got)
	}
}
