// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func testBudget(start, end time.Time) *Budget {
	return NewBudget(uuid.New(), uuid.New(), decimal.NewFromInt(500), BudgetPeriodMonthly, start, end)
}

func TestBudgetOverlaps(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
	}
	budget := testBudget(day(10), day(20))

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		overlaps bool
	}{
		{name: "window entirely before", start: day(1), end: day(9), overlaps: false},
		{name: "window entirely after", start: day(21), end: day(28), overlaps: false},
		{name: "window touching start day", start: day(1), end: day(10), overlaps: true},
		{name: "window touching end day", start: day(20), end: day(28), overlaps: true},
		{name: "window inside budget", start: day(12), end: day(18), overlaps: true},
		{name: "window containing budget", start: day(1), end: day(28), overlaps: true},
		{name: "partial overlap at start", start: day(5), end: day(15), overlaps: true},
		{name: "partial overlap at end", start: day(15), end: day(25), overlaps: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := budget.Overlaps(tt.start, tt.end); got != tt.overlaps {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.overlaps)
			}
		})
	}
}

func TestBudgetIsActiveAt(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
	}
	budget := testBudget(day(10), day(20))

	tests := []struct {
		name    string
		instant time.Time
		active  bool
	}{
		{name: "before window", instant: day(9), active: false},
		{name: "on start date", instant: day(10), active: true},
		{name: "inside window", instant: day(15), active: true},
		{name: "on end date", instant: day(20), active: true},
		{name: "after window", instant: day(21), active: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := budget.IsActiveAt(tt.instant); got != tt.active {
				t.Errorf("IsActiveAt(%v) = %v, want %v", tt.instant, got, tt.active)
			}
		})
	}
}
