// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func testGoal(target, current int64, deadline *time.Time) *Goal {
	return NewGoal(uuid.New(), "Vacances", "", decimal.NewFromInt(target), decimal.NewFromInt(current), deadline, "travel")
}

func TestGoalStatus(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 1, 0)

	tests := []struct {
		name string
		goal *Goal
		want GoalStatus
	}{
		{name: "active without deadline", goal: testGoal(1000, 400, nil), want: GoalStatusActive},
		{name: "active with future deadline", goal: testGoal(1000, 400, &future), want: GoalStatusActive},
		{name: "expired when deadline passed", goal: testGoal(1000, 400, &past), want: GoalStatusExpired},
		{name: "completed when target reached", goal: testGoal(1000, 1000, nil), want: GoalStatusCompleted},
		{name: "completed when target exceeded", goal: testGoal(1000, 1500, nil), want: GoalStatusCompleted},
		{name: "completed wins over expired", goal: testGoal(1000, 1000, &past), want: GoalStatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.goal.Status(now); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name string
		goal *Goal
		want float64
	}{
		{name: "partial progress", goal: testGoal(1000, 250, nil), want: 25},
		{name: "no progress", goal: testGoal(1000, 0, nil), want: 0},
		{name: "capped at one hundred", goal: testGoal(1000, 1500, nil), want: 100},
		{name: "zero target yields zero", goal: testGoal(0, 500, nil), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.goal.Progress(); got != tt.want {
				t.Errorf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGoalRemaining(t *testing.T) {
	t.Run("remaining amount", func(t *testing.T) {
		goal := testGoal(1000, 300, nil)
		if got := goal.Remaining(); !got.Equal(decimal.NewFromInt(700)) {
			t.Errorf("Remaining() = %v, want 700", got)
		}
	})

	t.Run("never negative", func(t *testing.T) {
		goal := testGoal(1000, 1500, nil)
		if got := goal.Remaining(); !got.Equal(decimal.Zero) {
			t.Errorf("Remaining() = %v, want 0", got)
		}
	})
}

func TestGoalTimeRemaining(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	t.Run("nil without deadline", func(t *testing.T) {
		goal := testGoal(1000, 400, nil)
		if got := goal.TimeRemaining(now); got != nil {
			t.Errorf("TimeRemaining() = %v, want nil", *got)
		}
	})

	t.Run("nil when completed", func(t *testing.T) {
		deadline := now.AddDate(0, 1, 0)
		goal := testGoal(1000, 1000, &deadline)
		if got := goal.TimeRemaining(now); got != nil {
			t.Errorf("TimeRemaining() = %v, want nil", *got)
		}
	})

	t.Run("whole days rounded up", func(t *testing.T) {
		deadline := now.Add(36 * time.Hour)
		goal := testGoal(1000, 400, &deadline)
		got := goal.TimeRemaining(now)
		if got == nil || *got != 2 {
			t.Errorf("TimeRemaining() = %v, want 2", got)
		}
	})

	t.Run("negative once deadline passed", func(t *testing.T) {
		deadline := now.AddDate(0, 0, -3)
		goal := testGoal(1000, 400, &deadline)
		got := goal.TimeRemaining(now)
		if got == nil || *got != -3 {
			t.Errorf("TimeRemaining() = %v, want -3", got)
		}
	})
}
