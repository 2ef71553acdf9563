// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"
)

func TestValidPeriod(t *testing.T) {
	tests := []struct {
		name   string
		period Period
		valid  bool
	}{
		{name: "week", period: PeriodWeek, valid: true},
		{name: "month", period: PeriodMonth, valid: true},
		{name: "quarter", period: PeriodQuarter, valid: true},
		{name: "year", period: PeriodYear, valid: true},
		{name: "all", period: PeriodAll, valid: true},
		{name: "empty", period: Period(""), valid: false},
		{name: "unknown", period: Period("decade"), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidPeriod(tt.period); got != tt.valid {
				t.Errorf("ValidPeriod(%q) = %v, want %v", tt.period, got, tt.valid)
			}
		})
	}
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		period Period
		want   time.Time
	}{
		{name: "week goes back seven days", period: PeriodWeek, want: time.Date(2025, time.March, 8, 12, 0, 0, 0, time.UTC)},
		{name: "month goes back one calendar month", period: PeriodMonth, want: time.Date(2025, time.February, 15, 12, 0, 0, 0, time.UTC)},
		{name: "quarter goes back three calendar months", period: PeriodQuarter, want: time.Date(2024, time.December, 15, 12, 0, 0, 0, time.UTC)},
		{name: "year goes back one calendar year", period: PeriodYear, want: time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.period.Start(now)
			if got == nil {
				t.Fatalf("%s.Start() = nil, want %v", tt.period, tt.want)
			}
			if !got.Equal(tt.want) {
				t.Errorf("%s.Start() = %v, want %v", tt.period, got, tt.want)
			}
		})
	}

	t.Run("all has no lower bound", func(t *testing.T) {
		if got := PeriodAll.Start(now); got != nil {
			t.Errorf("PeriodAll.Start() = %v, want nil", got)
		}
	})
}
