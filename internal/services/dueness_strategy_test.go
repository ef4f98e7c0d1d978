package services

import (
	"testing"
	"time"

	"dayboard/internal/core"
)

func TestDailyChecker_IsDue(t *testing.T) {
	checker := DailyChecker{}
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		lastNotified time.Time
		want         bool
	}{
		{
			name:         "never notified - is due",
			lastNotified: time.Time{},
			want:         true,
		},
		{
			name:         "notified today - not due",
			lastNotified: time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC),
			want:         false,
		},
		{
			name:         "notified yesterday - is due",
			lastNotified: time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC),
			want:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checker.IsDue(tt.lastNotified, now, createdAt)
			if got != tt.want {
				t.Errorf("DailyChecker.IsDue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeeklyChecker_IsDue(t *testing.T) {
	checker := WeeklyChecker{}
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		lastNotified time.Time
		want         bool
	}{
		{
			name:         "never notified - is due",
			lastNotified: time.Time{},
			want:         true,
		},
		{
			name:         "notified 3 days ago - not due",
			lastNotified: time.Date(2024, 1, 12, 12, 0, 0, 0, time.UTC),
			want:         false,
		},
		{
			name:         "notified 7 days ago - is due",
			lastNotified: time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC),
			want:         true,
		},
		{
			name:         "notified 10 days ago - is due",
			lastNotified: time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC),
			want:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checker.IsDue(tt.lastNotified, now, createdAt)
			if got != tt.want {
				t.Errorf("WeeklyChecker.IsDue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMonthlyChecker_IsDue(t *testing.T) {
	checker := MonthlyChecker{}

	tests := []struct {
		name         string
		lastNotified time.Time
		now          time.Time
		createdAt    time.Time
		want         bool
	}{
		{
			name:         "never notified - is due",
			lastNotified: time.Time{},
			now:          time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
			createdAt:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			want:         true,
		},
		{
			name:         "notified this month - not due",
			lastNotified: time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
			now:          time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
			createdAt:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			want:         false,
		},
		{
			name:         "new month but before target day - not due",
			lastNotified: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
			now:          time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC),
			createdAt:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			want:         false,
		},
		{
			name:         "new month and on target day - is due",
			lastNotified: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
			now:          time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC),
			createdAt:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			want:         true,
		},
		{
			name:         "target day 31 clamps in February",
			lastNotified: time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC),
			now:          time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC),
			createdAt:    time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
			want:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checker.IsDue(tt.lastNotified, tt.now, tt.createdAt)
			if got != tt.want {
				t.Errorf("MonthlyChecker.IsDue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestYearlyChecker_IsDue(t *testing.T) {
	checker := YearlyChecker{}

	tests := []struct {
		name         string
		lastNotified time.Time
		now          time.Time
		createdAt    time.Time
		want         bool
	}{
		{
			name:         "never notified - is due",
			lastNotified: time.Time{},
			now:          time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
			createdAt:    time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
			want:         true,
		},
		{
			name:         "notified this year - not due",
			lastNotified: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
			now:          time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC),
			createdAt:    time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
			want:         false,
		},
		{
			name:         "new year but before target month - not due",
			lastNotified: time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC),
			now:          time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			createdAt:    time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
			want:         false,
		},
		{
			name:         "new year and on target date - is due",
			lastNotified: time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC),
			now:          time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
			createdAt:    time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
			want:         true,
		},
		{
			name:         "new year and past target month - is due",
			lastNotified: time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC),
			now:          time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC),
			createdAt:    time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
			want:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checker.IsDue(tt.lastNotified, tt.now, tt.createdAt)
			if got != tt.want {
				t.Errorf("YearlyChecker.IsDue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetDuenessChecker(t *testing.T) {
	for _, interval := range []core.RepeatInterval{core.Daily, core.Weekly, core.Monthly, core.Yearly} {
		if _, err := GetDuenessChecker(interval); err != nil {
			t.Errorf("GetDuenessChecker(%s) error = %v", interval, err)
		}
	}
	if _, err := GetDuenessChecker("fortnightly"); err == nil {
		t.Error("GetDuenessChecker should fail for unknown interval")
	}
}
