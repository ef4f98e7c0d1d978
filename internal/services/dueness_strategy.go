// Package services provides business logic and orchestration services.
//
// This file implements the Strategy Pattern for repeating-reminder dueness
// checking. Each interval type (daily, weekly, monthly, yearly) has its own
// strategy that encapsulates the logic for determining when a reminder comes
// due again.

package services

import (
	"fmt"
	"time"

	"dayboard/internal/core"
)

// DuenessChecker is the strategy interface for checking if a repeating
// reminder is due. createdAt anchors the monthly and yearly intervals to the
// day the reminder was created.
type DuenessChecker interface {
	IsDue(lastNotified, now, createdAt time.Time) bool
}

// DailyChecker implements DuenessChecker for daily reminders.
type DailyChecker struct{}

// IsDue returns true if the last notification was before today.
func (DailyChecker) IsDue(lastNotified, now, _ time.Time) bool {
	if lastNotified.IsZero() {
		return true
	}
	return lastNotified.Format(core.DayFormat) != now.Format(core.DayFormat)
}

// WeeklyChecker implements DuenessChecker for weekly reminders.
type WeeklyChecker struct{}

// IsDue returns true if 7 or more days have passed since the last
// notification.
func (WeeklyChecker) IsDue(lastNotified, now, _ time.Time) bool {
	if lastNotified.IsZero() {
		return true
	}
	daysSince := now.Sub(lastNotified).Hours() / 24
	return daysSince >= 7
}

// MonthlyChecker implements DuenessChecker for monthly reminders.
type MonthlyChecker struct{}

// IsDue returns true in a new month once the creation day of month is
// reached. A creation day past the end of a short month clamps to its last
// day.
func (MonthlyChecker) IsDue(lastNotified, now, createdAt time.Time) bool {
	if lastNotified.IsZero() {
		return true
	}

	if lastNotified.Year() == now.Year() && lastNotified.Month() == now.Month() {
		return false
	}

	targetDay := createdAt.Day()
	lastDayOfMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if targetDay > lastDayOfMonth {
		targetDay = lastDayOfMonth
	}

	return now.Day() >= targetDay
}

// YearlyChecker implements DuenessChecker for yearly reminders.
type YearlyChecker struct{}

// IsDue returns true in a new year once the creation month and day are
// reached.
func (YearlyChecker) IsDue(lastNotified, now, createdAt time.Time) bool {
	if lastNotified.IsZero() {
		return true
	}

	if lastNotified.Year() == now.Year() {
		return false
	}

	targetMonth := createdAt.Month()
	targetDay := createdAt.Day()

	if now.Month() < targetMonth {
		return false
	}

	if now.Month() == targetMonth {
		lastDayOfMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
		if targetDay > lastDayOfMonth {
			targetDay = lastDayOfMonth
		}
		return now.Day() >= targetDay
	}

	return true
}

// duenessStrategies maps repeat intervals to their corresponding checkers.
// This registry enables O(1) lookup and easy extension for new interval types.
var duenessStrategies = map[core.RepeatInterval]DuenessChecker{
	core.Daily:   DailyChecker{},
	core.Weekly:  WeeklyChecker{},
	core.Monthly: MonthlyChecker{},
	core.Yearly:  YearlyChecker{},
}

// GetDuenessChecker returns the appropriate dueness checker for a repeat
// interval. Returns an error if the interval is not supported.
func GetDuenessChecker(interval core.RepeatInterval) (DuenessChecker, error) {
	checker, ok := duenessStrategies[interval]
	if !ok {
		return nil, fmt.Errorf("unknown repeat interval: %s", interval)
	}
	return checker, nil
}

// RegisterDuenessChecker allows registering custom dueness checkers for new
// interval types.
func RegisterDuenessChecker(interval core.RepeatInterval, checker DuenessChecker) {
	duenessStrategies[interval] = checker
}
