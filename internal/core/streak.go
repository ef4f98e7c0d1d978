package core

import (
	"sort"
	"time"
)

// CurrentStreak counts consecutive qualifying days up to and including the
// most recent one. Duplicate days collapse to a single day, so several
// entries on one date count once. Returns 1 for any non-empty set with a
// standalone latest day, 0 for an empty set. Unparseable dates are skipped.
func CurrentStreak(days []string) int {
	unique := make(map[int64]struct{}, len(days))
	for _, d := range days {
		t, err := ParseDay(d)
		if err != nil {
			continue
		}
		unique[t.Unix()] = struct{}{}
	}
	if len(unique) == 0 {
		return 0
	}

	stamps := make([]int64, 0, len(unique))
	for s := range unique {
		stamps = append(stamps, s)
	}
	sort.Slice(stamps, func(i, j int) bool { return stamps[i] > stamps[j] })

	const day = int64(24 * time.Hour / time.Second)
	streak := 1
	for i := 0; i < len(stamps)-1; i++ {
		if stamps[i]-stamps[i+1] == day {
			streak++
		} else {
			break
		}
	}
	return streak
}
