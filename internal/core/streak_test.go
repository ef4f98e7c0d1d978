package core

import "testing"

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name string
		days []string
		want int
	}{
		{name: "empty", days: nil, want: 0},
		{name: "single day", days: []string{"2024-03-10"}, want: 1},
		{
			name: "three consecutive days",
			days: []string{"2024-03-08", "2024-03-09", "2024-03-10"},
			want: 3,
		},
		{
			name: "gap before earliest stops the count",
			days: []string{"2024-03-05", "2024-03-08", "2024-03-09", "2024-03-10"},
			want: 3,
		},
		{
			name: "unordered input",
			days: []string{"2024-03-10", "2024-03-08", "2024-03-09"},
			want: 3,
		},
		{
			name: "duplicate days collapse",
			days: []string{"2024-03-09", "2024-03-10", "2024-03-10", "2024-03-10"},
			want: 2,
		},
		{
			name: "gap right after latest",
			days: []string{"2024-03-01", "2024-03-02", "2024-03-10"},
			want: 1,
		},
		{
			name: "unparseable dates are skipped",
			days: []string{"garbage", "2024-03-10"},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentStreak(tt.days); got != tt.want {
				t.Errorf("CurrentStreak(%v) = %d, want %d", tt.days, got, tt.want)
			}
		})
	}
}
