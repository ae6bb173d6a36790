package model

import "testing"

func TestCollect(t *testing.T) {
	segments := sampleSegments()
	// bgm: one simple element with value only.
	// nad: one simple element (format+value+usage), one group with one
	// element (format only).

	stats := Collect(segments)

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"Segments", stats.Segments, 2},
		{"SimpleElements", stats.SimpleElements, 2},
		{"Groups", stats.Groups, 1},
		{"GroupedElements", stats.GroupedElements, 1},
		{"WithFormat", stats.WithFormat, 2},
		{"WithValue", stats.WithValue, 2},
		{"WithUsage", stats.WithUsage, 1},
		{"TotalElements", stats.TotalElements(), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestCollectEmpty(t *testing.T) {
	stats := Collect(nil)
	if stats != (Stats{}) {
		t.Errorf("Collect(nil) = %+v, want zero stats", stats)
	}
}
