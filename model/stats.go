package model

// Stats summarizes an extracted grammar tree.
type Stats struct {
	Segments        int // distinct segments
	SimpleElements  int // elements directly under a segment
	Groups          int // composite groups
	GroupedElements int // elements nested inside groups
	WithFormat      int // elements (simple or grouped) with a non-empty format
	WithValue       int // elements with a non-empty example value
	WithUsage       int // elements with non-empty usage text
}

// TotalElements returns the element count across both nesting levels.
func (s Stats) TotalElements() int {
	return s.SimpleElements + s.GroupedElements
}

// Collect computes aggregate counts over the segments. It reads the tree and
// has no side effects.
func Collect(segments []*Segment) Stats {
	var stats Stats
	stats.Segments = len(segments)

	count := func(e *Element) {
		if e.Format != "" {
			stats.WithFormat++
		}
		if e.Value != "" {
			stats.WithValue++
		}
		if e.Usage != "" {
			stats.WithUsage++
		}
	}

	for _, seg := range segments {
		for _, node := range seg.Elements {
			switch n := node.(type) {
			case *Element:
				stats.SimpleElements++
				count(n)
			case *Group:
				stats.Groups++
				for _, e := range n.Elements {
					stats.GroupedElements++
					count(e)
				}
			}
		}
	}
	return stats
}
