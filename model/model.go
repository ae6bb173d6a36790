package model

import "sort"

// NodeKind identifies the concrete type behind a Node.
type NodeKind int

const (
	KindElement NodeKind = iota
	KindGroup
)

// Node is a direct child of a segment: either a simple data element or a
// composite group. The concrete types are *Element and *Group.
type Node interface {
	Kind() NodeKind
	NodeCode() string
}

// Element is a simple data element identified by a 4-digit numeric code.
type Element struct {
	Code        string
	Description string
	Format      string // raw format specifier, e.g. "an..35"
	Value       string // example or allowed value
	Usage       string // consolidated condition text, newline-joined in document order
}

func (e *Element) Kind() NodeKind   { return KindElement }
func (e *Element) NodeCode() string { return e.Code }

// Group is a composite data element identified by S or C plus three digits
// (C082, S001). A group owns its elements exclusively.
type Group struct {
	Code        string
	Description string
	Elements    []*Element
}

func (g *Group) Kind() NodeKind   { return KindGroup }
func (g *Group) NodeCode() string { return g.Code }

// Add appends an element to the group, preserving document order.
func (g *Group) Add(e *Element) {
	g.Elements = append(g.Elements, e)
}

// Segment is one segment of the message grammar, identified by its
// three-letter uppercase mnemonic.
type Segment struct {
	Code        string
	Description string
	Elements    []Node
}

// Add appends a child node to the segment, preserving document order.
func (s *Segment) Add(n Node) {
	s.Elements = append(s.Elements, n)
}

// SegmentMap accumulates segments keyed by mnemonic while remembering
// creation order. Segments are never removed once created.
type SegmentMap struct {
	byCode map[string]*Segment
	order  []*Segment
}

// NewSegmentMap creates an empty accumulator.
func NewSegmentMap() *SegmentMap {
	return &SegmentMap{byCode: make(map[string]*Segment)}
}

// Get returns the segment for code, or nil when it has not been seen.
func (m *SegmentMap) Get(code string) *Segment {
	return m.byCode[code]
}

// Open returns the segment for code, creating it with the given description
// when it does not exist yet. An existing segment keeps its original
// description; later occurrences merge instead of duplicating.
func (m *SegmentMap) Open(code, description string) *Segment {
	if seg := m.byCode[code]; seg != nil {
		return seg
	}
	seg := &Segment{Code: code, Description: description}
	m.byCode[code] = seg
	m.order = append(m.order, seg)
	return seg
}

// Last returns the most recently created segment, or nil when the map is
// empty. Reopening an existing segment does not change which segment is last.
func (m *SegmentMap) Last() *Segment {
	if len(m.order) == 0 {
		return nil
	}
	return m.order[len(m.order)-1]
}

// Len returns the number of distinct segments seen so far.
func (m *SegmentMap) Len() int {
	return len(m.order)
}

// Sorted returns the segments ordered by ascending mnemonic. Child order
// inside each segment is left untouched.
func (m *SegmentMap) Sorted() []*Segment {
	out := make([]*Segment, len(m.order))
	copy(out, m.order)
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
