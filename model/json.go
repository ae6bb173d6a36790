package model

import (
	"encoding/json"
	"fmt"
	"io"
)

// Wire shapes of the documented export format. Elements and groups are told
// apart by key shape ("champ" vs "groupe"), which is why these types exist
// only here and never leak into the rest of the code.
type (
	jsonSegment struct {
		Segment     string            `json:"segment"`
		Description string            `json:"description"`
		Elements    []json.RawMessage `json:"elements"`
	}

	jsonElement struct {
		Champ       string `json:"champ"`
		Description string `json:"description"`
		Format      string `json:"format"`
		Valeur      string `json:"valeur"`
		Usage       string `json:"usage"`
	}

	jsonGroup struct {
		Groupe      string        `json:"groupe"`
		Description string        `json:"description"`
		Champs      []jsonElement `json:"champs"`
	}
)

func toJSONElement(e *Element) jsonElement {
	return jsonElement{
		Champ:       e.Code,
		Description: e.Description,
		Format:      e.Format,
		Valeur:      e.Value,
		Usage:       e.Usage,
	}
}

func (je jsonElement) element() *Element {
	return &Element{
		Code:        je.Champ,
		Description: je.Description,
		Format:      je.Format,
		Value:       je.Valeur,
		Usage:       je.Usage,
	}
}

// MarshalJSON renders the segment in the documented export shape.
func (s *Segment) MarshalJSON() ([]byte, error) {
	out := jsonSegment{
		Segment:     s.Code,
		Description: s.Description,
		Elements:    make([]json.RawMessage, 0, len(s.Elements)),
	}
	for _, node := range s.Elements {
		var (
			raw []byte
			err error
		)
		switch n := node.(type) {
		case *Element:
			raw, err = json.Marshal(toJSONElement(n))
		case *Group:
			jg := jsonGroup{
				Groupe:      n.Code,
				Description: n.Description,
				Champs:      make([]jsonElement, 0, len(n.Elements)),
			}
			for _, e := range n.Elements {
				jg.Champs = append(jg.Champs, toJSONElement(e))
			}
			raw, err = json.Marshal(jg)
		default:
			err = fmt.Errorf("segment %s: unknown node kind %d", s.Code, node.Kind())
		}
		if err != nil {
			return nil, err
		}
		out.Elements = append(out.Elements, raw)
	}
	return json.Marshal(out)
}

// UnmarshalJSON parses the documented export shape back into the explicit
// node types, inspecting each child for its discriminating key.
func (s *Segment) UnmarshalJSON(data []byte) error {
	var in jsonSegment
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	s.Code = in.Segment
	s.Description = in.Description
	s.Elements = nil

	for i, raw := range in.Elements {
		var probe struct {
			Champ  *string `json:"champ"`
			Groupe *string `json:"groupe"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil {
			return err
		}
		switch {
		case probe.Groupe != nil:
			var jg jsonGroup
			if err := json.Unmarshal(raw, &jg); err != nil {
				return err
			}
			g := &Group{Code: jg.Groupe, Description: jg.Description}
			for _, je := range jg.Champs {
				g.Add(je.element())
			}
			s.Add(g)
		case probe.Champ != nil:
			var je jsonElement
			if err := json.Unmarshal(raw, &je); err != nil {
				return err
			}
			s.Add(je.element())
		default:
			return fmt.Errorf("segment %s: element %d has neither \"champ\" nor \"groupe\"", in.Segment, i)
		}
	}
	return nil
}

// EncodeJSON writes the segments as a top-level JSON array in the documented
// export format: UTF-8, 4-space indent, non-ASCII preserved. The caller is
// responsible for passing segments in the intended order.
func EncodeJSON(w io.Writer, segments []*Segment) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(segments)
}

// DecodeJSON reads a JSON array previously produced by EncodeJSON.
func DecodeJSON(r io.Reader) ([]*Segment, error) {
	var segments []*Segment
	if err := json.NewDecoder(r).Decode(&segments); err != nil {
		return nil, err
	}
	return segments, nil
}
