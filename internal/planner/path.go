package planner

import "fmt"

// Path is a parsed .path document. Only waypoint linked names are
// interpreted; everything else is carried through byte for byte.
type Path struct {
	raw       []byte
	waypoints []map[string]interface{}
}

// ParsePath parses a .path document and checks its waypoint list.
func ParsePath(data []byte) (*Path, error) {
	raw, fields, err := parse(data)
	if err != nil {
		return nil, err
	}

	items, ok := getSlice(fields, "waypoints")
	if !ok {
		return nil, fmt.Errorf("%w: path has no waypoints array", ErrMalformed)
	}

	p := &Path{raw: raw}
	for i, item := range items {
		wp, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: waypoint %d is not an object", ErrMalformed, i)
		}
		switch wp["linkedName"].(type) {
		case nil, string:
		default:
			return nil, fmt.Errorf("%w: waypoint %d linkedName is not a string", ErrMalformed, i)
		}
		p.waypoints = append(p.waypoints, wp)
	}

	return p, nil
}

// LinkedNames returns the linked name of every waypoint, "" where unset.
func (p *Path) LinkedNames() []string {
	names := make([]string, len(p.waypoints))
	for i, wp := range p.waypoints {
		names[i] = getString(wp, "linkedName")
	}
	return names
}

// SuffixLinkedNames appends suffix to every non-null linked name and
// returns how many were changed. Null or missing names stay as they are.
func (p *Path) SuffixLinkedNames(suffix string) (int, error) {
	n := 0
	for i, wp := range p.waypoints {
		name, ok := wp["linkedName"].(string)
		if !ok {
			continue
		}

		renamed := name + suffix
		raw, err := setString(p.raw, fmt.Sprintf("waypoints.%d.linkedName", i), renamed)
		if err != nil {
			return n, err
		}
		p.raw = raw
		wp["linkedName"] = renamed
		n++
	}
	return n, nil
}

// Bytes returns the document text with all edits applied.
func (p *Path) Bytes() []byte {
	return p.raw
}
