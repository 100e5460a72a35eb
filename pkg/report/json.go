package report

import "encoding/json"

type jsonReport struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	ByName    []jsonEntry `json:"by_name"`
	ByNearest []jsonEntry `json:"by_nearest"`
	Stats     Stats       `json:"stats"`
}

type jsonEntry struct {
	Name     string   `json:"name"`
	Color    string   `json:"color"`
	Distance *float64 `json:"distance,omitempty"`
}

// RenderJSON renders both orderings and the chain statistics as indented
// JSON. Chain entries after the first carry the distance from their
// predecessor.
func RenderJSON(r Report) ([]byte, error) {
	out := jsonReport{
		ID:        r.ID().String(),
		Title:     r.Title,
		ByName:    make([]jsonEntry, len(r.ByName)),
		ByNearest: make([]jsonEntry, len(r.ByNearest)),
		Stats:     r.Stats(),
	}
	for i, e := range r.ByName {
		out.ByName[i] = jsonEntry{Name: e.Name, Color: e.Color.Hex()}
	}
	steps := r.ByNearest.Steps()
	for i, e := range r.ByNearest {
		out.ByNearest[i] = jsonEntry{Name: e.Name, Color: e.Color.Hex()}
		if i > 0 {
			d := steps[i-1]
			out.ByNearest[i].Distance = &d
		}
	}
	return json.MarshalIndent(out, "", "  ")
}
