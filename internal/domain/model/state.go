package model

import (
	"encoding/json"
	"strconv"
)

// EntityState is the state record returned by the Home Assistant API for a
// single entity. Attributes is kept raw; coordinates decoded with
// json.Number keep their exact wire text.
type EntityState struct {
	State      string                 `json:"state"`
	Attributes map[string]interface{} `json:"attributes"`
}

// Location is an extracted coordinate pair plus display label. Coordinates
// stay strings end to end: they are passed verbatim to the position binary.
type Location struct {
	Lat   string
	Lng   string
	Label string
}

// Location extracts the entity's coordinates. The second return is false
// when latitude or longitude is missing. The label prefers friendly_name and
// falls back to the entity id.
func (s *EntityState) Location(entityID string) (Location, bool) {
	lat, ok := coordString(s.Attributes["latitude"])
	if !ok {
		return Location{}, false
	}
	lng, ok := coordString(s.Attributes["longitude"])
	if !ok {
		return Location{}, false
	}

	label, _ := s.Attributes["friendly_name"].(string)
	if label == "" {
		label = entityID
	}
	return Location{Lat: lat, Lng: lng, Label: label}, true
}

// Status returns the last-known state string, or "unknown" when the service
// sent none.
func (s *EntityState) Status() string {
	if s.State == "" {
		return "unknown"
	}
	return s.State
}

// coordString renders a latitude/longitude attribute as its literal string.
// The API reports coordinates as JSON numbers, but strings occur in the wild.
func coordString(v interface{}) (string, bool) {
	switch c := v.(type) {
	case json.Number:
		return c.String(), true
	case string:
		return c, true
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64), true
	default:
		return "", false
	}
}
