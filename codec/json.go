package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// It is the portable, lowest-dependency option. Default is GoJSON, which
// produces the same documents faster.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used for ".json" grid files.
var Default Codec = GoJSON{}
