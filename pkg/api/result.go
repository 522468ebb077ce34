package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Result is a successful response from the iHealth API.
type Result struct {
	Status      int
	ContentType string
	Body        []byte // raw payload, always populated
	Data        any    // decoded form for JSON payloads, nil otherwise
}

// Text renders the result for the tool surface: indented JSON for
// structured payloads, passthrough for text formats, and a size summary
// for binary content so raw bytes never reach the model.
func (r *Result) Text() string {
	switch {
	case r.Data != nil:
		out, err := json.MarshalIndent(r.Data, "", "  ")
		if err != nil {
			return string(r.Body)
		}
		return string(out)
	case strings.Contains(r.ContentType, "octet-stream"):
		return fmt.Sprintf("Binary content retrieved successfully (%d bytes)", len(r.Body))
	default:
		return string(r.Body)
	}
}
