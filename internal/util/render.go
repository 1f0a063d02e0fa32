package util

import (
	"fmt"

	"github.com/goccy/go-json"
)

// RenderIndent renders a payload as indented JSON for terminal display.
func RenderIndent(v any) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}

	return string(out)
}

// RenderCompact renders a payload on a single line for log fields.
func RenderCompact(v any) string {
	out, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}

	return string(out)
}
