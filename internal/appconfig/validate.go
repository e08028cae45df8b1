package appconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// configSchema describes the accepted shape of the JSON config file.
var configSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"projectRoot":    map[string]any{"type": "string"},
		"recordingsDir":  map[string]any{"type": "string"},
		"gifsDir":        map[string]any{"type": "string"},
		"resultsDir":     map[string]any{"type": "string"},
		"plotsDir":       map[string]any{"type": "string"},
		"resultsPattern": map[string]any{"type": "string", "minLength": 1},
		"videoExt":       map[string]any{"type": "string", "minLength": 1},
		"ffmpegBinary":   map[string]any{"type": "string"},
		"gifFrameRate":   map[string]any{"type": "integer", "minimum": 1, "maximum": 60},
		"gifWidth":       map[string]any{"type": "integer", "minimum": 16},
		"inputHtml":      map[string]any{"type": "string"},
		"outputHtml":     map[string]any{"type": "string"},
		"analysisOutput": map[string]any{"type": "string"},
		"logFile":        map[string]any{"type": "string"},
		"debug":          map[string]any{"type": "boolean"},
	},
	"additionalProperties": false,
}

// Validate checks a raw JSON config document against the config schema.
func Validate(raw []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(configSchema), gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	var details []string
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return fmt.Errorf("config failed validation: %s", strings.Join(details, "; "))
}

// ValidateFile reads path and validates it. A missing file is reported as an
// error wrapping os.ErrNotExist so callers can treat it as optional.
func ValidateFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := Validate(raw); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
