package profiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var (
	ErrEmptyResponse  = errors.New("empty model response")
	ErrMalformedJSON  = errors.New("malformed model JSON")
	ErrMissingPersona = errors.New("model response has no persona")
)

var (
	fencedJSON    = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	trailingComma = regexp.MustCompile(`,(\s*[}\]])`)
)

// personaSchema only asks for a non-null persona. Everything else the model
// returns is passed through untouched.
var personaSchema = mustSchema(`{
	"type": "object",
	"required": ["persona"],
	"properties": {
		"persona": {"not": {"type": "null"}}
	}
}`)

func mustSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("profiler: invalid schema: %v", err))
	}
	return schema
}

// ParseResult decodes model output into a JSON object. When the text does
// not parse as-is, a best-effort repair appends missing closing braces and
// drops trailing commas. Repaired output may differ in meaning from what the
// model intended.
func ParseResult(content string) (map[string]any, error) {
	text := strings.TrimSpace(content)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	var out map[string]any
	var parseErr error
	for _, candidate := range jsonCandidates(text) {
		if parseErr = decode(candidate, &out); parseErr == nil {
			break
		}
	}
	if parseErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, parseErr)
	}
	if out == nil {
		return nil, ErrMissingPersona
	}

	result, err := personaSchema.Validate(gojsonschema.NewGoLoader(out))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrMissingPersona, result.Errors()[0])
	}

	return out, nil
}

// decode parses text as-is, then once more after repair.
func decode(text string, out *map[string]any) error {
	if err := json.Unmarshal([]byte(text), out); err == nil {
		return nil
	}
	return json.Unmarshal([]byte(repairJSON(text)), out)
}

// jsonCandidates lists the spans worth parsing, most likely first: the
// fenced block (or whole text) cut between the first '{' and the last '}',
// then everything from the first '{' for output truncated mid-object.
func jsonCandidates(text string) []string {
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		text = m[1]
	}

	start := strings.Index(text, "{")
	if start < 0 {
		return []string{text}
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return []string{text[start:]}
	}
	return []string{text[start : end+1], text[start:]}
}

func repairJSON(text string) string {
	if missing := strings.Count(text, "{") - strings.Count(text, "}"); missing > 0 {
		text += strings.Repeat("}", missing)
	}
	return trailingComma.ReplaceAllString(text, "$1")
}
