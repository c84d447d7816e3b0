package contentgen

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoJSON is returned when the provider text contains no JSON object
var ErrNoJSON = errors.New("no JSON object found in provider response")

type rawContent struct {
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Script           string          `json:"script"`
	Text             string          `json:"text"`
	Hashtags         json.RawMessage `json:"hashtags"`
	ImageDescription string          `json:"imageDescription"`
}

// StripCodeFences removes ```json and ``` markers around a model reply
func StripCodeFences(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// ExtractContent parses the first-to-last brace span of raw into content fields.
// Title falls back to topic and script falls back to the text field.
func ExtractContent(raw, topic string) (GeneratedContent, error) {
	cleaned := StripCodeFences(raw)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return GeneratedContent{}, ErrNoJSON
	}

	var parsed rawContent
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &parsed); err != nil {
		return GeneratedContent{}, fmt.Errorf("malformed JSON in provider response: %w", err)
	}

	result := GeneratedContent{
		Title:            parsed.Title,
		Description:      parsed.Description,
		Script:           parsed.Script,
		Hashtags:         parseHashtags(parsed.Hashtags),
		ImageDescription: parsed.ImageDescription,
	}
	if result.Title == "" {
		result.Title = topic
	}
	if result.Script == "" {
		result.Script = parsed.Text
	}
	return result, nil
}

// parseHashtags accepts a JSON array of strings or a single space/comma separated string
func parseHashtags(raw json.RawMessage) []string {
	tags := []string{}
	if len(raw) == 0 {
		return tags
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, tag := range list {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
		return tags
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		for _, tag := range strings.FieldsFunc(single, func(r rune) bool { return r == ',' || r == ' ' }) {
			tags = append(tags, tag)
		}
	}
	return tags
}
