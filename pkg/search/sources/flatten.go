package sources

import (
	"encoding/json"
	"html"
	"regexp"
	"strings"
)

// Page content payloads are opaque structured blobs whose shape depends on
// the content_type tag. Before substring matching they are flattened into
// plain text. Unrecognized tags degrade to searching the raw payload text;
// they are never skipped, so future content types stay findable.

var (
	markupTagPattern  = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

type contactFormPayload struct {
	Contacts []struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
		Notes string `json:"notes"`
	} `json:"contacts"`
}

type locationListPayload struct {
	Locations []struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
		Notes   string `json:"notes"`
	} `json:"locations"`
}

type richTextPayload struct {
	HTML string `json:"html"`
}

// FlattenContent converts a page-content payload into searchable plain text
// according to its content_type tag.
func FlattenContent(contentType, payload string) string {
	switch contentType {
	case "rich_text":
		var rt richTextPayload
		if err := json.Unmarshal([]byte(payload), &rt); err == nil && rt.HTML != "" {
			return stripMarkup(rt.HTML)
		}
		// Older rows store the markup directly instead of a JSON envelope.
		return stripMarkup(payload)

	case "contact_form":
		var cf contactFormPayload
		if err := json.Unmarshal([]byte(payload), &cf); err != nil {
			return collapseWhitespace(payload)
		}
		parts := make([]string, 0, len(cf.Contacts))
		for _, c := range cf.Contacts {
			parts = append(parts, joinNonEmpty(" ", c.Name, c.Email, c.Phone, c.Notes))
		}
		return joinNonEmpty(" ", parts...)

	case "location_list":
		var ll locationListPayload
		if err := json.Unmarshal([]byte(payload), &ll); err != nil {
			return collapseWhitespace(payload)
		}
		parts := make([]string, 0, len(ll.Locations))
		for _, l := range ll.Locations {
			parts = append(parts, joinNonEmpty(" ", l.Name, l.Address, l.Phone, l.Notes))
		}
		return joinNonEmpty(" ", parts...)

	default:
		return collapseWhitespace(payload)
	}
}

// stripMarkup removes tags from rich-text markup and unescapes entities.
func stripMarkup(markup string) string {
	text := markupTagPattern.ReplaceAllString(markup, " ")
	text = html.UnescapeString(text)
	return collapseWhitespace(text)
}

func collapseWhitespace(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}
