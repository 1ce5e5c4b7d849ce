// Package export emits a standalone HTML document that reproduces the
// editor's interactive behavior outside the editor. The embedded
// script re-implements region indexing, interaction styling and
// tooltip placement from nothing but the serialized SVG markup, a
// frozen snapshot of the annotation data and the tooltip settings.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"
	"text/template"

	"github.com/Drominaman/svgmap/annotation"
	"github.com/Drominaman/svgmap/tooltip"
)

// ErrNoSource reports an export attempt with no SVG markup to embed.
var ErrNoSource = errors.New("export: empty svg source")

const defaultTitle = "Interactive map"

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// closeTag matches anything that would end the embedded script block
// early, in any case mix.
var closeTag = regexp.MustCompile(`(?i)</script`)

// escapeScriptLiteral neutralizes the SVG source for embedding inside
// a template-literal string: backslashes first, then the backtick and
// ${ delimiters, then any premature script terminator. The rendered
// SVG semantics are unchanged, only the textual encoding.
func escapeScriptLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "`", "\\`")
	s = strings.ReplaceAll(s, "${", "\\${")
	s = closeTag.ReplaceAllStringFunc(s, func(m string) string {
		return m[:1] + `\` + m[1:]
	})
	return s
}

type pageData struct {
	Title        string
	BQ           string
	SVG          string
	DataJSON     string
	SettingsJSON string
	Settings     tooltip.Settings
}

// Generate renders the standalone document. The snapshot and settings
// are serialized as JSON; encoding/json escapes angle brackets, so the
// payloads cannot terminate the script block. The SVG source should be
// the document's current serialization, so identifier assignments and
// renames made during the session carry over.
func Generate(svgSource string, snapshot map[string]annotation.Record, settings tooltip.Settings, title string) (string, error) {
	if strings.TrimSpace(svgSource) == "" {
		return "", ErrNoSource
	}
	if err := settings.Validate(); err != nil {
		return "", err
	}
	if snapshot == nil {
		snapshot = map[string]annotation.Record{}
	}
	dataJSON, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("export: encoding annotations: %w", err)
	}
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return "", fmt.Errorf("export: encoding settings: %w", err)
	}
	if strings.TrimSpace(title) == "" {
		title = defaultTitle
	}
	var buf bytes.Buffer
	err = pageTmpl.Execute(&buf, pageData{
		Title:        html.EscapeString(title),
		BQ:           "`",
		SVG:          escapeScriptLiteral(svgSource),
		DataJSON:     string(dataJSON),
		SettingsJSON: string(settingsJSON),
		Settings:     settings,
	})
	if err != nil {
		return "", fmt.Errorf("export: rendering document: %w", err)
	}
	return buf.String(), nil
}
