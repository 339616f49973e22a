// ABOUTME: Renders generated plans for people and machines.
// ABOUTME: Dispatches to the text summary, JSON, YAML and Markdown renderers.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
)

// Format is an output format for a rendered plan.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// AllFormats returns all valid output formats.
var AllFormats = []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown}

// ParseFormat resolves a format name; "md" and "yml" are accepted aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json, yaml or markdown)", s)
	}
}

// Render writes the plan to w in the given format. The text format shows
// the first previewDays days; zero shows every day.
func Render(w io.Writer, p *models.Plan, format Format, previewDays int) error {
	switch format {
	case FormatJSON:
		b, err := JSON(p)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case FormatYAML:
		b, err := YAML(p)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(p))
		return err
	default:
		return WriteSummary(w, p, previewDays)
	}
}

// JSON encodes the plan with the wire keys the presentation layer reads.
func JSON(p *models.Plan) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// YAML encodes the plan with the same keys as JSON. The plan round-trips
// through JSON first so the snack layout keys stay identical.
func YAML(p *models.Plan) ([]byte, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal plan: %w", err)
	}
	var tree map[string]interface{}
	if err := json.Unmarshal(b, &tree); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return yaml.Marshal(tree)
}
