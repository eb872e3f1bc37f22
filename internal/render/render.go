package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Format selects how a result is written
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Formats lists every supported format
var Formats = []Format{Text, JSON, YAML, TOML}

var codec = sonic.Config{UseInt64: true, SortMapKeys: true}.Froze()

// ParseFormat resolves a format name, case-insensitively
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want text, json, yaml or toml)", name)
}

// Envelope is the document written by the structured formats
type Envelope struct {
	Operation string                 `json:"operation" yaml:"operation" toml:"operation"`
	Result    map[string]interface{} `json:"result" yaml:"result" toml:"result"`
}

// Render writes data in format. Text output prints the explanation
// lines and falls back to YAML when there are none.
func Render(w io.Writer, format Format, operation string, data map[string]interface{}) error {
	generic, err := normalize(data)
	if err != nil {
		return fmt.Errorf("normalize %s result: %w", operation, err)
	}

	switch format {
	case Text:
		lines := Explanation(generic)
		if len(lines) == 0 {
			return writeYAML(w, Envelope{Operation: operation, Result: generic})
		}
		_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
		return err
	case JSON:
		out, err := codec.MarshalIndent(Envelope{Operation: operation, Result: generic}, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = w.Write(append(out, '\n'))
		return err
	case YAML:
		return writeYAML(w, Envelope{Operation: operation, Result: generic})
	case TOML:
		stripped, _ := stripNulls(generic).(map[string]interface{})
		out, err := toml.Marshal(Envelope{Operation: operation, Result: stripped})
		if err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Explanation collects the explanation lines of a result. Nested results,
// such as the two halves of a GCD and LCM report, are walked in key order.
func Explanation(data map[string]interface{}) []string {
	var lines []string
	if raw, ok := data["explanation"]; ok {
		lines = append(lines, stringsOf(raw)...)
	}

	keys := make([]string, 0, len(data))
	for k, v := range data {
		if _, nested := v.(map[string]interface{}); nested {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		lines = append(lines, Explanation(data[k].(map[string]interface{}))...)
	}
	return lines
}

func stringsOf(v interface{}) []string {
	switch lines := v.(type) {
	case []string:
		return lines
	case []interface{}:
		out := make([]string, 0, len(lines))
		for _, line := range lines {
			if s, ok := line.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{lines}
	}
	return nil
}

func writeYAML(w io.Writer, env Envelope) error {
	out, err := yaml.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// normalize turns typed results into plain maps, slices, strings, bools
// and int64 so every encoder sees the same JSON view of the data
func normalize(data map[string]interface{}) (map[string]interface{}, error) {
	raw, err := codec.Marshal(data)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := codec.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// stripNulls drops nil values, which TOML cannot express
func stripNulls(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			if val == nil {
				continue
			}
			out[k] = stripNulls(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, 0, len(t))
		for _, val := range t {
			if val == nil {
				continue
			}
			out = append(out, stripNulls(val))
		}
		return out
	}
	return v
}
