package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"
)

// DefaultLineWidth is the preferred maximum line length of rendered YAML.
const DefaultLineWidth = 100

type renderConfig struct {
	lineWidth int
	indent    string
}

// RenderOption configures Render and RenderJSON.
type RenderOption func(*renderConfig)

// WithLineWidth sets the preferred YAML line width. Non-positive widths fall
// back to DefaultLineWidth.
func WithLineWidth(width int) RenderOption {
	return func(cfg *renderConfig) {
		if width > 0 {
			cfg.lineWidth = width
		}
	}
}

// WithJSONIndent sets the indent used by RenderJSON. An empty indent produces
// compact output.
func WithJSONIndent(indent string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.indent = indent
	}
}

func applyRenderOptions(opts []RenderOption) renderConfig {
	cfg := renderConfig{lineWidth: DefaultLineWidth, indent: "  "}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Render serializes v as block-style YAML in document key order. The output
// never contains anchors or aliases; repeated subtrees are written out in full.
// The trailing newline is trimmed.
func Render(v Value, opts ...RenderOption) (string, error) {
	cfg := applyRenderOptions(opts)
	out, err := yaml.Dump(ToNode(v), yaml.V4, yaml.WithLineWidth(cfg.lineWidth))
	if err != nil {
		return "", fmt.Errorf("value: rendering yaml: %w", err)
	}
	return strings.TrimRight(string(out), "\n"), nil
}

// RenderJSON serializes v as JSON, keeping mapping keys in document order.
func RenderJSON(v Value, opts ...RenderOption) (string, error) {
	cfg := applyRenderOptions(opts)
	var (
		out []byte
		err error
	)
	if cfg.indent == "" {
		out, err = json.Marshal(v)
	} else {
		out, err = json.MarshalIndent(v, "", cfg.indent)
	}
	if err != nil {
		return "", fmt.Errorf("value: encoding json: %w", err)
	}
	return string(out), nil
}

// MarshalJSON implements json.Marshaler with ordered mapping keys.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v Value) error {
	switch v.kind {
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindString:
		return writeJSONString(buf, v.text)
	case KindNumber:
		return writeJSONNumber(buf, v)
	case KindSequence:
		buf.WriteByte('[')
		for i, item := range v.seq {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindMapping:
		buf.WriteByte('{')
		for i, e := range v.m.entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, e.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, e.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		buf.WriteString("null")
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}

// writeJSONNumber normalizes YAML number literals (0x1F, 1_000, .inf) to JSON.
// Values JSON cannot represent are written as strings.
func writeJSONNumber(buf *bytes.Buffer, v Value) error {
	if v.isInt {
		if n, err := strconv.ParseInt(v.text, 0, 64); err == nil {
			buf.WriteString(strconv.FormatInt(n, 10))
			return nil
		}
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(v.text, "_", ""), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return writeJSONString(buf, v.text)
	}
	buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	return nil
}
