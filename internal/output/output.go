// Package output renders a confirmed form result for the command line.
package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/curselect/internal/format/table"
	"github.com/atomicstack/curselect/pkg/form"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// ErrCancelled is returned when asked to render a cancelled result.
var ErrCancelled = errors.New("form was cancelled")

// Formats lists the accepted format names.
func Formats() []string {
	return []string{FormatJSON, FormatYAML, FormatText}
}

// Valid reports whether name is a known format.
func Valid(name string) bool {
	for _, f := range Formats() {
		if f == name {
			return true
		}
	}
	return false
}

// Write renders res to w in the named format. Fields keep their on-screen
// order in every format.
func Write(w io.Writer, format string, res form.Result[string, string]) error {
	if res.Cancelled() {
		return ErrCancelled
	}
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = renderJSON(res)
	case FormatYAML:
		data, err = renderYAML(res)
	case FormatText:
		data = renderText(res)
	default:
		return fmt.Errorf("unknown output format %q (want one of %s)", format, strings.Join(Formats(), ", "))
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func plain(v form.Value[string]) interface{} {
	if option, ok := v.Single(); ok {
		return option
	}
	if list, ok := v.Multi(); ok {
		return list
	}
	return nil
}

func renderJSON(res form.Result[string, string]) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range res.Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field)
		if err != nil {
			return nil, err
		}
		v, _ := res.Get(field)
		value, err := json.Marshal(plain(v))
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", field, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func renderYAML(res form.Result[string, string]) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, field := range res.Fields() {
		v, _ := res.Get(field)
		value := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		if !v.IsUnset() {
			if err := value.Encode(plain(v)); err != nil {
				return nil, fmt.Errorf("encode %s: %w", field, err)
			}
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field},
			value,
		)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderText(res form.Result[string, string]) []byte {
	rows := make([][]string, 0, len(res.Fields()))
	for _, field := range res.Fields() {
		v, _ := res.Get(field)
		rows = append(rows, []string{field, textValue(v)})
	}
	lines := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})
	if len(lines) == 0 {
		return nil
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}

func textValue(v form.Value[string]) string {
	if option, ok := v.Single(); ok {
		return option
	}
	if list, ok := v.Multi(); ok {
		if len(list) == 0 {
			return "(none)"
		}
		return strings.Join(list, ", ")
	}
	return "-"
}
