// Package formfile reads form definitions from YAML so the command line tool
// can present a form without Go code.
package formfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/curselect/pkg/form"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"gopkg.in/yaml.v3"
)

// ErrUnresolvedDefault reports a default that names no option.
var ErrUnresolvedDefault = errors.New("default does not match any option")

// Definition is the top level of a form file.
type Definition struct {
	Title      string  `yaml:"title"`
	LeftMargin *int    `yaml:"left_margin"`
	LabelOnTop *bool   `yaml:"label_on_top"`
	Fields     []Field `yaml:"fields"`
}

// Field describes one option list.
type Field struct {
	Name       string   `yaml:"field"`
	Label      string   `yaml:"label"`
	Multi      bool     `yaml:"multi"`
	Options    []string `yaml:"options"`
	Default    *Choice  `yaml:"default"`
	Defaults   []Choice `yaml:"defaults"`
	LeftMargin *int     `yaml:"left_margin"`
	LabelOnTop *bool    `yaml:"label_on_top"`
}

// Choice refers to an option either by 0-based index or by its text.
type Choice struct {
	Text    string
	Index   int
	IsIndex bool
}

// UnmarshalYAML keeps integer scalars as indices and everything else as text.
func (c *Choice) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: default must be an option or an index", node.Line)
	}
	if node.Tag == "!!int" {
		idx, err := strconv.Atoi(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*c = Choice{Index: idx, IsIndex: true}
		return nil
	}
	*c = Choice{Text: node.Value}
	return nil
}

func (c Choice) String() string {
	if c.IsIndex {
		return strconv.Itoa(c.Index)
	}
	return strconv.Quote(c.Text)
}

// Load reads and validates the definition at path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read form definition: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Parse decodes a definition, rejecting unknown keys.
func Parse(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty form definition")
		}
		return nil, fmt.Errorf("parse form definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks the definition for mistakes that would otherwise surface
// only when the form is built.
func (d *Definition) Validate() error {
	if len(d.Fields) == 0 {
		return errors.New("form definition has no fields")
	}
	if d.LeftMargin != nil && *d.LeftMargin < 0 {
		return fmt.Errorf("left_margin must be >= 0 (got %d)", *d.LeftMargin)
	}
	for i, field := range d.Fields {
		if strings.TrimSpace(field.Name) == "" {
			return fmt.Errorf("fields[%d]: field name is required", i)
		}
		if field.Multi && field.Default != nil {
			return fmt.Errorf("field %s: multi fields take defaults, not default", field.Name)
		}
		if !field.Multi && len(field.Defaults) > 0 {
			return fmt.Errorf("field %s: single fields take default, not defaults", field.Name)
		}
	}
	return nil
}

// Apply adds every field of the definition to f in file order.
func (d *Definition) Apply(f *form.Form[string, string]) error {
	for _, field := range d.Fields {
		group, err := field.group()
		if err != nil {
			return err
		}
		if err := f.Add(field.Name, group); err != nil {
			return err
		}
	}
	return nil
}

func (fd Field) group() (form.Group[string], error) {
	label := fd.Label
	if label == "" {
		label = fd.Name
	}
	if fd.Multi {
		ms := form.MultiSelector[string]{
			Label:      label,
			Options:    fd.Options,
			LeftMargin: fd.LeftMargin,
			LabelOnTop: fd.LabelOnTop,
		}
		for _, choice := range fd.Defaults {
			idx, err := ResolveIndex(fd.Options, choice)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", fd.Name, err)
			}
			ms.Defaults = append(ms.Defaults, idx)
		}
		return ms, nil
	}
	s := form.Selector[string]{
		Label:      label,
		Options:    fd.Options,
		LeftMargin: fd.LeftMargin,
		LabelOnTop: fd.LabelOnTop,
	}
	if fd.Default != nil {
		idx, err := ResolveIndex(fd.Options, *fd.Default)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fd.Name, err)
		}
		s.Default = form.Ptr(idx)
	}
	return s, nil
}

// ResolveIndex maps a choice to an option index. Text matches exactly first,
// then ignoring case, then by the closest fuzzy match; ties go to the earlier
// option.
func ResolveIndex(options []string, c Choice) (int, error) {
	if c.IsIndex {
		if c.Index < 0 || c.Index >= len(options) {
			return -1, fmt.Errorf("%w: index %d outside %d options", ErrUnresolvedDefault, c.Index, len(options))
		}
		return c.Index, nil
	}
	for i, option := range options {
		if option == c.Text {
			return i, nil
		}
	}
	for i, option := range options {
		if strings.EqualFold(option, c.Text) {
			return i, nil
		}
	}
	query := strings.TrimSpace(c.Text)
	if query == "" {
		return -1, fmt.Errorf("%w: %s", ErrUnresolvedDefault, c)
	}
	ranks := fuzzy.RankFindNormalizedFold(query, options)
	if len(ranks) == 0 {
		return -1, fmt.Errorf("%w: %s", ErrUnresolvedDefault, c)
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	return best.OriginalIndex, nil
}
