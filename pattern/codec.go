package pattern

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/strpattern/charrun"
)

// Record is the wire form of one element.
type Record struct {
	Kind         string  `json:"kind" yaml:"kind"`
	Token        string  `json:"token" yaml:"token"`
	FractionUsed float64 `json:"fraction_used" yaml:"fraction_used"`
}

// Document is the wire form of a pattern.
type Document struct {
	Unique   bool     `json:"unique" yaml:"unique"`
	Elements []Record `json:"elements" yaml:"elements"`
}

// Document converts p into its wire form.
func (p Pattern) Document() Document {
	d := Document{Unique: p.unique, Elements: make([]Record, len(p.elements))}
	for i, e := range p.elements {
		d.Elements[i] = Record{Kind: e.Kind.String(), Token: e.Token(), FractionUsed: e.FractionUsed}
	}

	return d
}

// FromDocument rebuilds a pattern, keeping element order.
//
// Errors: charrun.ErrUnknownKind, charrun.ErrUnrecognizedToken,
// ErrTrailingToken, ErrKindMismatch, charrun.ErrInvalidElement; each wrapped
// with the record index.
func FromDocument(d Document) (Pattern, error) {
	elements := make([]charrun.Element, len(d.Elements))
	for i, rec := range d.Elements {
		e, err := rec.element()
		if err != nil {
			return Pattern{}, fmt.Errorf("record %d: %w", i, err)
		}
		elements[i] = e
	}

	return Pattern{elements: elements, unique: d.Unique}, nil
}

func (rec Record) element() (charrun.Element, error) {
	kind, err := charrun.ParseKind(rec.Kind)
	if err != nil {
		return charrun.Element{}, err
	}
	e, rest, err := charrun.ParseToken(rec.Token)
	if err != nil {
		return charrun.Element{}, err
	}
	if rest != "" {
		return charrun.Element{}, fmt.Errorf("%w: %q", ErrTrailingToken, rest)
	}
	if e.Kind != kind {
		return charrun.Element{}, fmt.Errorf("%w: kind %s, token %q", ErrKindMismatch, kind, rec.Token)
	}
	e.FractionUsed = rec.FractionUsed
	if err := e.Validate(); err != nil {
		return charrun.Element{}, err
	}

	return e, nil
}

// Parse reads a compact token stream such as `[R]\d{3,3}`. Every element
// gets FractionUsed 1 and the pattern is not unique.
//
// Errors: charrun.ErrUnrecognizedToken, wrapped with the byte offset.
func Parse(s string) (Pattern, error) {
	var elements []charrun.Element
	for off := 0; off < len(s); {
		e, rest, err := charrun.ParseToken(s[off:])
		if err != nil {
			return Pattern{}, fmt.Errorf("offset %d: %w", off, err)
		}
		elements = append(elements, e)
		off = len(s) - len(rest)
	}

	return Pattern{elements: elements}, nil
}

// MarshalJSON encodes p as a Document.
func (p Pattern) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Document())
}

// UnmarshalJSON decodes a Document into p.
func (p *Pattern) UnmarshalJSON(data []byte) error {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	out, err := FromDocument(d)
	if err != nil {
		return err
	}
	*p = out

	return nil
}

// MarshalYAML encodes p as a Document.
func (p Pattern) MarshalYAML() (interface{}, error) {
	return p.Document(), nil
}

// UnmarshalYAML decodes a Document into p.
func (p *Pattern) UnmarshalYAML(value *yaml.Node) error {
	var d Document
	if err := value.Decode(&d); err != nil {
		return err
	}
	out, err := FromDocument(d)
	if err != nil {
		return err
	}
	*p = out

	return nil
}
