// internal/block/block.go

// Package block defines the block type model: each kind of block a
// document can hold, its menu metadata, and the editable fields its
// configuration panel exposes. The model is declarative data consumed
// by the menu and editor layers.
package block

import "fmt"

// Kind identifies a block type.
type Kind string

// Built-in block kinds.
const (
	Paragraph Kind = "paragraph"
	Heading   Kind = "heading"
	Quote     Kind = "quote"
	Code      Kind = "code"
	Todo      Kind = "todo"
	Divider   Kind = "divider"
)

// FieldType is the control a field renders as in the config panel.
type FieldType string

const (
	// FieldText is a free-form string field.
	FieldText FieldType = "text"
	// FieldSwitch is a boolean toggle.
	FieldSwitch FieldType = "switch"
	// FieldSelect picks one value from a fixed option list.
	FieldSelect FieldType = "select"
)

// Field describes one editable configuration entry of a block type.
type Field struct {
	Name    string      // stable key, e.g. "language"
	Label   string      // display label, e.g. "Language"
	Type    FieldType   // control type
	Options []string    // allowed values for select fields
	Default interface{} // string for text/select, bool for switch
}

// Validate checks a candidate value against the field's type contract.
func (f Field) Validate(value interface{}) error {
	switch f.Type {
	case FieldText:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("field %q expects a string, got %T", f.Name, value)
		}
	case FieldSwitch:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("field %q expects a bool, got %T", f.Name, value)
		}
	case FieldSelect:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field %q expects a string, got %T", f.Name, value)
		}
		for _, opt := range f.Options {
			if opt == s {
				return nil
			}
		}
		return fmt.Errorf("field %q: %q is not one of %v", f.Name, s, f.Options)
	default:
		return fmt.Errorf("field %q has unknown type %q", f.Name, f.Type)
	}
	return nil
}

// Definition describes one block type: identity, menu placement, and
// its editable fields.
type Definition struct {
	Kind       Kind
	Name       string // display name in the insert menu
	Group      string // menu group heading
	Icon       rune   // single-cell menu icon
	HasContent bool   // whether the block carries editable text
	Fields     []Field
}

// Field looks up a field descriptor by name.
func (d Definition) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// DefaultValues returns a fresh field-value map seeded with each
// field's default.
func (d Definition) DefaultValues() map[string]interface{} {
	values := make(map[string]interface{}, len(d.Fields))
	for _, f := range d.Fields {
		if f.Default != nil {
			values[f.Name] = f.Default
		}
	}
	return values
}

// validate checks a definition is internally consistent.
func (d Definition) validate() error {
	if d.Kind == "" {
		return fmt.Errorf("block definition missing kind")
	}
	if d.Name == "" {
		return fmt.Errorf("block %q missing display name", d.Kind)
	}
	seen := make(map[string]struct{}, len(d.Fields))
	for _, f := range d.Fields {
		if f.Name == "" {
			return fmt.Errorf("block %q has a field without a name", d.Kind)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("block %q declares field %q twice", d.Kind, f.Name)
		}
		seen[f.Name] = struct{}{}
		switch f.Type {
		case FieldText, FieldSwitch, FieldSelect:
		default:
			return fmt.Errorf("block %q field %q: unknown field type %q", d.Kind, f.Name, f.Type)
		}
		if f.Type == FieldSelect && len(f.Options) == 0 {
			return fmt.Errorf("block %q field %q: select field needs options", d.Kind, f.Name)
		}
		if f.Default != nil {
			if err := f.Validate(f.Default); err != nil {
				return fmt.Errorf("block %q: invalid default: %w", d.Kind, err)
			}
		}
	}
	return nil
}
