// internal/editor/fields.go
package editor

import (
	"fmt"

	"github.com/bethropolis/slate/internal/event"
)

// FieldValue returns the current value of an editable field, falling
// back to the descriptor's default.
func (e *Editor) FieldValue(name string) (interface{}, bool) {
	if v, ok := e.fields[name]; ok {
		return v, true
	}
	f, ok := e.def.Field(name)
	if !ok {
		return nil, false
	}
	return f.Default, true
}

// Fields returns a copy of the current field values.
func (e *Editor) Fields() map[string]interface{} {
	out := make(map[string]interface{}, len(e.fields))
	for k, v := range e.fields {
		out[k] = v
	}
	return out
}

// SetField updates an editable field after validating the value against
// the block definition's descriptor.
func (e *Editor) SetField(name string, value interface{}) error {
	f, ok := e.def.Field(name)
	if !ok {
		return fmt.Errorf("block %q has no field %q", e.def.Kind, name)
	}
	if err := f.Validate(value); err != nil {
		return err
	}
	e.fields[name] = value
	e.dispatch(event.TypeFieldChanged, event.FieldChangedData{Name: name, Value: value})
	return nil
}

// ToggleField flips a switch field.
func (e *Editor) ToggleField(name string) error {
	f, ok := e.def.Field(name)
	if !ok {
		return fmt.Errorf("block %q has no field %q", e.def.Kind, name)
	}
	current := false
	if v, ok := e.fields[name]; ok {
		current, _ = v.(bool)
	} else if d, ok := f.Default.(bool); ok {
		current = d
	}
	return e.SetField(name, !current)
}

// CycleField advances a select field to its next option, wrapping.
func (e *Editor) CycleField(name string) error {
	f, ok := e.def.Field(name)
	if !ok {
		return fmt.Errorf("block %q has no field %q", e.def.Kind, name)
	}
	if len(f.Options) == 0 {
		return fmt.Errorf("field %q has no options to cycle", name)
	}
	current, _ := e.fields[name].(string)
	next := f.Options[0]
	for i, opt := range f.Options {
		if opt == current {
			next = f.Options[(i+1)%len(f.Options)]
			break
		}
	}
	return e.SetField(name, next)
}
