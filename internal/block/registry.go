// internal/block/registry.go
package block

import (
	"fmt"
	"sync"

	"github.com/bethropolis/slate/internal/logger"
)

// Registry holds the known block definitions in registration order.
type Registry struct {
	mu    sync.RWMutex
	defs  map[Kind]Definition
	order []Kind
}

// NewRegistry creates a registry seeded with the built-in block types.
func NewRegistry() *Registry {
	r := &Registry{defs: make(map[Kind]Definition)}
	for _, def := range builtins() {
		// Built-ins are code-defined; a failure here is a programming error.
		if err := r.Register(def); err != nil {
			logger.Errorf("Registry: built-in %q rejected: %v", def.Kind, err)
		}
	}
	return r
}

// Register adds a definition. Registering an existing kind is an error;
// use Replace to override deliberately.
func (r *Registry) Register(def Definition) error {
	if err := def.validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.defs[def.Kind]; exists {
		return fmt.Errorf("block kind %q already registered", def.Kind)
	}
	r.defs[def.Kind] = def
	r.order = append(r.order, def.Kind)
	logger.DebugTagf("block", "Registry: registered %q (%s)", def.Kind, def.Name)
	return nil
}

// Replace overrides an existing definition, or registers it if new.
func (r *Registry) Replace(def Definition) error {
	if err := def.validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.defs[def.Kind]; !exists {
		r.order = append(r.order, def.Kind)
	}
	r.defs[def.Kind] = def
	return nil
}

// Get looks up a definition by kind.
func (r *Registry) Get(kind Kind) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[kind]
	return def, ok
}

// Definitions returns all definitions in registration order.
func (r *Registry) Definitions() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Definition, 0, len(r.order))
	for _, kind := range r.order {
		out = append(out, r.defs[kind])
	}
	return out
}

// builtins returns the stock block set. Field descriptors here are the
// declarative "block type -> editable fields" map the config panel and
// menu render from.
func builtins() []Definition {
	return []Definition{
		{
			Kind: Paragraph, Name: "Paragraph", Group: "Basic", Icon: '¶',
			HasContent: true,
		},
		{
			Kind: Heading, Name: "Heading", Group: "Basic", Icon: 'H',
			HasContent: true,
			Fields: []Field{
				{Name: "level", Label: "Level", Type: FieldSelect,
					Options: []string{"1", "2", "3"}, Default: "2"},
			},
		},
		{
			Kind: Quote, Name: "Quote", Group: "Basic", Icon: '"',
			HasContent: true,
			Fields: []Field{
				{Name: "citation", Label: "Citation", Type: FieldText, Default: ""},
			},
		},
		{
			Kind: Code, Name: "Code", Group: "Advanced", Icon: '<',
			HasContent: true,
			Fields: []Field{
				{Name: "language", Label: "Language", Type: FieldSelect,
					Options: []string{"go", "python", "javascript"}, Default: "go"},
				{Name: "line_numbers", Label: "Line numbers", Type: FieldSwitch, Default: true},
			},
		},
		{
			Kind: Todo, Name: "To-do", Group: "Basic", Icon: '☐',
			HasContent: true,
			Fields: []Field{
				{Name: "checked", Label: "Checked", Type: FieldSwitch, Default: false},
			},
		},
		{
			Kind: Divider, Name: "Divider", Group: "Advanced", Icon: '─',
			HasContent: false,
		},
	}
}
