// internal/block/loader.go
package block

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/slate/internal/logger"
)

// TomlFieldDef is a single field entry in a block definition file.
type TomlFieldDef struct {
	Name    string      `toml:"name"`
	Label   string      `toml:"label"`
	Type    string      `toml:"type"`
	Options []string    `toml:"options"`
	Default interface{} `toml:"default"`
}

// TomlBlockDef is one [[block]] table in a definition file.
type TomlBlockDef struct {
	Kind     string         `toml:"kind"`
	Name     string         `toml:"name"`
	Group    string         `toml:"group"`
	Icon     string         `toml:"icon"` // first rune is used
	Content  *bool          `toml:"content"`
	Override bool           `toml:"override"` // replace an existing kind of the same name
	Fields   []TomlFieldDef `toml:"field"`
}

// TomlBlockFile is the top-level structure of a block definition file.
type TomlBlockFile struct {
	Blocks []TomlBlockDef `toml:"block"`
}

// LoadedDefinition pairs a parsed definition with the file-level flags
// that steer registration.
type LoadedDefinition struct {
	Definition
	Override bool
}

// LoadDefinitionsFromFile parses a TOML file of user block definitions
// and converts them into Definition values. Entries that fail
// validation are skipped with a warning rather than aborting the load.
func LoadDefinitionsFromFile(filePath string) ([]LoadedDefinition, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read block definition file '%s': %w", filePath, err)
	}

	var file TomlBlockFile
	metadata, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse block definition file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Block definitions '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}

	var defs []LoadedDefinition
	for _, tb := range file.Blocks {
		def, convErr := convertTomlBlock(tb)
		if convErr != nil {
			logger.Warnf("Block definitions '%s': skipping %q: %v", filePath, tb.Kind, convErr)
			continue
		}
		defs = append(defs, LoadedDefinition{Definition: def, Override: tb.Override})
	}
	return defs, nil
}

// LoadInto loads definitions from filePath and registers them. An entry
// whose kind already exists is skipped with a warning unless it carries
// `override = true`, which replaces the existing definition.
func LoadInto(registry *Registry, filePath string) error {
	defs, err := LoadDefinitionsFromFile(filePath)
	if err != nil {
		return err
	}
	for _, ld := range defs {
		var regErr error
		if ld.Override {
			regErr = registry.Replace(ld.Definition)
		} else {
			regErr = registry.Register(ld.Definition)
		}
		if regErr != nil {
			logger.Warnf("Block definitions: cannot register %q: %v", ld.Kind, regErr)
			continue
		}
		logger.Infof("Block definitions: loaded %q from %s", ld.Kind, filePath)
	}
	return nil
}

// convertTomlBlock maps a TOML block entry onto a Definition and
// validates it.
func convertTomlBlock(tb TomlBlockDef) (Definition, error) {
	def := Definition{
		Kind:       Kind(tb.Kind),
		Name:       tb.Name,
		Group:      tb.Group,
		HasContent: true,
	}
	if tb.Content != nil {
		def.HasContent = *tb.Content
	}
	if def.Group == "" {
		def.Group = "Custom"
	}
	for _, r := range tb.Icon {
		def.Icon = r
		break
	}

	for _, tf := range tb.Fields {
		field := Field{
			Name:    tf.Name,
			Label:   tf.Label,
			Type:    FieldType(tf.Type),
			Options: tf.Options,
			Default: normalizeDefault(tf.Default),
		}
		if field.Label == "" {
			field.Label = field.Name
		}
		def.Fields = append(def.Fields, field)
	}

	if err := def.validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// normalizeDefault narrows TOML-decoded defaults to the value types the
// field contract understands.
func normalizeDefault(v interface{}) interface{} {
	switch val := v.(type) {
	case string, bool, nil:
		return val
	case int64:
		// Numeric defaults appear in heading-level style fields; store
		// them as their string form for select compatibility.
		return fmt.Sprintf("%d", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
