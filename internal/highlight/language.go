// internal/highlight/language.go
package highlight

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/bethropolis/slate/internal/logger"
	sitter "github.com/smacker/go-tree-sitter"
	gosrc "github.com/smacker/go-tree-sitter/golang"
	jssrc "github.com/smacker/go-tree-sitter/javascript"
	pythonsrc "github.com/smacker/go-tree-sitter/python"
)

//go:embed queries/*/*.scm
var embeddedQueries embed.FS

// Language pairs a tree-sitter grammar with its highlight query.
type Language struct {
	// Name is the key code blocks use in their "language" field.
	Name string

	// TreeSitterLang is the tree-sitter grammar instance.
	TreeSitterLang *sitter.Language

	// QueryPath is the directory name under queries/.
	QueryPath string
}

// GetQuery loads the highlight query for this language from the embedded FS.
func (l *Language) GetQuery() []byte {
	if l.QueryPath == "" {
		logger.Warnf("No query path defined for language %s", l.Name)
		return nil
	}

	queryPath := fmt.Sprintf("queries/%s/highlights.scm", l.QueryPath)
	query, err := fs.ReadFile(embeddedQueries, queryPath)
	if err != nil {
		logger.Warnf("Failed to load query for language %s: %v", l.Name, err)
		return nil
	}
	logger.DebugTagf("highlight", "Loaded query from %s for %s (%d bytes)", queryPath, l.Name, len(query))
	return query
}

var (
	registry struct {
		sync.RWMutex
		byName map[string]*Language
	}
	initOnce sync.Once
)

// Initialize seeds the registry with the built-in languages.
func Initialize() {
	initOnce.Do(func() {
		registry.byName = make(map[string]*Language)

		register(&Language{Name: "go", TreeSitterLang: gosrc.GetLanguage(), QueryPath: "go"})
		register(&Language{Name: "python", TreeSitterLang: pythonsrc.GetLanguage(), QueryPath: "python"})
		register(&Language{Name: "javascript", TreeSitterLang: jssrc.GetLanguage(), QueryPath: "javascript"})

		logger.Debugf("Language registry initialized with %d languages", len(registry.byName))
	})
}

func register(lang *Language) {
	registry.byName[strings.ToLower(lang.Name)] = lang
}

// GetLanguage returns the registered language for a name, or nil.
func GetLanguage(name string) *Language {
	Initialize()

	registry.RLock()
	defer registry.RUnlock()
	return registry.byName[strings.ToLower(name)]
}

// LanguageNames returns the names of all registered languages.
func LanguageNames() []string {
	Initialize()

	registry.RLock()
	defer registry.RUnlock()
	names := make([]string, 0, len(registry.byName))
	for name := range registry.byName {
		names = append(names, name)
	}
	return names
}
