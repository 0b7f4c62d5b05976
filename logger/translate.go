package logger

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Translator resolves message keys into localized text.
// ok is false when lang has no entry for key; a translation that happens
// to equal its key is still a hit.
type Translator interface {
	Translate(key, lang string) (msg string, ok bool)
}

// TranslatorFunc adapts a plain function to Translator.
type TranslatorFunc func(key, lang string) (string, bool)

// Translate calls f(key, lang).
func (f TranslatorFunc) Translate(key, lang string) (string, bool) {
	return f(key, lang)
}

//go:embed locales/*.yaml
var bundledLocales embed.FS

// Catalog is an in-memory Translator keyed by canonical BCP 47 tags.
// Messages are stored verbatim. Lookups walk the language's parent chain
// (zh-CN, zh) but never cross into an unrelated language.
type Catalog struct {
	mu       sync.RWMutex
	messages map[string]map[string]string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{messages: map[string]map[string]string{}}
}

var (
	defaultCatalogOnce sync.Once
	defaultCatalog     *Catalog
	defaultCatalogErr  error
)

// DefaultCatalog returns the locale table bundled with the package.
func DefaultCatalog() (*Catalog, error) {
	defaultCatalogOnce.Do(func() {
		sub, err := fs.Sub(bundledLocales, "locales")
		if err != nil {
			defaultCatalogErr = err
			return
		}
		defaultCatalog, defaultCatalogErr = LoadCatalog(sub)
	})
	return defaultCatalog, defaultCatalogErr
}

// LoadCatalog reads every *.yaml or *.yml file at the root of fsys.
// The file name without extension is the language code, and the content
// is a flat map of message keys to text.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read locale directory: %w", err)
	}

	c := NewCatalog()
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := path.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", e.Name(), err)
		}
		var table map[string]string
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", e.Name(), err)
		}
		if err := c.Add(strings.TrimSuffix(e.Name(), ext), table); err != nil {
			return nil, fmt.Errorf("locale file %s: %w", e.Name(), err)
		}
	}
	return c, nil
}

// Set stores one translation.
func (c *Catalog) Set(lang, key, msg string) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("invalid language %q: %w", lang, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	table, ok := c.messages[tag.String()]
	if !ok {
		table = map[string]string{}
		c.messages[tag.String()] = table
	}
	table[key] = msg
	return nil
}

// Add stores every entry of table under lang.
func (c *Catalog) Add(lang string, table map[string]string) error {
	for key, msg := range table {
		if err := c.Set(lang, key, msg); err != nil {
			return err
		}
	}
	return nil
}

// Languages lists the languages that have at least one entry, sorted.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.messages))
	for lang := range c.messages {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// Translate implements Translator.
func (c *Catalog) Translate(key, lang string) (string, bool) {
	if key == "" {
		return "", false
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "", false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	for {
		if msg, ok := c.messages[tag.String()][key]; ok {
			return msg, true
		}
		if tag.IsRoot() {
			return "", false
		}
		tag = tag.Parent()
	}
}
