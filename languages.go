package lexray

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const dictionarySuffix = "_dictionary"

// dictionaryExtensions, in resolution order.
var dictionaryExtensions = []string{".json", ".yaml", ".yml", ".csv"}

var titleCaser = cases.Title(language.English)

// Registry discovers per-language dictionary files in one directory and
// caches what it loads. Files are named <language>_dictionary.<ext> with any
// extension the DictionaryLoader reads.
type Registry struct {
	dir string

	mu    sync.RWMutex
	cache map[string]*Dictionary
}

func NewRegistry(dir string) *Registry {
	return &Registry{dir: dir, cache: make(map[string]*Dictionary)}
}

// Languages lists the languages with a dictionary file in the directory,
// sorted. English is left out; its dictionary is built in.
func (r *Registry) Languages() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("lexray: read %s: %w", r.dir, err)
	}

	seen := make(map[string]struct{})
	var languages []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		base, ok := dictionaryBase(entry.Name())
		if !ok || base == "english" {
			continue
		}
		if _, dup := seen[base]; dup {
			continue
		}
		seen[base] = struct{}{}
		languages = append(languages, base)
	}
	sort.Strings(languages)
	return languages, nil
}

// Dictionary loads the dictionary for a language, trying the exact file name
// first and falling back to the first file whose name starts with it.
func (r *Registry) Dictionary(name string) (*Dictionary, error) {
	normalized := normalizeLanguage(name)
	if normalized == "" {
		return nil, fmt.Errorf("lexray: empty language name: %w", ErrMissingDictionary)
	}

	r.mu.RLock()
	cached, ok := r.cache[normalized]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	actual, path, err := r.resolve(normalized)
	if err != nil {
		return nil, err
	}
	dict, err := NewDictionaryLoader(actual, path).Load()
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	if r.cache == nil {
		r.cache = make(map[string]*Dictionary)
	}
	r.cache[normalized] = dict
	if actual != normalized {
		r.cache[actual] = dict
	}
	r.mu.Unlock()

	return dict, nil
}

// DisplayName renders a language name for listings. BCP-47 tags resolve
// through the CLDR display data; plain names fall back to title casing.
func (r *Registry) DisplayName(name string) string {
	normalized := normalizeLanguage(name)
	if tag, err := language.Parse(normalized); err == nil {
		if label := display.English.Tags().Name(tag); label != "" {
			return label
		}
	}
	return titleCaser.String(normalized)
}

func (r *Registry) resolve(name string) (string, string, error) {
	for _, ext := range dictionaryExtensions {
		candidate := filepath.Join(r.dir, name+dictionarySuffix+ext)
		if _, err := os.Stat(candidate); err == nil {
			return name, candidate, nil
		}
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return "", "", fmt.Errorf("lexray: read %s: %w", r.dir, err)
	}
	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		base, ok := dictionaryBase(entry.Name())
		if !ok {
			continue
		}
		if strings.HasPrefix(base, name) {
			matches = append(matches, entry.Name())
		}
	}
	sort.Strings(matches)
	if len(matches) > 0 {
		base, _ := dictionaryBase(matches[0])
		return base, filepath.Join(r.dir, matches[0]), nil
	}

	return "", "", r.missingLanguageError(name)
}

func (r *Registry) missingLanguageError(name string) error {
	available, err := r.Languages()
	if err != nil || len(available) == 0 {
		return fmt.Errorf("lexray: no dictionary for language %q in %s: %w", name, r.dir, ErrMissingDictionary)
	}
	listed := strings.Join(available[:min(10, len(available))], ", ")
	if len(available) > 10 {
		listed += fmt.Sprintf(" ... and %d more", len(available)-10)
	}
	return fmt.Errorf("lexray: no dictionary for language %q, available: %s: %w", name, listed, ErrMissingDictionary)
}

// dictionaryBase extracts the language name from a dictionary file name.
func dictionaryBase(filename string) (string, bool) {
	lowered := strings.ToLower(filename)
	for _, ext := range dictionaryExtensions {
		base, found := strings.CutSuffix(lowered, dictionarySuffix+ext)
		if found && base != "" {
			return base, true
		}
	}
	return "", false
}

func normalizeLanguage(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
