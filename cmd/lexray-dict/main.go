// Command lexray-dict generates per-language dictionary files from a CLDR
// core data directory. Each requested locale produces one
// <locale>_dictionary.json file holding the gregorian month and day names by
// width and context, ready for the lexray Registry.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	cldr "golang.org/x/text/unicode/cldr"
)

type generatorConfig struct {
	out      string
	cldrPath string
	locales  []string
}

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "lexray-dict: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList localeFlag

	flag.StringVar(&cfg.out, "out", ".", "directory for generated dictionary files")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects a main/ subdirectory)")
	flag.Var(&localeList, "locale", "locale to generate, e.g. es or fr-CA. Repeat flag to add more.")

	flag.Parse()

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}
	cfg.locales = localeList.items

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}
	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.out, 0o755); err != nil {
		return err
	}

	for _, locale := range cfg.locales {
		locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
		if locale == "" {
			return errors.New("empty locale identifier")
		}

		forms, err := extractForms(data, locale)
		if err != nil {
			return fmt.Errorf("extract %s: %w", locale, err)
		}

		path := filepath.Join(cfg.out, strings.ToLower(locale)+"_dictionary.json")
		if err := writeDictionary(path, forms); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("main")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

// dayIndices orders CLDR day identifiers so index 0 is Sunday, matching the
// dictionary alignment the lexray pipeline depends on.
var dayIndices = map[string]int{
	"sun": 0, "mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6,
}

var contextKeys = map[string]string{
	"format":      "formatting",
	"stand-alone": "standalone",
}

// extractForms collects the gregorian month and day names for a locale,
// walking the parent chain so a regional locale inherits anything it does
// not override. Keys follow the loader's field form, e.g.
// "month/wide/formatting".
func extractForms(data *cldr.CLDR, locale string) (map[string][]string, error) {
	forms := make(map[string][]string)
	for _, candidate := range parentChain(locale) {
		ldml := data.RawLDML(candidate)
		if ldml == nil {
			continue
		}
		collectCalendarForms(forms, ldml)
	}
	if len(forms) == 0 {
		return nil, errors.New("no gregorian calendar data")
	}
	return forms, nil
}

// parentChain lists the CLDR locale identifiers to read, most specific
// first: fr_CA, fr, root.
func parentChain(locale string) []string {
	candidate := strings.ReplaceAll(locale, "-", "_")
	var chain []string
	for candidate != "" {
		chain = append(chain, candidate)
		idx := strings.LastIndex(candidate, "_")
		if idx < 0 {
			break
		}
		candidate = candidate[:idx]
	}
	return append(chain, "root")
}

func collectCalendarForms(forms map[string][]string, ldml *cldr.LDML) {
	if ldml.Dates == nil || ldml.Dates.Calendars == nil {
		return
	}
	for _, calendar := range ldml.Dates.Calendars.Calendar {
		if calendar == nil || calendar.Type != "gregorian" {
			continue
		}

		if calendar.Months != nil {
			for _, context := range calendar.Months.MonthContext {
				contextKey, ok := contextKeys[context.Type]
				if !ok {
					continue
				}
				for _, width := range context.MonthWidth {
					key := fmt.Sprintf("month/%s/%s", width.Type, contextKey)
					if _, done := forms[key]; done {
						continue
					}
					list := make([]string, 12)
					filled := 0
					for _, month := range width.Month {
						idx, err := strconv.Atoi(month.Type)
						if err != nil || idx < 1 || idx > 12 || list[idx-1] != "" {
							continue
						}
						list[idx-1] = month.Data()
						filled++
					}
					if filled == 12 {
						forms[key] = list
					}
				}
			}
		}

		if calendar.Days != nil {
			for _, context := range calendar.Days.DayContext {
				contextKey, ok := contextKeys[context.Type]
				if !ok {
					continue
				}
				for _, width := range context.DayWidth {
					key := fmt.Sprintf("weekday/%s/%s", width.Type, contextKey)
					if _, done := forms[key]; done {
						continue
					}
					list := make([]string, 7)
					filled := 0
					for _, day := range width.Day {
						idx, ok := dayIndices[day.Type]
						if !ok || list[idx] != "" {
							continue
						}
						list[idx] = day.Data()
						filled++
					}
					if filled == 7 {
						forms[key] = list
					}
				}
			}
		}
	}
}

func writeDictionary(path string, forms map[string][]string) error {
	keys := make([]string, 0, len(forms))
	for key := range forms {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("{\n")
	for i, key := range keys {
		encoded, err := json.Marshal(forms[key])
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "  %q: %s", key, encoded)
		if i < len(keys)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")

	return os.WriteFile(path, []byte(b.String()), 0o644)
}
