package lexray

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadJSONDictionary(t *testing.T) {
	loader := NewDictionaryLoader("spanish", filepath.Join("testdata", "spanish_dictionary.json"))
	dict, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := dict.Language(); got != "spanish" {
		t.Errorf("Language() = %q; want spanish", got)
	}
	wide := dict.Forms(testWideMonths)
	if len(wide) != 12 || wide[0] != "enero" || wide[11] != "diciembre" {
		t.Errorf("wide months = %v", wide)
	}
	abbr := dict.Forms(testAbbrMonths)
	if len(abbr) != 12 || abbr[3] != "abr." {
		t.Errorf("abbreviated months = %v", abbr)
	}
	if !dict.Contains("VIERNES") {
		t.Error("Contains(VIERNES) = false; want case-folded hit")
	}
}

func TestLoadYAMLDictionary(t *testing.T) {
	loader := NewDictionaryLoader("french", filepath.Join("testdata", "french_dictionary.yaml"))
	dict, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	wide := dict.Forms(testWideMonths)
	if len(wide) != 12 || wide[7] != "août" {
		t.Errorf("wide months = %v", wide)
	}
	days := dict.Forms(testWideDays)
	if len(days) != 7 || days[0] != "dimanche" {
		t.Errorf("wide days = %v", days)
	}
}

func TestLoadCSVDictionary(t *testing.T) {
	loader := NewDictionaryLoader("german", filepath.Join("testdata", "german_elements.csv"))
	dict, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	wide := dict.Forms(testWideMonths)
	if len(wide) != 12 || wide[2] != "März" {
		t.Errorf("wide months = %v", wide)
	}
	days := dict.Forms(testWideDays)
	if len(days) != 7 || days[3] != "Mittwoch" {
		t.Errorf("wide days = %v", days)
	}
	// The sheet's "Formats - Flexible - Date Formats" rows name no calendar
	// field and must not leak into the lexicon.
	if dict.Contains("M/d") {
		t.Error("pattern row leaked into the dictionary")
	}
}

func TestLoadMergesLaterFilesPerField(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.json")
	override := filepath.Join(dir, "override.json")

	writeFile(t, base, `{
		"month/wide/formatting": ["a1","a2","a3","a4","a5","a6","a7","a8","a9","a10","a11","a12"],
		"weekday/wide/formatting": ["d1","d2","d3","d4","d5","d6","d7"]
	}`)
	writeFile(t, override, `{
		"month/wide/formatting": ["b1","b2","b3","b4","b5","b6","b7","b8","b9","b10","b11","b12"]
	}`)

	dict, err := NewDictionaryLoader("test", base, override).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := dict.FormAt(testWideMonths, 0); got != "b1" {
		t.Errorf("merged month form = %q; want override's b1", got)
	}
	if got := dict.Forms(testWideDays); !reflect.DeepEqual(got, []string{"d1", "d2", "d3", "d4", "d5", "d6", "d7"}) {
		t.Errorf("weekday forms = %v; want base's untouched", got)
	}
}

func TestLoadTruncatesOverlongLists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "long.json")
	writeFile(t, path, `{
		"weekday/wide/formatting": ["d1","d2","d3","d4","d5","d6","d7","d8","d9"]
	}`)

	dict, err := NewDictionaryLoader("test", path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := len(dict.Forms(testWideDays)); got != 7 {
		t.Errorf("weekday forms length = %d; want truncated to 7", got)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("no_paths", func(t *testing.T) {
		if _, err := NewDictionaryLoader("test").Load(); err == nil {
			t.Error("Load() with no paths succeeded")
		}
	})

	t.Run("missing_file", func(t *testing.T) {
		if _, err := NewDictionaryLoader("test", filepath.Join(dir, "absent.json")).Load(); err == nil {
			t.Error("Load() of missing file succeeded")
		}
	})

	t.Run("bad_extension", func(t *testing.T) {
		path := filepath.Join(dir, "dict.txt")
		writeFile(t, path, "not a dictionary")
		if _, err := NewDictionaryLoader("test", path).Load(); err == nil {
			t.Error("Load() of .txt file succeeded")
		}
	})

	t.Run("bad_field_key", func(t *testing.T) {
		path := filepath.Join(dir, "dict.json")
		writeFile(t, path, `{"month/huge/formatting": ["x"]}`)
		if _, err := NewDictionaryLoader("test", path).Load(); err == nil {
			t.Error("Load() with unknown width succeeded")
		}
	})

	t.Run("short_list", func(t *testing.T) {
		path := filepath.Join(dir, "short.json")
		writeFile(t, path, `{"month/wide/formatting": ["only","two"]}`)
		if _, err := NewDictionaryLoader("test", path).Load(); err == nil {
			t.Error("Load() with two months succeeded")
		}
	})
}

func TestLoadReferenceSetCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reference.csv")
	writeFile(t, path, "English,Header,Winning,Code,XPath\n"+
		`"MMMM d, y",Formats - Standard - Date Formats,"MMMM d, y",long,//ldml/dates`+"\n"+
		"January,Months - wide - Formatting,January,jan,//ldml/dates\n")

	ref, err := LoadReferenceSet(path)
	if err != nil {
		t.Fatalf("LoadReferenceSet() error = %v", err)
	}
	got, err := ref.Confirm([]string{"MMMM d, y"}, "input")
	if err != nil || got != "MMMM d, y" {
		t.Errorf("Confirm = %q, %v; want verbatim hit", got, err)
	}
	if len(ref.Entries()) != 2 {
		t.Errorf("Entries() = %d rows; want 2", len(ref.Entries()))
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
