package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/stanfordsilicon/LexRay"
)

type cliConfig struct {
	mode        string
	english     string
	translation string
	language    string
	dataDir     string
	csvPath     string
	elementsCSV string
	outPath     string
	asJSON      bool
	stats       bool
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
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func parseFlags() (cliConfig, error) {
	var cfg cliConfig

	flag.StringVar(&cfg.mode, "mode", "english", "english, map, batch-english, batch-pairs, batch-new, or languages")
	flag.StringVar(&cfg.english, "english", "", "English example date, e.g. \"January 16, 2006\"")
	flag.StringVar(&cfg.translation, "translation", "", "translation of the English example in the target language")
	flag.StringVar(&cfg.language, "language", "", "target language name, e.g. spanish")
	flag.StringVar(&cfg.dataDir, "data", "", "directory of <language>_dictionary files (or LEXRAY_DATA_DIR)")
	flag.StringVar(&cfg.csvPath, "csv", "", "input CSV for batch modes")
	flag.StringVar(&cfg.elementsCSV, "elements", "", "date elements CSV for a language without shipped data")
	flag.StringVar(&cfg.outPath, "out", "", "output file for batch modes (default stdout)")
	flag.BoolVar(&cfg.asJSON, "json", false, "print results as JSON")
	flag.BoolVar(&cfg.stats, "stats", false, "print a run report to stderr after a batch mode")

	flag.Parse()

	if cfg.dataDir == "" {
		cfg.dataDir = os.Getenv("LEXRAY_DATA_DIR")
	}

	return cfg, nil
}

func run(cfg cliConfig) error {
	switch cfg.mode {
	case "english":
		return runEnglish(cfg)
	case "map":
		return runMap(cfg)
	case "batch-english":
		return runBatchEnglish(cfg)
	case "batch-pairs":
		return runBatchPairs(cfg)
	case "batch-new":
		return runBatchNew(cfg)
	case "languages":
		return runLanguages(cfg)
	default:
		return fmt.Errorf("lexray: unknown mode %q", cfg.mode)
	}
}

func runEnglish(cfg cliConfig) error {
	if cfg.english == "" {
		return errors.New("lexray: -english is required")
	}

	conv, err := lexray.New()
	if err != nil {
		return err
	}
	result, err := conv.SkeletonFor(cfg.english)
	if err != nil {
		return err
	}

	if cfg.asJSON {
		return encodeJSON(os.Stdout, result)
	}
	printSkeletonResult(os.Stdout, conv, result)
	return nil
}

type mapOutput struct {
	EnglishSkeleton string   `json:"english_skeleton"`
	TargetSkeletons []string `json:"target_skeletons"`
	Language        string   `json:"language"`
	PatternID       string   `json:"pattern_id,omitempty"`
}

func runMap(cfg cliConfig) error {
	if cfg.english == "" || cfg.translation == "" || cfg.language == "" {
		return errors.New("lexray: -english, -translation, and -language are required")
	}

	dict, err := targetDictionary(cfg)
	if err != nil {
		return err
	}
	conv, err := lexray.New()
	if err != nil {
		return err
	}
	result, err := conv.SkeletonFor(cfg.english)
	if err != nil {
		return err
	}
	targets, err := conv.MapToTarget(dict, cfg.translation, cfg.english, result.Skeleton, result.Ambiguities)
	if err != nil {
		return err
	}

	if cfg.asJSON {
		return encodeJSON(os.Stdout, mapOutput{
			EnglishSkeleton: result.Skeleton,
			TargetSkeletons: targets,
			Language:        cfg.language,
			PatternID:       conv.PatternID(result.Skeleton),
		})
	}

	fmt.Printf("English skeleton: %s\n", result.Skeleton)
	fmt.Printf("Target skeletons: %s\n", strings.Join(targets, "; "))
	return nil
}

// targetDictionary loads the mapping dictionary, from the elements CSV when
// one is given and from the data directory otherwise.
func targetDictionary(cfg cliConfig) (*lexray.Dictionary, error) {
	if cfg.elementsCSV != "" {
		return lexray.NewDictionaryLoader(cfg.language, cfg.elementsCSV).Load()
	}
	if cfg.dataDir == "" {
		return nil, errors.New("lexray: -data directory is required (or set LEXRAY_DATA_DIR)")
	}
	return lexray.NewRegistry(cfg.dataDir).Dictionary(cfg.language)
}

func runBatchEnglish(cfg cliConfig) error {
	if cfg.csvPath == "" {
		return errors.New("lexray: -csv is required")
	}

	conv, err := lexray.New()
	if err != nil {
		return err
	}
	runner := newRunner(conv)

	err = withBatchFiles(cfg, func(in io.Reader, out io.Writer) error {
		return runner.ProcessEnglish(in, out)
	})
	if err != nil {
		return err
	}
	return maybePrintStats(cfg, runner)
}

func runBatchPairs(cfg cliConfig) error {
	if cfg.csvPath == "" || cfg.language == "" {
		return errors.New("lexray: -csv and -language are required")
	}
	if cfg.dataDir == "" {
		return errors.New("lexray: -data directory is required (or set LEXRAY_DATA_DIR)")
	}

	dict, err := lexray.NewRegistry(cfg.dataDir).Dictionary(cfg.language)
	if err != nil {
		return err
	}
	return runPairs(cfg, dict)
}

func runBatchNew(cfg cliConfig) error {
	if cfg.csvPath == "" || cfg.elementsCSV == "" || cfg.language == "" {
		return errors.New("lexray: -csv, -elements, and -language are required")
	}

	dict, err := lexray.NewDictionaryLoader(cfg.language, cfg.elementsCSV).Load()
	if err != nil {
		return err
	}
	return runPairs(cfg, dict)
}

func runPairs(cfg cliConfig, dict *lexray.Dictionary) error {
	conv, err := lexray.New()
	if err != nil {
		return err
	}
	runner := newRunner(conv)

	err = withBatchFiles(cfg, func(in io.Reader, out io.Writer) error {
		return runner.ProcessPairs(in, out, dict)
	})
	if err != nil {
		return err
	}
	return maybePrintStats(cfg, runner)
}

type languageOutput struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

func runLanguages(cfg cliConfig) error {
	if cfg.dataDir == "" {
		return errors.New("lexray: -data directory is required (or set LEXRAY_DATA_DIR)")
	}

	registry := lexray.NewRegistry(cfg.dataDir)
	names, err := registry.Languages()
	if err != nil {
		return err
	}

	if cfg.asJSON {
		listed := make([]languageOutput, 0, len(names))
		for _, name := range names {
			listed = append(listed, languageOutput{Name: name, DisplayName: registry.DisplayName(name)})
		}
		return encodeJSON(os.Stdout, listed)
	}

	for _, name := range names {
		fmt.Printf("%s\t%s\n", name, registry.DisplayName(name))
	}
	return nil
}

func newRunner(conv *lexray.Converter) *lexray.BatchRunner {
	return lexray.NewBatchRunner(conv).WithProgress(10, func(rows int) {
		fmt.Fprintf(os.Stderr, "Processed %d rows\n", rows)
	})
}

func withBatchFiles(cfg cliConfig, process func(in io.Reader, out io.Writer) error) error {
	in, err := os.Open(cfg.csvPath)
	if err != nil {
		return fmt.Errorf("lexray: open %s: %w", cfg.csvPath, err)
	}
	defer in.Close()

	if cfg.outPath == "" {
		return process(in, os.Stdout)
	}

	out, err := os.Create(cfg.outPath)
	if err != nil {
		return fmt.Errorf("lexray: create %s: %w", cfg.outPath, err)
	}
	if err := process(in, out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func maybePrintStats(cfg cliConfig, runner *lexray.BatchRunner) error {
	if !cfg.stats {
		return nil
	}
	return runner.Stats().Report().Export(os.Stderr, "txt")
}

func printSkeletonResult(w io.Writer, conv *lexray.Converter, result *lexray.SkeletonResult) {
	fmt.Fprintf(w, "English skeleton: %s\n", result.Skeleton)
	if id := conv.PatternID(result.Skeleton); id != "" {
		fmt.Fprintf(w, "Pattern id: %s\n", id)
	}
	for _, ambiguity := range result.Ambiguities {
		fmt.Fprintf(w, "Position %d is ambiguous, read as %s:\n", ambiguity.Position, ambiguity.Label)
		for _, option := range result.Options[ambiguity.Position] {
			fmt.Fprintf(w, "  %s (%s)\n", option.Name, option.Code)
		}
	}
}

func encodeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}
