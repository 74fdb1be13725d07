package lexray

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// errorCell marks a failed row in batch output.
const errorCell = "ERROR"

const defaultProgressEvery = 10

// Batch output columns.
const (
	batchColumnEnglish         = "ENGLISH"
	batchColumnTarget          = "TARGET"
	batchColumnEnglishSkeleton = "ENGLISH_SKELETON"
	batchColumnTargetSkeleton  = "TARGET_SKELETON"
	batchColumnPatternID       = "PATTERN_ID"
)

// BatchRunner streams CSV rows through a Converter. Row failures become
// ERROR cells in the output so one bad row never aborts a run; only header
// and I/O problems stop it.
type BatchRunner struct {
	converter     *Converter
	stats         *Stats
	progress      func(rows int)
	progressEvery int
}

func NewBatchRunner(converter *Converter) *BatchRunner {
	return &BatchRunner{
		converter:     converter,
		stats:         NewStats(),
		progressEvery: defaultProgressEvery,
	}
}

// WithProgress registers a callback fired every n processed rows.
func (b *BatchRunner) WithProgress(n int, fn func(rows int)) *BatchRunner {
	if b == nil || fn == nil || n < 1 {
		return b
	}
	b.progress = fn
	b.progressEvery = n
	return b
}

// Stats returns the counters collected across runs.
func (b *BatchRunner) Stats() *Stats { return b.stats }

// ProcessEnglish reads rows with an ENGLISH column and writes one
// ENGLISH,ENGLISH_SKELETON,PATTERN_ID row per non-empty input row.
func (b *BatchRunner) ProcessEnglish(in io.Reader, out io.Writer) error {
	reader := newBatchReader(in)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("lexray: read batch header: %w", err)
	}
	columns := columnIndex(header)
	englishCol, ok := columns[batchColumnEnglish]
	if !ok {
		return fmt.Errorf("lexray: CSV must contain an %s column", batchColumnEnglish)
	}

	writer := csv.NewWriter(out)
	if err := writer.Write([]string{batchColumnEnglish, batchColumnEnglishSkeleton, batchColumnPatternID}); err != nil {
		return err
	}

	processed := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("lexray: read batch row: %w", err)
		}
		text := strings.TrimSpace(cellAt(row, englishCol))
		if text == "" {
			continue
		}

		skeleton, patternID := errorCell, ""
		if result, convErr := b.converter.SkeletonFor(text); convErr == nil {
			skeleton = result.Skeleton
			patternID = b.converter.PatternID(skeleton)
		}
		b.stats.RecordEnglish(skeleton)
		if err := writer.Write([]string{text, skeleton, patternID}); err != nil {
			return err
		}
		processed++
		b.reportProgress(processed)
	}

	writer.Flush()
	return writer.Error()
}

// ProcessPairs reads rows with ENGLISH and TARGET columns and writes one
// ENGLISH,TARGET,ENGLISH_SKELETON,TARGET_SKELETON,PATTERN_ID row per pair.
// Multiple target candidates join with "; ". A row whose English side fails
// gets ERROR in both skeleton columns; a row whose mapping fails keeps its
// English skeleton and gets ERROR in the target column.
func (b *BatchRunner) ProcessPairs(in io.Reader, out io.Writer, dict *Dictionary) error {
	if dict == nil {
		return fmt.Errorf("lexray: no dictionary for the target language: %w", ErrMissingDictionary)
	}

	reader := newBatchReader(in)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("lexray: read batch header: %w", err)
	}
	columns := columnIndex(header)
	englishCol, okEnglish := columns[batchColumnEnglish]
	targetCol, okTarget := columns[batchColumnTarget]
	if !okEnglish || !okTarget {
		return fmt.Errorf("lexray: CSV must contain %s and %s columns", batchColumnEnglish, batchColumnTarget)
	}

	writer := csv.NewWriter(out)
	if err := writer.Write([]string{
		batchColumnEnglish, batchColumnTarget,
		batchColumnEnglishSkeleton, batchColumnTargetSkeleton, batchColumnPatternID,
	}); err != nil {
		return err
	}

	processed := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("lexray: read batch row: %w", err)
		}
		english := strings.TrimSpace(cellAt(row, englishCol))
		target := strings.TrimSpace(cellAt(row, targetCol))
		if english == "" || target == "" {
			continue
		}

		englishSkeleton, targetSkeleton, patternID := errorCell, errorCell, ""
		if result, convErr := b.converter.SkeletonFor(english); convErr == nil {
			englishSkeleton = result.Skeleton
			patternID = b.converter.PatternID(englishSkeleton)
			if targets, mapErr := b.converter.MapToTarget(dict, target, english, englishSkeleton, result.Ambiguities); mapErr == nil && len(targets) > 0 {
				targetSkeleton = strings.Join(targets, "; ")
			}
		}
		b.stats.RecordPair(englishSkeleton, targetSkeleton)
		if err := writer.Write([]string{english, target, englishSkeleton, targetSkeleton, patternID}); err != nil {
			return err
		}
		processed++
		b.reportProgress(processed)
	}

	writer.Flush()
	return writer.Error()
}

func (b *BatchRunner) reportProgress(processed int) {
	if b.progress != nil && processed%b.progressEvery == 0 {
		b.progress(processed)
	}
}

func newBatchReader(in io.Reader) *csv.Reader {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	return reader
}

func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
