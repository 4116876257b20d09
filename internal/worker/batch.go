package worker

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/masashitakano917-maker/apt-explain-sub000/internal/model"
)

// Generator produces building copy for one property. Implemented by the
// pipeline; declared here so batch processing does not depend on it.
type Generator interface {
	Generate(ctx context.Context, req model.GenerateRequest) (*model.GenerateResult, error)
}

// BatchRow is one input property from a batch CSV.
type BatchRow struct {
	Name string
	URL  string
	Tone string
	Min  int
	Max  int
}

// GenerateJob generates copy for one batch row.
type GenerateJob struct {
	Row       BatchRow
	Generator Generator
}

// Execute runs the generation for one row.
func (j *GenerateJob) Execute(ctx context.Context) Result {
	result, err := j.Generator.Generate(ctx, model.GenerateRequest{
		Name:     j.Row.Name,
		URL:      j.Row.URL,
		Tone:     j.Row.Tone,
		MinChars: j.Row.Min,
		MaxChars: j.Row.Max,
	})
	return &GenerateOutcome{Row: j.Row, Result: result, Error: err}
}

// GenerateOutcome is the per-row outcome of a batch run.
type GenerateOutcome struct {
	Row    BatchRow
	Result *model.GenerateResult
	Error  error
}

// GetError returns the row's generation error, if any.
func (o *GenerateOutcome) GetError() error {
	return o.Error
}

// BatchProcessor generates copy for many properties concurrently.
type BatchProcessor struct {
	generator   Generator
	concurrency int
}

// NewBatchProcessor creates a new batch processor.
func NewBatchProcessor(generator Generator, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		generator:   generator,
		concurrency: concurrency,
	}
}

// ProcessRows generates copy for every row using the worker pool.
func (b *BatchProcessor) ProcessRows(ctx context.Context, rows []BatchRow) []*GenerateOutcome {
	if len(rows) == 0 {
		return []*GenerateOutcome{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, row := range rows {
		pool.Submit(&GenerateJob{Row: row, Generator: b.generator})
	}

	results := pool.Wait()

	outcomes := make([]*GenerateOutcome, len(results))
	for i, result := range results {
		outcomes[i] = result.(*GenerateOutcome)
	}

	return outcomes
}

// ProcessFile reads batch rows from a CSV file and processes them.
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*GenerateOutcome, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	rows, err := ReadRows(file)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	return b.ProcessRows(ctx, rows), nil
}

// ReadRows parses batch rows from CSV input. Columns are
// name,url[,tone[,min,max]]; a header row whose second column is not a URL is
// skipped, and duplicate URLs keep only the first row.
func ReadRows(r io.Reader) ([]BatchRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []BatchRow
	seen := make(map[string]bool)

	for lineNo := 1; ; lineNo++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(record) == 0 {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(record[0]), "#") {
			continue
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("line %d: want at least name and url, got %d columns", lineNo, len(record))
		}

		name := strings.TrimSpace(record[0])
		url := strings.TrimSpace(record[1])
		if lineNo == 1 && url != "" && !strings.Contains(url, "://") {
			// Header row.
			continue
		}
		if name == "" || url == "" {
			return nil, fmt.Errorf("line %d: empty name or url", lineNo)
		}
		if seen[url] {
			continue
		}
		seen[url] = true

		row := BatchRow{Name: name, URL: url}
		if len(record) > 2 {
			row.Tone = strings.TrimSpace(record[2])
		}
		if len(record) > 4 {
			min, err := strconv.Atoi(strings.TrimSpace(record[3]))
			if err != nil {
				return nil, fmt.Errorf("line %d: min: %w", lineNo, err)
			}
			max, err := strconv.Atoi(strings.TrimSpace(record[4]))
			if err != nil {
				return nil, fmt.Errorf("line %d: max: %w", lineNo, err)
			}
			row.Min, row.Max = min, max
		}

		rows = append(rows, row)
	}

	return rows, nil
}
