package worker

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/masashitakano917-maker/apt-explain-sub000/internal/model"
)

// mockGenerator implements Generator
type mockGenerator struct {
	shouldError bool
}

func (m *mockGenerator) Generate(ctx context.Context, req model.GenerateRequest) (*model.GenerateResult, error) {
	time.Sleep(10 * time.Millisecond) // Simulate work
	if m.shouldError {
		return nil, errors.New("generate error")
	}
	return &model.GenerateResult{
		Name:      req.Name,
		SourceURL: req.URL,
		Text:      "本文",
	}, nil
}

func TestBatchProcessor_ProcessRows(t *testing.T) {
	processor := NewBatchProcessor(&mockGenerator{}, 2)

	rows := []BatchRow{
		{Name: "物件A", URL: "http://example.com/a"},
		{Name: "物件B", URL: "http://example.com/b"},
		{Name: "物件C", URL: "http://example.com/c"},
	}

	outcomes := processor.ProcessRows(context.Background(), rows)

	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}

	for _, o := range outcomes {
		if o.Error != nil {
			t.Errorf("unexpected error for %s: %v", o.Row.URL, o.Error)
			continue
		}
		if o.Result == nil || o.Result.Text == "" {
			t.Errorf("expected generated text for %s", o.Row.URL)
		}
	}
}

func TestBatchProcessor_ProcessRows_Error(t *testing.T) {
	processor := NewBatchProcessor(&mockGenerator{shouldError: true}, 2)

	outcomes := processor.ProcessRows(context.Background(), []BatchRow{
		{Name: "物件A", URL: "http://example.com/a"},
	})

	if len(outcomes) != 1 {
		t.Fatalf("expected 1 outcome, got %d", len(outcomes))
	}
	if outcomes[0].Error == nil {
		t.Error("expected error, got nil")
	}
	if outcomes[0].Result != nil {
		t.Error("expected nil result on error")
	}
}

func TestBatchProcessor_ProcessRows_Empty(t *testing.T) {
	processor := NewBatchProcessor(&mockGenerator{}, 2)

	outcomes := processor.ProcessRows(context.Background(), nil)
	if len(outcomes) != 0 {
		t.Errorf("expected 0 outcomes, got %d", len(outcomes))
	}
}

func TestReadRows(t *testing.T) {
	input := `name,url,tone,min,max
物件A,http://example.com/a,標準,400,500
物件B,http://example.com/b
# コメント行
物件C,http://example.com/c,高級感
`

	rows, err := ReadRows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	if rows[0].Name != "物件A" || rows[0].Tone != "標準" || rows[0].Min != 400 || rows[0].Max != 500 {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].URL != "http://example.com/b" || rows[1].Min != 0 {
		t.Errorf("row 1 = %+v", rows[1])
	}
	if rows[2].Tone != "高級感" {
		t.Errorf("row 2 = %+v", rows[2])
	}
}

func TestReadRows_NoHeader(t *testing.T) {
	input := "物件A,http://example.com/a\n"

	rows, err := ReadRows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}

func TestReadRows_Deduplication(t *testing.T) {
	input := "物件A,http://example.com/a\n別名,http://example.com/a\n"

	rows, err := ReadRows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected 1 row after deduplication, got %d", len(rows))
	}
	if rows[0].Name != "物件A" {
		t.Errorf("first row should win, got %+v", rows[0])
	}
}

func TestReadRows_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"missing url column", "物件A\n"},
		{"empty url", "物件A,   \n"},
		{"bad min", "物件A,http://example.com/a,標準,abc,500\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ReadRows(strings.NewReader(tc.input)); err == nil {
				t.Errorf("expected error for %q", tc.input)
			}
		})
	}
}

func TestGenerateOutcome_GetError(t *testing.T) {
	o1 := &GenerateOutcome{Row: BatchRow{URL: "http://example.com"}}
	if o1.GetError() != nil {
		t.Errorf("expected nil error, got %v", o1.GetError())
	}

	expected := errors.New("generate failed")
	o2 := &GenerateOutcome{Row: BatchRow{URL: "http://example.com"}, Error: expected}
	if o2.GetError() != expected {
		t.Errorf("expected %v, got %v", expected, o2.GetError())
	}
}

func TestBatchProcessor_ProcessFile(t *testing.T) {
	content := "name,url\n物件A,http://example.com/a\n物件B,http://example.com/b\n"

	tmpfile, err := os.CreateTemp("", "batch_rows")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	processor := NewBatchProcessor(&mockGenerator{}, 2)

	outcomes, err := processor.ProcessFile(context.Background(), tmpfile.Name())
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}
	if len(outcomes) != 2 {
		t.Errorf("expected 2 outcomes, got %d", len(outcomes))
	}
}

func TestBatchProcessor_ProcessFile_NonExistent(t *testing.T) {
	processor := NewBatchProcessor(&mockGenerator{}, 2)

	if _, err := processor.ProcessFile(context.Background(), "no_such_file.csv"); err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func TestBatchProcessor_ProcessFile_Empty(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "empty_rows")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	processor := NewBatchProcessor(&mockGenerator{}, 2)

	outcomes, err := processor.ProcessFile(context.Background(), tmpfile.Name())
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}
	if len(outcomes) != 0 {
		t.Errorf("expected 0 outcomes for empty file, got %d", len(outcomes))
	}
}
