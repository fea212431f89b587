package quiz

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Expected header columns of a question file.
const (
	ColumnQuestion = "question"
	ColumnOptionA  = "option_a"
	ColumnOptionB  = "option_b"
	ColumnOptionC  = "option_c"
	ColumnOptionD  = "option_d"
	ColumnAnswer   = "answer"
	ColumnGroup    = "group"
)

// DefaultDelimiter is the field separator most question files use.
const DefaultDelimiter = ';'

// expectedColumns is the fixed column set every question file must declare
// in its header row, in canonical reporting order.
var expectedColumns = []string{
	ColumnQuestion,
	ColumnOptionA,
	ColumnOptionB,
	ColumnOptionC,
	ColumnOptionD,
	ColumnAnswer,
	ColumnGroup,
}

var optionColumns = []string{ColumnOptionA, ColumnOptionB, ColumnOptionC, ColumnOptionD}

// ErrNoQuestions indicates that a file parsed cleanly but yielded no
// valid question rows.
var ErrNoQuestions = errors.New("question file contains no valid questions")

// ErrEmptyFile indicates that a file has no header row at all.
var ErrEmptyFile = errors.New("question file is empty")

// MissingColumnsError reports expected columns absent from the header row.
// A missing column fails the whole import; malformed data rows do not.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("question file header is missing columns: %s", strings.Join(e.Columns, ", "))
}

// ParseOptions configures question file parsing.
type ParseOptions struct {
	// Delimiter separates fields. Zero means DefaultDelimiter.
	Delimiter rune
}

// SkippedRow records a data row rejected during import and why.
type SkippedRow struct {
	Line   int
	Reason string
}

// ImportReport summarizes a question file import.
type ImportReport struct {
	Parsed  int
	Skipped []SkippedRow
}

// SkippedCount returns the number of rejected rows.
func (r ImportReport) SkippedCount() int {
	return len(r.Skipped)
}

// ParseQuestions reads a delimited question file into a question list.
//
// The header row must contain every expected column; their order does not
// matter and extra columns are ignored. Malformed data rows (short rows,
// blank fields, answer letters outside A-D) are skipped and recorded in
// the report rather than failing the import.
func ParseQuestions(reader io.Reader, opts ParseOptions) ([]Question, ImportReport, error) {
	delimiter := opts.Delimiter
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}

	csvReader := csv.NewReader(bufio.NewReader(reader))
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, ImportReport{}, fmt.Errorf("failed to read question file: %w", err)
	}
	if len(records) == 0 {
		return nil, ImportReport{}, ErrEmptyFile
	}

	columnIndex, missing := mapHeader(records[0])
	if len(missing) > 0 {
		return nil, ImportReport{}, &MissingColumnsError{Columns: missing}
	}

	var questions []Question
	var report ImportReport

	for i, record := range records[1:] {
		line := i + 2 // 1-based, after the header row

		question, reason := parseRow(record, columnIndex)
		if reason != "" {
			report.Skipped = append(report.Skipped, SkippedRow{Line: line, Reason: reason})
			continue
		}

		questions = append(questions, question)
	}

	report.Parsed = len(questions)
	if len(questions) == 0 {
		return nil, report, ErrNoQuestions
	}

	return questions, report, nil
}

// mapHeader resolves each expected column to its field index. Header cells
// match case-insensitively after trimming.
func mapHeader(header []string) (map[string]int, []string) {
	index := make(map[string]int, len(header))
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if _, taken := index[name]; !taken {
			index[name] = i
		}
	}

	var missing []string
	for _, column := range expectedColumns {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}

	return index, missing
}

// parseRow converts one data row into a question. A non-empty reason
// marks the row as skipped.
func parseRow(record []string, columnIndex map[string]int) (Question, string) {
	field := func(column string) (string, bool) {
		idx := columnIndex[column]
		if idx >= len(record) {
			return "", false
		}
		return strings.TrimSpace(record[idx]), true
	}

	for _, column := range expectedColumns {
		if _, ok := field(column); !ok {
			return Question{}, fmt.Sprintf("row too short, no value for column %q", column)
		}
	}

	prompt, _ := field(ColumnQuestion)
	if prompt == "" {
		return Question{}, "empty question text"
	}

	var options [4]string
	for i, column := range optionColumns {
		value, _ := field(column)
		if value == "" {
			return Question{}, fmt.Sprintf("empty option %q", column)
		}
		options[i] = value
	}

	rawAnswer, _ := field(ColumnAnswer)
	answer, ok := ParseAnswerLetter(rawAnswer)
	if !ok {
		return Question{}, fmt.Sprintf("invalid answer letter %q", rawAnswer)
	}

	group, _ := field(ColumnGroup)
	if group == "" {
		return Question{}, "empty group label"
	}

	return Question{
		Prompt:  prompt,
		Options: options,
		Answer:  answer,
		Group:   group,
	}, ""
}
