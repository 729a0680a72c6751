package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"stucash/internal/model"
)

// ParseFile reads one dataset CSV and produces cost records.
//
// The header row is required and must contain every RequiredColumns field
// (extra columns are ignored). A missing column is a file-level error;
// rows with an unparsable month or amount are skipped and counted in
// RowErrors so callers can surface a validation warning without losing
// the rest of the file.
func ParseFile(df DiscoveredFile) ParseResult {
	f, err := os.Open(df.Path)
	if err != nil {
		return ParseResult{Err: err}
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1 // rows are validated against the header below

	header, err := r.Read()
	if err != nil {
		return ParseResult{Err: fmt.Errorf("reading header: %w", err)}
	}

	colIdx := make(map[string]int, len(header))
	for i, h := range header {
		colIdx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range RequiredColumns {
		if _, ok := colIdx[col]; !ok {
			return ParseResult{Err: fmt.Errorf("%s: missing required column %q", df.Path, col)}
		}
	}

	var result ParseResult

	for {
		row, err := r.Read()
		if err != nil {
			break // io.EOF or a malformed line; stop either way
		}

		rec, ok := parseRow(row, colIdx)
		if !ok {
			result.RowErrors++
			continue
		}
		result.Records = append(result.Records, rec)
	}

	return result
}

func parseRow(row []string, colIdx map[string]int) (model.CostRecord, bool) {
	field := func(name string) (string, bool) {
		i := colIdx[name]
		if i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	city, ok := field("city")
	if !ok || city == "" {
		return model.CostRecord{}, false
	}

	label, ok := field("month")
	if !ok {
		return model.CostRecord{}, false
	}
	month, err := time.Parse("2006-01", label)
	if err != nil {
		return model.CostRecord{}, false
	}

	rec := model.CostRecord{City: city, Month: month, Label: label}

	amounts := []struct {
		name string
		dst  *model.Money
	}{
		{"campus_job_income", &rec.CampusJobIncome},
		{"stipend_income", &rec.StipendIncome},
		{"rent", &rec.Rent},
		{"utilities", &rec.Utilities},
		{"food", &rec.Food},
		{"transport", &rec.Transport},
		{"phone_internet", &rec.PhoneInternet},
		{"misc_basic", &rec.MiscBasic},
	}
	for _, a := range amounts {
		s, ok := field(a.name)
		if !ok {
			return model.CostRecord{}, false
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 {
			return model.CostRecord{}, false
		}
		*a.dst = model.FromDollars(v)
	}

	return rec, true
}
