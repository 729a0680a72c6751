package dataset

import "stucash/internal/model"

// Required CSV header fields, in the order the export layer also uses.
var RequiredColumns = []string{
	"city", "month",
	"campus_job_income", "stipend_income",
	"rent", "utilities", "food", "transport",
	"phone_internet", "misc_basic",
}

// DiscoveredFile represents a CSV dataset file found during scanning.
type DiscoveredFile struct {
	Path string
	Name string // base name without extension
}

// ParseResult holds the output of parsing a single dataset file.
type ParseResult struct {
	Records   []model.CostRecord
	RowErrors int // rows skipped for bad month/amount values
	Err       error
}
