package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleCSV = `city,month,campus_job_income,stipend_income,rent,utilities,food,transport,phone_internet,misc_basic
Boston,2024-01,900,400,850,120,320,90,60,80
Boston,2024-02,900,400,850,130,310,90,60,75
Toronto,2024-01,800,500,700,100,280,110,55,70
`

func writeCSV(t *testing.T, content string) DiscoveredFile {
	t.Helper()
	path := filepath.Join(t.TempDir(), "costs.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing csv: %v", err)
	}
	return DiscoveredFile{Path: path, Name: "costs"}
}

func TestParseFile(t *testing.T) {
	result := ParseFile(writeCSV(t, sampleCSV))
	if result.Err != nil {
		t.Fatalf("ParseFile: %v", result.Err)
	}
	if len(result.Records) != 3 {
		t.Fatalf("records = %d, want 3", len(result.Records))
	}
	if result.RowErrors != 0 {
		t.Fatalf("row errors = %d, want 0", result.RowErrors)
	}

	rec := result.Records[0]
	if rec.City != "Boston" || rec.Label != "2024-01" {
		t.Errorf("record = %s/%s, want Boston/2024-01", rec.City, rec.Label)
	}
	if rec.CampusJobIncome != 900_00 {
		t.Errorf("campus job income = %d, want 90000", rec.CampusJobIncome)
	}
	if rec.Rent != 850_00 {
		t.Errorf("rent = %d, want 85000", rec.Rent)
	}
	if rec.Month.Year() != 2024 || rec.Month.Month() != 1 {
		t.Errorf("month = %v, want 2024-01", rec.Month)
	}
}

func TestParseFileMissingColumn(t *testing.T) {
	noRent := `city,month,campus_job_income,stipend_income,utilities,food,transport,phone_internet,misc_basic
Boston,2024-01,900,400,120,320,90,60,80
`
	result := ParseFile(writeCSV(t, noRent))
	if result.Err == nil {
		t.Fatal("expected file-level error for missing rent column")
	}
}

func TestParseFileSkipsBadRows(t *testing.T) {
	mixed := `city,month,campus_job_income,stipend_income,rent,utilities,food,transport,phone_internet,misc_basic
Boston,2024-01,900,400,850,120,320,90,60,80
Boston,not-a-month,900,400,850,120,320,90,60,80
Boston,2024-03,abc,400,850,120,320,90,60,80
Boston,2024-04,900,400,-850,120,320,90,60,80
Boston,2024-05,900,400,850,120,320,90,60,80
`
	result := ParseFile(writeCSV(t, mixed))
	if result.Err != nil {
		t.Fatalf("ParseFile: %v", result.Err)
	}
	if len(result.Records) != 2 {
		t.Errorf("records = %d, want 2", len(result.Records))
	}
	if result.RowErrors != 3 {
		t.Errorf("row errors = %d, want 3", result.RowErrors)
	}
}

func TestScanDirFindsCSVs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.csv", "b.CSV", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	files, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("files = %d, want 2 (csv only)", len(files))
	}
}

func TestScanDirMissingDir(t *testing.T) {
	files, err := ScanDir(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if files != nil {
		t.Fatalf("files = %v, want nil for missing dir", files)
	}
}
