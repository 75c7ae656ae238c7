package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/norskbot/pkg/models"
	"github.com/xuri/excelize/v2"
)

// VerbStore is the write surface the importer needs
type VerbStore interface {
	ReplaceAll(verbs []models.VerbForms) error
}

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath  string // Path to the verb list (.txt, .csv, .json or .xlsx)
	SheetName string // Name of the sheet to import (Excel only)
	StartRow  int    // The row to start importing from, 1-based (Excel only)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		SheetName: "Sheet1",
		StartRow:  1,
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	Errors         []string
}

// Importer runs the one-shot batch that replaces the verb table from a
// source file. The replace is transactional, so a failed batch leaves the
// previous table contents untouched.
type Importer struct {
	store VerbStore
}

// NewImporter creates a new importer writing to the given store
func NewImporter(store VerbStore) *Importer {
	return &Importer{store: store}
}

// ImportVerbs imports a verb list, dispatching on the file extension
func (im *Importer) ImportVerbs(config ImportConfig) (*ImportResult, error) {
	var (
		list   *VerbList
		result *ImportResult
		err    error
	)

	switch strings.ToLower(filepath.Ext(config.FilePath)) {
	case ".json":
		list, result, err = importFromJSON(config)
	case ".csv":
		list, result, err = importFromCSV(config)
	case ".xlsx", ".xlsm":
		list, result, err = importFromExcel(config)
	default:
		list, result, err = importFromText(config)
	}
	if err != nil {
		return nil, err
	}

	if err := im.store.ReplaceAll(list.Records()); err != nil {
		return nil, fmt.Errorf("failed to store verbs: %v", err)
	}
	result.Imported = list.Len()
	return result, nil
}

// importFromText imports the flat comma-space delimited verb list
func importFromText(config ImportConfig) (*VerbList, *ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open verb list: %v", err)
	}
	defer file.Close()

	list, skipped, err := ParseVerbList(file)
	if err != nil {
		return nil, nil, err
	}

	result := &ImportResult{
		TotalProcessed: list.Len() + len(skipped),
		Skipped:        len(skipped),
	}
	for _, line := range skipped {
		log.Printf("warning: skipping malformed verb line: %q", line)
		result.Errors = append(result.Errors, fmt.Sprintf("malformed line: %q", line))
	}
	return list, result, nil
}

// importFromJSON imports the interchange JSON produced by earlier runs
func importFromJSON(config ImportConfig) (*VerbList, *ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open interchange file: %v", err)
	}
	defer file.Close()

	list, err := ReadInterchange(file)
	if err != nil {
		return nil, nil, err
	}
	return list, &ImportResult{TotalProcessed: list.Len()}, nil
}

// importFromCSV imports a CSV verb list with the same six-column layout
func importFromCSV(config ImportConfig) (*VerbList, *ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.TrimLeadingSpace = true

	list := NewVerbList()
	result := &ImportResult{}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("error reading CSV: %v", err)
		}

		result.TotalProcessed++
		if !addRow(list, row) {
			result.Skipped++
			log.Printf("warning: skipping malformed CSV row: %v", row)
			result.Errors = append(result.Errors, fmt.Sprintf("malformed row: %v", row))
		}
	}

	return list, result, nil
}

// importFromExcel imports a verb list from an Excel sheet, columns A..F
func importFromExcel(config ImportConfig) (*VerbList, *ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get rows: %v", err)
	}

	list := NewVerbList()
	result := &ImportResult{}

	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		if len(row) == 0 {
			continue
		}

		result.TotalProcessed++
		if !addRow(list, row) {
			result.Skipped++
			log.Printf("warning: skipping malformed Excel row %d", i+1)
			result.Errors = append(result.Errors, fmt.Sprintf("malformed row %d", i+1))
		}
	}

	return list, result, nil
}

// addRow maps one tabular row onto a verb entry. Rows with fewer than six
// cells or an empty infinitive are rejected.
func addRow(list *VerbList, row []string) bool {
	if len(row) < minFields {
		return false
	}
	infinitive := strings.TrimSpace(row[0])
	if infinitive == "" {
		return false
	}

	list.Add(infinitive, VerbEntry{
		Presens:       strings.TrimSpace(row[1]),
		Preteritum:    strings.TrimSpace(row[2]),
		PresPerfektum: strings.TrimSpace(row[3]),
		English:       []string{strings.TrimSpace(row[4]), strings.TrimSpace(row[5])},
	})
	return true
}

// ExportInterchange converts a raw verb list into interchange JSON without
// touching the store, mirroring the historical two-step pipeline
func ExportInterchange(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("failed to open verb list: %v", err)
	}
	defer in.Close()

	list, skipped, err := ParseVerbList(in)
	if err != nil {
		return err
	}
	for _, line := range skipped {
		log.Printf("warning: skipping malformed verb line: %q", line)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create interchange file: %v", err)
	}
	defer out.Close()

	return WriteInterchange(out, list)
}
