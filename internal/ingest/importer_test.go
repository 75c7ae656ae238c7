package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/norskbot/pkg/models"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeStore struct {
	replaced []models.VerbForms
	err      error
}

func (s *fakeStore) ReplaceAll(verbs []models.VerbForms) error {
	if s.err != nil {
		return s.err
	}
	s.replaced = verbs
	return nil
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImportVerbsText(t *testing.T) {
	path := writeTempFile(t, "verb.txt",
		"gå, går, gikk, har gått, go, walk\n"+
			"for kort\n"+
			"spise, spiser, spiste, har spist, eat, dine\n")

	store := &fakeStore{}
	cfg := DefaultImportConfig()
	cfg.FilePath = path

	result, err := NewImporter(store).ImportVerbs(cfg)
	require.NoError(t, err)
	require.Equal(t, 3, result.TotalProcessed)
	require.Equal(t, 2, result.Imported)
	require.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)

	require.Len(t, store.replaced, 2)
	require.Equal(t, "gå", store.replaced[0].Infinitive)
	require.Equal(t, "går", store.replaced[0].Presens)
	require.Equal(t, "gikk", store.replaced[0].Preteritum)
	require.Equal(t, "har gått", store.replaced[0].PresPerfektum)
	require.Equal(t, []string{"go", "walk"}, store.replaced[0].Glosses())
}

func TestImportVerbsJSON(t *testing.T) {
	path := writeTempFile(t, "word_json.json",
		`{"gå": {"Presens": "går", "Preteritum": "gikk", "Pres. perfektum ": "har gått", "english": ["go", "walk"]}}`)

	store := &fakeStore{}
	cfg := DefaultImportConfig()
	cfg.FilePath = path

	result, err := NewImporter(store).ImportVerbs(cfg)
	require.NoError(t, err)
	require.Equal(t, 1, result.Imported)
	require.Len(t, store.replaced, 1)
	require.Equal(t, "har gått", store.replaced[0].PresPerfektum)
}

func TestImportVerbsCSV(t *testing.T) {
	path := writeTempFile(t, "verb.csv",
		"gå, går, gikk, har gått, go, walk\n"+
			"spise, spiser\n")

	store := &fakeStore{}
	cfg := DefaultImportConfig()
	cfg.FilePath = path

	result, err := NewImporter(store).ImportVerbs(cfg)
	require.NoError(t, err)
	require.Equal(t, 1, result.Imported)
	require.Equal(t, 1, result.Skipped)
	require.Equal(t, "gå", store.replaced[0].Infinitive)
	require.Equal(t, []string{"go", "walk"}, store.replaced[0].Glosses())
}

func TestImportVerbsExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verb.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1",
		&[]interface{}{"Infinitiv", "Presens", "Preteritum", "Pres. perfektum", "Engelsk 1", "Engelsk 2"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2",
		&[]interface{}{"gå", "går", "gikk", "har gått", "go", "walk"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3",
		&[]interface{}{"spise", "spiser"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	store := &fakeStore{}
	cfg := DefaultImportConfig()
	cfg.FilePath = path
	cfg.StartRow = 2 // skip the header

	result, err := NewImporter(store).ImportVerbs(cfg)
	require.NoError(t, err)
	require.Equal(t, 1, result.Imported)
	require.Equal(t, 1, result.Skipped)
	require.Len(t, store.replaced, 1)
	require.Equal(t, "gå", store.replaced[0].Infinitive)
	require.Equal(t, "har gått", store.replaced[0].PresPerfektum)
}

func TestImportVerbsStoreFailureAbortsBatch(t *testing.T) {
	path := writeTempFile(t, "verb.txt", "gå, går, gikk, har gått, go, walk\n")

	store := &fakeStore{err: errors.New("connection lost")}
	cfg := DefaultImportConfig()
	cfg.FilePath = path

	_, err := NewImporter(store).ImportVerbs(cfg)
	require.Error(t, err)
}

func TestImportVerbsMissingFile(t *testing.T) {
	cfg := DefaultImportConfig()
	cfg.FilePath = filepath.Join(t.TempDir(), "finnes-ikke.txt")

	_, err := NewImporter(&fakeStore{}).ImportVerbs(cfg)
	require.Error(t, err)
}

func TestExportInterchange(t *testing.T) {
	in := writeTempFile(t, "verb.txt", "gå, går, gikk, har gått, go, walk\n")
	out := filepath.Join(t.TempDir(), "word_json.json")

	require.NoError(t, ExportInterchange(in, out))

	file, err := os.Open(out)
	require.NoError(t, err)
	defer file.Close()

	list, err := ReadInterchange(file)
	require.NoError(t, err)
	require.Equal(t, 1, list.Len())
	require.Equal(t, "har gått", list.Records()[0].PresPerfektum)
}
