package csvfile

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"

	"github.com/brandstat-labs/brandstat-cli/internal/core/domain"
	"github.com/brandstat-labs/brandstat-cli/internal/core/ports/driven"
	"github.com/brandstat-labs/brandstat-cli/internal/logger"
)

// Ensure Reader implements the loader port.
var _ driven.DatasetLoader = (*Reader)(nil)

// requiredColumns is the exact header set, matched case-insensitively
// in any order. Extra columns are rejected.
var requiredColumns = []string{"name", "brand", "price", "rating"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader loads product CSV files.
type Reader struct{}

// New creates a CSV reader.
func New() *Reader {
	return &Reader{}
}

// Load parses the given files in order into one Dataset, preserving
// file order then in-file order. The first error aborts the whole
// load; a failing file 2 means file 3 is never opened.
func (r *Reader) Load(ctx context.Context, paths []string) (*domain.Dataset, error) {
	if len(paths) == 0 {
		return nil, domain.NewConfigError("no input files supplied")
	}

	ds := &domain.Dataset{ID: uuid.New().String()}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		stop := logger.Timed("read " + filepath.Base(path))
		records, err := r.readFile(path)
		stop()
		if err != nil {
			return nil, err
		}

		ds.Records = append(ds.Records, records...)
		ds.Sources = append(ds.Sources, domain.SourceInfo{Path: path, Rows: len(records)})
		logger.Debug("%s: %d rows", filepath.Base(path), len(records))
	}

	logger.Info("loaded %d rows from %d files (dataset %s)", ds.Len(), len(ds.Sources), ds.ID)
	return ds, nil
}

func (r *Reader) readFile(path string) ([]domain.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, accessError(path, err)
	}

	text, err := decode(path, raw)
	if err != nil {
		return nil, err
	}

	return parseRows(path, text)
}

// decode attempts UTF-8 first and falls back to CP1251. A file valid
// under neither encoding fails as a unit.
func decode(path string, raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return string(raw), nil
	}

	logger.Debug("%s: not valid UTF-8, retrying as CP1251", filepath.Base(path))
	decoded, err := charmap.Windows1251.NewDecoder().Bytes(raw)
	if err != nil || bytes.ContainsRune(decoded, utf8.RuneError) {
		return "", domain.NewEncodingError(path, "file is neither valid UTF-8 nor CP1251")
	}
	return string(decoded), nil
}

func accessError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return domain.NewAccessError(path, "file not found")
	case errors.Is(err, fs.ErrPermission):
		return domain.NewAccessError(path, "file is not readable")
	default:
		return domain.NewAccessError(path, "%v", err)
	}
}

// parseRows validates the header and converts each data row into a
// Product. Row numbers in errors are 1-based over data rows.
func parseRows(path, text string) ([]domain.Product, error) {
	cr := csv.NewReader(strings.NewReader(text))
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, domain.NewSchemaError(path, "missing header row")
	}
	if err != nil {
		return nil, domain.NewSchemaError(path, "unreadable header: %v", err)
	}

	cols, err := mapHeader(path, header)
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domain.NewDataError(path, row, "", "malformed CSV row: %v", err)
		}

		p, err := parseRecord(path, row, cols, record)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// mapHeader matches the header against the required schema and
// returns canonical column name -> index. Order is flexible, casing
// is ignored, but the set must be exact.
func mapHeader(path string, header []string) (map[string]int, error) {
	cols := make(map[string]int, len(requiredColumns))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if !isRequiredColumn(key) {
			return nil, domain.NewSchemaError(path, "unexpected column %q", strings.TrimSpace(h))
		}
		if _, dup := cols[key]; dup {
			return nil, domain.NewSchemaError(path, "duplicate column %q", key)
		}
		cols[key] = i
	}

	for _, required := range requiredColumns {
		if _, ok := cols[required]; !ok {
			return nil, domain.NewSchemaError(path, "required column %q not found", required)
		}
	}
	return cols, nil
}

func isRequiredColumn(name string) bool {
	for _, c := range requiredColumns {
		if c == name {
			return true
		}
	}
	return false
}

func parseRecord(path string, row int, cols map[string]int, record []string) (domain.Product, error) {
	name := strings.TrimSpace(field(record, cols["name"]))
	if name == "" {
		return domain.Product{}, domain.NewDataError(path, row, "name", "empty product name")
	}

	brand := normalizeBrand(field(record, cols["brand"]))
	if brand == "" {
		return domain.Product{}, domain.NewDataError(path, row, "brand", "empty brand")
	}

	price, err := parsePrice(path, row, field(record, cols["price"]))
	if err != nil {
		return domain.Product{}, err
	}

	rating, err := parseRating(path, row, field(record, cols["rating"]))
	if err != nil {
		return domain.Product{}, err
	}

	return domain.Product{Name: name, Brand: brand, Price: price, Rating: rating}, nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
