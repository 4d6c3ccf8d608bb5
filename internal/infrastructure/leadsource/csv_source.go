package leadsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase/interfaces"
)

// ImportedConfidence is assigned to rows from official directory exports.
const ImportedConfidence = 1.0

var ErrMissingColumn = errors.New("csv: missing required column")

// CSVSource reads a directory export with a header row. Columns are matched
// by name (nama_sppg, alamat, provinsi, kab_kota, kecamatan, desa, phone);
// nama_sppg and kab_kota are required.
type CSVSource struct {
	path string
	open func() (io.ReadCloser, error)
}

var _ interfaces.ILeadSource = (*CSVSource)(nil)

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{
		path: path,
		open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// NewCSVReaderSource reads from r once; used by tests and stdin imports.
func NewCSVReaderSource(name string, r io.Reader) *CSVSource {
	return &CSVSource{
		path: name,
		open: func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
	}
}

func (s *CSVSource) Name() string {
	return "csv:" + s.path
}

func (s *CSVSource) Discover(ctx context.Context) ([]entities.RawLead, error) {
	rc, err := s.open()
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer rc.Close()

	r := csv.NewReader(rc)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, required := range []string{"nama_sppg", "kab_kota"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	var out []entities.RawLead
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		if len(rec) != len(header) {
			continue
		}
		field := func(name string) string {
			if i, ok := cols[name]; ok {
				return strings.TrimSpace(rec[i])
			}
			return ""
		}
		out = append(out, entities.RawLead{
			Name:            field("nama_sppg"),
			Address:         field("alamat"),
			Province:        field("provinsi"),
			City:            field("kab_kota"),
			District:        field("kecamatan"),
			Village:         field("desa"),
			Phone:           field("phone"),
			ConfidenceScore: ImportedConfidence,
		})
	}
	return out, nil
}
