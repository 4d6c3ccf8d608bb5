package leadsource

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleSource(t *testing.T) {
	t.Run("embedded seed", func(t *testing.T) {
		leads, err := NewSampleSource("").Discover(context.Background())
		require.NoError(t, err)
		require.Len(t, leads, 8)
		assert.Equal(t, "Dapur MBG SDN 01 Menteng", leads[0].Name)
		assert.Equal(t, "081234567890", leads[0].Phone)
		assert.InDelta(t, 0.95, leads[0].ConfidenceScore, 1e-9)
		for _, l := range leads {
			assert.NotEmpty(t, l.Name)
			assert.NotEmpty(t, l.City)
		}
	})

	t.Run("seed file override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		require.NoError(t, os.WriteFile(path, []byte("leads:\n  - nama_sppg: Dapur X\n    kab_kota: Bandung\n"), 0o600))

		src := NewSampleSource(path)
		leads, err := src.Discover(context.Background())
		require.NoError(t, err)
		require.Len(t, leads, 1)
		assert.Equal(t, "Dapur X", leads[0].Name)
		assert.Equal(t, "seed:"+path, src.Name())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewSampleSource(filepath.Join(t.TempDir(), "nope.yaml")).Discover(context.Background())
		assert.Error(t, err)
	})
}

func TestCSVSource(t *testing.T) {
	t.Run("maps columns by name", func(t *testing.T) {
		data := "kab_kota,nama_sppg,alamat,provinsi\n" +
			"Bandung,Dapur X,\"Jl. A, No. 1\",Jawa Barat\n" +
			"Surabaya,\"Dapur \"\"Y\"\"\",Jl. B,Jawa Timur\n" +
			"short,row\n"

		leads, err := NewCSVReaderSource("inline", strings.NewReader(data)).Discover(context.Background())
		require.NoError(t, err)
		require.Len(t, leads, 2)
		assert.Equal(t, "Dapur X", leads[0].Name)
		assert.Equal(t, "Bandung", leads[0].City)
		assert.Equal(t, "Jl. A, No. 1", leads[0].Address)
		assert.Equal(t, ImportedConfidence, leads[0].ConfidenceScore)
		assert.Equal(t, `Dapur "Y"`, leads[1].Name)
		assert.Empty(t, leads[1].Phone)
	})

	t.Run("required column missing", func(t *testing.T) {
		_, err := NewCSVReaderSource("inline", strings.NewReader("nama_sppg,alamat\nA,B\n")).Discover(context.Background())
		assert.True(t, errors.Is(err, ErrMissingColumn))
	})

	t.Run("file source", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "leads.csv")
		require.NoError(t, os.WriteFile(path, []byte("nama_sppg,kab_kota\nDapur Z,Medan\n"), 0o600))

		src := NewCSVSource(path)
		leads, err := src.Discover(context.Background())
		require.NoError(t, err)
		require.Len(t, leads, 1)
		assert.Equal(t, "csv:"+path, src.Name())
	})
}
