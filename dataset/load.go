package dataset

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/xyproto/unzip"
)

// Load reads a delimited P&L file and parses it. Compressed exports are
// handled transparently: .gz and .xz streams are decompressed in place,
// .zip archives are extracted and the first delimited file inside is
// used.
func Load(path string) (*Result, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return loadCompressed(path, func(r io.Reader) (io.Reader, error) {
			return gzip.NewReader(r)
		})
	case ".xz":
		return loadCompressed(path, func(r io.Reader) (io.Reader, error) {
			return xz.NewReader(r)
		})
	case ".zip":
		return loadZip(path)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return Parse(string(data))
	}
}

func loadCompressed(path string, wrap func(io.Reader) (io.Reader, error)) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r, err := wrap(f)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}
	return Parse(string(data))
}

func loadZip(path string) (*Result, error) {
	dir, err := os.MkdirTemp("", "scaler-zip-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	if err := unzip.Extract(path, dir); err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}

	var found string
	err = filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || found != "" {
			return err
		}
		switch strings.ToLower(filepath.Ext(p)) {
		case ".csv", ".tsv", ".txt":
			found = p
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == "" {
		return nil, &ParseError{Reason: fmt.Sprintf("no delimited file found inside %s", path)}
	}

	data, err := os.ReadFile(found)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}
