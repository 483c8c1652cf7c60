package storage

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/types"
)

const (
	catalogFile  = "listings.json"
	snapshotFile = "catalog-v1.gz"
)

// ErrNotArray is returned when the catalog file does not hold a JSON array.
// Callers surface it as the explicit "no data" state instead of crashing.
var ErrNotArray = errors.New("catalog input is not an array")

type DiskStorage struct {
	Dir string
}

func NewDiskStorage(dir string) *DiskStorage {
	return &DiskStorage{Dir: dir}
}

func (d *DiskStorage) fileName(name string) string {
	return filepath.Join(d.Dir, name)
}

// LoadCatalog reads the listings catalog JSON. Listings with missing
// optional fields are kept, records without an id or with non-positive
// price or area are dropped.
func (d *DiskStorage) LoadCatalog() ([]types.Listing, error) {
	data, err := os.ReadFile(d.fileName(catalogFile))
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}
	var items []types.Listing
	if err := sonic.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	return sanitize(items), nil
}

func sanitize(items []types.Listing) []types.Listing {
	out := make([]types.Listing, 0, len(items))
	for _, l := range items {
		if l.Id == "" || l.PricePerSqft <= 0 || l.TotalSqft <= 0 {
			continue
		}
		if l.Amenities == nil {
			l.Amenities = []string{}
		}
		out = append(out, l)
	}
	return out
}

// SaveSnapshot writes a gzipped gob snapshot of the catalog, using a tmp
// file and rename so a crash never leaves a half-written snapshot.
func (d *DiskStorage) SaveSnapshot(items []types.Listing) error {
	path := d.fileName(snapshotFile)
	file, err := os.Create(path + ".tmp")
	if err != nil {
		return err
	}
	zipWriter := gzip.NewWriter(file)
	enc := gob.NewEncoder(zipWriter)
	if err = enc.Encode(items); err != nil {
		file.Close()
		return err
	}
	if err = zipWriter.Close(); err != nil {
		file.Close()
		return err
	}
	if err = file.Close(); err != nil {
		return err
	}
	return os.Rename(path+".tmp", path)
}

func (d *DiskStorage) LoadSnapshot() ([]types.Listing, error) {
	file, err := os.Open(d.fileName(snapshotFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()
	zipReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, err
	}
	defer zipReader.Close()
	var items []types.Listing
	if err = gob.NewDecoder(zipReader).Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}
