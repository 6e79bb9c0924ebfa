package airports

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads a dataset written by Save (or a raw list of API records).
func Load(path string) ([]Airport, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("airports: load %s: %w", path, err)
	}
	var out []Airport
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("airports: decode %s: %w", path, err)
	}

	return out, nil
}

// Save writes the airports to path as an indented record list. The file is
// written to a sibling temp file first and renamed into place.
func Save(path string, list []Airport) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("airports: save %s: %w", path, err)
	}
	tmp, err := os.CreateTemp(dir, ".airports-*.json")
	if err != nil {
		return fmt.Errorf("airports: save %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if list == nil {
		list = []Airport{}
	}
	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(list); err != nil {
		tmp.Close()
		return fmt.Errorf("airports: encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("airports: save %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("airports: save %s: %w", path, err)
	}

	return nil
}

// Refresh fetches the catalogue from url and stores it at path. Whatever was
// collected is saved even when the fetch stopped early; the fetch error is
// then returned alongside the count. Nothing fetched yields ErrNoData and the
// existing file is left alone.
func Refresh(ctx context.Context, c *Client, url, path string) (int, error) {
	list, fetchErr := c.FetchAll(ctx, url)
	if len(list) == 0 {
		if fetchErr != nil {
			return 0, fmt.Errorf("%w: %w", ErrNoData, fetchErr)
		}
		return 0, ErrNoData
	}
	if err := Save(path, list); err != nil {
		return 0, err
	}
	c.Logger.Info("airports saved", "path", path, "count", len(list))

	return len(list), fetchErr
}
