package repository

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	apperrors "github.com/umalmyha/fraudwatch/internal/errors"
)

// readSnapshot decodes the whole JSON document at path into v. A missing file
// leaves v untouched so callers start from an empty collection. An existing
// but unparsable file is reported as CorruptDataErr.
func readSnapshot(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return apperrors.NewCorruptDataErr(path, err)
	}
	return nil
}

// writeSnapshot rewrites the whole document atomically: the new content goes
// to a temporary file first and replaces the original via rename, so no reader
// ever observes a half-written file.
func writeSnapshot(path string, v any) error {
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
