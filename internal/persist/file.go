package persist

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"lifegrid/internal/core"
)

// DefaultPath is the snapshot file used by the interactive frontends.
const DefaultPath = "saved_game_state"

// Replacer installs a whole grid at once.
type Replacer interface {
	Size() core.Size
	ReplaceAll(g *core.Grid) error
}

// Save writes g to path, replacing any existing file. The data is written to a
// temporary file in the same directory and renamed into place, so a failed
// save never leaves a truncated snapshot behind.
func Save(path string, g *core.Grid) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w: %w", dir, ErrIO, err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	if err := Encode(tmp, g, time.Now()); err != nil {
		cleanup()
		if !errors.Is(err, ErrIO) {
			err = fmt.Errorf("%w: %w", ErrIO, err)
		}
		return fmt.Errorf("saving %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		cleanup()
		return fmt.Errorf("setting mode on %s: %w: %w", tmpName, ErrIO, err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("syncing %s: %w: %w", tmpName, ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w: %w", tmpName, ErrIO, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming into %s: %w: %w", path, ErrIO, err)
	}
	return nil
}

// Read decodes the snapshot at path. A non-nil want enforces its dimensions.
func Read(path string, want *core.Size) (*core.Grid, Header, error) {
	f, err := open(path)
	if err != nil {
		return nil, Header{}, err
	}
	defer f.Close()

	g, header, err := Decode(f, want)
	if err != nil {
		return nil, header, fmt.Errorf("loading %s: %w", path, err)
	}
	return g, header, nil
}

// ReadHeader reads only the header line of the snapshot at path.
func ReadHeader(path string) (Header, error) {
	f, err := open(path)
	if err != nil {
		return Header{}, err
	}
	defer f.Close()

	header, err := readHeader(bufio.NewReader(f))
	if err != nil {
		return Header{}, fmt.Errorf("reading header of %s: %w", path, err)
	}
	return header, nil
}

// Load reads the snapshot at path and installs it into dst. On any error dst
// is left untouched.
func Load(path string, dst Replacer) (Header, error) {
	want := dst.Size()
	g, header, err := Read(path, &want)
	if err != nil {
		return header, err
	}
	if err := dst.ReplaceAll(g); err != nil {
		return header, fmt.Errorf("installing %s: %w", path, err)
	}
	return header, nil
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("opening %s: %w", path, ErrFileNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w: %w", path, ErrIO, err)
	}
	return f, nil
}
