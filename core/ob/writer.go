package ob

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Marshal renders blocks as a pretty-printed JSON array, two-space indent.
// A nil slice still becomes [], never null: an empty month is an empty
// upload, not a broken one.
func Marshal(blocks []OB) ([]byte, error) {
	if blocks == nil {
		blocks = []OB{}
	}
	data, err := json.MarshalIndent(blocks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal blocks: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteFile writes blocks to path, creating or truncating it.
func WriteFile(path string, blocks []OB) (err error) {
	data, err := Marshal(blocks)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
