package bank

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile loads a bank from disk. Files ending in .json use the JSON
// format; everything else is parsed as delimited text.
func ReadFile(path string) (Bank, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: no file given", ErrInvalidFile)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidFile, filepath.Base(path))
	}
	return Decode(path, data)
}

// Decode picks the format from name's extension and loads data.
func Decode(name string, data []byte) (Bank, error) {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return LoadJSON(data)
	}
	return LoadText(string(data))
}
