package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// fallbackName is used for attachments the server reports without a name.
const fallbackName = "attachment.bin"

// uniquePath returns a path for name inside dir that does not exist yet,
// appending _1, _2, ... before the extension on collision. Only the base of
// name is used, so "../x" cannot escape dir.
func uniquePath(dir, name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		name = fallbackName
	}

	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		path = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
	}
}

// SaveAttachment writes data under dir without overwriting existing files.
// The directory is created if needed. Returns the path written.
func SaveAttachment(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	path := uniquePath(dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write attachment: %w", err)
	}
	return path, nil
}
