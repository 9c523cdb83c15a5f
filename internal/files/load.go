package files

import "os"

// LoadText reads the whole file at path as text.
// The second result is false when the file is missing or unreadable.
func LoadText(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}
