package cleaner

import (
	"path/filepath"
	"strings"
)

// Suffix is inserted before the input's extension to name the output file.
const Suffix = "_cleaned"

// OutputPath derives the output file path for input: notes.txt becomes
// notes_cleaned.txt and data becomes data_cleaned. Leading dots of the base
// name are not treated as an extension separator, so .profile becomes
// .profile_cleaned.
func OutputPath(input string) string {
	base := filepath.Base(input)
	ext := filepath.Ext(strings.TrimLeft(base, "."))
	return input[:len(input)-len(ext)] + Suffix + ext
}
