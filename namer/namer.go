// Package namer computes non-colliding output file names.
package namer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Exists reports whether a file already occupies the given path.
type Exists func(path string) bool

// OnDisk is the default Exists predicate, backed by os.Stat.
func OnDisk(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Next returns the desired path when unused, otherwise the first
// "<stem>_N<ext>" variant the predicate reports as free. Not safe against
// concurrent callers racing on the same name.
func Next(desired string, exists Exists) string {
	if !exists(desired) {
		return desired
	}

	ext := filepath.Ext(desired)
	stem := strings.TrimSuffix(desired, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, n, ext)
		if !exists(candidate) {
			return candidate
		}
	}
}
