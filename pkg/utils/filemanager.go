// =============================================================================
// Point-of-Sale Invoice Generator - File Manager Utility
// =============================================================================
//
// Small file-system helpers shared across the application: directory
// creation, existence checks and unique artifact names for intermediate
// files.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

// EnsureDir creates a directory (and parents) if it does not exist.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// UniqueFileName returns a collision-free file name composed of a prefix, a
// random UUID and an extension, e.g. "filled_invoice_3f2a....xlsx".
func UniqueFileName(prefix, ext string) string {
	return fmt.Sprintf("%s_%s%s", prefix, uuid.NewString(), ext)
}
