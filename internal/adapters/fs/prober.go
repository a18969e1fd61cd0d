package fs

import "os"

// Exists reports whether path names an existing regular file.
// It satisfies ports.FileProber through ports.FileProberFunc.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
