//go:build !unix

package configmanager

// checkWritable is a no-op on systems without access(2); a failing write
// is still reported by Save.
func checkWritable(dir string) error {
	return nil
}
