package fu

import (
	"go-ml.dev/pkg/iokit"
	"path/filepath"
)

/*
SnapshotPath returns s if it's absolute or the path of s in the go-ml datasets cache
*/
func SnapshotPath(s string) string {
	if filepath.IsAbs(s) {
		return s
	}
	return iokit.CacheFile(filepath.Join("go-ml", "Datasets", s))
}
