package migration

import (
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"
)

// File is one .sql script in the migrations directory.
type File struct {
	Name string
	Path string
	Md5  string
}

// List returns the .sql files in dir sorted by name.
func List(dir string) ([]File, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	files := make([]File, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		sum := md5.Sum(data)
		files = append(files, File{
			Name: filepath.Base(p),
			Path: p,
			Md5:  hex.EncodeToString(sum[:]),
		})
	}
	return files, nil
}
