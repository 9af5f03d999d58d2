// Package assets holds the stylesheet and script served under /assets/.
package assets

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"strings"
)

//go:embed static
var embedded embed.FS

// FS returns the embedded asset tree rooted at static/.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		panic(err)
	}

	return sub
}

// Open returns dir as an asset tree, or the embedded tree when dir is empty.
func Open(dir string) (fs.FS, error) {
	if dir == "" {
		return FS(), nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: errors.New("not a directory")}
	}

	return os.DirFS(dir), nil
}

// Exists reports whether the asset addressed by the URL path p is present.
// prefix is the URL prefix the tree is mounted on.
func Exists(fsys fs.FS, prefix, p string) bool {
	name, ok := strings.CutPrefix(p, prefix+"/")
	if !ok || !fs.ValidPath(name) {
		return false
	}

	info, err := fs.Stat(fsys, name)

	return err == nil && !info.IsDir()
}
