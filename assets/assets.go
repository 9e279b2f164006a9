package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/rario/config"
	"github.com/automoto/rario/leveldata"
)

var (
	//go:embed all:res
	assetFS embed.FS
)

// FS returns the embedded resources.
func FS() fs.FS { return assetFS }

// Resolve picks where path is read from. Files that exist on disk win so
// maps and sprites can be swapped without rebuilding; anything else is
// looked up in the embedded resources.
func Resolve(path string) (fs.FS, string) {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return os.DirFS(filepath.Dir(path)), filepath.Base(path)
	}
	return assetFS, filepath.ToSlash(path)
}

// LoadLevel reads the configured map.
func LoadLevel(cfg *config.Config, path string) (*leveldata.Level, error) {
	if path == "" {
		return nil, errors.New("no map configured")
	}
	fsys, name := Resolve(path)
	lvl, err := leveldata.LoadLevel(fsys, name, cfg.World.TileSize, cfg.World.TileLayer)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return lvl, nil
}
