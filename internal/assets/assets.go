package assets

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/golang/glog"
)

//go:embed fallback
var fallbackFS embed.FS

// RequiredFiles are the files a usable front-end bundle must contain.
var RequiredFiles = []string{"index.html", "styles.css", "app.js", "updater.js"}

// Provider supplies the front-end asset tree served at /.
type Provider interface {
	// Assets returns the root of the servable tree.
	Assets() fs.FS
	// Name describes where the assets come from, for logging.
	Name() string
}

// Dir serves a front-end bundle from a directory on disk.
type Dir struct {
	dir string
}

func NewDir(dir string) *Dir {
	return &Dir{dir: dir}
}

func (d *Dir) Assets() fs.FS {
	return os.DirFS(d.dir)
}

func (d *Dir) Name() string {
	return "bundle " + d.dir
}

// Valid reports whether the directory holds every required file.
func (d *Dir) Valid() bool {
	for _, name := range RequiredFiles {
		if _, err := os.Stat(filepath.Join(d.dir, name)); err != nil {
			glog.Warningf("asset bundle at %s is missing %s", d.dir, name)
			return false
		}
	}
	return true
}

// Fallback serves the minimal embedded page used when no bundle is
// available, so the dashboard still answers on / instead of 404ing.
type Fallback struct{}

func (Fallback) Assets() fs.FS {
	sub, err := fs.Sub(fallbackFS, "fallback")
	if err != nil {
		// The embedded tree is fixed at build time.
		panic(err)
	}
	return sub
}

func (Fallback) Name() string {
	return "embedded fallback"
}

// Select returns the on-disk bundle when it is complete, otherwise the
// embedded fallback page.
func Select(dir string) Provider {
	d := NewDir(dir)
	if d.Valid() {
		return d
	}
	glog.Warningf("front-end bundle at %s missing or incomplete, serving the embedded fallback", dir)
	return Fallback{}
}
