package galaxy

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/webp"
)

// DefaultAssetPattern matches every texture the loader can decode.
const DefaultAssetPattern = "**/*.{png,jpg,jpeg,webp}"

// AssetLoader decodes textures from a file system, one per Step, so a
// large set never stalls a frame. Progress is reported through a
// LoadTracker, which gates the camera and drives the preloader.
type AssetLoader struct {
	fsys    fs.FS
	tracker *LoadTracker
	pending []string
	images  map[string]*ebiten.Image
	errs    map[string]error

	// upload turns a decoded image into a GPU texture.
	upload func(image.Image) *ebiten.Image
}

// NewAssetLoader creates a loader reading from fsys. A nil fsys loads
// nothing and leaves the tracker untouched.
func NewAssetLoader(fsys fs.FS, tracker *LoadTracker) *AssetLoader {
	return &AssetLoader{
		fsys:    fsys,
		tracker: tracker,
		images:  make(map[string]*ebiten.Image),
		errs:    make(map[string]error),
		upload:  ebiten.NewImageFromImage,
	}
}

// QueueGlob queues every file matching a doublestar pattern, such as
// "textures/**/*.webp". It returns the number of files queued.
func (l *AssetLoader) QueueGlob(pattern string) (int, error) {
	if l.fsys == nil {
		return 0, nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return 0, fmt.Errorf("asset pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	matches, err := doublestar.Glob(l.fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return 0, fmt.Errorf("glob %q: %w", pattern, err)
	}
	slices.Sort(matches)
	return l.Queue(matches...), nil
}

// Queue adds paths to the load queue, skipping duplicates and paths already
// loaded. It returns the number of paths added.
func (l *AssetLoader) Queue(paths ...string) int {
	if l.fsys == nil {
		return 0
	}
	n := 0
	for _, p := range paths {
		if p == "" {
			continue
		}
		p = path.Clean(p)
		if _, ok := l.images[p]; ok || slices.Contains(l.pending, p) {
			continue
		}
		l.pending = append(l.pending, p)
		n++
	}
	l.tracker.Add(n)
	return n
}

// Step decodes the next queued file. It reports whether anything was left
// to do. Decode failures are recorded and counted as finished.
func (l *AssetLoader) Step() bool {
	if len(l.pending) == 0 {
		return false
	}
	p := l.pending[0]
	l.pending = l.pending[1:]

	img, err := l.decode(p)
	if err != nil {
		l.errs[p] = err
	} else {
		l.images[p] = l.upload(img)
	}
	l.tracker.Done(err)
	return true
}

func (l *AssetLoader) decode(p string) (image.Image, error) {
	f, err := l.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", p, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", p, err)
	}
	return img, nil
}

// Image returns the texture loaded from p.
func (l *AssetLoader) Image(p string) (*ebiten.Image, bool) {
	if p == "" {
		return nil, false
	}
	img, ok := l.images[path.Clean(p)]
	return img, ok
}

// Err returns the load error recorded for p, if any.
func (l *AssetLoader) Err(p string) error {
	return l.errs[path.Clean(p)]
}

// Pending returns the number of files still queued.
func (l *AssetLoader) Pending() int {
	return len(l.pending)
}
