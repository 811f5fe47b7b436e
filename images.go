package inkpress

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	// Formats the image prober understands.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// ImageSizer probes intrinsic dimensions for images referenced by image
// directives, so fragments carry width/height without authors spelling them
// out. Only local paths under the static directory are probed; remote URLs
// are left without dimensions.
type ImageSizer struct {
	dir string
}

// NewImageSizer probes images below dir.
func NewImageSizer(dir string) *ImageSizer {
	return &ImageSizer{dir: dir}
}

// Size returns the dimensions of the image at src, or ok=false when src is
// remote, missing, or not a decodable image.
func (s *ImageSizer) Size(src string) (int, int, bool) {
	if strings.Contains(src, "://") || strings.HasPrefix(src, "//") {
		return 0, 0, false
	}
	rel := strings.TrimPrefix(src, "/")
	rel = strings.TrimPrefix(rel, "public/")
	f, err := os.Open(filepath.Join(s.dir, filepath.FromSlash(rel)))
	if err != nil {
		return 0, 0, false
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, false
	}
	return cfg.Width, cfg.Height, true
}
