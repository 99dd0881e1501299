package thumbnail

import (
	"context"
	"image"
)

// Loader defines the interface for the thumbnail service.
type Loader interface {
	// Fetch downloads and resizes the image at url, reporting any failure
	Fetch(ctx context.Context, url string) (image.Image, error)

	// Load is Fetch with failures logged and swallowed; it returns nil instead
	Load(ctx context.Context, url string) image.Image
}
