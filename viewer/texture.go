package viewer

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// LoadTexture decodes an Earth texture image and mirrors it horizontally.
//
// The mirror matches the x-axis inversion in geo.Project: the projection
// flips east and west, so the texture flips with it and the two stay in
// the same handedness. Callers treat an error as "no texture" and keep
// rendering.
func LoadTexture(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}
	return mirrorHorizontal(img), nil
}

// mirrorHorizontal returns src flipped left-to-right as RGBA.
func mirrorHorizontal(src image.Image) *image.RGBA {
	b := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)

	w := rgba.Bounds().Dx()
	h := rgba.Bounds().Dy()
	for y := 0; y < h; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+w*4]
		for x := 0; x < w/2; x++ {
			l := x * 4
			r := (w - 1 - x) * 4
			for k := 0; k < 4; k++ {
				row[l+k], row[r+k] = row[r+k], row[l+k]
			}
		}
	}
	return rgba
}
