package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"

	"golang.org/x/image/bmp"

	"github.com/automoto/rario/config"
)

// ColorKey is the colour treated as transparent in sprite bitmaps.
var ColorKey = config.Magenta

// LoadSprite decodes a BMP and clears every pixel matching ColorKey.
func LoadSprite(path string) (*image.NRGBA, error) {
	fsys, name := Resolve(path)
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open sprite %s: %w", path, err)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", path, err)
	}
	return applyColorKey(img, ColorKey), nil
}

// LoadImage decodes any registered format (BMP or PNG) without a colour key.
func LoadImage(path string) (image.Image, error) {
	fsys, name := Resolve(path)
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

func applyColorKey(src image.Image, key color.RGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)

	for i := 0; i < len(dst.Pix); i += 4 {
		p := dst.Pix[i : i+4 : i+4]
		if p[0] == key.R && p[1] == key.G && p[2] == key.B {
			p[0], p[1], p[2], p[3] = 0, 0, 0, 0
		}
	}
	return dst
}
