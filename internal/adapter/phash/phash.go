// Package phash computes DCT based perceptual image fingerprints.
//
// The algorithm matches the widely used imagehash.phash: the image is
// reduced to 32x32 grayscale, a 2-D DCT-II is taken, and each of the 64
// lowest frequency coefficients becomes one bit, set when the coefficient
// is above their median. Bits are packed row-major, first bit highest.
package phash

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"os"
	"slices"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"adwatch/internal/core/domain"
)

const (
	hashSize   = 8
	sampleSize = hashSize * 4
)

var cosTable = func() [sampleSize][sampleSize]float64 {
	var t [sampleSize][sampleSize]float64
	for k := 0; k < sampleSize; k++ {
		for n := 0; n < sampleSize; n++ {
			t[k][n] = math.Cos(math.Pi * float64(k) * float64(2*n+1) / (2 * sampleSize))
		}
	}
	return t
}()

// Compute returns the fingerprint of img.
func Compute(img image.Image) domain.Fingerprint {
	small := image.NewGray(image.Rect(0, 0, sampleSize, sampleSize))
	draw.CatmullRom.Scale(small, small.Bounds(), toGray(img), img.Bounds(), draw.Src, nil)

	var px [sampleSize][sampleSize]float64
	for y := 0; y < sampleSize; y++ {
		for x := 0; x < sampleSize; x++ {
			px[y][x] = float64(small.GrayAt(x, y).Y)
		}
	}

	// Only the top-left hashSize x hashSize block is needed: rows first,
	// then columns of the partially transformed matrix.
	var rows [hashSize][sampleSize]float64
	for k := 0; k < hashSize; k++ {
		for x := 0; x < sampleSize; x++ {
			var sum float64
			for y := 0; y < sampleSize; y++ {
				sum += px[y][x] * cosTable[k][y]
			}
			rows[k][x] = sum
		}
	}
	low := make([]float64, 0, hashSize*hashSize)
	for k := 0; k < hashSize; k++ {
		for l := 0; l < hashSize; l++ {
			var sum float64
			for x := 0; x < sampleSize; x++ {
				sum += rows[k][x] * cosTable[l][x]
			}
			low = append(low, sum)
		}
	}

	med := median(low)
	var f domain.Fingerprint
	for i, v := range low {
		if v > med {
			f |= 1 << (domain.FingerprintBits - 1 - i)
		}
	}
	return f
}

// FromReader decodes a jpeg, png, gif or webp image and fingerprints it.
func FromReader(r io.Reader) (domain.Fingerprint, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return 0, fmt.Errorf("decode image: %w", err)
	}
	return Compute(img), nil
}

// FromFile fingerprints the image stored at path.
func FromFile(path string) (domain.Fingerprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return FromReader(bytes.NewReader(data))
}

// toGray converts img with the ITU-R 601-2 luma weights.
func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	g := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, gr, bl, _ := img.At(x, y).RGBA()
			l := ((r>>8)*19595 + (gr>>8)*38470 + (bl>>8)*7471 + 1<<15) >> 16
			g.Pix[g.PixOffset(x, y)] = uint8(l)
		}
	}
	return g
}

func median(v []float64) float64 {
	s := slices.Clone(v)
	slices.Sort(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}
