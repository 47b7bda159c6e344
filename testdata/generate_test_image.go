// Test image generator for creating a sample source image for favicon export
package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

func main() {
	// A 512x512 opaque house: sky, wall, roof and door
	size := 512
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	sky := color.NRGBA{R: 135, G: 206, B: 235, A: 255}
	wall := color.NRGBA{R: 222, G: 184, B: 135, A: 255}
	roof := color.NRGBA{R: 178, G: 34, B: 34, A: 255}
	door := color.NRGBA{R: 101, G: 67, B: 33, A: 255}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := sky
			switch {
			case y >= 256 && y < 480 && x >= 96 && x < 416:
				c = wall
				if x >= 224 && x < 288 && y >= 352 {
					c = door
				}
			case y >= 96 && y < 256:
				// Roof triangle, apex at (256, 96)
				half := (y - 96) * 180 / 160
				if x >= 256-half && x < 256+half {
					c = roof
				}
			}
			img.SetNRGBA(x, y, c)
		}
	}

	file, err := os.Create("testdata/house.png")
	if err != nil {
		panic(err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		panic(err)
	}

	println("Test image created: testdata/house.png")
}
