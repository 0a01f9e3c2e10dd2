package dbg

import (
	"image"
	"image/png"
	"os"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Print an image in the terminal (iTerm only) when Mode is Draw. Otherwise
// this does nothing.
func Show(img image.Image) {
	if Mode < Draw {
		return
	}
	f, err := os.CreateTemp("", "interpol-*.png")
	if err != nil {
		Printf("%s %v", aurora.Red("could not create debug image:"), err)
		return
	}
	defer os.Remove(f.Name())

	err = png.Encode(f, img)
	f.Close()
	if err != nil {
		Printf("%s %v", aurora.Red("could not encode debug image:"), err)
		return
	}
	imgcat.CatFile(f.Name(), os.Stdout)
}
