package systems

import (
	"image"
	"math"

	cfg "github.com/automoto/toothfall/config"
)

func bands(width, height int) (header, drop int) {
	h := float64(height)
	header = int(math.Round(h * cfg.Layout.HeaderRatio))
	drop = int(math.Round(h * cfg.Layout.DropRatio))
	return header, drop
}

// HeaderBar is the strip holding the timer and score.
func HeaderBar(width, height int) image.Rectangle {
	header, _ := bands(width, height)
	return image.Rect(0, 0, width, header)
}

// DropZone is the screen rectangle falling entities move through. Its size is
// the play area handed to the round.
func DropZone(width, height int) image.Rectangle {
	header, drop := bands(width, height)
	return image.Rect(0, header, width, header+drop)
}

// TeethStrip is the strip under the drop zone that shows cleanliness.
func TeethStrip(width, height int) image.Rectangle {
	header, drop := bands(width, height)
	return image.Rect(0, header+drop, width, height)
}
