package systems

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// AppendTaps appends the screen points pressed this frame by mouse or touch.
func AppendTaps(dst []image.Point) []image.Point {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		dst = append(dst, image.Pt(x, y))
	}
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		dst = append(dst, image.Pt(x, y))
	}
	return dst
}

// ToPlayArea converts a screen point into drop-zone coordinates. Points
// outside the drop zone are rejected.
func ToPlayArea(p image.Point, width, height int) (x, y float64, ok bool) {
	zone := DropZone(width, height)
	if !p.In(zone) {
		return 0, 0, false
	}
	return float64(p.X - zone.Min.X), float64(p.Y - zone.Min.Y), true
}
