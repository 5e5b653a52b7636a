package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the touch area of a falling entity in the resolv space.
type ObjectData struct {
	*resolv.Object
}

// Contains reports whether a point lies inside the object's box.
func (o *ObjectData) Contains(x, y float64) bool {
	return x >= o.X && x <= o.X+o.W && y >= o.Y && y <= o.Y+o.H
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
