package tags

import "github.com/yohamta/donburi"

var (
	Harmful    = donburi.NewTag().SetName("Harmful")
	Beneficial = donburi.NewTag().SetName("Beneficial")
	Hazard     = donburi.NewTag().SetName("Hazard")
	Effect     = donburi.NewTag().SetName("Effect")
	Session    = donburi.NewTag().SetName("Session")
)

// Resolv tags for touch hit-testing
const (
	ResolvFalling    = "falling"
	ResolvHarmful    = "harmful"
	ResolvBeneficial = "beneficial"
	ResolvHazard     = "hazard"
)
