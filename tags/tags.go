package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Solid  = donburi.NewTag().SetName("Solid")
)
