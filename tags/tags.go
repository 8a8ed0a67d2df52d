package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Bot      = donburi.NewTag().SetName("Bot")
	Obstacle = donburi.NewTag().SetName("Obstacle")
	Field    = donburi.NewTag().SetName("Field")
)
