package tags

import "github.com/yohamta/donburi"

var (
	Fighter = donburi.NewTag().SetName("Fighter")
	Arena   = donburi.NewTag().SetName("Arena")
	Clock   = donburi.NewTag().SetName("Clock")
)

// Resolv tags for arena collision
const (
	ResolvWall    = "wall"
	ResolvFighter = "fighter"
)
