package components

import (
	"github.com/automoto/starfolio/shared/navigation"
	"github.com/yohamta/donburi"
)

type NavigationData struct {
	Engine    *navigation.Engine
	LastFrame navigation.Frame
}

var Navigation = donburi.NewComponentType[NavigationData]()
