package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the screen-space hit-test space for on-screen controls
var Space = donburi.NewComponentType[resolv.Space]()
