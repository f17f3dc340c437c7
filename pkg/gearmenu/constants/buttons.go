package constants

// VirtualButton is a logical button, independent of the physical device that produced it.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonL2
	VirtualButtonR1
	VirtualButtonR2
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu

	// VirtualButtonCount is the size of a button snapshot. Keep it last.
	VirtualButtonCount
)

var buttonNames = map[VirtualButton]string{
	VirtualButtonUnassigned: "Unassigned",
	VirtualButtonUp:         "Up",
	VirtualButtonDown:       "Down",
	VirtualButtonLeft:       "Left",
	VirtualButtonRight:      "Right",
	VirtualButtonA:          "A",
	VirtualButtonB:          "B",
	VirtualButtonX:          "X",
	VirtualButtonY:          "Y",
	VirtualButtonL1:         "L1",
	VirtualButtonL2:         "L2",
	VirtualButtonR1:         "R1",
	VirtualButtonR2:         "R2",
	VirtualButtonStart:      "Start",
	VirtualButtonSelect:     "Select",
	VirtualButtonMenu:       "Menu",
}

func (vb VirtualButton) GetName() string {
	if name, ok := buttonNames[vb]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether vb indexes a slot of a button snapshot.
func (vb VirtualButton) Valid() bool {
	return vb > VirtualButtonUnassigned && vb < VirtualButtonCount
}

func (vb VirtualButton) IsDirectional() bool {
	return vb == VirtualButtonUp || vb == VirtualButtonDown ||
		vb == VirtualButtonLeft || vb == VirtualButtonRight
}
