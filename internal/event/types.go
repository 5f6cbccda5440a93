// internal/event/types.go
package event

import "go-vr-scene/internal/types"

const (
	CursorClick          EventType = "CursorClick"          // клик курсором по сущности
	CursorEnter          EventType = "CursorEnter"          // курсор навёлся на сущность
	CursorLeave          EventType = "CursorLeave"          // курсор ушёл с сущности
	ColorChangeRequested EventType = "ColorChangeRequested" // клавиша или HUD
	ColorChanged         EventType = "ColorChanged"         // состояние уже обновлено
	Paused               EventType = "Paused"
	Resumed              EventType = "Resumed"
	ConfigReloaded       EventType = "ConfigReloaded"
)

// CursorData is the payload of the cursor events.
type CursorData struct {
	Target types.EntityID
	// Fused is true when the click came from the fuse timer.
	Fused bool
}

// ColorData is the payload of ColorChanged.
type ColorData struct {
	From, To string
}
