// internal/system/look.go
package system

import (
	"math"

	"go-vr-scene/internal/config"
	"go-vr-scene/internal/entity"
	"go-vr-scene/internal/input"
	"go-vr-scene/internal/utils"
)

const maxPitch = math.Pi / 2

// LookSystem turns the active camera with the mouse while look is held.
type LookSystem struct {
	ecs         *entity.ECS
	sensitivity float32
}

func NewLookSystem(ecs *entity.ECS, sensitivity float32) *LookSystem {
	if sensitivity <= 0 {
		sensitivity = config.LookSensitivity
	}
	return &LookSystem{ecs: ecs, sensitivity: sensitivity}
}

// SetSensitivity changes the radians-per-pixel factor. Non-positive values are ignored.
func (s *LookSystem) SetSensitivity(v float32) {
	if v > 0 {
		s.sensitivity = v
	}
}

func (s *LookSystem) Update(in input.Frame) {
	cam, _, ok := s.ecs.Camera()
	if !ok || !cam.LookControls || !in.Look {
		return
	}
	if in.MouseDX == 0 && in.MouseDY == 0 {
		return
	}
	cam.Yaw = utils.NormalizeAngle(cam.Yaw - in.MouseDX*s.sensitivity)
	pitch := cam.Pitch - in.MouseDY*s.sensitivity
	if pitch > maxPitch {
		pitch = maxPitch
	} else if pitch < -maxPitch {
		pitch = -maxPitch
	}
	cam.Pitch = pitch
}
