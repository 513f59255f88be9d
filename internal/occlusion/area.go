// Package occlusion holds the occlusion-area component and the tooling that
// keeps it in step with renderer bounds.
package occlusion

import (
	"OccluSync/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Area describes the volume the culling system may hide geometry behind.
// Size is a full extent vector; Center is expressed in the owning object's
// local space. Both fields are written only by the sync tooling.
type Area struct {
	scene.BaseComponent
	Size   mgl32.Vec3
	Center mgl32.Vec3
}

// NewArea creates an empty occlusion area.
func NewArea() *Area {
	return &Area{}
}

// AreaOf resolves the Area component on an object, or nil.
func AreaOf(obj *scene.GameObject) *Area {
	if obj == nil {
		return nil
	}
	for _, comp := range obj.Components {
		if a, ok := comp.(*Area); ok {
			return a
		}
	}
	return nil
}
