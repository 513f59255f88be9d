// Package render carries the renderer-side components the occlusion tooling
// reads from: meshes and their world-space bounds.
package render

import (
	"OccluSync/internal/geometry"
	"OccluSync/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// MeshRenderer exposes a mesh's world-space axis-aligned bounds. The box is
// recomputed lazily whenever the owning transform's world matrix changes.
type MeshRenderer struct {
	scene.BaseComponent
	Mesh *Mesh

	cached      geometry.Bounds
	cachedWorld mgl32.Mat4
	cacheValid  bool
}

// NewMeshRenderer creates a renderer for the given mesh.
func NewMeshRenderer(mesh *Mesh) *MeshRenderer {
	return &MeshRenderer{Mesh: mesh}
}

// Bounds returns the world-space AABB of the mesh under the owner's current
// transform. With no owner the mesh is bounded in model space; with no mesh
// the box is zero-sized at the owner's position.
func (r *MeshRenderer) Bounds() geometry.Bounds {
	world := mgl32.Ident4()
	if obj := r.GetGameObject(); obj != nil {
		world = obj.Transform.WorldMatrix()
	}

	if r.cacheValid && world == r.cachedWorld {
		return r.cached
	}

	if r.Mesh == nil || len(r.Mesh.Positions) == 0 {
		origin := world.Mul4x1(mgl32.Vec3{}.Vec4(1)).Vec3()
		r.cached = geometry.Bounds{Center: origin}
	} else {
		r.cached = geometry.FromPoints(r.Mesh.Positions).Transformed(world)
	}
	r.cachedWorld = world
	r.cacheValid = true
	return r.cached
}

// Invalidate drops the cached bounds, forcing a recompute on the next call.
// Needed after mutating the mesh's vertices in place.
func (r *MeshRenderer) Invalidate() {
	r.cacheValid = false
}

// MeshRendererOf resolves the MeshRenderer component on an object, or nil.
func MeshRendererOf(obj *scene.GameObject) *MeshRenderer {
	if obj == nil {
		return nil
	}
	for _, comp := range obj.Components {
		if r, ok := comp.(*MeshRenderer); ok {
			return r
		}
	}
	return nil
}
