package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform holds an object's local position, rotation and scale, plus its
// place in the parent/child hierarchy.
type Transform struct {
	BaseComponent
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
	Parent   *Transform
	Children []*Transform
}

// NewTransform returns an identity transform.
func NewTransform() *Transform {
	return &Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func (t *Transform) SetPosition(pos mgl32.Vec3) {
	t.Position = pos
}

func (t *Transform) SetRotation(rot mgl32.Quat) {
	t.Rotation = rot
}

func (t *Transform) SetScale(scale mgl32.Vec3) {
	t.Scale = scale
}

func (t *Transform) Translate(delta mgl32.Vec3) {
	t.Position = t.Position.Add(delta)
}

func (t *Transform) Rotate(axis mgl32.Vec3, angle float32) {
	t.Rotation = t.Rotation.Mul(mgl32.QuatRotate(angle, axis))
}

// SetParent reparents this transform, maintaining both child lists.
// A nil parent detaches the transform to the hierarchy root.
func (t *Transform) SetParent(parent *Transform) {
	if t.Parent == parent || parent == t {
		return
	}
	if t.Parent != nil {
		t.Parent.removeChild(t)
	}
	t.Parent = parent
	if parent != nil {
		parent.Children = append(parent.Children, t)
	}
}

func (t *Transform) removeChild(child *Transform) {
	for i, c := range t.Children {
		if c == child {
			t.Children = append(t.Children[:i], t.Children[i+1:]...)
			return
		}
	}
}

// LocalMatrix returns the local TRS matrix.
// Matrices multiply right-to-left: scale first, then rotate, then translate.
func (t *Transform) LocalMatrix() mgl32.Mat4 {
	scaleMatrix := mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2])
	rotationMatrix := t.Rotation.Mat4()
	translationMatrix := mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2])
	return translationMatrix.Mul4(rotationMatrix).Mul4(scaleMatrix)
}

// WorldMatrix returns the composed local-to-world matrix including all
// ancestor transforms.
func (t *Transform) WorldMatrix() mgl32.Mat4 {
	local := t.LocalMatrix()
	if t.Parent == nil {
		return local
	}
	return t.Parent.WorldMatrix().Mul4(local)
}

// LocalToWorld transforms a point from this transform's local space into
// world space.
func (t *Transform) LocalToWorld(point mgl32.Vec3) mgl32.Vec3 {
	return t.WorldMatrix().Mul4x1(point.Vec4(1)).Vec3()
}

// WorldToLocal transforms a world-space point into this transform's local
// space.
func (t *Transform) WorldToLocal(point mgl32.Vec3) mgl32.Vec3 {
	return t.WorldMatrix().Inv().Mul4x1(point.Vec4(1)).Vec3()
}

func (t *Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

func (t *Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

func (t *Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}
