package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewTransformIdentity(t *testing.T) {
	tr := NewTransform()

	if tr.Position != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("Expected position (0,0,0), got %v", tr.Position)
	}
	if tr.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Expected scale (1,1,1), got %v", tr.Scale)
	}
	if tr.LocalMatrix() != mgl32.Ident4() {
		t.Errorf("Expected identity local matrix, got %v", tr.LocalMatrix())
	}
}

func TestTransformTranslate(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(mgl32.Vec3{5, 5, 5})
	tr.Translate(mgl32.Vec3{1, 2, 3})

	if tr.Position != (mgl32.Vec3{6, 7, 8}) {
		t.Errorf("Expected position (6,7,8), got %v", tr.Position)
	}
}

func TestWorldToLocalIdentity(t *testing.T) {
	tr := NewTransform()

	p := tr.WorldToLocal(mgl32.Vec3{1, 2, 3})
	if p != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Identity transform must not move the point, got %v", p)
	}
}

func TestWorldToLocalTranslated(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(mgl32.Vec3{10, 0, 0})

	p := tr.WorldToLocal(mgl32.Vec3{10, 0, 0})
	if p != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("Expected local origin, got %v", p)
	}
}

func TestLocalToWorldRoundTrip(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(mgl32.Vec3{3, -2, 7})
	tr.SetScale(mgl32.Vec3{2, 2, 2})
	tr.Rotate(mgl32.Vec3{0, 1, 0}, mgl32.DegToRad(30))

	world := tr.LocalToWorld(mgl32.Vec3{1, 2, 3})
	back := tr.WorldToLocal(world)

	if !back.ApproxEqualThreshold(mgl32.Vec3{1, 2, 3}, 1e-5) {
		t.Errorf("Round trip drifted: got %v", back)
	}
}

func TestWorldMatrixComposesParent(t *testing.T) {
	parent := NewTransform()
	parent.SetPosition(mgl32.Vec3{10, 0, 0})

	child := NewTransform()
	child.SetPosition(mgl32.Vec3{0, 5, 0})
	child.SetParent(parent)

	world := child.LocalToWorld(mgl32.Vec3{0, 0, 0})
	if world != (mgl32.Vec3{10, 5, 0}) {
		t.Errorf("Expected child origin at (10,5,0), got %v", world)
	}
}

func TestWorldToLocalThroughParentScale(t *testing.T) {
	parent := NewTransform()
	parent.SetScale(mgl32.Vec3{2, 2, 2})

	child := NewTransform()
	child.SetParent(parent)

	p := child.WorldToLocal(mgl32.Vec3{4, 0, 0})
	if !p.ApproxEqualThreshold(mgl32.Vec3{2, 0, 0}, 1e-5) {
		t.Errorf("Expected (2,0,0) under parent scale, got %v", p)
	}
}

func TestSetParentMaintainsChildren(t *testing.T) {
	parent := NewTransform()
	other := NewTransform()
	child := NewTransform()

	child.SetParent(parent)
	if len(parent.Children) != 1 || parent.Children[0] != child {
		t.Fatalf("Expected one child on parent, got %v", parent.Children)
	}

	child.SetParent(other)
	if len(parent.Children) != 0 {
		t.Errorf("Expected old parent to drop the child, got %d children", len(parent.Children))
	}
	if len(other.Children) != 1 {
		t.Errorf("Expected new parent to gain the child, got %d children", len(other.Children))
	}

	child.SetParent(nil)
	if child.Parent != nil || len(other.Children) != 0 {
		t.Error("Expected detach to root")
	}
}
