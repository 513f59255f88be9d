package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewCubeMesh(t *testing.T) {
	mesh := NewCubeMesh(2)

	if len(mesh.Positions) != 8 {
		t.Fatalf("Expected 8 corner vertices, got %d", len(mesh.Positions))
	}
	for _, p := range mesh.Positions {
		for i := 0; i < 3; i++ {
			if p[i] != 1 && p[i] != -1 {
				t.Errorf("Unexpected cube vertex %v", p)
			}
		}
	}
}

func TestNewPlaneMesh(t *testing.T) {
	mesh := NewPlaneMesh(4, 6)

	for _, p := range mesh.Positions {
		if p.Y() != 0 {
			t.Errorf("Plane vertex off the XZ plane: %v", p)
		}
	}
}

func TestLoadOBJ(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tri.obj")
	content := `# comment
v 0 0 0
v 1.5 0 0
v 0 2 0
vn 0 0 1
f 1 2 3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if len(mesh.Positions) != 3 {
		t.Fatalf("Expected 3 vertices, got %d", len(mesh.Positions))
	}
	if mesh.Positions[1] != (mgl32.Vec3{1.5, 0, 0}) {
		t.Errorf("Expected vertex (1.5,0,0), got %v", mesh.Positions[1])
	}
}

func TestLoadOBJMissingFile(t *testing.T) {
	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "nope.obj")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadOBJNoVertices(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.obj")
	if err := os.WriteFile(path, []byte("# nothing here\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOBJ(path); err == nil {
		t.Error("Expected error for OBJ without vertices")
	}
}
