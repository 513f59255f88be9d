package render

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"OccluSync/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Mesh holds vertex positions in model space. That is all the occlusion
// tooling needs from a mesh; materials and index data stay with the host
// renderer.
type Mesh struct {
	Name      string
	Positions []mgl32.Vec3
}

// NewCubeMesh returns an axis-aligned cube of the given edge length,
// centered on the model-space origin.
func NewCubeMesh(size float32) *Mesh {
	h := size / 2
	return &Mesh{
		Name: "cube",
		Positions: []mgl32.Vec3{
			{-h, -h, -h}, {h, -h, -h}, {-h, h, -h}, {h, h, -h},
			{-h, -h, h}, {h, -h, h}, {-h, h, h}, {h, h, h},
		},
	}
}

// NewPlaneMesh returns a flat quad of the given width and depth on the XZ
// plane, centered on the model-space origin.
func NewPlaneMesh(width, depth float32) *Mesh {
	w := width / 2
	d := depth / 2
	return &Mesh{
		Name: "plane",
		Positions: []mgl32.Vec3{
			{-w, 0, -d}, {w, 0, -d}, {w, 0, d}, {-w, 0, d},
		},
	}
}

// LoadOBJ reads vertex positions ("v" records) from a Wavefront OBJ file.
// Faces, normals and texture coordinates are ignored; positions are enough
// to bound the mesh.
func LoadOBJ(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening obj file: %w", err)
	}
	defer file.Close()

	mesh := &Mesh{Name: path}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 || fields[0] != "v" {
			continue
		}
		var v mgl32.Vec3
		ok := true
		for i := 0; i < 3; i++ {
			f, err := strconv.ParseFloat(fields[i+1], 32)
			if err != nil {
				logger.Log.Error("Error parsing vertex", zap.String("file", path), zap.Error(err))
				ok = false
				break
			}
			v[i] = float32(f)
		}
		if ok {
			mesh.Positions = append(mesh.Positions, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading obj file: %w", err)
	}

	if len(mesh.Positions) == 0 {
		return nil, fmt.Errorf("obj file %s contains no vertices", path)
	}

	logger.Log.Debug("Mesh loaded",
		zap.String("file", path),
		zap.Int("vertices", len(mesh.Positions)))

	return mesh, nil
}
