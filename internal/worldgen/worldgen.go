// Package worldgen builds the procedural demo scene the runtime host and
// the batch tooling run against.
package worldgen

import (
	"fmt"

	"OccluSync/internal/config"
	"OccluSync/internal/logger"
	"OccluSync/internal/occlusion"
	"OccluSync/internal/render"
	"OccluSync/internal/scene"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	perlinAlpha  = 2.0
	perlinBeta   = 2.0
	perlinOctave = 3
)

// Build scatters cube objects over a Perlin heightfield and attaches the
// full occlusion component set (MeshRenderer + Area + AreaSync) to each,
// parented under a single root object. Returns the root.
func Build(sc *scene.Scene, cfg config.SceneConfig) *scene.GameObject {
	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctave, cfg.Seed)

	root := scene.NewGameObject("Terrain")
	sc.Add(root)

	cube := render.NewCubeMesh(2.0)

	count := 0
	for x := 0; x < cfg.GridSize; x++ {
		for z := 0; z < cfg.GridSize; z++ {
			height := noise.Noise2D(float64(x)*cfg.NoiseScale, float64(z)*cfg.NoiseScale)

			obj := scene.NewGameObject(fmt.Sprintf("Block_%d_%d", x, z))
			obj.Tag = "terrain"
			obj.Transform.SetPosition(mgl32.Vec3{
				float32(x) * cfg.Spacing,
				float32(height * cfg.HeightScale),
				float32(z) * cfg.Spacing,
			})
			obj.Transform.SetParent(root.Transform)

			obj.AddComponent(render.NewMeshRenderer(cube))
			obj.AddComponent(occlusion.NewArea())
			obj.AddComponent(occlusion.NewAreaSync())

			if cfg.InactiveRate > 0 && count%cfg.InactiveRate == cfg.InactiveRate-1 {
				obj.SetActive(false)
			}

			sc.Add(obj)
			count++
		}
	}

	logger.Log.Info("Demo scene generated",
		zap.Int("objects", count),
		zap.Int64("seed", cfg.Seed))

	return root
}
