package occlusion

import (
	"OccluSync/internal/logger"
	"OccluSync/internal/render"
	"OccluSync/internal/scene"

	"go.uber.org/zap"
)

// AreaSync copies the owner's MeshRenderer world bounds onto its Area:
// size verbatim, center converted into the owner's local space. It fires
// automatically when the owner becomes active, and on demand through
// SyncNow. Capability references are resolved fresh on every invocation;
// nothing is cached between calls.
type AreaSync struct {
	scene.BaseComponent
}

// NewAreaSync creates the sync component.
func NewAreaSync() *AreaSync {
	return &AreaSync{}
}

// OnEnable is the automatic trigger. Objects that are not active in the
// hierarchy are skipped with an info log; the manual and batch paths do not
// apply this check.
func (s *AreaSync) OnEnable() {
	obj := s.GetGameObject()
	if obj == nil {
		return
	}
	if !obj.ActiveInHierarchy() {
		logger.Log.Info("Object inactive in hierarchy, occlusion area not synchronized",
			zap.String("object", obj.Name))
		return
	}
	apply(obj)
}

// SyncNow is the manual trigger, exposed as an editor context command.
// It performs the same copy with no active-state check.
func (s *AreaSync) SyncNow() {
	obj := s.GetGameObject()
	if obj == nil {
		return
	}
	apply(obj)
}

// apply resolves both capabilities and performs the copy. Missing either
// one aborts with an error log and leaves the area untouched. Failure is
// never surfaced to the caller beyond the log line.
func apply(obj *scene.GameObject) bool {
	renderer := render.MeshRendererOf(obj)
	if renderer == nil {
		logger.Log.Error("No MeshRenderer on object, cannot synchronize occlusion area",
			zap.String("object", obj.Name))
		return false
	}
	area := AreaOf(obj)
	if area == nil {
		logger.Log.Error("No OcclusionArea on object, cannot synchronize occlusion area",
			zap.String("object", obj.Name))
		return false
	}

	copyBounds(obj, renderer, area)
	logger.Log.Info("Occlusion area synchronized", zap.String("object", obj.Name))
	return true
}

func copyBounds(obj *scene.GameObject, renderer *render.MeshRenderer, area *Area) {
	bounds := renderer.Bounds()
	area.Size = bounds.Size()
	area.Center = obj.Transform.WorldToLocal(bounds.Center)
}

// SyncAll performs the copy for every object that is self-active and carries
// both a MeshRenderer and an Area. Ineligible objects are skipped silently;
// each update is independent, so a partial run leaves processed objects
// updated and the rest untouched. Returns the number of objects updated.
func SyncAll(objects []*scene.GameObject) int {
	updated := 0
	for _, obj := range objects {
		if obj == nil || !obj.ActiveSelf() {
			continue
		}
		renderer := render.MeshRendererOf(obj)
		area := AreaOf(obj)
		if renderer == nil || area == nil {
			continue
		}

		copyBounds(obj, renderer, area)
		updated++
		logger.Log.Info("Occlusion area synchronized", zap.String("object", obj.Name))
	}

	logger.Log.Info("Occlusion area sync finished", zap.Int("updated", updated))
	return updated
}
