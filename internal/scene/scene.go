package scene

// Scene owns the set of game objects loaded by the host. Enumeration order
// is insertion order; nothing in the scene contract depends on it.
type Scene struct {
	gameObjects []*GameObject
	toDestroy   []*GameObject
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{
		gameObjects: make([]*GameObject, 0),
		toDestroy:   make([]*GameObject, 0),
	}
}

// Add registers a game object and starts its components.
func (s *Scene) Add(obj *GameObject) {
	s.gameObjects = append(s.gameObjects, obj)
	obj.internalStart()
}

// Remove unregisters a game object and destroys it.
func (s *Scene) Remove(obj *GameObject) {
	for i, o := range s.gameObjects {
		if o == obj {
			s.gameObjects = append(s.gameObjects[:i], s.gameObjects[i+1:]...)
			obj.Destroy()
			return
		}
	}
}

// Destroy marks a game object for removal on the next Update.
func (s *Scene) Destroy(obj *GameObject) {
	s.toDestroy = append(s.toDestroy, obj)
}

// Find returns the first game object with the given name, or nil.
func (s *Scene) Find(name string) *GameObject {
	for _, obj := range s.gameObjects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

// FindWithTag returns all game objects carrying the given tag.
func (s *Scene) FindWithTag(tag string) []*GameObject {
	var result []*GameObject
	for _, obj := range s.gameObjects {
		if obj.Tag == tag {
			result = append(result, obj)
		}
	}
	return result
}

// Objects returns all registered game objects.
func (s *Scene) Objects() []*GameObject {
	return s.gameObjects
}

// Update runs one scene tick: pending removals first, then component updates
// on every active object.
func (s *Scene) Update() {
	if len(s.toDestroy) > 0 {
		for _, obj := range s.toDestroy {
			s.Remove(obj)
		}
		s.toDestroy = s.toDestroy[:0]
	}

	for _, obj := range s.gameObjects {
		obj.internalUpdate()
	}
}

// Clear destroys and removes all game objects.
func (s *Scene) Clear() {
	for _, obj := range s.gameObjects {
		obj.Destroy()
	}
	s.gameObjects = s.gameObjects[:0]
	s.toDestroy = s.toDestroy[:0]
}
