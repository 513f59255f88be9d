package scene

// GameObject is an object in the scene: a name, a transform, an active flag
// and a list of components.
type GameObject struct {
	Name       string
	Tag        string
	Transform  *Transform
	Components []Component

	active bool // The object's own enabled flag, ignoring ancestors
}

// NewGameObject creates an active game object with an identity transform.
func NewGameObject(name string) *GameObject {
	obj := &GameObject{
		Name:       name,
		Components: make([]Component, 0),
		Transform:  NewTransform(),
		active:     true,
	}
	obj.Transform.SetGameObject(obj)
	return obj
}

// ActiveSelf returns the object's own enabled flag, ignoring ancestor state.
func (obj *GameObject) ActiveSelf() bool {
	return obj.active
}

// ActiveInHierarchy reports whether this object and every ancestor are all
// individually enabled.
func (obj *GameObject) ActiveInHierarchy() bool {
	if !obj.active {
		return false
	}
	for p := obj.Transform.Parent; p != nil; p = p.Parent {
		if owner := p.GetGameObject(); owner != nil && !owner.active {
			return false
		}
	}
	return true
}

// SetActive flips the object's own enabled flag. Components on this object
// and its descendants receive OnEnable/OnDisable when their effective
// hierarchy-active state actually changes.
func (obj *GameObject) SetActive(active bool) {
	if obj.active == active {
		return
	}

	affected := obj.subtree()
	before := make([]bool, len(affected))
	for i, o := range affected {
		before[i] = o.ActiveInHierarchy()
	}

	obj.active = active

	for i, o := range affected {
		now := o.ActiveInHierarchy()
		if now == before[i] {
			continue
		}
		for _, comp := range o.Components {
			if !comp.GetEnabled() {
				continue
			}
			if now {
				comp.OnEnable()
			} else {
				comp.OnDisable()
			}
		}
	}
}

// subtree collects this object and all descendants, depth-first.
func (obj *GameObject) subtree() []*GameObject {
	out := []*GameObject{obj}
	var walk func(t *Transform)
	walk = func(t *Transform) {
		for _, child := range t.Children {
			if owner := child.GetGameObject(); owner != nil {
				out = append(out, owner)
			}
			walk(child)
		}
	}
	walk(obj.Transform)
	return out
}

// AddComponent attaches a component, wakes it, and fires OnEnable if the
// object is currently active in the hierarchy.
func (obj *GameObject) AddComponent(component Component) {
	component.SetGameObject(obj)
	component.SetEnabled(true)
	obj.Components = append(obj.Components, component)
	component.Awake()
	if obj.ActiveInHierarchy() {
		component.OnEnable()
	}
}

// RemoveComponent detaches a component, firing OnDisable (if it was live)
// and OnDestroy.
func (obj *GameObject) RemoveComponent(component Component) {
	for i, comp := range obj.Components {
		if comp == component {
			if comp.GetEnabled() && obj.ActiveInHierarchy() {
				comp.OnDisable()
			}
			comp.OnDestroy()
			obj.Components = append(obj.Components[:i], obj.Components[i+1:]...)
			return
		}
	}
}

// FindComponent returns the first component matching the predicate, or nil.
func (obj *GameObject) FindComponent(match func(Component) bool) Component {
	for _, comp := range obj.Components {
		if comp != nil && match(comp) {
			return comp
		}
	}
	return nil
}

func (obj *GameObject) internalStart() {
	if !obj.active {
		return
	}
	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Start()
		}
	}
}

func (obj *GameObject) internalUpdate() {
	if !obj.active {
		return
	}
	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Update()
		}
	}
}

// Destroy tears down all components and disables the object.
func (obj *GameObject) Destroy() {
	for _, comp := range obj.Components {
		comp.OnDestroy()
	}
	obj.active = false
}
