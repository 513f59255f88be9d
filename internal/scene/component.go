package scene

// Component is the base interface for all components attached to game objects.
type Component interface {
	// Lifecycle methods, called by the owning GameObject and Scene
	Awake()     // Called once when the component is attached
	Start()     // Called before the first Update
	OnEnable()  // Called when the owner becomes active in the hierarchy
	OnDisable() // Called when the owner stops being active in the hierarchy
	Update()    // Called every scene tick while the owner is active
	OnDestroy() // Called when the component or its owner is destroyed

	// Component info
	GetEnabled() bool
	SetEnabled(bool)
	GetGameObject() *GameObject
	SetGameObject(*GameObject)
}

// BaseComponent provides default implementations for all Component methods.
// Concrete components embed this and override only what they need.
type BaseComponent struct {
	enabled    bool
	gameObject *GameObject
	started    bool
}

func (c *BaseComponent) Awake()     {}
func (c *BaseComponent) Start()     {}
func (c *BaseComponent) OnEnable()  {}
func (c *BaseComponent) OnDisable() {}
func (c *BaseComponent) Update()    {}
func (c *BaseComponent) OnDestroy() {}

func (c *BaseComponent) GetEnabled() bool {
	return c.enabled
}

func (c *BaseComponent) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *BaseComponent) GetGameObject() *GameObject {
	return c.gameObject
}

func (c *BaseComponent) SetGameObject(obj *GameObject) {
	c.gameObject = obj
}
