// Package editor exposes the tooling's operations as named commands, the
// integration surface an editing front-end binds its menus and context
// actions to.
package editor

import (
	"fmt"
	"sort"

	"OccluSync/internal/logger"
	"OccluSync/internal/occlusion"
	"OccluSync/internal/scene"

	"go.uber.org/zap"
)

// CommandFunc is a top-level menu command.
type CommandFunc func() error

// ContextCommandFunc is a command invoked on a selected game object.
type ContextCommandFunc func(obj *scene.GameObject) error

// Commands is a registry of named menu and context commands.
type Commands struct {
	menu    map[string]CommandFunc
	context map[string]ContextCommandFunc
}

// NewCommands creates an empty command registry.
func NewCommands() *Commands {
	return &Commands{
		menu:    make(map[string]CommandFunc),
		context: make(map[string]ContextCommandFunc),
	}
}

// Register adds a menu command, replacing any previous binding.
func (c *Commands) Register(name string, fn CommandFunc) {
	if _, exists := c.menu[name]; exists {
		logger.Log.Warn("Replacing existing menu command", zap.String("command", name))
	}
	c.menu[name] = fn
}

// RegisterContext adds a context command, replacing any previous binding.
func (c *Commands) RegisterContext(name string, fn ContextCommandFunc) {
	if _, exists := c.context[name]; exists {
		logger.Log.Warn("Replacing existing context command", zap.String("command", name))
	}
	c.context[name] = fn
}

// Run invokes a menu command by name.
func (c *Commands) Run(name string) error {
	fn, ok := c.menu[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	return fn()
}

// RunContext invokes a context command by name on the given object.
func (c *Commands) RunContext(name string, obj *scene.GameObject) error {
	fn, ok := c.context[name]
	if !ok {
		return fmt.Errorf("unknown context command %q", name)
	}
	return fn(obj)
}

// Names returns all registered command names, menu then context, sorted.
func (c *Commands) Names() []string {
	names := make([]string, 0, len(c.menu)+len(c.context))
	for name := range c.menu {
		names = append(names, name)
	}
	for name := range c.context {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Command names bound by RegisterOcclusionCommands.
const (
	CmdSyncAllOcclusionAreas = "Tools/Sync All Occlusion Areas"
	CmdSyncOcclusionArea     = "Sync Occlusion Area"
)

// RegisterOcclusionCommands binds the occlusion sync operations: a menu
// command batching over the given scene, and a context command syncing the
// selected object through its AreaSync component.
func RegisterOcclusionCommands(cmds *Commands, sc *scene.Scene) {
	cmds.Register(CmdSyncAllOcclusionAreas, func() error {
		occlusion.SyncAll(sc.Objects())
		return nil
	})

	cmds.RegisterContext(CmdSyncOcclusionArea, func(obj *scene.GameObject) error {
		if obj == nil {
			return fmt.Errorf("no object selected")
		}
		comp := obj.FindComponent(func(c scene.Component) bool {
			_, ok := c.(*occlusion.AreaSync)
			return ok
		})
		if comp == nil {
			return fmt.Errorf("object %q has no AreaSync component", obj.Name)
		}
		comp.(*occlusion.AreaSync).SyncNow()
		return nil
	})
}
