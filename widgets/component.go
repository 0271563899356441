package widgets

import (
	"github.com/odvcencio/furry-tabs/runtime"
	"github.com/odvcencio/furry-tabs/state"
)

// Component is a base widget with bound services and subscriptions.
type Component struct {
	FocusableBase
	Services runtime.Services
	Subs     state.Subscriptions
}

// Bind attaches app services to the component.
func (c *Component) Bind(services runtime.Services) {
	c.Services = services
	c.Subs.SetScheduler(services.Scheduler())
}

// Unbind releases app services and subscriptions.
func (c *Component) Unbind() {
	c.Subs.Clear()
	c.Services = runtime.Services{}
}

// Invalidate marks the component dirty and requests a render pass.
func (c *Component) Invalidate() {
	c.Base.Invalidate()
	c.Services.Invalidate()
}

// Observe registers a subscription using the bound scheduler. Before Bind
// the callback runs synchronously.
func (c *Component) Observe(src interface {
	SubscribeWithScheduler(state.Scheduler, func()) func()
}, fn func()) {
	c.Subs.Observe(src, fn)
}
