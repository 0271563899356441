package runtime

// Lifecycle is implemented by widgets that need mount/unmount hooks.
type Lifecycle interface {
	Mount()
	Unmount()
}

// Bindable widgets receive app services when attached to a screen.
type Bindable interface {
	Bind(services Services)
}

// Unbindable widgets release app services when detached.
type Unbindable interface {
	Unbind()
}

// Attach binds services to every widget under root, then mounts them
// parents first.
func Attach(root Widget, services Services) {
	walk(root, func(w Widget) {
		if b, ok := w.(Bindable); ok && !services.isZero() {
			b.Bind(services)
		}
		if m, ok := w.(Lifecycle); ok {
			m.Mount()
		}
	}, nil)
}

// Detach unmounts and unbinds every widget under root, children first.
func Detach(root Widget) {
	walk(root, nil, func(w Widget) {
		if m, ok := w.(Lifecycle); ok {
			m.Unmount()
		}
		if u, ok := w.(Unbindable); ok {
			u.Unbind()
		}
	})
}

func walk(w Widget, pre, post func(Widget)) {
	if w == nil {
		return
	}
	if pre != nil {
		pre(w)
	}
	if children, ok := w.(ChildProvider); ok {
		for _, child := range children.ChildWidgets() {
			walk(child, pre, post)
		}
	}
	if post != nil {
		post(w)
	}
}
