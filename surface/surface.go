// Package surface models the presentation surface the view renders into: a
// registry of named display targets (text regions the presenters overwrite)
// and named controls (interactive elements users activate). The hosting shell
// builds the document before any presenter runs; presenters only look parts
// up by name.
package surface

import "sync"

// Document is one presentation surface.
type Document struct {
	mu       sync.RWMutex
	targets  map[string]*Target
	controls map[string]*Control
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{
		targets:  make(map[string]*Target),
		controls: make(map[string]*Control),
	}
}

// AddTarget registers a display target under the given name, with its
// placeholder text. Re-adding a name replaces the previous target.
func (d *Document) AddTarget(name, placeholder string) *Target {
	t := &Target{text: placeholder}
	d.mu.Lock()
	d.targets[name] = t
	d.mu.Unlock()
	return t
}

// Target looks up a display target by name. Returns nil when absent; Target
// methods tolerate a nil receiver, so a missing region cannot break a render
// pass.
func (d *Document) Target(name string) *Target {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.targets[name]
}

// AddControl registers a control under the given name.
func (d *Document) AddControl(name string) *Control {
	c := &Control{}
	d.mu.Lock()
	d.controls[name] = c
	d.mu.Unlock()
	return c
}

// Control looks up a control by name. Returns nil when absent.
func (d *Document) Control(name string) *Control {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.controls[name]
}

// Target is a named display region. Its text is whatever the last writer set.
type Target struct {
	mu   sync.Mutex
	text string
}

// SetText overwrites the region's text. No-op on a nil target.
func (t *Target) SetText(s string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.text = s
	t.mu.Unlock()
}

// Text returns the region's current text. Empty on a nil target.
func (t *Target) Text() string {
	if t == nil {
		return ""
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.text
}

// Control is an interactive element with a cosmetic active state and a set of
// activation listeners. A control with no listeners swallows activations.
type Control struct {
	mu        sync.Mutex
	active    bool
	listeners []func()
}

// OnActivate attaches a listener invoked on every subsequent activation.
func (c *Control) OnActivate(fn func()) {
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

// Activate delivers one user activation: each attached listener runs once, in
// attachment order, on the calling goroutine.
func (c *Control) Activate() {
	c.mu.Lock()
	listeners := make([]func(), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// Toggle flips the cosmetic active state and returns the new value. The state
// is purely visual; nothing else reads it.
func (c *Control) Toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = !c.active
	return c.active
}

// Active reports the cosmetic active state.
func (c *Control) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}
