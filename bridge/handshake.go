package bridge

import "sync"

// Handshake is the single-fire result of opening a channel session. It
// resolves at most once, to the Session the host's catalog message produced,
// or never, if the host does not answer. There is deliberately no timeout and
// no error path: a host that never answers leaves the handshake pending for
// the life of the client, and everything gated on completion stays unwired.
type Handshake struct {
	mu    sync.Mutex
	done  chan struct{}
	sess  *Session
	conts []func(*Session)
}

// NewHandshake returns an unresolved handshake.
func NewHandshake() *Handshake {
	return &Handshake{done: make(chan struct{})}
}

// Done returns a channel that is closed when the handshake resolves.
func (h *Handshake) Done() <-chan struct{} {
	return h.done
}

// Session returns the resolved session, or nil while the handshake is pending.
func (h *Handshake) Session() *Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sess
}

// OnComplete registers a continuation to run once the handshake resolves.
// If it already has, fn runs immediately on the calling goroutine; otherwise
// it runs on the client's reader goroutine when the catalog arrives.
// Continuations registered after resolution still run exactly once.
func (h *Handshake) OnComplete(fn func(*Session)) {
	h.mu.Lock()
	if h.sess != nil {
		s := h.sess
		h.mu.Unlock()
		fn(s)
		return
	}
	h.conts = append(h.conts, fn)
	h.mu.Unlock()
}

// resolve completes the handshake. Only the first call has any effect.
func (h *Handshake) resolve(s *Session) {
	h.mu.Lock()
	if h.sess != nil {
		h.mu.Unlock()
		return
	}
	h.sess = s
	conts := h.conts
	h.conts = nil
	close(h.done)
	h.mu.Unlock()

	for _, fn := range conts {
		fn(s)
	}
}
