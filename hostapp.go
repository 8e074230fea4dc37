package main

import (
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"stormviewgo/bridge"
	"stormviewgo/infobar"
)

// hostRouter is the stub desktop host behind the channel endpoint. It
// advertises the bridge and overlay objects and reacts to their
// notifications the way the real shell does: the hamburger toggles the
// settings overlay, the overlay options just get acknowledged.
type hostRouter struct {
	mu          sync.Mutex
	overlayOpen bool
}

func (h *hostRouter) Objects() []string {
	return []string{infobar.BridgeObject, infobar.OverlayObject}
}

func (h *hostRouter) Invoke(object, method string) error {
	switch object {
	case infobar.BridgeObject:
		if method != infobar.HamburgerMethod {
			return fmt.Errorf("unknown method %s.%s", object, method)
		}
		h.mu.Lock()
		h.overlayOpen = !h.overlayOpen
		open := h.overlayOpen
		h.mu.Unlock()
		fmt.Fprintf(os.Stderr, "[stormview] hamburger clicked, overlay open=%v\n", open)
		return nil

	case infobar.OverlayObject:
		switch method {
		case "overlayButtonClicked", "settingsButtonClicked", "outputButtonClicked":
			fmt.Fprintf(os.Stderr, "[stormview] overlay option: %s\n", method)
			return nil
		}
		return fmt.Errorf("unknown method %s.%s", object, method)

	default:
		return fmt.Errorf("unknown object %s", object)
	}
}

// OverlayOpen reports the stub host's overlay visibility.
func (h *hostRouter) OverlayOpen() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.overlayOpen
}

// runHostApp serves the stub host: the channel endpoint the view dials, plus
// an embedded infobar page for smoke checks in a browser.
func runHostApp(args []string) {
	settings := LoadSettings()
	listen := settings.Listen
	for i := 0; i < len(args); i++ {
		if args[i] == "--listen" && i+1 < len(args) {
			i++
			listen = args[i]
		}
	}

	router := &hostRouter{}
	channel := bridge.NewChannelServer(router)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Handle("/channel", channel)
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, renderInfobarPage())
	})

	fmt.Fprintf(os.Stderr, "[stormview] host listening on %s\n", listen)
	if err := http.ListenAndServe(listen, r); err != nil {
		fmt.Fprintf(os.Stderr, "[stormview] host error: %v\n", err)
		os.Exit(1)
	}
}
