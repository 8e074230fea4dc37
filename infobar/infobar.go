// Package infobar assembles the top information bar of the view: the UTC
// clock readouts plus the menu controls wired to the host over the bridge
// channel. The clock and the bridge wiring are independent; neither waits on
// or can break the other.
package infobar

import (
	"log"
	"time"

	"stormviewgo/bridge"
	"stormviewgo/clock"
	"stormviewgo/surface"
)

// Control names in the presentation surface.
const (
	HamburgerControl      = "hamburger-icon"
	OverlayButtonControl  = "overlay-button"
	SettingsButtonControl = "settings-button"
	OutputButtonControl   = "output-button"
)

// Host object names expected in the handshake catalog.
const (
	BridgeObject  = "bridge"
	OverlayObject = "overlay"
)

// HamburgerMethod is the notification fired on each hamburger activation.
const HamburgerMethod = "hamburgerClicked"

// overlayMethods maps each overlay option control to the notification it
// fires on the host's overlay object.
var overlayMethods = map[string]string{
	OverlayButtonControl:  "overlayButtonClicked",
	SettingsButtonControl: "settingsButtonClicked",
	OutputButtonControl:   "outputButtonClicked",
}

// BuildDocument creates the infobar's presentation surface: the two readout
// targets with their placeholder texts and the menu controls. The placeholders
// show until the first render lands.
func BuildDocument() *surface.Document {
	doc := surface.NewDocument()
	doc.AddTarget(clock.TimeTarget, "--:-- UTC")
	doc.AddTarget(clock.DateTarget, "YYYY/MM/DD")
	doc.AddControl(HamburgerControl)
	doc.AddControl(OverlayButtonControl)
	doc.AddControl(SettingsButtonControl)
	doc.AddControl(OutputButtonControl)
	return doc
}

// InfoBar drives one infobar document.
type InfoBar struct {
	doc   *surface.Document
	Clock *clock.Presenter
}

// New returns an infobar over the given document.
func New(doc *surface.Document) *InfoBar {
	return &InfoBar{
		doc:   doc,
		Clock: clock.NewPresenter(doc),
	}
}

// StartClock begins the periodic readout refresh and returns its stop handle.
func (b *InfoBar) StartClock(interval time.Duration) (stop func()) {
	return b.Clock.Start(interval)
}

// WireBridge attaches the menu controls to the host once the handshake
// completes. Until then every control activation is a no-op. If the handshake
// never completes, nothing is ever attached and the controls stay inert;
// there is no timeout here.
func (b *InfoBar) WireBridge(hs *bridge.Handshake) {
	hs.OnComplete(b.attach)
}

// attach runs once, on handshake completion.
func (b *InfoBar) attach(sess *bridge.Session) {
	b.attachHamburger(sess)
	b.attachOverlayOptions(sess)
}

func (b *InfoBar) attachHamburger(sess *bridge.Session) {
	proxy, ok := sess.Object(BridgeObject)
	if !ok {
		log.Printf("infobar: host catalog has no %q object, menu disabled", BridgeObject)
		return
	}

	ctl := b.doc.Control(HamburgerControl)
	if ctl == nil {
		// The control must exist before initialization; without it there is
		// nothing to listen on. Not retried.
		log.Printf("infobar: control %q missing, menu disabled", HamburgerControl)
		return
	}

	ctl.OnActivate(func() {
		ctl.Toggle()
		if err := proxy.Notify(HamburgerMethod); err != nil {
			log.Printf("infobar: %v", err)
		}
	})
}

func (b *InfoBar) attachOverlayOptions(sess *bridge.Session) {
	proxy, ok := sess.Object(OverlayObject)
	if !ok {
		log.Printf("infobar: host catalog has no %q object, overlay options disabled", OverlayObject)
		return
	}

	for name, method := range overlayMethods {
		ctl := b.doc.Control(name)
		if ctl == nil {
			log.Printf("infobar: control %q missing, option disabled", name)
			continue
		}
		m := method
		ctl.OnActivate(func() {
			if err := proxy.Notify(m); err != nil {
				log.Printf("infobar: %v", err)
			}
		})
	}
}
