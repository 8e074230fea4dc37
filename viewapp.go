package main

import (
	"bufio"
	"fmt"
	"os"

	"stormviewgo/bridge"
	"stormviewgo/clock"
	"stormviewgo/infobar"
	"stormviewgo/surface"
)

// runViewApp runs the presentation core: the infobar document with its clock
// readouts, plus the bridge channel to the desktop host. The clock runs
// whether or not the host is reachable; the menu controls only come alive
// once the handshake completes.
func runViewApp() {
	fmt.Fprintf(os.Stderr, "[stormview] starting view\n")

	settings := LoadSettings()

	doc := infobar.BuildDocument()
	bar := infobar.New(doc)
	stop := bar.StartClock(settings.TickInterval())
	defer stop()

	client, err := bridge.Dial(settings.HostURL)
	if err != nil {
		// The view still shows the clock without a host; the menu is dead.
		fmt.Fprintf(os.Stderr, "[stormview] %v\n", err)
	} else {
		defer client.Close()
		hs := client.Handshake()
		hs.OnComplete(func(sess *bridge.Session) {
			fmt.Fprintf(os.Stderr, "[stormview] handshake complete, session %s, objects %v\n",
				sess.Catalog.Session, sess.Catalog.Objects)
		})
		bar.WireBridge(hs)
	}

	fmt.Fprintf(os.Stderr, "[stormview] keys: m=hamburger o=overlay s=settings p=output q=quit\n")
	runViewLoop(doc)
}

// runViewLoop echoes the readouts and forwards key commands from stdin to the
// surface controls until EOF or quit.
func runViewLoop(doc *surface.Document) {
	scanner := bufio.NewScanner(os.Stdin)
	showReadouts(doc)
	for scanner.Scan() {
		switch scanner.Text() {
		case "m":
			doc.Control(infobar.HamburgerControl).Activate()
		case "o":
			doc.Control(infobar.OverlayButtonControl).Activate()
		case "s":
			doc.Control(infobar.SettingsButtonControl).Activate()
		case "p":
			doc.Control(infobar.OutputButtonControl).Activate()
		case "q":
			return
		}
		showReadouts(doc)
	}
}

func showReadouts(doc *surface.Document) {
	fmt.Printf("%s  %s\n",
		doc.Target(clock.TimeTarget).Text(),
		doc.Target(clock.DateTarget).Text())
}
