package main

import (
	"fmt"
	"os"
)

const version = "0.2.0"

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "host":
			runHostApp(os.Args[2:])
			return
		case "version":
			fmt.Println("stormview " + version)
			return
		case "help", "-h", "--help":
			usage()
			return
		}
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	// View mode
	runViewApp()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: stormview [command]\n\nCommands:\n  (none)    Run the view: clock readouts plus host menu wiring\n  host      Run a stub desktop host serving the channel endpoint\n  version   Print the version\n")
}
