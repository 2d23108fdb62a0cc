// Command find lists the brpts web servers advertised on the LAN.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mpsalisbury/brpts/pkg/discovery"
)

var wait = flag.Duration("wait", discovery.DefaultWait, "How long to listen for servers, rounded up to whole seconds")

func main() {
	flag.Parse()
	locs, err := discovery.FindService(*wait)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(locs) == 0 {
		fmt.Printf("No brpts servers found after %s\n", *wait)
		os.Exit(1)
	}
	for _, loc := range locs {
		fmt.Println(loc)
	}
}
