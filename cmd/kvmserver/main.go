// kvmserver listens for kvmclient connections and injects the mouse events
// they relay into the local desktop.
package main

import (
	"flag"
	"log"

	"kvmlink/internal/inject"
	"kvmlink/internal/network"
)

var listen = flag.String("listen", "0.0.0.0:50051", "Bind address")

func main() {
	flag.Parse()

	server, err := network.Listen(*listen, func() (inject.Injector, error) {
		return inject.NewRobotInjector(), nil
	})
	if err != nil {
		log.Fatalf("Server: %v", err)
	}
	log.Printf("Server: listening on %s", *listen)

	if err := server.Serve(); err != nil {
		log.Fatalf("Server: accept error: %v", err)
	}
}
