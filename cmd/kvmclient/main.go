// kvmclient captures local mouse input and relays it to a kvmserver over
// TCP, letting one physical mouse drive a remote machine.
package main

import (
	"flag"
	"log"

	"kvmlink/internal/capture"
	"kvmlink/internal/network"
)

var (
	connect = flag.String("connect", "", "Receiver address, e.g. 192.168.1.23:50051")
	debug   = flag.Bool("debug", false, "Log every sent event")
)

func main() {
	flag.Parse()
	if *connect == "" {
		log.Fatal("Client: --connect is required")
	}

	log.Printf("Client: connecting to %s ...", *connect)
	sender, err := network.Dial(*connect, *debug)
	if err != nil {
		log.Fatalf("Client: %v", err)
	}
	defer sender.Close()
	log.Println("Client: connected, capturing mouse input")

	if err := sender.Run(capture.NewHookSource()); err != nil {
		log.Fatalf("Client: capture error: %v", err)
	}
}
