package main

import (
	"fmt"
	"net"
	"os"
	"time"
)

// Container healthcheck probe. Exits 0 when the server port accepts
// connections, 1 otherwise.
func main() {
	host := os.Getenv("FASTMCP_HOST")
	if host == "" || host == "0.0.0.0" {
		host = "localhost"
	}
	port := os.Getenv("FASTMCP_PORT")
	if port == "" {
		port = "8080"
	}

	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, port), 5*time.Second)
	if err != nil {
		fmt.Fprintf(os.Stderr, "healthcheck failed: %v\n", err)
		os.Exit(1)
	}
	conn.Close()
}
