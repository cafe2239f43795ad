// Command vapidgen prints a fresh VAPID key pair for configuration.
package main

import (
	"fmt"
	"os"

	"stockwatch/internal/infra/webpush"
)

func main() {
	privateKey, publicKey, err := webpush.GenerateVAPIDKeys()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate VAPID keys: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Add these to config.yaml (or the matching environment variables):")
	fmt.Println()
	fmt.Printf("vapid:\n")
	fmt.Printf("  publicKey: %s\n", publicKey)
	fmt.Printf("  privateKey: %s\n", privateKey)
}
