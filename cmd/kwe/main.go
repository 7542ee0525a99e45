package main

import (
	"fmt"
	"os"

	"github.com/fievelk/kwe/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env bootstrap; absence is fine
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
