package main

import (
	"log"
	"os"

	"frontdesk/config"
	"frontdesk/helper"
)

const (
	argLength = 2
)

func main() {
	if len(os.Args) < argLength {
		log.Fatal("Seed action (demo) is required")
	}

	cfg := config.Get()

	switch os.Args[1] {
	case "demo":
		if err := helper.SeedDemo(cfg); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatal("Invalid action. Use 'demo'")
	}
}
