package main

import (
	"log"

	"github.com/Dominika1911/beauty-salon-management-system-sub004/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
