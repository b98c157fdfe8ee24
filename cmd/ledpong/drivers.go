package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ledpong/internal/registry"
)

var driversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "List all controller drivers",
	Long:  `Shows a list of all controller drivers that can be passed to 'play --driver'.`,
	Run:   runDrivers,
}

func runDrivers(cmd *cobra.Command, args []string) {
	drivers := registry.List()

	if len(drivers) == 0 {
		fmt.Println("No drivers available.")
		return
	}

	fmt.Println("Available drivers:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, d := range drivers {
		if len(d.Name) > maxNameLen {
			maxNameLen = len(d.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, d := range drivers {
		fmt.Printf("  %-*s  %s\n", maxNameLen, d.Name, d.Description)
	}

	fmt.Println()
	fmt.Println("Run 'ledpong play --driver <name>' to use a driver.")
}
