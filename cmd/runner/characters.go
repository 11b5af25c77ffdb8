package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-runner/internal/games/gravity"
	"github.com/vovakirdan/gravity-runner/internal/registry"
)

var charactersCmd = &cobra.Command{
	Use:     "characters",
	Aliases: []string{"list"},
	Short:   "List runners and games",
	Long:    `Shows the runners you can pick and the registered games.`,
	Args:    cobra.NoArgs,
	Run:     runCharacters,
}

func runCharacters(_ *cobra.Command, _ []string) {
	fmt.Println("Runners:")
	fmt.Printf("  %-8s  %-8s  %s\n", "ID", "Name", "Color")
	fmt.Printf("  %-8s  %-8s  %s\n", "--", "----", "-----")
	for _, ch := range gravity.Characters() {
		fmt.Printf("  %-8s  %-8s  #%02x%02x%02x\n", ch.ID, ch.Name, ch.Tint.R, ch.Tint.G, ch.Tint.B)
	}

	fmt.Println()
	fmt.Println("Games:")
	for _, g := range registry.List() {
		fmt.Printf("  %-8s  %-16s  %s\n", g.ID, g.Title, g.Summary)
	}

	fmt.Println()
	fmt.Println("Run 'runner window --character <id>' to pick one.")
}
