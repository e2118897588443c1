package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tatianab/text-adventure/internal/engine"
	"github.com/tatianab/text-adventure/internal/models"
)

// walkthrough reaches the treasure, including one failed unlock on the way.
var walkthrough = []string{
	"look",
	"move north",
	"move north",
	"search",
	"take book",
	"read",
	"move north",
	"search",
	"unlock chest",
	"move south",
	"move east",
	"search",
	"take key",
	"move west",
	"move north",
	"inventory",
	"unlock chest",
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.DebugLevel).With().Timestamp().Logger()

	world, err := models.DefaultWorld()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load world")
	}
	eng := engine.NewEngine(world, log)

	for turn, action := range walkthrough {
		fmt.Printf("--- Turn %d ---\n", turn+1)
		fmt.Printf("Player Action: %s\n", action)
		fmt.Printf("Outcome: %s\n", strings.TrimSpace(eng.ProcessTurn(action)))

		state := eng.State()
		fmt.Printf("Room=%s, Inventory=%v, Library=%t, Chest=%t\n\n",
			state.CurrentRoom, state.Inventory, state.LibraryUnlocked, state.ChestUnlocked)
	}

	state := eng.State()
	if !state.ChestUnlocked {
		log.Error().Strs("inventory", state.Inventory).Str("room", state.CurrentRoom).Msg("Walkthrough did not open the chest")
		os.Exit(1)
	}
	fmt.Println("Game Ended: Treasure found!")
	fmt.Printf("Transcript has %d lines.\n", len(eng.Log()))
}
