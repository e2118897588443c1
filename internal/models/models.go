package models

import (
	"slices"

	"github.com/google/uuid"
)

// World is the fixed room graph a session is played in.
type World struct {
	Title     string           `yaml:"title"`
	Welcome   string           `yaml:"welcome"`    // first line of every output log
	StartRoom string           `yaml:"start_room"` // e.g., "start"
	Rooms     map[string]*Room `yaml:"rooms"`      // Keyed by room id
}

// Room is a single node of the world graph.
type Room struct {
	ID                string            `yaml:"-"` // Also the key in World.Rooms
	Description       string            `yaml:"description"`
	SearchDescription string            `yaml:"search_description"`
	Exits             map[string]string `yaml:"exits"` // direction -> room id
	Items             []string          `yaml:"items"`
	Locked            bool              `yaml:"locked,omitempty"`
	LockedMessage     string            `yaml:"locked_message,omitempty"` // shown when a move into the room is refused
}

// Room looks up a room by id.
func (w *World) Room(id string) (*Room, bool) {
	r, ok := w.Rooms[id]
	return r, ok
}

// Exit resolves a direction to the id of the room it leads to.
func (r *Room) Exit(direction string) (string, bool) {
	target, ok := r.Exits[direction]
	return target, ok
}

func (r *Room) HasItem(item string) bool {
	return slices.Contains(r.Items, item)
}

// RemoveItem drops every occurrence of item from the room.
func (r *Room) RemoveItem(item string) {
	r.Items = slices.DeleteFunc(r.Items, func(i string) bool { return i == item })
}

// GameState represents the current dynamic state of a session.
type GameState struct {
	ID              uuid.UUID `yaml:"id"`
	CurrentRoom     string    `yaml:"current_room"`
	Inventory       []string  `yaml:"inventory"`
	ChestUnlocked   bool      `yaml:"chest_unlocked"`
	LibraryUnlocked bool      `yaml:"library_unlocked"`
	Log             []string  `yaml:"log"` // echoed inputs and responses, oldest first
}

// NewGameState creates the initial state for a session played in w.
func NewGameState(w *World) *GameState {
	return &GameState{
		ID:          uuid.New(),
		CurrentRoom: w.StartRoom,
		Inventory:   []string{},
		Log:         []string{w.Welcome},
	}
}

func (s *GameState) HasItem(item string) bool {
	return slices.Contains(s.Inventory, item)
}

// Clone returns a copy that shares no slices with s.
func (s *GameState) Clone() GameState {
	c := *s
	c.Inventory = slices.Clone(s.Inventory)
	c.Log = slices.Clone(s.Log)
	return c
}
