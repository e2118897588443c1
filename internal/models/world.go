package models

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Room and item ids the game rules refer to.
const (
	RoomStart   = "start"
	RoomHallway = "hallway"
	RoomBalcony = "balcony"
	RoomLibrary = "library"

	ItemBook  = "book"
	ItemKey   = "key"
	ItemChest = "chest"
)

//go:embed world.yaml
var worldYAML []byte

// DefaultWorld decodes a fresh copy of the built-in world. Every call returns
// independent rooms, so taking items in one session never affects another.
func DefaultWorld() (*World, error) {
	return LoadWorld(worldYAML)
}

// LoadWorld decodes and validates a world definition.
func LoadWorld(data []byte) (*World, error) {
	var w World
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to parse world YAML: %w", err)
	}
	for id, r := range w.Rooms {
		if r == nil {
			r = &Room{}
			w.Rooms[id] = r
		}
		r.ID = id
		if r.Exits == nil {
			r.Exits = map[string]string{}
		}
		if r.Items == nil {
			r.Items = []string{}
		}
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &w, nil
}

// Validate checks that the start room exists and that every exit leads to a
// known room.
func (w *World) Validate() error {
	if len(w.Rooms) == 0 {
		return fmt.Errorf("world has no rooms")
	}
	if _, ok := w.Rooms[w.StartRoom]; !ok {
		return fmt.Errorf("start room %q does not exist", w.StartRoom)
	}

	ids := make([]string, 0, len(w.Rooms))
	for id := range w.Rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		dirs := make([]string, 0, len(w.Rooms[id].Exits))
		for dir := range w.Rooms[id].Exits {
			dirs = append(dirs, dir)
		}
		sort.Strings(dirs)
		for _, dir := range dirs {
			target := w.Rooms[id].Exits[dir]
			if _, ok := w.Rooms[target]; !ok {
				return fmt.Errorf("room %q: exit %q leads to unknown room %q", id, dir, target)
			}
		}
	}
	return nil
}
