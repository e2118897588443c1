package models

import (
	"strings"
	"testing"
)

func TestDefaultWorld(t *testing.T) {
	w, err := DefaultWorld()
	if err != nil {
		t.Fatalf("Failed to load default world: %v", err)
	}

	if w.StartRoom != RoomStart {
		t.Errorf("Expected start room %s, got %s", RoomStart, w.StartRoom)
	}
	if len(w.Rooms) != 4 {
		t.Fatalf("Expected 4 rooms, got %d", len(w.Rooms))
	}
	for _, id := range []string{RoomStart, RoomHallway, RoomBalcony, RoomLibrary} {
		r, ok := w.Room(id)
		if !ok {
			t.Fatalf("Expected room %s to exist", id)
		}
		if r.ID != id {
			t.Errorf("Expected room ID %s, got %s", id, r.ID)
		}
		if r.Description == "" || r.SearchDescription == "" {
			t.Errorf("Room %s is missing a description", id)
		}
	}

	library, _ := w.Room(RoomLibrary)
	if !library.Locked {
		t.Errorf("Expected library to be locked")
	}
	hallway, _ := w.Room(RoomHallway)
	if target, ok := hallway.Exit("north"); !ok || target != RoomLibrary {
		t.Errorf("Expected hallway north to lead to library, got %q (%v)", target, ok)
	}
	if !hallway.HasItem(ItemBook) {
		t.Errorf("Expected the book in the hallway")
	}

	start, _ := w.Room(RoomStart)
	if !strings.Contains(start.SearchDescription, "\n Strange though.") {
		t.Errorf("Expected a line break in the start search description, got %q", start.SearchDescription)
	}
}

func TestDefaultWorldIsFreshCopy(t *testing.T) {
	w1, err := DefaultWorld()
	if err != nil {
		t.Fatalf("Failed to load default world: %v", err)
	}
	w2, err := DefaultWorld()
	if err != nil {
		t.Fatalf("Failed to load default world: %v", err)
	}

	w1.Rooms[RoomHallway].RemoveItem(ItemBook)
	if !w2.Rooms[RoomHallway].HasItem(ItemBook) {
		t.Errorf("Removing an item from one world affected another")
	}
}

func TestLoadWorldValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "dangling exit",
			yaml: `
start_room: a
rooms:
  a:
    exits:
      north: b
`,
			wantErr: `exit "north" leads to unknown room "b"`,
		},
		{
			name: "missing start room",
			yaml: `
start_room: nowhere
rooms:
  a: {}
`,
			wantErr: `start room "nowhere" does not exist`,
		},
		{
			name:    "no rooms",
			yaml:    `start_room: a`,
			wantErr: "world has no rooms",
		},
		{
			name:    "malformed",
			yaml:    "rooms: [",
			wantErr: "failed to parse world YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWorld([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestLoadWorldFillsEmptyRooms(t *testing.T) {
	w, err := LoadWorld([]byte("start_room: a\nrooms:\n  a:\n"))
	if err != nil {
		t.Fatalf("Failed to load world: %v", err)
	}
	r, ok := w.Room("a")
	if !ok {
		t.Fatalf("Expected room a to exist")
	}
	if _, ok := r.Exit("north"); ok {
		t.Errorf("Expected no exits")
	}
	if r.HasItem(ItemKey) {
		t.Errorf("Expected no items")
	}
}

func TestRoomRemoveItem(t *testing.T) {
	r := &Room{Items: []string{"book", "key", "book"}}
	r.RemoveItem("book")
	if r.HasItem("book") {
		t.Errorf("Expected every book to be removed, got %v", r.Items)
	}
	if !r.HasItem("key") {
		t.Errorf("Expected key to remain, got %v", r.Items)
	}
}

func TestNewGameState(t *testing.T) {
	w, err := DefaultWorld()
	if err != nil {
		t.Fatalf("Failed to load default world: %v", err)
	}
	s := NewGameState(w)

	if s.CurrentRoom != RoomStart {
		t.Errorf("Expected current room %s, got %s", RoomStart, s.CurrentRoom)
	}
	if len(s.Inventory) != 0 {
		t.Errorf("Expected empty inventory, got %v", s.Inventory)
	}
	if s.ChestUnlocked || s.LibraryUnlocked {
		t.Errorf("Expected both flags to start false")
	}
	if len(s.Log) != 1 || s.Log[0] != "Welcome to the adventure game! Type commands to explore." {
		t.Errorf("Expected a single welcome line, got %v", s.Log)
	}

	c := s.Clone()
	c.Inventory = append(c.Inventory, ItemBook)
	c.Log[0] = "changed"
	if s.HasItem(ItemBook) || s.Log[0] == "changed" {
		t.Errorf("Clone shares state with the original")
	}
}
