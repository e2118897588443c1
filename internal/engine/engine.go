package engine

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tatianab/text-adventure/internal/models"
)

const (
	msgNoExit       = "You can't go that way."
	msgLocked       = "The way is locked."
	msgEmpty        = "Your inventory is empty."
	msgNothingRead  = "You don't have anything to read."
	msgEnlightened  = "You read the book and feel enlightened. The library door creaks open."
	msgWordsVanish  = "You start to read the book, but as you read, the words disappear. Strange."
	msgCantUnlock   = "You can't unlock that."
	msgChestOpened  = "You unlocked the chest! Inside, you find treasure of gold, a few gems, and scrolls! Congratulations!"
	msgUnknown      = "Unknown command."
	msgUnknownPlace = "You are in an unknown location."
)

// Engine runs one game session. ProcessTurn is the only way to change its
// state.
type Engine struct {
	world  *models.World
	state  *models.GameState
	logger zerolog.Logger
}

// NewEngine starts a session in w. The engine takes ownership of w, whose
// rooms lose items as the player takes them.
func NewEngine(w *models.World, logger zerolog.Logger) *Engine {
	state := models.NewGameState(w)
	return &Engine{
		world:  w,
		state:  state,
		logger: logger.With().Str("session_id", state.ID.String()).Logger(),
	}
}

// ProcessTurn interprets one raw input line, appends the echoed input and the
// response to the output log, and returns the response.
func (e *Engine) ProcessTurn(input string) string {
	cmd := ParseCommand(input)
	before := e.state.CurrentRoom

	outcome := e.apply(cmd)
	e.state.Log = append(e.state.Log, "> "+input, outcome)

	e.logger.Debug().
		Str("verb", cmd.Verb.String()).
		Str("arg", cmd.Arg).
		Str("room_before", before).
		Str("room_after", e.state.CurrentRoom).
		Msg("turn processed")
	return outcome
}

func (e *Engine) apply(cmd Command) string {
	switch cmd.Verb {
	case VerbLook:
		return e.look()
	case VerbMove:
		return e.move(cmd.Arg)
	case VerbTake:
		return e.take(cmd.Arg)
	case VerbInventory:
		return e.inventory()
	case VerbRead:
		return e.read()
	case VerbSearch:
		return e.search()
	case VerbUnlock:
		return e.unlock(cmd.Arg)
	default:
		return msgUnknown
	}
}

// State returns a copy of the current game state.
func (e *Engine) State() models.GameState {
	return e.state.Clone()
}

// Log returns a copy of the output log, oldest line first.
func (e *Engine) Log() []string {
	out := make([]string, len(e.state.Log))
	copy(out, e.state.Log)
	return out
}

// RoomItems returns the items currently in a room.
func (e *Engine) RoomItems(id string) []string {
	r, ok := e.world.Room(id)
	if !ok {
		return nil
	}
	out := make([]string, len(r.Items))
	copy(out, r.Items)
	return out
}

func (e *Engine) currentRoom() (*models.Room, bool) {
	return e.world.Room(e.state.CurrentRoom)
}

func (e *Engine) look() string {
	r, ok := e.currentRoom()
	if !ok {
		return msgUnknownPlace
	}
	return r.Description
}

func (e *Engine) search() string {
	r, ok := e.currentRoom()
	if !ok {
		return msgUnknownPlace
	}
	return r.SearchDescription
}

func (e *Engine) move(direction string) string {
	r, ok := e.currentRoom()
	if !ok {
		return msgNoExit
	}
	targetID, ok := r.Exit(direction)
	if !ok {
		return msgNoExit
	}
	if target, ok := e.world.Room(targetID); ok && target.Locked && !e.unlocked(targetID) {
		if target.LockedMessage != "" {
			return target.LockedMessage
		}
		return msgLocked
	}
	e.state.CurrentRoom = targetID
	return fmt.Sprintf("You moved to the %s.", targetID)
}

// unlocked reports whether a locked room has been opened in this session.
func (e *Engine) unlocked(roomID string) bool {
	switch roomID {
	case models.RoomLibrary:
		return e.state.LibraryUnlocked
	default:
		return false
	}
}

func (e *Engine) take(item string) string {
	r, ok := e.currentRoom()
	if !ok || !r.HasItem(item) {
		return fmt.Sprintf("There's no %s here.", item)
	}
	e.state.Inventory = append(e.state.Inventory, item)
	r.RemoveItem(item)
	return fmt.Sprintf("You took the %s.", item)
}

func (e *Engine) inventory() string {
	if len(e.state.Inventory) == 0 {
		return msgEmpty
	}
	return "You have: " + strings.Join(e.state.Inventory, ", ")
}

func (e *Engine) read() string {
	if !e.state.HasItem(models.ItemBook) {
		return msgNothingRead
	}
	if e.state.CurrentRoom != models.RoomHallway {
		return msgWordsVanish
	}
	if !e.state.LibraryUnlocked {
		e.logger.Info().Msg("library unlocked")
	}
	e.state.LibraryUnlocked = true
	return msgEnlightened
}

func (e *Engine) unlock(object string) string {
	if object != models.ItemChest || e.state.CurrentRoom != models.RoomLibrary || !e.state.HasItem(models.ItemKey) {
		return msgCantUnlock
	}
	if !e.state.ChestUnlocked {
		e.logger.Info().Msg("chest unlocked")
	}
	e.state.ChestUnlocked = true
	return msgChestOpened
}
