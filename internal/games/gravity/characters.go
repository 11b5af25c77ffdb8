package gravity

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/gravity-runner/internal/core"
)

// Character is a selectable player skin.
type Character struct {
	ID   string
	Name string
	Tint color.NRGBA // drawn when the sprite is not available
}

// Sprite returns the media name of the character sprite.
func (c Character) Sprite() string {
	return "player_" + c.ID
}

var characters = []Character{
	{ID: "runner", Name: "Runner", Tint: core.ColorPlayer},
	{ID: "cat", Name: "Cat", Tint: core.RGB(0xf4a261)},
	{ID: "bot", Name: "Bot", Tint: core.RGB(0x8ecae6)},
}

// Characters returns the built-in roster.
func Characters() []Character {
	out := make([]Character, len(characters))
	copy(out, characters)
	return out
}

// DefaultCharacter returns the first roster entry.
func DefaultCharacter() Character {
	return characters[0]
}

// LookupCharacter finds a character by ID.
func LookupCharacter(id string) (Character, error) {
	for _, c := range characters {
		if c.ID == id {
			return c, nil
		}
	}
	return Character{}, fmt.Errorf("gravity: unknown character %q", id)
}
