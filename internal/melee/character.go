package melee

import "fmt"

// Character identifies a playable character by the internal numbering used in
// post-frame updates. The game-start block uses a different (external)
// numbering; use CharacterFromExternal for that.
type Character uint8

const (
	Mario Character = iota
	Fox
	CaptainFalcon
	DonkeyKong
	Kirby
	Bowser
	Link
	Sheik
	Ness
	Peach
	Popo
	Nana
	Pikachu
	Samus
	Yoshi
	Jigglypuff
	Mewtwo
	Luigi
	Marth
	Zelda
	YoungLink
	DrMario
	Falco
	Pichu
	MrGameAndWatch
	Ganondorf
	Roy

	characterCount
)

var characterNames = [characterCount]string{
	Mario:          "Mario",
	Fox:            "Fox",
	CaptainFalcon:  "Captain Falcon",
	DonkeyKong:     "Donkey Kong",
	Kirby:          "Kirby",
	Bowser:         "Bowser",
	Link:           "Link",
	Sheik:          "Sheik",
	Ness:           "Ness",
	Peach:          "Peach",
	Popo:           "Popo",
	Nana:           "Nana",
	Pikachu:        "Pikachu",
	Samus:          "Samus",
	Yoshi:          "Yoshi",
	Jigglypuff:     "Jigglypuff",
	Mewtwo:         "Mewtwo",
	Luigi:          "Luigi",
	Marth:          "Marth",
	Zelda:          "Zelda",
	YoungLink:      "Young Link",
	DrMario:        "Dr. Mario",
	Falco:          "Falco",
	Pichu:          "Pichu",
	MrGameAndWatch: "Mr. Game & Watch",
	Ganondorf:      "Ganondorf",
	Roy:            "Roy",
}

func (c Character) String() string {
	if c < characterCount {
		return characterNames[c]
	}
	return fmt.Sprintf("Character(%d)", uint8(c))
}

// CharacterFromInternal validates an internal character id.
func CharacterFromInternal(id uint8) (Character, bool) {
	c := Character(id)
	return c, c < characterCount
}

// externalToInternal maps the character select / game-start numbering onto
// the internal one.
var externalToInternal = [...]Character{
	CaptainFalcon, DonkeyKong, Fox, MrGameAndWatch, Kirby, Bowser, Link, Luigi,
	Mario, Marth, Mewtwo, Ness, Peach, Pikachu, Popo, Jigglypuff, Samus, Yoshi,
	Zelda, Sheik, Falco, YoungLink, DrMario, Roy, Pichu, Ganondorf,
}

// CharacterFromExternal converts a game-start block character id.
func CharacterFromExternal(id uint8) (Character, bool) {
	if int(id) >= len(externalToInternal) {
		return 0, false
	}
	return externalToInternal[id], true
}

// CharacterByName resolves a catalogue name, as written in config files.
// Matching is exact.
func CharacterByName(name string) (Character, bool) {
	for c, n := range characterNames {
		if n == name {
			return Character(c), true
		}
	}
	return 0, false
}
