package melee

import "fmt"

// CharacterColour is a character together with its costume slot.
type CharacterColour struct {
	Character Character
	Costume   uint8
}

// costumeNames holds slot names per character. Slot 0 is always the neutral
// costume; characters without an entry here fall back to numeric slots.
var costumeNames = map[Character][]string{
	CaptainFalcon:  {"Neutral", "Black", "Red", "White", "Green", "Blue"},
	DonkeyKong:     {"Neutral", "Black", "Red", "Blue", "Green"},
	Fox:            {"Neutral", "Red", "Blue", "Green"},
	MrGameAndWatch: {"Neutral", "Red", "Blue", "Green"},
	Kirby:          {"Neutral", "Yellow", "Blue", "Red", "Green", "White"},
	Bowser:         {"Neutral", "Red", "Blue", "Black"},
	Link:           {"Neutral", "Red", "Blue", "Black", "White"},
	Luigi:          {"Neutral", "White", "Blue", "Red"},
	Mario:          {"Neutral", "Yellow", "Black", "Blue", "Green"},
	Marth:          {"Neutral", "Red", "Green", "Black", "White"},
	Mewtwo:         {"Neutral", "Red", "Blue", "Green"},
	Ness:           {"Neutral", "Yellow", "Blue", "Green"},
	Peach:          {"Neutral", "Daisy", "White", "Blue", "Green"},
	Pikachu:        {"Neutral", "Red", "Party Hat", "Cowboy Hat"},
	Popo:           {"Neutral", "Green", "Orange", "Red"},
	Nana:           {"Neutral", "Green", "Orange", "Red"},
	Jigglypuff:     {"Neutral", "Red", "Blue", "Headband", "Crown"},
	Samus:          {"Neutral", "Pink", "Black", "Green", "Purple"},
	Yoshi:          {"Neutral", "Red", "Blue", "Yellow", "Pink", "Cyan"},
	Zelda:          {"Neutral", "Red", "Blue", "Green", "White"},
	Sheik:          {"Neutral", "Red", "Blue", "Green", "White"},
	Falco:          {"Neutral", "Red", "Blue", "Green"},
	YoungLink:      {"Neutral", "Red", "Blue", "White", "Black"},
	DrMario:        {"Neutral", "Red", "Blue", "Green", "Black"},
	Roy:            {"Neutral", "Red", "Blue", "Green", "Yellow"},
	Pichu:          {"Neutral", "Red", "Blue", "Green"},
	Ganondorf:      {"Neutral", "Red", "Blue", "Green", "Purple"},
}

// CostumeName returns the slot name, or a numeric form for slots outside the
// known catalogue (modded costumes occur in the wild).
func (cc CharacterColour) CostumeName() string {
	names := costumeNames[cc.Character]
	if int(cc.Costume) < len(names) {
		return names[cc.Costume]
	}
	return fmt.Sprintf("Costume %d", cc.Costume)
}

func (cc CharacterColour) String() string {
	return fmt.Sprintf("%s (%s)", cc.Character, cc.CostumeName())
}

// KnownCostume reports whether the slot exists in the stock game.
func (cc CharacterColour) KnownCostume() bool {
	return int(cc.Costume) < len(costumeNames[cc.Character])
}
