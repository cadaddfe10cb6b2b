package melee

import "fmt"

// Stage identifies a stage by its game-start block id.
type Stage uint16

const (
	FountainOfDreams     Stage = 2
	PokemonStadium       Stage = 3
	PrincessPeachsCastle Stage = 4
	KongoJungle          Stage = 5
	Brinstar             Stage = 6
	Corneria             Stage = 7
	YoshisStory          Stage = 8
	Onett                Stage = 9
	MuteCity             Stage = 10
	RainbowCruise        Stage = 11
	JungleJapes          Stage = 12
	GreatBay             Stage = 13
	HyruleTemple         Stage = 14
	BrinstarDepths       Stage = 15
	YoshisIsland         Stage = 16
	GreenGreens          Stage = 17
	Fourside             Stage = 18
	MushroomKingdomI     Stage = 19
	MushroomKingdomII    Stage = 20
	Venom                Stage = 22
	PokeFloats           Stage = 23
	BigBlue              Stage = 24
	IcicleMountain       Stage = 25
	Icetop               Stage = 26
	FlatZone             Stage = 27
	DreamLandN64         Stage = 28
	YoshisIslandN64      Stage = 29
	KongoJungleN64       Stage = 30
	Battlefield          Stage = 31
	FinalDestination     Stage = 32
)

var stageNames = map[Stage]string{
	FountainOfDreams:     "Fountain of Dreams",
	PokemonStadium:       "Pokemon Stadium",
	PrincessPeachsCastle: "Princess Peach's Castle",
	KongoJungle:          "Kongo Jungle",
	Brinstar:             "Brinstar",
	Corneria:             "Corneria",
	YoshisStory:          "Yoshi's Story",
	Onett:                "Onett",
	MuteCity:             "Mute City",
	RainbowCruise:        "Rainbow Cruise",
	JungleJapes:          "Jungle Japes",
	GreatBay:             "Great Bay",
	HyruleTemple:         "Hyrule Temple",
	BrinstarDepths:       "Brinstar Depths",
	YoshisIsland:         "Yoshi's Island",
	GreenGreens:          "Green Greens",
	Fourside:             "Fourside",
	MushroomKingdomI:     "Mushroom Kingdom I",
	MushroomKingdomII:    "Mushroom Kingdom II",
	Venom:                "Venom",
	PokeFloats:           "Poke Floats",
	BigBlue:              "Big Blue",
	IcicleMountain:       "Icicle Mountain",
	Icetop:               "Icetop",
	FlatZone:             "Flat Zone",
	DreamLandN64:         "Dream Land N64",
	YoshisIslandN64:      "Yoshi's Island N64",
	KongoJungleN64:       "Kongo Jungle N64",
	Battlefield:          "Battlefield",
	FinalDestination:     "Final Destination",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Stage(%d)", uint16(s))
}

// StageFromID validates a game-start block stage id.
func StageFromID(id uint16) (Stage, bool) {
	s := Stage(id)
	_, ok := stageNames[s]
	return s, ok
}
