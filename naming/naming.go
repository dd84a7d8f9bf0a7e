// Package naming invents track titles that fit the musical style.
package naming

import (
	"fmt"
	"strings"

	"github.com/yrbane/acidgrid/rng"
)

type wordBank struct {
	First  []string
	Second []string
	// Joiners between the two words; picked per title.
	Joins []string
}

var banks = map[string][]wordBank{
	"house": {
		{
			First:  []string{"Love", "Joy", "Soul", "Heart", "Spirit", "Feel", "Vibe", "Groove"},
			Second: []string{"Music", "Rhythm", "Dance", "Night", "Life", "Dreams", "Paradise"},
			Joins:  []string{" & ", " "},
		},
	},
	"techno": {
		{
			First:  []string{"Death of", "Fall of", "Last", "Final", "Burning", "Toxic", "Abandoned", "Corrupted", "Forgotten", "Lost"},
			Second: []string{"Paradise", "Utopia", "Tomorrow", "Dreams", "Hope", "Humanity", "Heaven", "Reality", "Future"},
			Joins:  []string{" "},
		},
		{
			First:  []string{"Warehouse", "Bunker", "Tunnel", "Basement", "Factory", "Powerplant", "Catacombs", "Wasteland"},
			Second: []string{"Ritual", "Session", "Protocol", "Transmission", "Frequency", "Pressure"},
			Joins:  []string{" "},
		},
	},
	"hard-tekno": {
		{
			First:  []string{"DESTROY", "ANNIHILATE", "OBLITERATE", "DEVASTATE", "PULVERIZE", "TERMINATE"},
			Second: []string{"KICK", "BASS", "NOISE", "STATIC", "ERROR", "GLITCH", "CRASH"},
			Joins:  []string{" THE ", " "},
		},
	},
	"breakbeat": {
		{
			First:  []string{"Funky", "Broken", "Twisted", "Electric", "Chopped", "Rewound"},
			Second: []string{"Breaks", "Beats", "Circuit", "Streets", "Flavour", "Science"},
			Joins:  []string{" "},
		},
	},
	"idm": {
		{
			First:  []string{"exp", "test", "prototype", "alpha", "beta", "dev"},
			Second: []string{"sequence", "lattice", "fragment", "residue", "artifact"},
			Joins:  []string{"_"},
		},
	},
	"jungle": {
		{
			First:  []string{"Massive", "Ragga", "Rude", "Original", "Heavy", "Wicked"},
			Second: []string{"Junglist", "Soundbwoy", "Selecta", "Pressure", "Riddim", "Bassline"},
			Joins:  []string{" "},
		},
	},
	"hip-hop": {
		{
			First:  []string{"Golden", "Dusty", "Raw", "Smooth", "Midnight", "Concrete"},
			Second: []string{"Era", "Crates", "Cipher", "Flow", "Corners", "Chronicles"},
			Joins:  []string{" "},
		},
	},
	"trap": {
		{
			First:  []string{"Iced", "Drip", "Savage", "Ghost", "Phantom", "Neon"},
			Second: []string{"Mode", "City", "Season", "Wave", "Dynasty", "808"},
			Joins:  []string{" "},
		},
	},
	"ambient": {
		{
			First:  []string{"Distant", "Fading", "Drifting", "Floating", "Suspended", "Dissolving"},
			Second: []string{"Memories", "Horizons", "Echoes", "Reflections", "Dreams", "Stars"},
			Joins:  []string{" "},
		},
		{
			First:  []string{"Ocean", "Sky", "Forest", "Mountain", "Desert", "Tundra"},
			Second: []string{"Dawn", "Dusk", "Midnight", "Twilight", "Morning"},
			Joins:  []string{" at "},
		},
	},
	"drum&bass": {
		{
			First:  []string{"Neuro", "Liquid", "Rolling", "Deep", "Technical", "Hollow"},
			Second: []string{"Funk", "State", "Horizon", "Signal", "Motion", "Circuit"},
			Joins:  []string{" "},
		},
	},
}

// Title invents a style-appropriate track title from the seed. Same
// seed and style, same title.
func Title(styleID string, seed int64) string {
	rs := rng.Derive(seed, "naming")

	pool, ok := banks[styleID]
	if !ok {
		pool = banks["techno"]
	}
	bank := pool[rs.IntN(len(pool))]

	name := rs.Pick(bank.First) + rs.Pick(bank.Joins) + rs.Pick(bank.Second)
	if rs.Chance(0.15) {
		name = fmt.Sprintf("%s %03d", name, rs.Range(1, 999))
	}
	return name
}

// Filename converts a title to something safe on every filesystem.
func Filename(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '_', r == '-':
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
