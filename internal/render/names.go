package render

import "fmt"

// mapNames translates internal map IDs to the display names players know.
var mapNames = map[string]string{
	"Desert_Main":     "Miramar",
	"Erangel_Main":    "Erangel",
	"Baltic_Main":     "Erangel (Remastered)",
	"Savage_Main":     "Sanhok",
	"DihorOtok_Main":  "Vikendi",
	"Range_Main":      "Camp Jackal",
	"Kiki_Main":       "Deston",
	"Summerland_Main": "Karakin",
	"Tiger_Main":      "Taego",
	"Chimera_Main":    "Paramo",
	"Heaven_Main":     "Haven",
	"Neon_Main":       "Rondo",
}

var gameModes = map[string]string{
	"solo":       "Solo",
	"solo-fpp":   "Solo FPP",
	"duo":        "Duo",
	"duo-fpp":    "Duo FPP",
	"squad":      "Squad",
	"squad-fpp":  "Squad FPP",
	"normal-solo":      "Solo",
	"normal-solo-fpp":  "Solo FPP",
	"normal-duo":       "Duo",
	"normal-duo-fpp":   "Duo FPP",
	"normal-squad":     "Squad",
	"normal-squad-fpp": "Squad FPP",
	"conquest-solo":  "Conquest Solo",
	"conquest-duo":   "Conquest Duo",
	"conquest-squad": "Conquest Squad",
	"esports-solo":   "Esports Solo",
	"esports-duo":    "Esports Duo",
	"esports-squad":  "Esports Squad",
	"war":    "War Mode",
	"zombie": "Zombie Mode",
	"lab":    "Labs",
	"tdm":    "Team Deathmatch",
}

// MapName returns the display name for a map ID, falling back to the raw ID.
func MapName(mapID string) string {
	if name, ok := mapNames[mapID]; ok {
		return name
	}
	return mapID
}

// GameMode returns the display name for a game-mode ID, falling back to the
// raw ID.
func GameMode(mode string) string {
	if name, ok := gameModes[mode]; ok {
		return name
	}
	return mode
}

// FormatDuration renders a second count as "MMm SSs".
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%dm %02ds", seconds/60, seconds%60)
}
