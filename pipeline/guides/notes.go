package guides

import (
	"fmt"
	"strings"

	"raidbook/pkg/models/champion"
)

// generalNote writes the free text note of the General guide from the role
// and the overall rating.
func generalNote(champ *champion.Champion, role string) string {
	overall, _ := champ.Rating("overall")

	tierWord := "niche"
	switch {
	case overall >= 4.5:
		tierWord = "top-tier"
	case overall >= 4:
		tierWord = "strong"
	case overall >= 3:
		tierWord = "solid"
	}

	var note string
	switch role {
	case "Attack":
		note = fmt.Sprintf("%s is a %s damage dealer who excels at dealing burst or sustained damage.", champ.Name, tierWord)
		note += " Prioritize critical rate to 100%, then stack critical damage and attack for maximum output. Speed boots ensure consistent turn cycling."
	case "Defense":
		note = fmt.Sprintf("%s is a %s defensive champion who provides tankiness and control for the team.", champ.Name, tierWord)
		note += " Build with high defense and HP substats for survivability. Accuracy is important if the kit includes debuffs or crowd control."
	case "HP":
		note = fmt.Sprintf("%s is a %s HP-based champion who brings durability and sustain to the roster.", champ.Name, tierWord)
		note += " Stack HP% and defense substats for maximum survivability. Speed keeps the champion cycling abilities frequently."
	case "Support":
		note = fmt.Sprintf("%s is a %s support champion who provides buffs, debuffs, or healing to the team.", champ.Name, tierWord)
		note += " Speed and accuracy are the top priorities to ensure debuffs land and abilities cycle quickly. Build tanky enough to survive."
	default:
		note = fmt.Sprintf("%s is a %s %s champion.", champ.Name, tierWord, strings.ToLower(champ.Rarity))
	}

	return note
}

// contentNote writes the note of a specialized guide.
func contentNote(champ *champion.Champion, role string, area string) string {
	build, ok := contentBuilds[area]
	if !ok {
		return fmt.Sprintf("Build %s for %s content with appropriate gear sets.", champ.Name, area)
	}

	verb := "performs well in"
	switch role {
	case "Attack":
		verb = "deals heavy damage in"
	case "Defense":
		verb = "provides defensive utility in"
	case "HP":
		verb = "offers strong survivability in"
	case "Support":
		verb = "enables the team in"
	}

	return fmt.Sprintf("%s %s %s. %s", champ.Name, verb, area, build.noteSuffix)
}
