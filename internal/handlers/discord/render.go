package discord

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/hammer/internal/models"
	"github.com/bwmarrin/discordgo"
)

const (
	colorIdle     = 0x808080
	colorLaunch   = 0x3498db
	colorInMatch  = 0x00ff00
	colorGameOver = 0xffd700
)

var phaseTitles = map[models.Phase]string{
	models.PhaseIdle:             "Waiting for the next match",
	models.PhaseSelectingEnds:    "Choosing the number of ends",
	models.PhaseNamingTeams:      "Naming teams",
	models.PhaseRegisteringTeamA: "Checking in",
	models.PhaseRegisteringTeamB: "Checking in",
	models.PhaseInProgress:       "Between ends",
	models.PhaseEndInProgress:    "End in progress",
	models.PhaseAwaitingCardLock: "Scoring the end",
	models.PhaseGameOver:         "Game over",
}

// renderScoreboard builds the embed for a snapshot
func renderScoreboard(board *models.Scoreboard) *discordgo.MessageEmbed {
	teamA, teamB := board.Teams[models.TeamA], board.Teams[models.TeamB]

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s vs %s", teamA.Name, teamB.Name),
		Description: describe(board),
		Color:       phaseColor(board.Phase),
	}
	if !board.UpdatedAt.IsZero() {
		embed.Timestamp = board.UpdatedAt.Format(time.RFC3339)
	}
	if board.Phase == models.PhaseIdle {
		return embed
	}

	for _, team := range []models.Team{teamA, teamB} {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   team.Name,
			Value:  teamSummary(board, team),
			Inline: true,
		})
	}

	if board.NumEnds > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Ends",
			Value:  endsTable(board),
			Inline: false,
		})
	}

	if board.Announcement != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: board.Announcement}
	}
	return embed
}

func describe(board *models.Scoreboard) string {
	title, ok := phaseTitles[board.Phase]
	if !ok {
		title = string(board.Phase)
	}

	var b strings.Builder
	b.WriteString("**" + title + "**")
	if team, ok := board.Phase.RegisteringTeam(); ok {
		fmt.Fprintf(&b, ": %s", board.Teams[team].Name)
	}
	if board.CurrentEnd > 0 && board.Phase != models.PhaseGameOver {
		fmt.Fprintf(&b, "\nEnd %d of %d", board.CurrentEnd, board.NumEnds)
	} else if board.NumEnds > 0 {
		fmt.Fprintf(&b, "\n%d ends", board.NumEnds)
	}
	if board.PointsEntryMode {
		b.WriteString("\n✏️ Points entry")
	}
	return b.String()
}

func phaseColor(phase models.Phase) int {
	switch {
	case phase == models.PhaseGameOver:
		return colorGameOver
	case phase.InMatch():
		return colorInMatch
	case phase.Launching():
		return colorLaunch
	default:
		return colorIdle
	}
}

func teamSummary(board *models.Scoreboard, team models.Team) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🥌 %d", team.Stones)
	if team.HasHammer {
		b.WriteString("  🔨")
	}
	if score, ok := teamScore(board, team.ID); ok {
		fmt.Fprintf(&b, "\nScore: %d", score)
	}
	for _, name := range board.Players[team.ID] {
		b.WriteString("\n" + name)
	}
	return b.String()
}

// teamScore reads the score off the furthest locked card in the team's column
func teamScore(board *models.Scoreboard, team models.TeamID) (int, bool) {
	family := models.FamilyForTeam(team)
	best, found := 0, false
	for _, c := range board.Cards {
		if c.Locked && c.Slot.Family == family && c.Slot.Index+1 > best {
			best, found = c.Slot.Index+1, true
		}
	}
	return best, found
}

// endsTable draws each column as a strip of slots
func endsTable(board *models.Scoreboard) string {
	rows := []struct {
		label  string
		family models.SlotFamily
	}{
		{board.Teams[models.TeamA].Name, models.FamilyTeamA},
		{board.Teams[models.TeamB].Name, models.FamilyTeamB},
		{"Blank", models.FamilyBlankEnd},
		{"Unplayed", models.FamilyStartRow},
	}

	var lines []string
	for _, row := range rows {
		strip := columnStrip(board.Cards, row.family)
		if strip == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", row.label, strip))
	}
	if len(lines) == 0 {
		return "-"
	}
	return strings.Join(lines, "\n")
}

func columnStrip(cards []models.Card, family models.SlotFamily) string {
	var in []models.Card
	for _, c := range cards {
		if c.Slot.Family == family {
			in = append(in, c)
		}
	}
	if len(in) == 0 {
		return ""
	}
	sort.Slice(in, func(i, j int) bool { return in[i].Slot.Index < in[j].Slot.Index })

	// the start row lists cards; scoring columns keep their gaps
	if family == models.FamilyStartRow {
		parts := make([]string, len(in))
		for i, c := range in {
			parts[i] = cardLabel(c)
		}
		return strings.Join(parts, " ")
	}

	slots := make([]string, in[len(in)-1].Slot.Index+1)
	for i := range slots {
		slots[i] = "·"
	}
	for _, c := range in {
		slots[c.Slot.Index] = cardLabel(c)
	}
	return strings.Join(slots, " ")
}

func cardLabel(c models.Card) string {
	switch {
	case c.Locked:
		return fmt.Sprintf("**%d**", c.Rank)
	case c.Appearance == models.AppearanceSelected:
		return fmt.Sprintf("[%d]", c.Rank)
	default:
		return fmt.Sprintf("%d", c.Rank)
	}
}
