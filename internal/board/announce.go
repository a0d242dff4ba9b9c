package board

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"riftboard/internal/api"
	"riftboard/internal/rank"
)

// Announcer posts overtake alerts to the shared announcement channel.
// Each delivery is independent; one failed send never blocks the rest.
type Announcer struct {
	gateway   Gateway
	channelID string

	// Mention resolves a display name to a Discord mention; Emoji
	// resolves a short code to a server custom emoji (may be empty).
	Mention func(name string) string
	Emoji   func(code string) string
}

// NewAnnouncer builds an announcer for the shared alert channel.
func NewAnnouncer(gateway Gateway, channelID string, mention, emoji func(string) string) *Announcer {
	return &Announcer{gateway: gateway, channelID: channelID, Mention: mention, Emoji: emoji}
}

// AnnounceOvertake sends one randomized alert for an overtake event.
func (a *Announcer) AnnounceOvertake(mode string, ev rank.Overtake) {
	newM := a.Mention(ev.Overtaking.PlayerID)
	oldM := a.Mention(ev.Overtaken.PlayerID)

	msg := fmt.Sprintf("**%s**: %s", strings.ToUpper(mode), a.pickTemplate(newM, oldM, ev.Position))
	if _, err := a.gateway.SendText(a.channelID, msg); err != nil {
		log.Printf("⚠️ [%s] Failed to send rank change alert: %v", mode, err)
		return
	}
	api.RecordAnnouncement(mode)
	log.Printf("[%s] Rank change: %s overtook %s for position %d", mode, ev.Overtaking.PlayerID, ev.Overtaken.PlayerID, ev.Position)
}

func (a *Announcer) pickTemplate(newM, oldM string, pos int) string {
	pogo := a.Emoji("pogo")
	templates := []string{
		fmt.Sprintf("%s just pulled off a spectacular heist %s, ousting %s from position %d like a sneaky mastermind %s!",
			newM, a.Emoji("business"), oldM, pos, a.Emoji("cathiago")),
		fmt.Sprintf("Yeah.. %s I'm sorry to announce %s has dethroned %s from position %d. Don't ask me how. %s Surely this is deserved. %s",
			a.Emoji("sadge"), newM, oldM, pos, a.Emoji("pepeshrug"), a.Emoji("scam")),
		fmt.Sprintf("%s %s has kicked %s from position %d. Did you really expect me to praise you for that ? Take this instead: %s",
			pogo, newM, oldM, pos, a.Emoji("pantsgrab")),
		fmt.Sprintf("%s ALERT! ALERT! %s %s has executed a flawless takedown, banishing %s from position %d. Rally the troops and shower %s with %s.",
			pogo, pogo, newM, oldM, pos, newM, pogo),
		fmt.Sprintf("%s %s has decisively toppled %s from position %d, leaving no doubt of their supremacy. %s",
			pogo, newM, oldM, pos, a.Emoji("cathiago")),
		fmt.Sprintf("%s --> %d %s %s --> %s", newM, pos, pogo, oldM, a.Emoji("deadge")),
		fmt.Sprintf("%s BREAKING NEWS! BREAKING NEWS! %s A major upset has just occurred. %s has just dethroned %s from position %d. A shocking turn of events, a stunning upset, a colossal blunder. %s",
			pogo, pogo, newM, oldM, pos, a.Emoji("aycaramba")),
		fmt.Sprintf("%s Hey %s, guess who just took your spot at position %d? %s Oh right, it's %s! %s Looks like someone could use a lesson or two...",
			pogo, oldM, pos, a.Emoji("scam"), newM, a.Emoji("deadge")),
		fmt.Sprintf("%s got yeeted from %d by %s! %s Take this L. %s", oldM, pos, newM, pogo, a.Emoji("pantsgrab")),
		fmt.Sprintf("%s humiliated %s for %d! %s Get lost, noob. %s", newM, oldM, pos, a.Emoji("absolutecinema"), pogo),
		fmt.Sprintf("%s rolled %s for %d! %s You're washed up. %s", newM, oldM, pos, pogo, a.Emoji("pepestrong")),
		fmt.Sprintf("%s got scammed by %s at %d! %s Unlucky, buddy. %s", oldM, newM, pos, a.Emoji("scam"), pogo),
		fmt.Sprintf("%s dunked %s from %d! %s You're irrelevant now. %s", newM, oldM, pos, pogo, a.Emoji("deadge")),
		fmt.Sprintf("%s got smoked by %s at %d! %s What was that? %s", oldM, newM, pos, pogo, a.Emoji("huh")),
		fmt.Sprintf("%s crushed %s at %d! %s It's over for you. %s", newM, oldM, pos, pogo, a.Emoji("joever")),
		fmt.Sprintf("%s got bodied by %s at %d! %s What's your excuse? %s", oldM, newM, pos, pogo, a.Emoji("yamesy")),
		fmt.Sprintf("%s sent %s packing from %d! %s You're history. %s", newM, oldM, pos, a.Emoji("barack"), pogo),
		fmt.Sprintf("%s slapped %s from %d! %s Here's your flowers. %s", newM, oldM, pos, pogo, a.Emoji("peepoflor")),
	}
	return templates[rand.Intn(len(templates))]
}
