package senator

import (
	"fmt"
	"strings"

	"github.com/hupe1980/curia/core"
	"github.com/hupe1980/curia/narrative"
)

// recentContextLines summarizes the freshest narrative events for a prompt.
func recentContextLines(nc *narrative.Context, n int) string {
	if nc == nil {
		return ""
	}
	events := nc.RecentEvents(n)
	if len(events) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Recent events in the Republic:\n")
	for _, ev := range events {
		fmt.Fprintf(&sb, "- %s\n", ev.Description)
	}
	return sb.String()
}

func (s *Senator) systemPrompt() string {
	return fmt.Sprintf(`You are %s, a senator of the Roman Republic aligned with the %s faction. Speak in the first person with the rhetoric of the late Republic. Stay in character; never reference the simulation.`,
		s.profile.Name, s.profile.Faction)
}

func stancePrompt(p Profile, topic core.Topic, nc *narrative.Context) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "The Senate debates: %s\n", topic.String())
	if ctx := recentContextLines(nc, 3); ctx != "" {
		sb.WriteString(ctx)
	}
	fmt.Fprintf(&sb, "\nAs %s, state in one short paragraph whether you SUPPORT or OPPOSE this measure and why. Begin with the word SUPPORT or OPPOSE.", p)
	return sb.String()
}

func speechPrompt(p Profile, topic core.Topic, stance core.Stance, nc *narrative.Context) string {
	position := "weigh both sides without committing"
	switch stance {
	case core.StanceSupport:
		position = "argue forcefully in favor"
	case core.StanceOppose:
		position = "argue forcefully against"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "The Senate debates: %s\n", topic.String())
	if ctx := recentContextLines(nc, 3); ctx != "" {
		sb.WriteString(ctx)
	}
	fmt.Fprintf(&sb, "\nDeliver a senate speech of 3-5 sentences in which you %s. Invoke the interests of the %s where natural.", position, p.Faction)
	return sb.String()
}

func interjectionPrompt(p Profile, speakerName, speechContent string, kind InterjectionType) string {
	var tone string
	switch kind {
	case InterjectionAcclamation:
		tone = "a single approving exclamation backing the speaker"
	case InterjectionObjection:
		tone = "a single sharp objection to the speaker's argument"
	case InterjectionProcedural:
		tone = "a single interruption on a point of senate procedure"
	default:
		tone = "a single emotional outburst provoked by the speaker"
	}
	return fmt.Sprintf("Senator %s has just said:\n%q\n\nAs %s, produce %s. One sentence only.",
		speakerName, speechContent, p, tone)
}

func votePrompt(p Profile, topic core.Topic, stance core.Stance, nc *narrative.Context) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "The debate on %q has concluded and the roll is called.\n", topic.Text)
	if stance != core.StanceNeutral {
		fmt.Fprintf(&sb, "You argued earlier to %s the measure.\n", stance)
	}
	if ctx := recentContextLines(nc, 2); ctx != "" {
		sb.WriteString(ctx)
	}
	sb.WriteString("\nCast your final vote. Begin with exactly one of: SUPPORT, OPPOSE, ABSTAIN. Then give one sentence of reasoning.")
	return sb.String()
}
