package modules

import "fmt"

// EmbedColor is the blue accent used on success embeds.
const EmbedColor = 0x3498db

// Reply is the outbound message in host-agnostic form. Exactly one of Embed
// and Text is set: success produces an embed, every failure a plain string.
type Reply struct {
	Embed *Embed
	Text  string
}

// Embed describes a structured success message.
type Embed struct {
	Title  string
	Color  int
	Fields []EmbedField
}

// EmbedField is one labeled value inside an embed.
type EmbedField struct {
	Name  string
	Value string
}

// BuildReply renders a lookup result into the outbound message. The chat
// wrapper is only responsible for delivering whichever variant it receives.
func BuildReply(res LookupResult) Reply {
	switch res.Outcome {
	case OutcomeOK:
		return Reply{Embed: &Embed{
			Title: fmt.Sprintf("Ethos Profile for @%s", res.Handle),
			Color: EmbedColor,
			Fields: []EmbedField{
				{Name: "Ethos Score", Value: res.Score},
			},
		}}
	case OutcomeLookupFailed:
		return Reply{Text: fmt.Sprintf("Error: Could not fetch Ethos profile for @%s", res.Handle)}
	default:
		return Reply{Text: fmt.Sprintf("An error occurred: %v", res.Err)}
	}
}
