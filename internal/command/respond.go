package command

import (
	"github.com/bwmarrin/discordgo"
)

// Responder is the single terminal-response capability a dispatched
// interaction gets. Reply answers the interaction; FollowUp is only valid
// after a reply has been sent. Replied lets the dispatcher pick the right one
// when a handler fails midway.
type Responder interface {
	Reply(content string, ephemeral bool) error
	ReplyComplex(data *discordgo.InteractionResponseData) error
	FollowUp(content string, ephemeral bool) error
	ShowModal(customID, title string, components []discordgo.MessageComponent) error
	Replied() bool
}

// InteractionResponder answers through the discordgo session.
type InteractionResponder struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	replied bool
}

func NewResponder(s *discordgo.Session, i *discordgo.InteractionCreate) *InteractionResponder {
	return &InteractionResponder{Session: s, Event: i}
}

func (r *InteractionResponder) Reply(content string, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{Content: content}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return r.ReplyComplex(data)
}

func (r *InteractionResponder) ReplyComplex(data *discordgo.InteractionResponseData) error {
	err := r.Session.InteractionRespond(r.Event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err == nil {
		r.replied = true
	}
	return err
}

func (r *InteractionResponder) FollowUp(content string, ephemeral bool) error {
	params := &discordgo.WebhookParams{Content: content}
	if ephemeral {
		params.Flags = discordgo.MessageFlagsEphemeral
	}
	_, err := r.Session.FollowupMessageCreate(r.Event.Interaction, ephemeral, params)
	return err
}

func (r *InteractionResponder) ShowModal(customID, title string, components []discordgo.MessageComponent) error {
	err := r.Session.InteractionRespond(r.Event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   customID,
			Title:      title,
			Components: components,
		},
	})
	if err == nil {
		r.replied = true
	}
	return err
}

func (r *InteractionResponder) Replied() bool { return r.replied }
