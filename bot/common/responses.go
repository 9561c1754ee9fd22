package common

import (
	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// DeferResponse sends a deferred response to give more time for processing
func DeferResponse(s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) error {
	var flags discordgo.MessageFlags
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: flags,
		},
	})
}

// DeferUpdate acknowledges a button press; the message is then edited with UpdateMessage
func DeferUpdate(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
}

// RespondWithEmbed sends an embed as an interaction response
func RespondWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}

	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	if len(components) > 0 {
		data.Components = components
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// RespondWithContent sends plain text as an interaction response
func RespondWithContent(s *discordgo.Session, i *discordgo.InteractionCreate, content string, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{Content: content}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// UpdateMessage edits the interaction's message. nil components leave the buttons as they are.
func UpdateMessage(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	edit := &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}

	if components != nil {
		edit.Components = &components
	}

	_, err := s.InteractionResponseEdit(i.Interaction, edit)
	return err
}

// DisableComponents disables all components in a message
func DisableComponents(components []discordgo.MessageComponent) []discordgo.MessageComponent {
	disabled := make([]discordgo.MessageComponent, len(components))

	for i, component := range components {
		if actionRow, ok := component.(*discordgo.ActionsRow); ok {
			newRow := &discordgo.ActionsRow{
				Components: make([]discordgo.MessageComponent, len(actionRow.Components)),
			}

			for j, comp := range actionRow.Components {
				switch c := comp.(type) {
				case *discordgo.Button:
					newButton := *c
					newButton.Disabled = true
					newRow.Components[j] = &newButton
				case *discordgo.SelectMenu:
					newMenu := *c
					newMenu.Disabled = true
					newRow.Components[j] = &newMenu
				default:
					newRow.Components[j] = comp
				}
			}

			disabled[i] = newRow
		} else {
			disabled[i] = component
		}
	}

	return disabled
}

// FollowUpWithSuccess sends a success message as a follow-up
func FollowUpWithSuccess(s *discordgo.Session, i *discordgo.InteractionCreate, message string, ephemeral bool) {
	params := &discordgo.WebhookParams{
		Content: "✅ " + message,
	}

	if ephemeral {
		params.Flags = discordgo.MessageFlagsEphemeral
	}

	_, err := s.FollowupMessageCreate(i.Interaction, false, params)
	if err != nil {
		log.Errorf("Error sending follow-up success message: %v", err)
	}
}
