package watch

import (
	"strings"

	"github.com/hay-kot/discli/internal/core/config"
	"github.com/hay-kot/discli/internal/core/discord"
	"github.com/hay-kot/discli/pkg/tmpl"
)

// TemplateData flattens a message for format and hook templates.
func TemplateData(channelID string, msg discord.Message) config.MessageTemplateData {
	return config.MessageTemplateData{
		ChannelID:   channelID,
		ID:          msg.ID,
		Content:     msg.Content,
		AuthorID:    msg.Author.ID,
		Username:    msg.Author.Username,
		DisplayName: msg.Author.DisplayName(),
		Timestamp:   msg.Timestamp,
		Mentions:    msg.MentionIDs,
	}
}

// Format renders a message with the given template.
func Format(format string, data config.MessageTemplateData) (string, error) {
	return tmpl.Render(format, data)
}

// Env returns the message as DISCLI_* environment variables for hook
// commands.
func Env(data config.MessageTemplateData) []string {
	return []string{
		"DISCLI_CHANNEL_ID=" + data.ChannelID,
		"DISCLI_MESSAGE_ID=" + data.ID,
		"DISCLI_MESSAGE_CONTENT=" + data.Content,
		"DISCLI_MESSAGE_TIMESTAMP=" + data.Timestamp,
		"DISCLI_MESSAGE_MENTIONS=" + strings.Join(data.Mentions, ","),
		"DISCLI_AUTHOR_ID=" + data.AuthorID,
		"DISCLI_AUTHOR_USERNAME=" + data.Username,
		"DISCLI_AUTHOR_NAME=" + data.DisplayName,
	}
}
