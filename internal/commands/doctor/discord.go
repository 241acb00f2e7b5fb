package doctor

import (
	"context"
	"errors"
	"net/http"

	"github.com/hay-kot/discli/internal/core/discord"
)

// Fetcher is the client call used to probe channel access.
type Fetcher interface {
	Fetch(ctx context.Context, channelID string, limit int) ([]discord.Message, error)
}

// DiscordCheck verifies the token is set and, when a default channel is
// configured, that the channel can be read with it.
type DiscordCheck struct {
	token     string
	channelID string
	client    Fetcher
}

// NewDiscordCheck creates a new Discord access check. client may be nil when
// no token is available.
func NewDiscordCheck(token, channelID string, client Fetcher) *DiscordCheck {
	return &DiscordCheck{token: token, channelID: channelID, client: client}
}

func (c *DiscordCheck) Name() string {
	return "Discord"
}

func (c *DiscordCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	if c.token == "" || c.client == nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "Token",
			Status: StatusFail,
			Detail: "DISCORD_TOKEN is not set",
		})
		return result
	}
	result.Items = append(result.Items, CheckItem{Label: "Token", Status: StatusPass})

	if c.channelID == "" {
		result.Items = append(result.Items, CheckItem{
			Label:  "Channel",
			Status: StatusWarn,
			Detail: "no default_channel configured, skipped access check",
		})
		return result
	}

	_, err := c.client.Fetch(ctx, c.channelID, 1)
	result.Items = append(result.Items, channelItem(c.channelID, err))
	return result
}

func channelItem(channelID string, err error) CheckItem {
	item := CheckItem{Label: "Channel " + channelID}

	var apiErr *discord.APIError
	switch {
	case err == nil:
		item.Status = StatusPass
	case discord.IsAPIError(err, http.StatusUnauthorized):
		item.Status = StatusFail
		item.Detail = "token rejected (401)"
	case discord.IsAPIError(err, http.StatusForbidden):
		item.Status = StatusFail
		item.Detail = "missing access to channel (403)"
	case discord.IsAPIError(err, http.StatusNotFound):
		item.Status = StatusFail
		item.Detail = "unknown channel (404)"
	case errors.As(err, &apiErr):
		item.Status = StatusFail
		item.Detail = apiErr.Error()
	default:
		item.Status = StatusFail
		item.Detail = err.Error()
	}

	return item
}
