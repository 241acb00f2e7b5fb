package discord

// Author is the sender of a Message.
type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	// GlobalName is the user's display name, nil when unset.
	GlobalName *string `json:"global_name,omitempty"`
}

// DisplayName returns GlobalName when set, otherwise Username.
func (a Author) DisplayName() string {
	if a.GlobalName != nil && *a.GlobalName != "" {
		return *a.GlobalName
	}
	return a.Username
}

// Message is a non-bot message returned by Client.Fetch.
type Message struct {
	ID         string   `json:"id"`
	Content    string   `json:"content"`
	Author     Author   `json:"author"`
	MentionIDs []string `json:"mention_ids"`
	// Timestamp is the ISO-8601 string as sent by the API.
	Timestamp string `json:"timestamp"`
}

// SentMessage is the subset of the created message returned by Client.Send.
type SentMessage struct {
	ID        string `json:"id"`
	ChannelID string `json:"channel_id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// SendOptions describes a message to create.
type SendOptions struct {
	Content string
	// Attachments are file paths uploaded as files[0]..files[n-1].
	Attachments []string
	// Nonce deduplicates creates with the same value for a few minutes.
	// When empty, neither nonce nor enforce_nonce is sent.
	Nonce string
}

// wireMessage mirrors the fields of a Discord message object that the
// client reads.
type wireMessage struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Author    struct {
		ID         string  `json:"id"`
		Username   string  `json:"username"`
		GlobalName *string `json:"global_name"`
		Bot        bool    `json:"bot"`
	} `json:"author"`
	Mentions []struct {
		ID string `json:"id"`
	} `json:"mentions"`
}

func (w wireMessage) toMessage() Message {
	mentions := make([]string, 0, len(w.Mentions))
	for _, m := range w.Mentions {
		mentions = append(mentions, m.ID)
	}

	return Message{
		ID:      w.ID,
		Content: w.Content,
		Author: Author{
			ID:         w.Author.ID,
			Username:   w.Author.Username,
			GlobalName: w.Author.GlobalName,
		},
		MentionIDs: mentions,
		Timestamp:  w.Timestamp,
	}
}

// createMessage is the JSON body (or payload_json part) of a create request.
type createMessage struct {
	Content      string `json:"content"`
	Nonce        string `json:"nonce,omitempty"`
	EnforceNonce bool   `json:"enforce_nonce,omitempty"`
}
