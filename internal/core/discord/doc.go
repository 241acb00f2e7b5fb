// Package discord is a small client for the Discord REST API scoped to a
// single channel-oriented workflow: poll a channel for messages newer than
// the last one seen, drop bot-authored messages, and post text or file
// attachments back.
//
// [Client] owns the HTTP transport, the bot token, and an in-memory cursor
// holding the highest message ID already returned by [Client.Fetch]. Message
// IDs are snowflakes (unsigned 64-bit integers encoded as decimal strings) and
// are always compared numerically. The cursor lives only as long as the
// Client; [Client.Reset] clears it.
//
// A Client is not safe for concurrent use. Callers that share one across
// goroutines must serialize access.
//
// API failures are returned as [*APIError] carrying the HTTP status and the
// Discord error code. [IsAPIError] tests for a specific status.
package discord
