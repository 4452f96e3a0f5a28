package domain

// Channel is one addressable conversation surface inside a Server.
// Ignored defaults to false on creation and is flipped only by the
// ignore/unignore commands.
type Channel struct {
	ID       string `json:"id"`
	ServerID string `json:"server_id"`
	Name     string `json:"name"`
	Ignored  bool   `json:"ignored"`
}

// Server is a group/guild the bot is a member of, with the text channels
// observed on it.
type Server struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Channels []Channel `json:"channels"`
}
