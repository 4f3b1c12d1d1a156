package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	OutputFile    string
	Port          string
	MaxConcurrent int
	Slack         SlackConfig
	Turso         TursoConfig
	ProjectID     string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// SlackEnabled reports whether notification credentials were provided.
func (c Config) SlackEnabled() bool {
	return c.Slack.Token != "" && c.Slack.ChannelID != ""
}

// PubSubEnabled reports whether a GCP project was provided.
func (c Config) PubSubEnabled() bool {
	return c.ProjectID != ""
}
