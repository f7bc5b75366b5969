package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	LLM     LLMConfig     `mapstructure:"llm" validate:"required"`
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Project ProjectConfig `mapstructure:"project"`
}

// LLMConfig contains all generative model settings.
type LLMConfig struct {
	// ModelName is the Gemini model every chat session is opened against.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// UserAgent tags every outbound call to Google APIs.
	UserAgent string `mapstructure:"user_agent" validate:"required"`

	// Backend selects Vertex AI or the Gemini Developer API.
	Backend string `mapstructure:"backend" validate:"required,oneof=vertexai gemini"`

	// Location is the Vertex AI region. Only used by the vertexai backend.
	Location string `mapstructure:"location" validate:"required_if=Backend vertexai"`

	// APIKey authenticates against the Gemini Developer API.
	APIKey string `mapstructure:"api_key" validate:"required_if=Backend gemini"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// ProjectConfig identifies the Google Cloud project.
// The ID is optional: prompt lookups degrade to built-in defaults without it.
type ProjectConfig struct {
	ID string `mapstructure:"id"`
}

// Default values applied before any file or environment source.
const (
	DefaultModelName = "gemini-1.5-pro"
	DefaultUserAgent = "cloud-solutions/genai-for-developers-v1.0"
	DefaultBackend   = "vertexai"
	DefaultLocation  = "us-central1"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"

	// CILogFormat replaces DefaultLogFormat inside CI pipelines.
	CILogFormat = "json"
)
