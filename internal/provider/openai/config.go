package openai

// Config contains OpenAI-compatible generator configuration.
// All fields map to OpenAI SDK options:
//   - APIKey: Maps to option.WithAPIKey()
//   - BaseURL: Maps to option.WithBaseURL()
//   - Timeout: Maps to option.WithRequestTimeout() (in seconds)
//   - MaxRetries: Maps to option.WithMaxRetries()
//
// BaseURL may point at any OpenAI-compatible endpoint, such as Gemini's.
type Config struct {
	APIKey      string  `env:"OPENAI_API_KEY"`
	BaseURL     string  `env:"OPENAI_BASE_URL"    envDefault:"https://api.openai.com/v1"`
	Model       string  `env:"OPENAI_MODEL"       envDefault:"gpt-4o-mini"`
	Timeout     int     `env:"OPENAI_TIMEOUT"     envDefault:"60"`
	MaxRetries  int     `env:"OPENAI_MAX_RETRIES" envDefault:"2"`
	Temperature float64 `env:"OPENAI_TEMPERATURE" envDefault:"0.7"`
}
