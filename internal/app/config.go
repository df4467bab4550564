package app

// Config holds runtime configuration for the formatter, shared by the CLI
// and the HTTP service.
type Config struct {
	// CLI mode
	InputPath  string
	OutputPath string

	// Citation style label. Opaque to the pipeline; only the document title
	// line uses it.
	StyleLabel string

	// HTTP service
	Addr           string
	UploadDir      string
	OutputDir      string
	MaxUploadBytes int64

	// Optional reference assist via an OpenAI-compatible backend. Empty
	// model or base URL leaves assist off.
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	Verbose bool
}

// DefaultStyle is used when no style label is supplied.
const DefaultStyle = "Harvard"
