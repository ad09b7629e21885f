package consts

const (
	// NixinDir is the per-user application directory under $HOME.
	NixinDir = ".nixin"

	// ConfigFileName is the configuration file inside NixinDir.
	ConfigFileName = "config.json"

	// MemoryDBName is the SQLite database file inside NixinDir.
	MemoryDBName = "memory.db"
)

// Embedding provider identifiers.
const (
	ProviderOpenAI = "openai"
	ProviderGoogle = "google"
)

// DefaultBaseURL is the default OpenAI-compatible API endpoint.
const DefaultBaseURL = "https://api.openai.com/v1"
