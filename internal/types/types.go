package types

// Model identifies a model on a specific provider.
type Model struct {
	Provider string `json:"provider"`
	ModelID  string `json:"model_id"`
}
