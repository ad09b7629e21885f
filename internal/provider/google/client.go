package google

import (
	"context"

	"google.golang.org/genai"
)

type Client struct {
	client *genai.Client
}

func NewClient(apiKey string) *Client {
	ctx := context.Background()
	cfg := &genai.ClientConfig{
		APIKey: apiKey,
	}
	c, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil
	}
	return &Client{client: c}
}
