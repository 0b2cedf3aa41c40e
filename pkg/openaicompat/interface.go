package openaicompat

import "context"

// IClient defines the interface for an OpenAI-compatible chat client.
type IClient interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Provider() string
	Model() string
}
