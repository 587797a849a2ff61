package mcpserver

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Generator produces one stored image for a prompt and returns its filename.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Handler executes tool calls against a configured generation client.
type Handler struct {
	Generator Generator

	// AssetBase is the public base URL of the asset server, for example
	// http://127.0.0.1:9981. Returned image URLs are built from it.
	AssetBase string
}

// ExecuteHandler runs the named tool and returns its text result. Generation
// failures are returned as the result string, not as an error: the host
// treats tool errors as fatal to the exchange, while an error message in the
// payload is guidance the calling agent can act on.
func (h *Handler) ExecuteHandler(ctx context.Context, toolName string, args map[string]interface{}) (string, error) {
	switch toolName {
	case ToolName:
		return h.generateImage(ctx, args)
	default:
		return "", fmt.Errorf("unknown tool: %s", toolName)
	}
}

func (h *Handler) generateImage(ctx context.Context, args map[string]interface{}) (string, error) {
	prompt, _ := args["prompt"].(string)
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt is required")
	}

	filename, err := h.Generator.Generate(ctx, prompt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating image: %v\n", err)
		return fmt.Sprintf("Error generating image: %v", err), nil
	}

	return fmt.Sprintf("%s/images/%s", strings.TrimSuffix(h.AssetBase, "/"), filename), nil
}
