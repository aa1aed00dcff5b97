package llmHandlers

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// VertexAnthropicClient streams Claude completions through the Vertex AI
// streamRawPredict endpoint.
type VertexAnthropicClient struct {
	Model string
}

type VertexConfig struct {
	Model string
}

func NewVertexAnthropicClient(cfg VertexConfig) *VertexAnthropicClient {
	model := cfg.Model
	if model == "" {
		model = "claude-sonnet-4-5@20250929"
	}
	return &VertexAnthropicClient{Model: model}
}

type vertexStreamEvent struct {
	Type  string `json:"type"` // e.g. "content_block_delta", "message_stop"
	Delta struct {
		Type string `json:"type"` // "text_delta" for text fragments
		Text string `json:"text"`
	} `json:"delta"`
}

func (c *VertexAnthropicClient) ChatStream(ctx context.Context, prompt string, onChunk ChunkFunc) error {
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT_ID")
	location := os.Getenv("GOOGLE_CLOUD_VERTEXAI_LOCATION") // e.g. "us-east5"

	// ---------- 1) Auth HTTP client from SA JSON ----------
	enc := os.Getenv("GCP_SERVICE_ACCOUNT_CREDENTIALS")
	if enc == "" {
		return fmt.Errorf("GCP_SERVICE_ACCOUNT_CREDENTIALS not set")
	}
	saJSON, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		return fmt.Errorf("decode sa json: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, saJSON, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		return fmt.Errorf("CredentialsFromJSON: %w", err)
	}
	httpClient := oauth2.NewClient(ctx, creds.TokenSource)

	// ---------- 2) Build streamRawPredict URL ----------
	url := fmt.Sprintf(
		"https://%s-aiplatform.googleapis.com/v1/projects/%s/locations/%s/publishers/anthropic/models/%s:streamRawPredict",
		location, projectID, location, c.Model,
	)

	// ---------- 3) Build request body ----------
	body := map[string]interface{}{
		"anthropic_version": "vertex-2023-10-16",
		"messages": []map[string]interface{}{
			{"role": "user", "content": prompt},
		},
		"max_tokens": 1024,
		"stream":     true,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")

	// ---------- 4) Do request & read SSE ----------
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		return fmt.Errorf("vertex error %d: %s", resp.StatusCode, buf.String())
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()

		// SSE lines look like: "data: { ... }"
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		data := strings.TrimPrefix(line, "data: ")
		if data == "" || data == "[DONE]" {
			break
		}

		var ev vertexStreamEvent
		if err := json.Unmarshal([]byte(data), &ev); err != nil {
			// skip a single malformed chunk rather than hard-fail
			continue
		}
		if ev.Type == "message_stop" {
			break
		}
		if ev.Delta.Type == "text_delta" && ev.Delta.Text != "" {
			if err := onChunk(ctx, ev.Delta.Text); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}
