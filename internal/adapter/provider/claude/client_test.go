package claude

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/areknoster/hypert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griederer/ai-visualization-gallery/internal/config"
	"github.com/griederer/ai-visualization-gallery/internal/domain"
)

func testConfig() config.LLMConfig {
	return config.LLMConfig{
		APIKey:    "test-key",
		Model:     "claude-3-5-sonnet-20241022",
		MaxTokens: 4000,
		Timeout:   time.Minute,
	}
}

// roundTripFunc lets a test stand in for the Anthropic API.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestNew_MissingAPIKey(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.APIKey = ""

	_, err := New(cfg)
	require.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestComplete_ReturnsText(t *testing.T) {
	t.Parallel()

	transport := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		return jsonResponse(http.StatusOK, `{
			"id": "msg_01",
			"type": "message",
			"role": "assistant",
			"model": "claude-3-5-sonnet-20241022",
			"content": [{"type": "text", "text": "here is your component"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 5}
		}`), nil
	})

	client, err := New(testConfig(),
		option.WithHTTPClient(&http.Client{Transport: transport}),
		option.WithMaxRetries(0),
	)
	require.NoError(t, err)

	text, err := client.Complete(context.Background(), "draw serenity")
	require.NoError(t, err)
	assert.Equal(t, "here is your component", text)
}

func TestComplete_APIErrorIsUpstream(t *testing.T) {
	t.Parallel()

	transport := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusTooManyRequests,
			`{"type": "error", "error": {"type": "rate_limit_error", "message": "slow down"}}`), nil
	})

	client, err := New(testConfig(),
		option.WithHTTPClient(&http.Client{Transport: transport}),
		option.WithMaxRetries(0),
	)
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "draw serenity")
	require.ErrorIs(t, err, domain.ErrUpstream)
	assert.Contains(t, err.Error(), "anthropic", "provider name preserved for diagnostics")
}

func TestComplete_EmptyContentIsUpstream(t *testing.T) {
	t.Parallel()

	transport := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{
			"id": "msg_02",
			"type": "message",
			"role": "assistant",
			"model": "claude-3-5-sonnet-20241022",
			"content": [],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 0}
		}`), nil
	})

	client, err := New(testConfig(),
		option.WithHTTPClient(&http.Client{Transport: transport}),
		option.WithMaxRetries(0),
	)
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "draw serenity")
	require.ErrorIs(t, err, domain.ErrUpstream)
}

// TestComplete_Recorded replays a real API exchange captured with hypert.
// Run with UPDATE_TESTS=true and a real LLM_API_KEY to (re)record.
func TestComplete_Recorded(t *testing.T) {
	record := os.Getenv("UPDATE_TESTS") == "true"

	if !record {
		entries, err := os.ReadDir("testdata/TestComplete_Recorded")
		if err != nil || len(entries) == 0 {
			t.Skip("no recorded exchanges in testdata; set UPDATE_TESTS=true to record")
		}
	}

	cfg := testConfig()
	if record {
		cfg.APIKey = os.Getenv("LLM_API_KEY")
		require.NotEmpty(t, cfg.APIKey, "recording requires LLM_API_KEY")
	}

	httpClient := hypert.TestClient(t, record,
		hypert.WithRequestSanitizer(hypert.ComposedRequestSanitizer(
			hypert.DefaultRequestSanitizer(),
			hypert.HeadersSanitizer("x-api-key"),
		)),
	)

	client, err := New(cfg, option.WithHTTPClient(httpClient))
	require.NoError(t, err)

	text, err := client.Complete(context.Background(), `Reply with exactly: ok`)
	require.NoError(t, err)
	assert.NotEmpty(t, text)
}
