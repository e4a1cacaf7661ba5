//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/griederer/ai-visualization-gallery/internal/adapter/postgres/testhelper"
	"github.com/griederer/ai-visualization-gallery/internal/adapter/postgres/visualization"
	"github.com/griederer/ai-visualization-gallery/internal/app"
	"github.com/griederer/ai-visualization-gallery/internal/domain"
	"github.com/griederer/ai-visualization-gallery/internal/service/gallery"
	"github.com/griederer/ai-visualization-gallery/internal/service/generation"
	"github.com/griederer/ai-visualization-gallery/internal/transport/middleware"
	"github.com/griederer/ai-visualization-gallery/internal/transport/rest"
)

// scriptedLLM stands in for the Anthropic API. It answers with a valid
// strict-format payload until fail is flipped.
type scriptedLLM struct {
	fail atomic.Bool
}

func (s *scriptedLLM) Complete(_ context.Context, _ string) (string, error) {
	if s.fail.Load() {
		return "", domain.NewUpstreamError("anthropic", context.DeadlineExceeded)
	}
	return "{\"componentCode\": `function Artwork() { const [t, setT] = useState(0); return <canvas width={550} height={550}/>; }`, " +
		"\"description\": \"A meditation on motion and stillness\", " +
		"\"philosophicalTheme\": \"Impermanence\"}", nil
}

type testEnv struct {
	srv *httptest.Server
	llm *scriptedLLM
}

// setupEnv wires the full stack (minus the outer http.Server) against the
// shared test database and returns a running test server.
func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	testhelper.TruncateVisualizations(t, pool)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := visualization.New(pool)
	llm := &scriptedLLM{}

	genSvc := generation.NewService(logger, llm, 30*time.Second)
	gallerySvc := gallery.NewService(logger, app.GalleryStore{Repo: repo}, genSvc)

	generateHandler := rest.NewGenerateHandler(genSvc, logger)
	visHandler := rest.NewVisualizationHandler(gallerySvc, logger)
	healthHandler := rest.NewHealthHandler(pool, "e2e")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health/live", healthHandler.Live)
	mux.HandleFunc("GET /health/ready", healthHandler.Ready)
	mux.HandleFunc("POST /api/v1/generate", generateHandler.Generate)
	mux.HandleFunc("POST /api/v1/visualizations", visHandler.Create)
	mux.HandleFunc("GET /api/v1/visualizations", visHandler.List)
	mux.HandleFunc("GET /api/v1/visualizations/latest", visHandler.Latest)
	mux.HandleFunc("GET /api/v1/visualizations/watch", visHandler.Watch)
	mux.HandleFunc("GET /api/v1/visualizations/{id}", visHandler.Get)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testEnv{srv: srv, llm: llm}
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
