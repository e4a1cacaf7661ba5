package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/griederer/ai-visualization-gallery/internal/domain"
)

const watchHeartbeat = 15 * time.Second

// Watch handles GET /api/v1/visualizations/watch: a server-sent-events
// stream that emits a full ordered gallery snapshot on connect and after
// every change, until the client disconnects.
//
// Events:
//
//	event: snapshot   data: {"visualizations": [...], "count": N}
//	event: error      data: {"error": "..."}
//
// Comment lines are sent as heartbeats to keep intermediaries from closing
// an idle stream.
func (h *VisualizationHandler) Watch(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	// Latest-wins buffers: the subscription goroutine is the only producer,
	// so draining before a send can never block it.
	snapshots := make(chan []domain.Visualization, 1)
	errs := make(chan error, 1)

	onData := func(records []domain.Visualization) {
		select {
		case snapshots <- records:
		default:
			select {
			case <-snapshots:
			default:
			}
			snapshots <- records
		}
	}
	onError := func(err error) {
		select {
		case errs <- err:
		default:
		}
	}

	sub, err := h.svc.Watch(r.Context(), f, onData, onError)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	defer sub.Unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	heartbeat := time.NewTicker(watchHeartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return

		case records := <-snapshots:
			payload, err := json.Marshal(listResponse{
				Visualizations: records,
				Count:          len(records),
			})
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", payload)
			flusher.Flush()

		case err := <-errs:
			payload, _ := json.Marshal(map[string]string{"error": err.Error()})
			fmt.Fprintf(w, "event: error\ndata: %s\n\n", payload)
			flusher.Flush()

		case <-heartbeat.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		}
	}
}
