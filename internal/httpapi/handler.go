package httpapi

import (
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"worddist"
	"worddist/internal/middleware"
)

// Health answers liveness probes.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// pairRequest is one comparison in a distanceRequest. Limit and NormLimit
// default to the server's Config defaults when omitted; because they are
// pointers, an explicit 0 is kept as 0, which means "no limit" for that
// dimension.
type pairRequest struct {
	A         string   `json:"a"`
	B         string   `json:"b"`
	Limit     *float64 `json:"limit,omitempty"`
	NormLimit *float64 `json:"normLimit,omitempty"`
}

// distanceRequest accepts either a single pair at the top level or a batch
// under "pairs"; both forms may be combined, and the results are
// concatenated top-level pair first, then the batch in order.
type distanceRequest struct {
	pairRequest
	Pairs []pairRequest `json:"pairs,omitempty"`
}

type pairResult struct {
	Distance  *float64 `json:"distance,omitempty"`
	OverLimit bool     `json:"overLimit"`
}

type distanceResponse struct {
	Results []pairResult `json:"results"`
}

// Distance returns a handler that evaluates cfg against every pair in the
// decoded request body.
func Distance(cfg *worddist.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		reqID := middleware.GetRequestID(r)
		log := logger
		if reqID != "" {
			log = logger.With().Str("req_id", reqID).Logger()
		}

		defer r.Body.Close()
		var req distanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
			return
		}

		pairs := req.Pairs
		if req.A != "" || req.B != "" {
			pairs = append([]pairRequest{req.pairRequest}, pairs...)
		}
		if len(pairs) == 0 {
			writeError(w, http.StatusBadRequest, "no pairs to compare")
			return
		}

		results := make([]pairResult, len(pairs))
		for i, p := range pairs {
			limit, normLimit := cfg.DefaultLimits()
			if p.Limit != nil {
				limit = *p.Limit
			}
			if p.NormLimit != nil {
				normLimit = *p.NormLimit
			}
			d := cfg.DistanceWithLimits(p.A, p.B, limit, normLimit)
			if math.IsInf(d, 1) {
				results[i] = pairResult{OverLimit: true}
			} else {
				results[i] = pairResult{Distance: &d}
			}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if err := json.NewEncoder(w).Encode(distanceResponse{Results: results}); err != nil {
			log.Error().Err(err).Msg("write json")
			return
		}

		log.Info().
			Int("pairs", len(pairs)).
			Dur("elapsed", time.Since(start)).
			Msg("distance done")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
