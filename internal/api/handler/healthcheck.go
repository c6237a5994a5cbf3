package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/commerce-insights-api/internal/usecases/insighting"
)

// HealthcheckHandler responde sempre 200. snapshot_loaded indica se a API já
// consegue responder aos insights.
func HealthcheckHandler(snapshots insighting.SnapshotProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, loaded := snapshots.Current()

		writeJSON(w, r, http.StatusOK, map[string]any{
			"status":          "ok",
			"time":            time.Now().Format(time.RFC3339),
			"snapshot_loaded": loaded,
		})
	})
}
