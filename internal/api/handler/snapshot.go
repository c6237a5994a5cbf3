package handler

import (
	"net/http"

	"github.com/vfg2006/commerce-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/commerce-insights-api/pkg/apiErrors"
	"github.com/vfg2006/commerce-insights-api/pkg/log"
)

//go:generate mockgen -source=snapshot.go -destination=mocks/snapshot.go -package=mocks

// SnapshotRefresher dispara e acompanha a recarga do snapshot
type SnapshotRefresher interface {
	RefreshSnapshot() bool
	Status() map[string]any
}

// RefreshSnapshot dispara uma recarga manual do snapshot
func RefreshSnapshot(refresher SnapshotRefresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if !refresher.RefreshSnapshot() {
			logger.Warn("snapshot: recarga já em andamento")
			apiErrors.WriteError(w, apiErrors.ErrSnapshotRefreshing, "Recarga do snapshot já em andamento", nil)
			return
		}

		logger.Info("snapshot: recarga manual iniciada")
		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Recarga do snapshot iniciada",
		})
	})
}

// GetSnapshotStatus retorna o estado da recarga e do snapshot publicado
func GetSnapshotStatus(refresher SnapshotRefresher, snapshots insighting.SnapshotProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := refresher.Status()

		snapshot, ok := snapshots.Current()
		status["snapshot_loaded"] = ok
		if ok {
			status["snapshot_id"] = snapshot.ID
			status["snapshot_loaded_at"] = snapshot.LoadedAt
			status["snapshot_rows"] = snapshot.Rows()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
