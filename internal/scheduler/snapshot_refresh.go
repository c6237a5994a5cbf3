package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/commerce-insights-api/internal/config"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

//go:generate mockgen -source=snapshot_refresh.go -destination=mocks/snapshot_refresh.go -package=mocks

// SnapshotLoader carrega um novo snapshot do ledger
type SnapshotLoader interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
}

// SnapshotRefreshService gerencia o agendamento e a execução da recarga do snapshot
type SnapshotRefreshService struct {
	scheduler            *gocron.Scheduler
	config               config.SnapshotRefresh
	loader               SnapshotLoader
	refreshRunning       bool
	refreshMutex         sync.Mutex
	refreshWG            sync.WaitGroup
	lastRefreshStartedAt time.Time
	lastRefreshDoneAt    time.Time
	lastSnapshotID       string
	lastError            string
}

func NewSnapshotRefreshService(loader SnapshotLoader, cfg config.SnapshotRefresh) *SnapshotRefreshService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"enabled":       cfg.Enabled,
		"lookback_days": cfg.LookbackDays,
		"load_timeout":  cfg.LoadTimeout.String(),
	}).Info("Configuração do agendador de snapshot carregada")

	return &SnapshotRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		loader:    loader,
	}
}

// Start inicia o agendador
func (s *SnapshotRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Recarga agendada do snapshot desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do snapshot")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if !s.begin() {
			logrus.Info("Recarga do snapshot já em andamento, ignorando execução agendada")
			return
		}
		s.refresh()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do snapshot: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do snapshot")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshSnapshot dispara manualmente uma recarga. Retorna false quando já
// existe uma recarga em andamento.
func (s *SnapshotRefreshService) RefreshSnapshot() bool {
	if !s.begin() {
		logrus.Info("Recarga do snapshot já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando recarga manual do snapshot")
	go s.refresh()

	return true
}

// Wait bloqueia até que a recarga em andamento termine
func (s *SnapshotRefreshService) Wait() {
	s.refreshWG.Wait()
}

func (s *SnapshotRefreshService) begin() bool {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	if s.refreshRunning {
		return false
	}

	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	s.refreshWG.Add(1)

	return true
}

// refresh deve ser chamado somente após begin retornar true
func (s *SnapshotRefreshService) refresh() {
	defer s.refreshWG.Done()

	ctx := context.Background()
	if s.config.LoadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.LoadTimeout)
		defer cancel()
	}

	startTime := time.Now()
	snapshot, err := s.loader.Load(ctx)

	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()
	s.refreshRunning = false

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro ao recarregar snapshot, mantendo o anterior")
		return
	}

	s.lastError = ""
	s.lastSnapshotID = snapshot.ID
	s.lastRefreshDoneAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"rows":        snapshot.Rows(),
		"duration":    time.Since(startTime).String(),
	}).Info("Recarga do snapshot concluída")
}

// Status retorna o estado atual da recarga
func (s *SnapshotRefreshService) Status() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return map[string]any{
		"refresh_running":           s.refreshRunning,
		"refresh_cron":              s.config.CronSchedule,
		"refresh_enabled":           s.config.Enabled,
		"last_refresh_started_at":   s.lastRefreshStartedAt,
		"last_refresh_completed_at": s.lastRefreshDoneAt,
		"last_snapshot_id":          s.lastSnapshotID,
		"last_error":                s.lastError,
	}
}
