package datasource

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vfg2006/commerce-insights-api/infrastructure/repository"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/pkg/log"
	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

// Store mantém o snapshot atual do ledger. Cada carga cria um snapshot novo e
// imutável, que substitui o anterior de forma atômica. Quem cria o Store
// controla o seu ciclo de vida.
type Store struct {
	repo         repository.OrderRepository
	lookbackDays int

	mu      sync.RWMutex
	current *domain.Snapshot

	now   func() time.Time
	newID func() (string, error)
}

func NewStore(repo repository.OrderRepository, lookbackDays int) *Store {
	return &Store{
		repo:         repo,
		lookbackDays: lookbackDays,
		now:          time.Now,
		newID:        utils.GenerateID,
	}
}

// Load lê o ledger e publica um novo snapshot. Em caso de erro o snapshot
// anterior continua disponível.
func (s *Store) Load(ctx context.Context) (*domain.Snapshot, error) {
	logger := log.ForContext(ctx)
	loadedAt := s.now()

	var since *time.Time
	if s.lookbackDays > 0 {
		start := loadedAt.AddDate(0, 0, -s.lookbackDays)
		since = &start
	}

	orders, err := s.repo.ListOrders(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar pedidos do ledger: %w", err)
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do snapshot: %w", err)
	}

	snapshot := &domain.Snapshot{
		ID:       id,
		LoadedAt: loadedAt,
		Orders:   orders,
	}

	s.mu.Lock()
	s.current = snapshot
	s.mu.Unlock()

	logger.WithFields(log.Fields{
		"snapshot_id": snapshot.ID,
		"rows":        snapshot.Rows(),
	}).Info("datasource: snapshot carregado")

	return snapshot, nil
}

// Current retorna o último snapshot carregado
func (s *Store) Current() (*domain.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current, s.current != nil
}

func (s *Store) Loaded() bool {
	_, ok := s.Current()
	return ok
}

// LoadWithin executa Load com prazo. timeout <= 0 não impõe limite.
func (s *Store) LoadWithin(ctx context.Context, timeout time.Duration) (*domain.Snapshot, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	return s.Load(ctx)
}
