package analytics

import "time"

const (
	DefaultForecastHorizon = 30
	DefaultTopCategories   = 5
)

type forecastConfig struct {
	horizon       int
	anchor        time.Time
	topCategories int
}

type Option func(*forecastConfig)

// WithHorizon define quantos dias à frente a receita é projetada
func WithHorizon(days int) Option {
	return func(c *forecastConfig) {
		if days > 0 {
			c.horizon = days
		}
	}
}

// WithAnchor define a data de referência usada quando não há histórico
func WithAnchor(anchor time.Time) Option {
	return func(c *forecastConfig) {
		c.anchor = anchor
	}
}

// WithTopCategories define quantas categorias entram na previsão de demanda
func WithTopCategories(n int) Option {
	return func(c *forecastConfig) {
		if n > 0 {
			c.topCategories = n
		}
	}
}

func applyOptions(opts []Option) forecastConfig {
	cfg := forecastConfig{
		horizon:       DefaultForecastHorizon,
		topCategories: DefaultTopCategories,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.anchor.IsZero() {
		cfg.anchor = time.Now().UTC()
	}
	cfg.anchor = dayOf(cfg.anchor)

	return cfg
}
