package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"

	"github.com/vfg2006/commerce-insights-api/internal/config"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type Connection struct {
	*sql.DB
	driver string
}

// NewConnection abre a conexão com o banco do ledger e valida com um ping
func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	driver, dsn, err := DataSource(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Connection{DB: db, driver: driver}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

func (c *Connection) Driver() string {
	return c.driver
}

// Placeholder retorna o formato de parâmetros esperado pelo driver
func (c *Connection) Placeholder() squirrel.PlaceholderFormat {
	return PlaceholderFor(c.driver)
}

func PlaceholderFor(driver string) squirrel.PlaceholderFormat {
	if driver == DriverPostgres {
		return squirrel.Dollar
	}

	return squirrel.Question
}

// DataSource resolve o nome do driver e a DSN a partir da configuração
func DataSource(cfg config.Database) (string, string, error) {
	dsn := cfg.DSN
	if dsn == "" {
		dsn = config.BuildDSN(cfg)
	}

	switch strings.ToLower(cfg.Driver) {
	case "postgres", "postgresql":
		return DriverPostgres, dsn, nil
	case "mysql", "mariadb":
		mysqlDSN, err := toMySQLDSN(dsn)
		if err != nil {
			return "", "", err
		}
		return DriverMySQL, mysqlDSN, nil
	default:
		return "", "", fmt.Errorf("driver de banco não suportado: %q", cfg.Driver)
	}
}

// toMySQLDSN converte URLs mysql:// ou mariadb:// para o formato do go-sql-driver.
// Qualquer outro valor é repassado como está.
func toMySQLDSN(dsn string) (string, error) {
	if !strings.HasPrefix(dsn, "mariadb://") && !strings.HasPrefix(dsn, "mysql://") {
		return dsn, nil
	}

	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("erro ao interpretar dsn: %w", err)
	}

	user, pass := "", ""
	if u.User != nil {
		user = u.User.Username()
		pass, _ = u.User.Password()
	}

	db := strings.TrimPrefix(u.Path, "/")
	if user == "" || u.Host == "" || db == "" {
		return "", fmt.Errorf("dsn incompleto (usuário/host/banco)")
	}

	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&interpolateParams=true", user, pass, u.Host, db), nil
}
