package migration

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// migrations é o esquema versionado. Cada versão roda uma única vez, em
// ordem, dentro de uma transação própria; schema_version registra o que
// já foi aplicado. Nenhum outro lugar do código altera o esquema.
var migrations = []struct {
	version    int
	statements []string
}{
	{
		version: 1,
		statements: []string{
			`CREATE TABLE IF NOT EXISTS employees (
				id SERIAL PRIMARY KEY,
				public_id TEXT NOT NULL,
				name TEXT NOT NULL UNIQUE,
				email TEXT,
				department TEXT NOT NULL CHECK (department IN ('Drugstore', 'MedicalEquipment', 'Store', 'Registers')),
				active BOOLEAN NOT NULL DEFAULT TRUE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
			`CREATE TABLE IF NOT EXISTS users (
				id SERIAL PRIMARY KEY,
				username TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				legacy_sha256 BOOLEAN NOT NULL DEFAULT FALSE,
				role_id INTEGER NOT NULL DEFAULT 3,
				employee_id INTEGER REFERENCES employees (id),
				active BOOLEAN NOT NULL DEFAULT TRUE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				last_login TIMESTAMPTZ
			)`,
			`CREATE TABLE IF NOT EXISTS sales_entries (
				id SERIAL PRIMARY KEY,
				public_id TEXT NOT NULL,
				employee_id INTEGER NOT NULL REFERENCES employees (id),
				sale_date DATE NOT NULL,
				self_liquidating INTEGER NOT NULL DEFAULT 0 CHECK (self_liquidating >= 0),
				weekly_offer INTEGER NOT NULL DEFAULT 0 CHECK (weekly_offer >= 0),
				house_brand INTEGER NOT NULL DEFAULT 0 CHECK (house_brand >= 0),
				additional INTEGER NOT NULL DEFAULT 0 CHECK (additional >= 0),
				comments TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
			`CREATE TABLE IF NOT EXISTS goals (
				id SERIAL PRIMARY KEY,
				employee_id INTEGER NOT NULL REFERENCES employees (id),
				month INTEGER NOT NULL CHECK (month BETWEEN 1 AND 12),
				year INTEGER NOT NULL,
				target_units INTEGER NOT NULL CHECK (target_units >= 0),
				UNIQUE (employee_id, month, year)
			)`,
		},
	},
	{
		version: 2,
		statements: []string{
			// No máximo uma conta ativa por empregado.
			`CREATE UNIQUE INDEX IF NOT EXISTS users_one_active_per_employee
				ON users (employee_id) WHERE active AND employee_id IS NOT NULL`,
			`CREATE INDEX IF NOT EXISTS sales_entries_employee_date
				ON sales_entries (employee_id, sale_date)`,
			`CREATE INDEX IF NOT EXISTS sales_entries_date
				ON sales_entries (sale_date)`,
		},
	},
}

type Migrator struct {
	conn *postgres.Connection
	cfg  *config.Config
}

func NewMigrator(conn *postgres.Connection, cfg *config.Config) *Migrator {
	return &Migrator{
		conn: conn,
		cfg:  cfg,
	}
}

// Run aplica as migrações pendentes, semeia a conta administradora e
// reescreve credenciais em formatos legados. Executado uma vez por
// inicialização.
func (m *Migrator) Run(ctx context.Context) error {
	if _, err := m.conn.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`); err != nil {
		return fmt.Errorf("erro ao criar schema_version: %w", err)
	}

	current, err := m.currentVersion()
	if err != nil {
		return err
	}

	for _, mig := range migrations {
		if mig.version <= current {
			continue
		}

		logrus.WithField("version", mig.version).Info("Aplicando migração de esquema")

		err := m.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			for _, stmt := range mig.statements {
				if _, err := tx.Exec(stmt); err != nil {
					return fmt.Errorf("erro na migração %d: %w", mig.version, err)
				}
			}

			_, err := tx.Exec("INSERT INTO schema_version (version) VALUES ($1)", mig.version)
			return err
		})
		if err != nil {
			return err
		}
	}

	if err := m.seedAdmin(); err != nil {
		return err
	}

	m.rewrapLegacyCredentials()

	return nil
}

func (m *Migrator) currentVersion() (int, error) {
	var version sql.NullInt64
	err := m.conn.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("erro ao consultar schema_version: %w", err)
	}
	return int(version.Int64), nil
}

// seedAdmin garante a existência da conta administradora. Conflito de
// chave é esperado em toda inicialização após a primeira e é engolido.
func (m *Migrator) seedAdmin() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(m.cfg.Auth.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	result, err := m.conn.Exec(`
		INSERT INTO users (username, password_hash, role_id, active)
		VALUES ($1, $2, 1, TRUE)
		ON CONFLICT (username) DO NOTHING`,
		m.cfg.Auth.SeedAdminUsername, string(hash),
	)
	if err != nil {
		return fmt.Errorf("erro ao semear conta administradora: %w", err)
	}

	if rows, err := result.RowsAffected(); err == nil && rows > 0 {
		logrus.WithField("username", m.cfg.Auth.SeedAdminUsername).Info("Conta administradora semeada")
	}

	return nil
}

// rewrapLegacyCredentials normaliza credenciais herdadas de revisões
// antigas: digests SHA-256 em hex são embrulhados em bcrypt e marcados
// com legacy_sha256 (o login troca pelo bcrypt puro na primeira
// autenticação); valores em texto claro recebem bcrypt direto. Falhas
// aqui são logadas e não derrubam a inicialização.
func (m *Migrator) rewrapLegacyCredentials() {
	rows, err := m.conn.Query(`
		SELECT id, username, password_hash FROM users
		WHERE legacy_sha256 = FALSE AND password_hash NOT LIKE '$2%'`)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar credenciais legadas")
		return
	}
	defer rows.Close()

	type legacyUser struct {
		id       int
		username string
		secret   string
	}

	var pending []legacyUser
	for rows.Next() {
		var u legacyUser
		if err := rows.Scan(&u.id, &u.username, &u.secret); err != nil {
			logrus.WithError(err).Error("Erro ao escanear credencial legada")
			return
		}
		pending = append(pending, u)
	}

	if err := rows.Err(); err != nil {
		logrus.WithError(err).Error("Erro durante iteração de credenciais legadas")
		return
	}

	migrated := 0
	for _, u := range pending {
		isDigest := isSHA256Hex(u.secret)

		// Digest não é reversível: embrulhar. Texto claro: hash direto.
		hash, err := bcrypt.GenerateFromPassword([]byte(u.secret), bcrypt.DefaultCost)
		if err != nil {
			logrus.WithError(err).Warnf("Erro ao migrar credencial do usuário %s", u.username)
			continue
		}

		_, err = m.conn.Exec(
			"UPDATE users SET password_hash = $1, legacy_sha256 = $2 WHERE id = $3",
			string(hash), isDigest, u.id,
		)
		if err != nil {
			logrus.WithError(err).Warnf("Erro ao gravar credencial migrada do usuário %s", u.username)
			continue
		}
		migrated++
	}

	if migrated > 0 {
		logrus.Infof("Credenciais legadas migradas para bcrypt: %d", migrated)
	}
}

// isSHA256Hex reconhece o formato das revisões que gravavam
// hex(sha256(senha)) diretamente.
func isSHA256Hex(s string) bool {
	if len(s) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(strings.ToLower(s))
	return err == nil
}
