package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"

	"github.com/quantbroker/leads-api/internal/entity"
)

// LeadStatusRepository é o lifecycle store: uma linha por contactKey com o
// registro serializado em JSON, espelhando o store chave->valor da origem.
// Tabela: lead_status (contact_key text primary key, payload jsonb, updated_at).
type LeadStatusRepository struct {
	DB *sql.DB
}

func NewLeadStatusRepository(db *sql.DB) *LeadStatusRepository {
	return &LeadStatusRepository{DB: db}
}

// Get nunca falha: linha ausente, erro de leitura ou payload que não
// decodifica viram o registro default. Degradação silenciosa de propósito —
// um registro corrompido não pode derrubar a lista de leads inteira.
func (r *LeadStatusRepository) Get(ctx context.Context, contactKey string) entity.LeadStatusRecord {
	query := `SELECT payload FROM lead_status WHERE contact_key = $1`

	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, contactKey).Scan(&payload)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("⚠️ [LEAD STATUS] Falha ao ler %s, usando default: %v", contactKey, err)
		}
		return entity.DefaultLeadStatusRecord()
	}

	var record entity.LeadStatusRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		log.Printf("⚠️ [LEAD STATUS] Payload corrompido em %s, usando default: %v", contactKey, err)
		return entity.DefaultLeadStatusRecord()
	}

	if !entity.IsValidLeadStatus(record.Status) {
		return entity.DefaultLeadStatusRecord()
	}

	return record
}

// Set sobrescreve incondicionalmente qualquer registro anterior da chave
// (last write wins; o conflito é logado na camada de usecase)
func (r *LeadStatusRepository) Set(ctx context.Context, contactKey string, record entity.LeadStatusRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO lead_status (contact_key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (contact_key)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`

	_, err = r.DB.ExecContext(ctx, query, contactKey, payload)
	return err
}
