package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/sales-goals-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-goals-api/internal/domain"
)

const (
	storesTable        = "lojas"
	collaboratorsTable = "colaboradores"
)

type StoreRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Store, error)
	ListActive(ctx context.Context) ([]domain.Store, error)
}

type storeRepository struct {
	conn *postgres.Connection
}

func NewStoreRepository(conn *postgres.Connection) StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

func (r *storeRepository) selectStores() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "nome", "COALESCE(codigo_filial, '')", "regiao", "ativo", "created_at", "updated_at").
		From(storesTable).
		PlaceholderFormat(squirrel.Dollar)
}

// GetByID retorna nil quando a loja não existe
func (r *storeRepository) GetByID(ctx context.Context, id int64) (*domain.Store, error) {
	query, args, err := r.selectStores().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	store, err := scanStore(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar loja %d: %w", id, err)
	}

	return store, nil
}

func (r *storeRepository) ListActive(ctx context.Context) ([]domain.Store, error) {
	query, args, err := r.selectStores().
		Where(squirrel.Eq{"ativo": true}).
		OrderBy("nome ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	stores := make([]domain.Store, 0)
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear loja: %w", err)
		}
		stores = append(stores, *store)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stores, nil
}

func scanStore(row rowScanner) (*domain.Store, error) {
	store := &domain.Store{}

	err := row.Scan(
		&store.ID,
		&store.Name,
		&store.Code,
		&store.Region,
		&store.Active,
		&store.CreatedAt,
		&store.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return store, nil
}

type CollaboratorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Collaborator, error)
	ListByStore(ctx context.Context, storeID int64) ([]domain.Collaborator, error)
}

type collaboratorRepository struct {
	conn *postgres.Connection
}

func NewCollaboratorRepository(conn *postgres.Connection) CollaboratorRepository {
	return &collaboratorRepository{
		conn: conn,
	}
}

func (r *collaboratorRepository) selectCollaborators() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "nome", "loja_id", "COALESCE(codigo_vendedor, '')", "funcao", "ativo", "created_at", "updated_at").
		From(collaboratorsTable).
		PlaceholderFormat(squirrel.Dollar)
}

// GetByID retorna nil quando o colaborador não existe
func (r *collaboratorRepository) GetByID(ctx context.Context, id int64) (*domain.Collaborator, error) {
	query, args, err := r.selectCollaborators().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	collaborator, err := scanCollaborator(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar colaborador %d: %w", id, err)
	}

	return collaborator, nil
}

func (r *collaboratorRepository) ListByStore(ctx context.Context, storeID int64) ([]domain.Collaborator, error) {
	query, args, err := r.selectCollaborators().
		Where(squirrel.Eq{"loja_id": storeID, "ativo": true}).
		OrderBy("nome ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	collaborators := make([]domain.Collaborator, 0)
	for rows.Next() {
		collaborator, err := scanCollaborator(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear colaborador: %w", err)
		}
		collaborators = append(collaborators, *collaborator)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return collaborators, nil
}

func scanCollaborator(row rowScanner) (*domain.Collaborator, error) {
	collaborator := &domain.Collaborator{}

	err := row.Scan(
		&collaborator.ID,
		&collaborator.Name,
		&collaborator.StoreID,
		&collaborator.SellerCode,
		&collaborator.Role,
		&collaborator.Active,
		&collaborator.CreatedAt,
		&collaborator.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return collaborator, nil
}
