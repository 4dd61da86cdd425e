package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/offer-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/offer-dashboard-api/internal/domain"
)

const (
	nichesTable      = "nichos"
	copywritersTable = "copywriters"
	countriesTable   = "paises"
)

type NicheRepository interface {
	List(ctx context.Context) ([]*domain.Niche, error)
	Create(ctx context.Context, niche *domain.Niche) error
	Delete(ctx context.Context, id string) error
}

type CopywriterRepository interface {
	List(ctx context.Context) ([]*domain.Copywriter, error)
	Create(ctx context.Context, copywriter *domain.Copywriter) error
	Delete(ctx context.Context, id string) error
}

type CountryRepository interface {
	List(ctx context.Context) ([]*domain.Country, error)
	Create(ctx context.Context, country *domain.Country) error
	Delete(ctx context.Context, id string) error
}

// lookupTable concentra o acesso às tabelas auxiliares (nome único, ordenadas por nome)
type lookupTable struct {
	db      postgres.Queryer
	table   string
	columns []string
}

func (t lookupTable) list(ctx context.Context, dest interface{}) error {
	sqlQuery, args, err := squirrel.
		Select(t.columns...).
		From(t.table).
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if err := t.db.SelectContext(ctx, dest, sqlQuery, args...); err != nil {
		return wrapError("listar "+t.table, err)
	}
	return nil
}

func (t lookupTable) create(ctx context.Context, dest interface{}, values map[string]interface{}) error {
	sqlQuery, args, err := squirrel.
		Insert(t.table).
		SetMap(values).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if err := t.db.GetContext(ctx, dest, sqlQuery, args...); err != nil {
		return wrapError("criar registro em "+t.table, err)
	}
	return nil
}

func (t lookupTable) delete(ctx context.Context, id string) error {
	sqlQuery, args, err := squirrel.
		Delete(t.table).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	res, err := t.db.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return wrapError("excluir registro de "+t.table, err)
	}
	return affectedOrNotFound("excluir registro de "+t.table, res)
}

type nicheRepository struct {
	lookupTable
}

func NewNicheRepository(db postgres.Queryer) NicheRepository {
	return &nicheRepository{lookupTable{db: db, table: nichesTable, columns: []string{"id", "nome", "created_at"}}}
}

func (r *nicheRepository) List(ctx context.Context) ([]*domain.Niche, error) {
	niches := make([]*domain.Niche, 0)
	if err := r.list(ctx, &niches); err != nil {
		return nil, err
	}
	return niches, nil
}

func (r *nicheRepository) Create(ctx context.Context, n *domain.Niche) error {
	return r.create(ctx, n, map[string]interface{}{"id": n.ID, "nome": n.Name})
}

func (r *nicheRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

type copywriterRepository struct {
	lookupTable
}

func NewCopywriterRepository(db postgres.Queryer) CopywriterRepository {
	return &copywriterRepository{lookupTable{db: db, table: copywritersTable, columns: []string{"id", "nome", "created_at"}}}
}

func (r *copywriterRepository) List(ctx context.Context) ([]*domain.Copywriter, error) {
	copywriters := make([]*domain.Copywriter, 0)
	if err := r.list(ctx, &copywriters); err != nil {
		return nil, err
	}
	return copywriters, nil
}

func (r *copywriterRepository) Create(ctx context.Context, c *domain.Copywriter) error {
	return r.create(ctx, c, map[string]interface{}{"id": c.ID, "nome": c.Name})
}

func (r *copywriterRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

type countryRepository struct {
	lookupTable
}

func NewCountryRepository(db postgres.Queryer) CountryRepository {
	return &countryRepository{lookupTable{db: db, table: countriesTable, columns: []string{"id", "nome", "codigo", "created_at"}}}
}

func (r *countryRepository) List(ctx context.Context) ([]*domain.Country, error) {
	countries := make([]*domain.Country, 0)
	if err := r.list(ctx, &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *countryRepository) Create(ctx context.Context, c *domain.Country) error {
	return r.create(ctx, c, map[string]interface{}{"id": c.ID, "nome": c.Name, "codigo": c.Code})
}

func (r *countryRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
