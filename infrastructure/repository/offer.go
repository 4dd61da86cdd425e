package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/offer-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/offer-dashboard-api/internal/domain"
)

const offersTable = "ofertas"

var offerColumns = []string{
	"id", "nome", "nicho", "pais", "status", "thresholds", "created_at", "updated_at", "archived_at",
}

type OfferRepository interface {
	List(ctx context.Context, status domain.Status) ([]*domain.Offer, error)
	GetByID(ctx context.Context, id string) (*domain.Offer, error)
	Create(ctx context.Context, offer *domain.Offer) error
	Update(ctx context.Context, id string, update *domain.OfferUpdate) (*domain.Offer, error)
	Delete(ctx context.Context, id string) error
}

type offerRepository struct {
	db postgres.Queryer
}

func NewOfferRepository(db postgres.Queryer) OfferRepository {
	return &offerRepository{db: db}
}

func listOffersQuery(status domain.Status) squirrel.SelectBuilder {
	query := squirrel.
		Select(offerColumns...).
		From(offersTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if status.IsFilter() {
		query = query.Where(squirrel.Eq{"status": status})
	}

	return query
}

func (r *offerRepository) List(ctx context.Context, status domain.Status) ([]*domain.Offer, error) {
	sqlQuery, args, err := listOffersQuery(status).ToSql()
	if err != nil {
		return nil, err
	}

	offers := make([]*domain.Offer, 0)
	if err := r.db.SelectContext(ctx, &offers, sqlQuery, args...); err != nil {
		return nil, wrapError("listar ofertas", err)
	}

	return offers, nil
}

func (r *offerRepository) GetByID(ctx context.Context, id string) (*domain.Offer, error) {
	sqlQuery, args, err := squirrel.
		Select(offerColumns...).
		From(offersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	offer := &domain.Offer{}
	if err := r.db.GetContext(ctx, offer, sqlQuery, args...); err != nil {
		return nil, wrapError("buscar oferta", err)
	}

	return offer, nil
}

func (r *offerRepository) Create(ctx context.Context, offer *domain.Offer) error {
	sqlQuery, args, err := squirrel.
		Insert(offersTable).
		Columns("id", "nome", "nicho", "pais", "status", "thresholds", "archived_at").
		Values(offer.ID, offer.Name, offer.Niche, offer.Country, offer.Status, offer.Thresholds, offer.ArchivedAt).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if err := r.db.GetContext(ctx, offer, sqlQuery, args...); err != nil {
		return wrapError("criar oferta", err)
	}

	return nil
}

// updateOfferQuery monta o UPDATE parcial; updated_at é sempre renovado
func updateOfferQuery(id string, u *domain.OfferUpdate) squirrel.UpdateBuilder {
	query := squirrel.
		Update(offersTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(offerColumns)).
		PlaceholderFormat(squirrel.Dollar)

	if u == nil {
		return query
	}
	if u.Name != nil {
		query = query.Set("nome", *u.Name)
	}
	if u.Niche != nil {
		query = query.Set("nicho", *u.Niche)
	}
	if u.Country != nil {
		query = query.Set("pais", *u.Country)
	}
	if u.Status != nil {
		query = query.Set("status", *u.Status)
	}
	if u.Thresholds != nil {
		query = query.Set("thresholds", *u.Thresholds)
	}
	switch {
	case u.ClearArchivedAt:
		query = query.Set("archived_at", nil)
	case u.ArchivedAt != nil:
		query = query.Set("archived_at", *u.ArchivedAt)
	}

	return query
}

func (r *offerRepository) Update(ctx context.Context, id string, update *domain.OfferUpdate) (*domain.Offer, error) {
	sqlQuery, args, err := updateOfferQuery(id, update).ToSql()
	if err != nil {
		return nil, err
	}

	offer := &domain.Offer{}
	if err := r.db.GetContext(ctx, offer, sqlQuery, args...); err != nil {
		return nil, wrapError("atualizar oferta", err)
	}

	return offer, nil
}

func (r *offerRepository) Delete(ctx context.Context, id string) error {
	sqlQuery, args, err := squirrel.
		Delete(offersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return wrapError("excluir oferta", err)
	}

	return affectedOrNotFound("excluir oferta", res)
}
