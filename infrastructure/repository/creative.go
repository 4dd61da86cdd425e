package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/offer-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/offer-dashboard-api/internal/domain"
)

const (
	creativesTable        = "criativos"
	creativesAveragesView = "criativos_com_medias"
)

var creativeColumns = []string{
	"id", "oferta_id", "nome", "status", "fonte", "copy_responsavel", "archived_at", "created_at", "updated_at",
}

var creativeAverageColumns = append(append([]string{}, creativeColumns...),
	"total_investimento", "total_faturamento", "roas_medio", "cpc_medio", "ic_medio", "dias_com_metricas",
)

type CreativeRepository interface {
	List(ctx context.Context, filter domain.CreativeFilter) ([]*domain.Creative, error)
	ListWithAverages(ctx context.Context, offerID string, status domain.Status) ([]*domain.CreativeWithAverages, error)
	GetByID(ctx context.Context, id string) (*domain.Creative, error)
	Create(ctx context.Context, creative *domain.Creative) error
	Update(ctx context.Context, id string, update *domain.CreativeUpdate) (*domain.Creative, error)
	Delete(ctx context.Context, id string) error

	// ArchiveByOffer arquiva com ts os criativos da oferta que ainda não estão arquivados
	ArchiveByOffer(ctx context.Context, offerID string, ts time.Time) (int64, error)
	// RestoreArchivedWith restaura apenas os criativos cujo archived_at é exatamente ts
	RestoreArchivedWith(ctx context.Context, offerID string, ts time.Time) (int64, error)
	CountArchivedWith(ctx context.Context, offerID string, ts time.Time) (int64, error)
	CountByOffer(ctx context.Context) (map[string]int64, error)
}

type creativeRepository struct {
	db postgres.Queryer
}

func NewCreativeRepository(db postgres.Queryer) CreativeRepository {
	return &creativeRepository{db: db}
}

func listCreativesQuery(filter domain.CreativeFilter) squirrel.SelectBuilder {
	query := squirrel.
		Select(creativeColumns...).
		From(creativesTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.OfferID != "" {
		query = query.Where(squirrel.Eq{"oferta_id": filter.OfferID})
	}
	if filter.Status.IsFilter() {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	if domain.IsFilterValue(filter.Source) {
		query = query.Where(squirrel.Eq{"fonte": filter.Source})
	}
	if domain.IsFilterValue(filter.Copywriter) {
		query = query.Where(squirrel.Eq{"copy_responsavel": filter.Copywriter})
	}

	return query
}

func (r *creativeRepository) List(ctx context.Context, filter domain.CreativeFilter) ([]*domain.Creative, error) {
	sqlQuery, args, err := listCreativesQuery(filter).ToSql()
	if err != nil {
		return nil, err
	}

	creatives := make([]*domain.Creative, 0)
	if err := r.db.SelectContext(ctx, &creatives, sqlQuery, args...); err != nil {
		return nil, wrapError("listar criativos", err)
	}

	return creatives, nil
}

func (r *creativeRepository) ListWithAverages(ctx context.Context, offerID string, status domain.Status) ([]*domain.CreativeWithAverages, error) {
	query := squirrel.
		Select(creativeAverageColumns...).
		From(creativesAveragesView).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if offerID != "" {
		query = query.Where(squirrel.Eq{"oferta_id": offerID})
	}
	if status.IsFilter() {
		query = query.Where(squirrel.Eq{"status": status})
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	creatives := make([]*domain.CreativeWithAverages, 0)
	if err := r.db.SelectContext(ctx, &creatives, sqlQuery, args...); err != nil {
		return nil, wrapError("listar criativos com médias", err)
	}

	return creatives, nil
}

func (r *creativeRepository) GetByID(ctx context.Context, id string) (*domain.Creative, error) {
	sqlQuery, args, err := squirrel.
		Select(creativeColumns...).
		From(creativesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	creative := &domain.Creative{}
	if err := r.db.GetContext(ctx, creative, sqlQuery, args...); err != nil {
		return nil, wrapError("buscar criativo", err)
	}

	return creative, nil
}

func (r *creativeRepository) Create(ctx context.Context, c *domain.Creative) error {
	sqlQuery, args, err := squirrel.
		Insert(creativesTable).
		Columns("id", "oferta_id", "nome", "status", "fonte", "copy_responsavel", "archived_at").
		Values(c.ID, c.OfferID, c.Name, c.Status, c.Source, c.Copywriter, c.ArchivedAt).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if err := r.db.GetContext(ctx, c, sqlQuery, args...); err != nil {
		return wrapError("criar criativo", err)
	}

	return nil
}

func updateCreativeQuery(id string, u *domain.CreativeUpdate) squirrel.UpdateBuilder {
	query := squirrel.
		Update(creativesTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(creativeColumns)).
		PlaceholderFormat(squirrel.Dollar)

	if u == nil {
		return query
	}
	if u.Name != nil {
		query = query.Set("nome", *u.Name)
	}
	if u.Status != nil {
		query = query.Set("status", *u.Status)
	}
	if u.Source != nil {
		query = query.Set("fonte", *u.Source)
	}
	if u.Copywriter != nil {
		query = query.Set("copy_responsavel", *u.Copywriter)
	}
	switch {
	case u.ClearArchivedAt:
		query = query.Set("archived_at", nil)
	case u.ArchivedAt != nil:
		query = query.Set("archived_at", *u.ArchivedAt)
	}

	return query
}

func (r *creativeRepository) Update(ctx context.Context, id string, update *domain.CreativeUpdate) (*domain.Creative, error) {
	sqlQuery, args, err := updateCreativeQuery(id, update).ToSql()
	if err != nil {
		return nil, err
	}

	creative := &domain.Creative{}
	if err := r.db.GetContext(ctx, creative, sqlQuery, args...); err != nil {
		return nil, wrapError("atualizar criativo", err)
	}

	return creative, nil
}

func (r *creativeRepository) Delete(ctx context.Context, id string) error {
	sqlQuery, args, err := squirrel.
		Delete(creativesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return wrapError("excluir criativo", err)
	}

	return affectedOrNotFound("excluir criativo", res)
}

func archiveByOfferQuery(offerID string, ts time.Time) squirrel.UpdateBuilder {
	return squirrel.
		Update(creativesTable).
		Set("status", domain.StatusArchived).
		Set("archived_at", ts).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"oferta_id": offerID}).
		Where(squirrel.NotEq{"status": domain.StatusArchived}).
		PlaceholderFormat(squirrel.Dollar)
}

func restoreArchivedWithQuery(offerID string, ts time.Time) squirrel.UpdateBuilder {
	return squirrel.
		Update(creativesTable).
		Set("status", domain.StatusInTest).
		Set("archived_at", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"oferta_id": offerID, "archived_at": ts}).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *creativeRepository) ArchiveByOffer(ctx context.Context, offerID string, ts time.Time) (int64, error) {
	return r.execCount(ctx, "arquivar criativos da oferta", archiveByOfferQuery(offerID, ts))
}

func (r *creativeRepository) RestoreArchivedWith(ctx context.Context, offerID string, ts time.Time) (int64, error) {
	return r.execCount(ctx, "restaurar criativos da oferta", restoreArchivedWithQuery(offerID, ts))
}

func (r *creativeRepository) execCount(ctx context.Context, op string, query squirrel.UpdateBuilder) (int64, error) {
	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, wrapError(op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, wrapError(op, err)
	}

	return n, nil
}

func (r *creativeRepository) CountArchivedWith(ctx context.Context, offerID string, ts time.Time) (int64, error) {
	sqlQuery, args, err := squirrel.
		Select("COUNT(*)").
		From(creativesTable).
		Where(squirrel.Eq{"oferta_id": offerID, "archived_at": ts}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.GetContext(ctx, &count, sqlQuery, args...); err != nil {
		return 0, wrapError("contar criativos arquivados", err)
	}

	return count, nil
}

type offerCount struct {
	OfferID string `db:"oferta_id"`
	Total   int64  `db:"total"`
}

func (r *creativeRepository) CountByOffer(ctx context.Context) (map[string]int64, error) {
	sqlQuery, args, err := squirrel.
		Select("oferta_id", "COUNT(*) AS total").
		From(creativesTable).
		GroupBy("oferta_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows := make([]offerCount, 0)
	if err := r.db.SelectContext(ctx, &rows, sqlQuery, args...); err != nil {
		return nil, wrapError("contar criativos por oferta", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.OfferID] = row.Total
	}

	return counts, nil
}
