package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/offer-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/offer-dashboard-api/internal/domain"
)

const offerDailyMetricsTable = "metricas_diarias_oferta"

var offerDailyMetricColumns = append(append([]string{"id", "oferta_id", "data"}, measureColumns...), "created_at", "updated_at")

type OfferDailyMetricRepository interface {
	List(ctx context.Context, filter domain.OfferMetricFilter) ([]*domain.OfferDailyMetric, error)
	ListWithOffer(ctx context.Context, filter domain.OfferMetricWithOfferFilter) ([]*domain.OfferDailyMetricWithOffer, error)
	AggregateByOffer(ctx context.Context, start, end domain.Date) ([]*domain.AggregatedMetrics, error)
	// RollupFromCreatives reconstrói as linhas por oferta a partir das métricas dos criativos
	RollupFromCreatives(ctx context.Context, start, end domain.Date) (int64, error)
}

type offerDailyMetricRepository struct {
	db postgres.Transactor
}

func NewOfferDailyMetricRepository(db postgres.Transactor) OfferDailyMetricRepository {
	return &offerDailyMetricRepository{db: db}
}

func listOfferDailyMetricsQuery(filter domain.OfferMetricFilter) squirrel.SelectBuilder {
	query := squirrel.
		Select(offerDailyMetricColumns...).
		From(offerDailyMetricsTable).
		OrderBy("data DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.OfferID != "" {
		query = query.Where(squirrel.Eq{"oferta_id": filter.OfferID})
	}

	return withDateRange(query, "data", filter.StartDate, filter.EndDate)
}

func (r *offerDailyMetricRepository) List(ctx context.Context, filter domain.OfferMetricFilter) ([]*domain.OfferDailyMetric, error) {
	sqlQuery, args, err := listOfferDailyMetricsQuery(filter).ToSql()
	if err != nil {
		return nil, err
	}

	metrics := make([]*domain.OfferDailyMetric, 0)
	if err := r.db.SelectContext(ctx, &metrics, sqlQuery, args...); err != nil {
		return nil, wrapError("listar métricas diárias de oferta", err)
	}

	return metrics, nil
}

type offerMetricWithOfferRow struct {
	domain.OfferDailyMetric

	OfferName       string            `db:"oferta_nome"`
	OfferNiche      *string           `db:"oferta_nicho"`
	OfferCountry    *string           `db:"oferta_pais"`
	OfferStatus     domain.Status     `db:"oferta_status"`
	OfferThresholds domain.Thresholds `db:"oferta_thresholds"`
}

func listOfferMetricsWithOfferQuery(filter domain.OfferMetricWithOfferFilter) squirrel.SelectBuilder {
	columns := append(prefixColumns("m", offerDailyMetricColumns),
		"o.nome AS oferta_nome",
		"o.nicho AS oferta_nicho",
		"o.pais AS oferta_pais",
		"o.status AS oferta_status",
		"o.thresholds AS oferta_thresholds",
	)

	query := squirrel.
		Select(columns...).
		From(offerDailyMetricsTable + " m").
		Join(offersTable + " o ON o.id = m.oferta_id").
		OrderBy("m.data DESC").
		PlaceholderFormat(squirrel.Dollar)

	switch {
	case filter.OfferStatus == "":
		query = query.Where(squirrel.NotEq{"o.status": domain.StatusArchived})
	case filter.OfferStatus.IsFilter():
		query = query.Where(squirrel.Eq{"o.status": filter.OfferStatus})
	}

	return withDateRange(query, "m.data", filter.StartDate, filter.EndDate)
}

func (r *offerDailyMetricRepository) ListWithOffer(ctx context.Context, filter domain.OfferMetricWithOfferFilter) ([]*domain.OfferDailyMetricWithOffer, error) {
	sqlQuery, args, err := listOfferMetricsWithOfferQuery(filter).ToSql()
	if err != nil {
		return nil, err
	}

	rows := make([]*offerMetricWithOfferRow, 0)
	if err := r.db.SelectContext(ctx, &rows, sqlQuery, args...); err != nil {
		return nil, wrapError("listar métricas de oferta com oferta", err)
	}

	metrics := make([]*domain.OfferDailyMetricWithOffer, 0, len(rows))
	for _, row := range rows {
		metrics = append(metrics, &domain.OfferDailyMetricWithOffer{
			OfferDailyMetric: row.OfferDailyMetric,
			Offer: &domain.OfferSummary{
				ID:         row.OfferID,
				Name:       row.OfferName,
				Niche:      row.OfferNiche,
				Country:    row.OfferCountry,
				Status:     row.OfferStatus,
				Thresholds: row.OfferThresholds,
			},
		})
	}

	return metrics, nil
}

func aggregateByOfferQuery(start, end domain.Date) squirrel.SelectBuilder {
	return squirrel.
		Select(
			"m.oferta_id",
			"SUM(m.investimento) AS investimento",
			"SUM(m.faturamento) AS faturamento",
			"SUM(m.impressoes)::BIGINT AS impressoes",
			"SUM(m.cliques)::BIGINT AS cliques",
			"SUM(m.ics)::BIGINT AS ics",
			"SUM(m.vendas)::BIGINT AS vendas",
			"o.thresholds",
		).
		From(offerDailyMetricsTable+" m").
		Join(offersTable+" o ON o.id = m.oferta_id").
		Where(squirrel.GtOrEq{"m.data": start}).
		Where(squirrel.LtOrEq{"m.data": end}).
		GroupBy("m.oferta_id", "o.id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *offerDailyMetricRepository) AggregateByOffer(ctx context.Context, start, end domain.Date) ([]*domain.AggregatedMetrics, error) {
	sqlQuery, args, err := aggregateByOfferQuery(start, end).ToSql()
	if err != nil {
		return nil, err
	}

	aggregated := make([]*domain.AggregatedMetrics, 0)
	if err := r.db.SelectContext(ctx, &aggregated, sqlQuery, args...); err != nil {
		return nil, wrapError("agregar métricas por oferta", err)
	}

	return aggregated, nil
}

// deleteStaleOfferMetricsQuery remove as linhas por oferta da janela que não têm
// mais métricas de criativo de origem, como após excluir ou mover um criativo
func deleteStaleOfferMetricsQuery(start, end domain.Date) squirrel.DeleteBuilder {
	return squirrel.
		Delete(offerDailyMetricsTable + " o").
		Where(squirrel.GtOrEq{"o.data": start}).
		Where(squirrel.LtOrEq{"o.data": end}).
		Where("NOT EXISTS (SELECT 1 FROM " + dailyMetricsTable + " m JOIN " + creativesTable +
			" c ON c.id = m.criativo_id WHERE c.oferta_id = o.oferta_id AND m.data = o.data)").
		PlaceholderFormat(squirrel.Dollar)
}

func rollupFromCreativesQuery(start, end domain.Date) squirrel.InsertBuilder {
	source := squirrel.
		Select(
			"substr(md5(c.oferta_id || ':' || m.data::text), 1, 16)",
			"c.oferta_id",
			"m.data",
			"SUM(m.investimento)",
			"SUM(m.faturamento)",
			"SUM(m.impressoes)",
			"SUM(m.cliques)",
			"SUM(m.ics)",
			"SUM(m.vendas)",
		).
		From(dailyMetricsTable+" m").
		Join(creativesTable+" c ON c.id = m.criativo_id").
		Where(squirrel.GtOrEq{"m.data": start}).
		Where(squirrel.LtOrEq{"m.data": end}).
		GroupBy("c.oferta_id", "m.data")

	return squirrel.
		Insert(offerDailyMetricsTable).
		Columns(append([]string{"id", "oferta_id", "data"}, measureColumns...)...).
		Select(source).
		Suffix(`
			ON CONFLICT (oferta_id, data) DO UPDATE SET
				investimento = EXCLUDED.investimento,
				faturamento = EXCLUDED.faturamento,
				impressoes = EXCLUDED.impressoes,
				cliques = EXCLUDED.cliques,
				ics = EXCLUDED.ics,
				vendas = EXCLUDED.vendas,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *offerDailyMetricRepository) RollupFromCreatives(ctx context.Context, start, end domain.Date) (int64, error) {
	deleteSQL, deleteArgs, err := deleteStaleOfferMetricsQuery(start, end).ToSql()
	if err != nil {
		return 0, err
	}

	upsertSQL, upsertArgs, err := rollupFromCreativesQuery(start, end).ToSql()
	if err != nil {
		return 0, err
	}

	var total int64
	err = r.db.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		total = 0
		for _, stmt := range []struct {
			sql  string
			args []interface{}
		}{
			{deleteSQL, deleteArgs},
			{upsertSQL, upsertArgs},
		} {
			res, err := tx.ExecContext(ctx, stmt.sql, stmt.args...)
			if err != nil {
				return err
			}

			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			total += n
		}
		return nil
	})
	if err != nil {
		return 0, wrapError("consolidar métricas de oferta", err)
	}

	return total, nil
}
