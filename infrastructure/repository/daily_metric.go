package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/offer-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/offer-dashboard-api/internal/domain"
)

const dailyMetricsTable = "metricas_diarias"

var measureColumns = []string{"investimento", "faturamento", "impressoes", "cliques", "ics", "vendas"}

var dailyMetricColumns = append(append([]string{"id", "criativo_id", "data"}, measureColumns...), "created_at", "updated_at")

type DailyMetricRepository interface {
	List(ctx context.Context, filter domain.MetricFilter) ([]*domain.DailyMetric, error)
	Create(ctx context.Context, metric *domain.DailyMetric) error
	Update(ctx context.Context, id string, update *domain.UpdateDailyMetricRequest) (*domain.DailyMetric, error)
	// Upsert grava a métrica do criativo no dia, substituindo a existente
	Upsert(ctx context.Context, metric *domain.DailyMetric) (*domain.DailyMetric, error)
}

type dailyMetricRepository struct {
	db postgres.Queryer
}

func NewDailyMetricRepository(db postgres.Queryer) DailyMetricRepository {
	return &dailyMetricRepository{db: db}
}

// withDateRange aplica o intervalo fechado de datas na coluna informada
func withDateRange(query squirrel.SelectBuilder, column string, start, end *domain.Date) squirrel.SelectBuilder {
	if start != nil {
		query = query.Where(squirrel.GtOrEq{column: *start})
	}
	if end != nil {
		query = query.Where(squirrel.LtOrEq{column: *end})
	}
	return query
}

func listDailyMetricsQuery(filter domain.MetricFilter) squirrel.SelectBuilder {
	query := squirrel.
		Select(dailyMetricColumns...).
		From(dailyMetricsTable).
		OrderBy("data DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.CreativeID != "" {
		query = query.Where(squirrel.Eq{"criativo_id": filter.CreativeID})
	}

	return withDateRange(query, "data", filter.StartDate, filter.EndDate)
}

func (r *dailyMetricRepository) List(ctx context.Context, filter domain.MetricFilter) ([]*domain.DailyMetric, error) {
	sqlQuery, args, err := listDailyMetricsQuery(filter).ToSql()
	if err != nil {
		return nil, err
	}

	metrics := make([]*domain.DailyMetric, 0)
	if err := r.db.SelectContext(ctx, &metrics, sqlQuery, args...); err != nil {
		return nil, wrapError("listar métricas diárias", err)
	}

	return metrics, nil
}

func insertDailyMetricQuery(m *domain.DailyMetric) squirrel.InsertBuilder {
	return squirrel.
		Insert(dailyMetricsTable).
		Columns(append([]string{"id", "criativo_id", "data"}, measureColumns...)...).
		Values(m.ID, m.CreativeID, m.Date,
			m.Spend, m.Revenue, m.Impressions, m.Clicks, m.InitiatedCheckouts, m.Sales).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *dailyMetricRepository) Create(ctx context.Context, m *domain.DailyMetric) error {
	sqlQuery, args, err := insertDailyMetricQuery(m).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return err
	}

	if err := r.db.GetContext(ctx, m, sqlQuery, args...); err != nil {
		return wrapError("criar métrica diária", err)
	}

	return nil
}

func upsertDailyMetricQuery(m *domain.DailyMetric) squirrel.InsertBuilder {
	return insertDailyMetricQuery(m).Suffix(`
		ON CONFLICT (criativo_id, data) DO UPDATE SET
			investimento = EXCLUDED.investimento,
			faturamento = EXCLUDED.faturamento,
			impressoes = EXCLUDED.impressoes,
			cliques = EXCLUDED.cliques,
			ics = EXCLUDED.ics,
			vendas = EXCLUDED.vendas,
			updated_at = NOW()
		RETURNING ` + joinColumns(dailyMetricColumns))
}

func (r *dailyMetricRepository) Upsert(ctx context.Context, m *domain.DailyMetric) (*domain.DailyMetric, error) {
	sqlQuery, args, err := upsertDailyMetricQuery(m).ToSql()
	if err != nil {
		return nil, err
	}

	saved := &domain.DailyMetric{}
	if err := r.db.GetContext(ctx, saved, sqlQuery, args...); err != nil {
		return nil, wrapError("gravar métrica diária", err)
	}

	return saved, nil
}

func updateDailyMetricQuery(id string, u *domain.UpdateDailyMetricRequest) squirrel.UpdateBuilder {
	query := squirrel.
		Update(dailyMetricsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(dailyMetricColumns)).
		PlaceholderFormat(squirrel.Dollar)

	if u == nil {
		return query
	}
	if u.Spend != nil {
		query = query.Set("investimento", *u.Spend)
	}
	if u.Revenue != nil {
		query = query.Set("faturamento", *u.Revenue)
	}
	if u.Impressions != nil {
		query = query.Set("impressoes", *u.Impressions)
	}
	if u.Clicks != nil {
		query = query.Set("cliques", *u.Clicks)
	}
	if u.InitiatedCheckouts != nil {
		query = query.Set("ics", *u.InitiatedCheckouts)
	}
	if u.Sales != nil {
		query = query.Set("vendas", *u.Sales)
	}

	return query
}

func (r *dailyMetricRepository) Update(ctx context.Context, id string, update *domain.UpdateDailyMetricRequest) (*domain.DailyMetric, error) {
	sqlQuery, args, err := updateDailyMetricQuery(id, update).ToSql()
	if err != nil {
		return nil, err
	}

	metric := &domain.DailyMetric{}
	if err := r.db.GetContext(ctx, metric, sqlQuery, args...); err != nil {
		return nil, wrapError("atualizar métrica diária", err)
	}

	return metric, nil
}
