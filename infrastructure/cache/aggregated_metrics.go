package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/offer-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const aggregatedMetricsPrefix = "ofertas:metricas-agregadas:"

//go:generate mockgen -source=aggregated_metrics.go -destination=mocks/aggregated_metrics.go -package=mocks

// AggregatedMetricsCache guarda as métricas agregadas por oferta de um intervalo
type AggregatedMetricsCache interface {
	Get(ctx context.Context, start, end domain.Date) (map[string]*domain.AggregatedMetrics, bool, error)
	Set(ctx context.Context, start, end domain.Date, metrics map[string]*domain.AggregatedMetrics) error
	Invalidate(ctx context.Context) error
}

type aggregatedMetricsCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewAggregatedMetricsCache(c *Client, ttl time.Duration) AggregatedMetricsCache {
	return &aggregatedMetricsCache{client: c.client, ttl: ttl}
}

func aggregatedMetricsKey(start, end domain.Date) string {
	return fmt.Sprintf("%s%s:%s", aggregatedMetricsPrefix, start, end)
}

func (c *aggregatedMetricsCache) Get(ctx context.Context, start, end domain.Date) (map[string]*domain.AggregatedMetrics, bool, error) {
	data, err := c.client.Get(ctx, aggregatedMetricsKey(start, end)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("erro ao ler cache de métricas: %w", err)
	}

	metrics := make(map[string]*domain.AggregatedMetrics)
	if err := json.Unmarshal(data, &metrics); err != nil {
		return nil, false, fmt.Errorf("erro ao decodificar cache de métricas: %w", err)
	}

	return metrics, true, nil
}

func (c *aggregatedMetricsCache) Set(ctx context.Context, start, end domain.Date, metrics map[string]*domain.AggregatedMetrics) error {
	data, err := json.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("erro ao codificar cache de métricas: %w", err)
	}

	if err := c.client.Set(ctx, aggregatedMetricsKey(start, end), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("erro ao gravar cache de métricas: %w", err)
	}

	return nil
}

// Invalidate remove todos os intervalos em cache
func (c *aggregatedMetricsCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, aggregatedMetricsPrefix+"*", 100).Iterator()

	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("erro ao listar cache de métricas: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("erro ao limpar cache de métricas: %w", err)
	}

	return nil
}
