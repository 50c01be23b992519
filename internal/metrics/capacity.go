package metrics

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/akulikova/stockroom-backend/internal/domain"
)

// departmentLister supplies the department rows the collector exports.
type departmentLister interface {
	ListAll(ctx context.Context) ([]*domain.Department, error)
}

// CapacityCollector exports per-department item and capacity counters as
// gauges. Counters are read from the store on every scrape so the exported
// values reflect the same rows the dashboard reports.
type CapacityCollector struct {
	depts departmentLister
	log   *slog.Logger

	itemCount    *prometheus.Desc
	capacityUsed *prometheus.Desc
}

// NewCapacityCollector creates a CapacityCollector.
func NewCapacityCollector(depts departmentLister, logger *slog.Logger) *CapacityCollector {
	labels := []string{"company_id", "department_id", "department_name"}
	return &CapacityCollector{
		depts: depts,
		log:   logger,
		itemCount: prometheus.NewDesc(
			"stockroom_department_items",
			"Number of items held by a department",
			labels, nil,
		),
		capacityUsed: prometheus.NewDesc(
			"stockroom_department_capacity_used",
			"Capacity units consumed by a department",
			labels, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *CapacityCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.itemCount
	ch <- c.capacityUsed
}

// Collect implements prometheus.Collector.
func (c *CapacityCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	depts, err := c.depts.ListAll(ctx)
	if err != nil {
		c.log.Error("capacity scrape failed", slog.String("error", err.Error()))
		return
	}

	for _, d := range depts {
		labels := []string{d.CompanyID.String(), d.ID.String(), d.Name}
		ch <- prometheus.MustNewConstMetric(c.itemCount, prometheus.GaugeValue, float64(d.ItemCount), labels...)
		ch <- prometheus.MustNewConstMetric(c.capacityUsed, prometheus.GaugeValue, float64(d.CapacityUsed), labels...)
	}
}
