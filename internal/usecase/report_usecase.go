package usecase

import (
	"context"
	"time"

	repo "retailpos/internal/repository"
)

type ReportUsecase struct {
	products repo.ProductRepository
	sales    repo.SaleRepository
}

func NewReportUsecase(products repo.ProductRepository, sales repo.SaleRepository) *ReportUsecase {
	return &ReportUsecase{products: products, sales: sales}
}

type InventoryReport struct {
	GeneratedAt     time.Time             `json:"generated_at"`
	TotalProducts   int                   `json:"total_products"`
	LowStockCount   int                   `json:"low_stock_count"`
	TotalStockValue float64               `json:"total_stock_value"`
	Rows            []repo.ProductListRow `json:"rows"`
}

type DashboardStats struct {
	TotalProducts   int     `json:"total_products"`
	LowStockCount   int     `json:"low_stock_count"`
	TodaySalesCount int64   `json:"today_sales_count"`
	TodayRevenue    float64 `json:"today_revenue"`
}

func (u *ReportUsecase) InventoryReport(ctx context.Context) (InventoryReport, error) {
	rows, err := u.products.List(ctx)
	if err != nil {
		return InventoryReport{}, Unexpected(err)
	}

	rep := InventoryReport{
		GeneratedAt:   time.Now(),
		TotalProducts: len(rows),
		Rows:          rows,
	}
	for _, r := range rows {
		rep.TotalStockValue += r.UnitPrice * float64(r.QuantityInStock)
		if r.StockStatus == "Low Stock" {
			rep.LowStockCount++
		}
	}
	rep.TotalStockValue = round2(rep.TotalStockValue)
	return rep, nil
}

func (u *ReportUsecase) Dashboard(ctx context.Context) (DashboardStats, error) {
	rows, err := u.products.List(ctx)
	if err != nil {
		return DashboardStats{}, Unexpected(err)
	}

	stats := DashboardStats{TotalProducts: len(rows)}
	for _, r := range rows {
		if r.StockStatus == "Low Stock" {
			stats.LowStockCount++
		}
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	count, revenue, err := u.sales.Stats(ctx, from, from.AddDate(0, 0, 1))
	if err != nil {
		return DashboardStats{}, Unexpected(err)
	}
	stats.TodaySalesCount = count
	stats.TodayRevenue = round2(revenue)

	return stats, nil
}
