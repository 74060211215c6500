package main

import (
	"log"
	"strings"
	"time"

	"retailpos/internal/config"
	"retailpos/internal/domain/model"
	"retailpos/internal/handler"
	"retailpos/internal/infra/db"
	infraRepo "retailpos/internal/infra/repository"
	"retailpos/internal/server"
	"retailpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// txNumberGenerator builds human-readable transaction numbers like
// TXN-20260829-9F2C41AB. The uuid suffix keeps them collision-free; the
// unique index on sales.transaction_number is the final arbiter.
type txNumberGenerator struct{}

func (g *txNumberGenerator) Next(at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "TXN-" + at.Format("20060102") + "-" + suffix
}

func initLogger(goEnv string) *zap.Logger {
	var logger *zap.Logger
	var err error
	if goEnv == "prod" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	return logger
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := initLogger(cfg.GoEnv)
	defer func() { _ = logger.Sync() }()

	gormDB, err := db.Connect()
	if err != nil {
		zap.S().Fatalw("database connection failed", "error", err)
	}
	if err := gormDB.AutoMigrate(
		&model.Category{},
		&model.Supplier{},
		&model.Product{},
		&model.Sale{},
		&model.SaleItem{},
		&model.InventoryLog{},
	); err != nil {
		zap.S().Fatalw("migration failed", "error", err)
	}

	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	supplierRepo := infraRepo.NewSupplierGormRepository(gormDB)
	saleRepo := infraRepo.NewSaleGormRepository(gormDB)
	saleItemRepo := infraRepo.NewSaleItemGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	productUC := usecase.NewProductUsecase(productRepo, categoryRepo, supplierRepo, saleItemRepo, txManager)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo, productRepo)
	supplierUC := usecase.NewSupplierUsecase(supplierRepo, productRepo)
	saleUC := usecase.NewSaleUsecase(txManager, saleRepo, &txNumberGenerator{})
	reportUC := usecase.NewReportUsecase(productRepo, saleRepo)

	productH := handler.NewProductHandler(productUC)
	categoryH := handler.NewCategoryHandler(categoryUC)
	supplierH := handler.NewSupplierHandler(supplierUC)
	saleH := handler.NewSaleHandler(saleUC, cfg)
	reportH := handler.NewReportHandler(reportUC, productUC, cfg)

	addr := ":" + cfg.Port
	zap.S().Infow("starting server", "addr", addr)
	if err := server.Start(addr, productH, categoryH, supplierH, saleH, reportH); err != nil {
		zap.S().Fatalw("server exited", "error", err)
	}
}
