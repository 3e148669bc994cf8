package product

import (
	"database/sql"

	"modelforge/internal/product/repository"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLRepository(db)
	svc := NewService(repo)
	uc := NewCatalogUseCase(svc)
	return NewController(uc, logger)
}
