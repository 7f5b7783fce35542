package bootstrap

import (
	"log/slog"

	"open-classrooms/internal/domain/catalog"
	"open-classrooms/internal/infra/catalogfile"
	"open-classrooms/internal/pkg/config"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		NewCatalog,
	),
)

func NewCatalog(cfg config.Config, logger *slog.Logger) (*catalog.Catalog, error) {
	cat, err := catalogfile.Load(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	logger.Info("Catalog loaded",
		"buildings", len(cat.Buildings()),
		"classrooms", len(cat.Classrooms()),
		"path", cfg.Catalog.Path)
	return cat, nil
}
