package catalogfile

import (
	_ "embed"
	"fmt"
	"os"

	"open-classrooms/internal/domain/catalog"
	"open-classrooms/internal/pkg/config"
	"open-classrooms/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

type document struct {
	Buildings  []catalog.Building  `yaml:"buildings"`
	Classrooms []catalog.Classroom `yaml:"classrooms"`
}

// Load reads the catalog from cfg.Path, or from the copy compiled into the binary when no path
// is configured.
func Load(cfg config.CatalogConfig) (*catalog.Catalog, error) {
	raw := embedded
	if cfg.Path != "" {
		b, err := os.ReadFile(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}
		raw = b
	}
	return Parse(raw)
}

func Parse(raw []byte) (*catalog.Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode catalog"), errs.ErrInvalidCatalog)
	}

	c, err := catalog.New(doc.Buildings, doc.Classrooms)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "catalog validation failed"), errs.ErrInvalidCatalog)
	}
	return c, nil
}
