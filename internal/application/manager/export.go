package manager

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/manager-api/internal/domain/entity"
	"github.com/jhoicas/manager-api/internal/domain/repository"
)

// RosterPDFGenerator puerto de salida para renderizar el listado de managers.
type RosterPDFGenerator interface {
	GenerateRosterPDF(ctx context.Context, managers []*entity.Manager, generatedAt time.Time) ([]byte, error)
}

// ExportUseCase genera el PDF con el listado de managers.
type ExportUseCase struct {
	repo      repository.ManagerRepository
	generator RosterPDFGenerator
	now       func() time.Time
}

// NewExportUseCase construye el caso de uso inyectando sus dependencias.
func NewExportUseCase(repo repository.ManagerRepository, generator RosterPDFGenerator) *ExportUseCase {
	return &ExportUseCase{repo: repo, generator: generator, now: func() time.Time { return time.Now().UTC() }}
}

// RosterPDF devuelve el PDF y su nombre de archivo. Con q no vacío el listado se
// restringe a las coincidencias de la búsqueda.
func (uc *ExportUseCase) RosterPDF(ctx context.Context, q string) ([]byte, string, error) {
	var (
		list []*entity.Manager
		err  error
	)
	if q != "" {
		list, err = uc.repo.Search(ctx, q)
	} else {
		list, err = uc.all(ctx)
	}
	if err != nil {
		return nil, "", fmt.Errorf("export: obtener managers: %w", err)
	}

	now := uc.now()
	pdf, err := uc.generator.GenerateRosterPDF(ctx, list, now)
	if err != nil {
		return nil, "", fmt.Errorf("export: generación fallida: %w", err)
	}
	return pdf, fmt.Sprintf("managers_%s.pdf", now.Format("20060102_150405")), nil
}

func (uc *ExportUseCase) all(ctx context.Context) ([]*entity.Manager, error) {
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return []*entity.Manager{}, nil
	}
	return uc.repo.List(ctx, int(total), 0)
}
