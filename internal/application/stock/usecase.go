package stock

import (
	"context"

	"github.com/monraspgit/ines-stock-api/internal/application/dto"
	"github.com/monraspgit/ines-stock-api/internal/domain"
	"github.com/monraspgit/ines-stock-api/internal/domain/entity"
	"github.com/monraspgit/ines-stock-api/internal/domain/repository"
)

// UseCase operaciones sobre la tabla stock. Las lecturas y la inserción
// simple van directo al repositorio (pool); las operaciones masivas corren
// dentro de una transacción vía TxRunner, todo-o-nada.
type UseCase struct {
	repo repository.StockRepository
	tx   TxRunner
}

// NewUseCase construye el caso de uso de stock.
func NewUseCase(repo repository.StockRepository, tx TxRunner) *UseCase {
	return &UseCase{repo: repo, tx: tx}
}

// List devuelve todas las filas en el orden natural del store,
// con las fechas formateadas como "YYYY-MM-DD".
func (uc *UseCase) List(ctx context.Context) ([]dto.StockItemResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponseList(items), nil
}

// BulkInsert inserta todos los elementos en una sola transacción con un único
// INSERT multifila. Si cualquier fila falla, nada persiste.
// El array vacío se rechaza antes de tocar el pool.
func (uc *UseCase) BulkInsert(ctx context.Context, in []dto.StockItemRequest) error {
	if len(in) == 0 {
		return domain.ErrInvalidInput
	}
	items := make([]*entity.StockItem, 0, len(in))
	for _, req := range in {
		items = append(items, newItemFromRequest(req))
	}
	return uc.tx.Run(ctx, func(repo repository.StockRepository) error {
		return repo.InsertMany(ctx, items)
	})
}

// BulkUpdate actualiza cada elemento por codigoInsumo dentro de una sola
// transacción. Un código inexistente afecta cero filas y sigue siendo éxito;
// cualquier statement fallido revierte la transacción completa.
func (uc *UseCase) BulkUpdate(ctx context.Context, in []dto.StockItemRequest) error {
	if len(in) == 0 {
		return domain.ErrInvalidInput
	}
	items := make([]*entity.StockItem, 0, len(in))
	for _, req := range in {
		items = append(items, partialItemFromRequest(req))
	}
	return uc.tx.Run(ctx, func(repo repository.StockRepository) error {
		return repo.UpdateMany(ctx, items)
	})
}

// DeleteAll elimina todas las filas de stock en una transacción.
// Borrar una tabla ya vacía es éxito (idempotente).
func (uc *UseCase) DeleteAll(ctx context.Context) error {
	return uc.tx.Run(ctx, func(repo repository.StockRepository) error {
		return repo.DeleteAll(ctx)
	})
}

// FilterByWeekAndCategory devuelve las filas cuyo campo bimensual contiene el
// substring indicado y cuyo week coincide exactamente. Ambos parámetros son
// obligatorios.
func (uc *UseCase) FilterByWeekAndCategory(ctx context.Context, bimensual, week string) ([]dto.StockItemResponse, error) {
	if bimensual == "" || week == "" {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.repo.FilterByBimensualAndWeek(ctx, bimensual, week)
	if err != nil {
		return nil, err
	}
	return toResponseList(items), nil
}

// InsertOne inserta una sola fila con los defaults del modelo y devuelve el
// ID asignado por el store. No requiere transacción: el statement es atómico.
func (uc *UseCase) InsertOne(ctx context.Context, in dto.StockItemRequest) (int64, error) {
	return uc.repo.InsertOne(ctx, newItemFromRequest(in))
}
