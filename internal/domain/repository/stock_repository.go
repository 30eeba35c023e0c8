package repository

import (
	"context"

	"github.com/monraspgit/ines-stock-api/internal/domain/entity"
)

// StockRepository define el puerto de persistencia para StockItem (DIP).
// Las operaciones masivas (InsertMany, UpdateMany, DeleteAll) deben invocarse
// dentro de una transacción vía TxRunner; las lecturas y la inserción simple
// operan directamente sobre el pool.
type StockRepository interface {
	List(ctx context.Context) ([]*entity.StockItem, error)
	InsertMany(ctx context.Context, items []*entity.StockItem) error
	// UpdateMany actualiza cada fila por codigoInsumo. Un código inexistente
	// afecta cero filas y no es error.
	UpdateMany(ctx context.Context, items []*entity.StockItem) error
	DeleteAll(ctx context.Context) error
	FilterByBimensualAndWeek(ctx context.Context, bimensual, week string) ([]*entity.StockItem, error)
	InsertOne(ctx context.Context, item *entity.StockItem) (int64, error)
}
