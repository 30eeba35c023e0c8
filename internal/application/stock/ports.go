package stock

import (
	"context"

	"github.com/monraspgit/ines-stock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de stock atado a esa tx. Garantiza commit o rollback completos
// y la liberación de la conexión en todo camino de salida.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.StockRepository) error) error
}
