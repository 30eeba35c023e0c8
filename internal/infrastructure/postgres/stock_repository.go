package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/monraspgit/ines-stock-api/internal/domain/entity"
	"github.com/monraspgit/ines-stock-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `id, codigo_insumo, nombre_insumo, unidad, cantidad_maxima, cantidad_pedida,
		pendiente, numero_compra, fecha_envio, fecha_llegada, cuantos_llegaron, mes01, mes02,
		week, bimensual, observation`

// insertColumns columnas de inserción, en el mismo orden que insertArgs.
const insertColumns = `codigo_insumo, nombre_insumo, unidad, cantidad_maxima, cantidad_pedida,
		pendiente, numero_compra, fecha_envio, fecha_llegada, cuantos_llegaron, mes01, mes02,
		week, bimensual, observation`

const insertColumnCount = 15

func insertArgs(item *entity.StockItem) []any {
	return []any{
		item.CodigoInsumo, item.NombreInsumo, item.Unidad,
		item.CantidadMaxima, item.CantidadPedida, item.Pendiente,
		item.NumeroCompra, item.FechaEnvio, item.FechaLlegada,
		item.CuantosLlegaron, item.Mes01, item.Mes02,
		item.Week, item.Bimensual, item.Observation,
	}
}

// List devuelve todas las filas en el orden natural del store.
func (r *StockRepo) List(ctx context.Context) ([]*entity.StockItem, error) {
	rows, err := r.q.Query(ctx, `SELECT `+stockColumns+` FROM stock`)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	return scanStockItems(rows)
}

// InsertMany inserta todas las filas con un único INSERT multifila.
// Debe ejecutarse dentro de una transacción (vía TxRunner).
func (r *StockRepo) InsertMany(ctx context.Context, items []*entity.StockItem) error {
	var sb strings.Builder
	sb.WriteString(`INSERT INTO stock (` + insertColumns + `) VALUES `)
	args := make([]any, 0, len(items)*insertColumnCount)
	for i, item := range items {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('(')
		for j := 0; j < insertColumnCount; j++ {
			if j > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "$%d", i*insertColumnCount+j+1)
		}
		sb.WriteByte(')')
		args = append(args, insertArgs(item)...)
	}
	if _, err := r.q.Exec(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("insert stock masivo: %w", err)
	}
	return nil
}

// updateStmt actualiza los campos mutables por codigoInsumo. week,
// observation y bimensual conservan el valor almacenado cuando no se envían
// (COALESCE); el resto se sobreescribe siempre, incluso con NULL.
const updateStmt = `
	UPDATE stock SET
		cantidad_maxima = $1,
		cantidad_pedida = $2,
		pendiente = $3,
		numero_compra = $4,
		fecha_envio = $5,
		fecha_llegada = $6,
		cuantos_llegaron = $7,
		week = COALESCE($8, week),
		observation = COALESCE($9, observation),
		bimensual = COALESCE($10, bimensual)
	WHERE codigo_insumo = $11`

// UpdateMany encola un UPDATE por fila en un pgx.Batch y los despacha en
// pipeline sobre la conexión de la transacción, verificando cada resultado
// antes del commit. Un codigoInsumo inexistente afecta cero filas y no es
// error; cualquier statement fallido aborta el batch completo.
func (r *StockRepo) UpdateMany(ctx context.Context, items []*entity.StockItem) error {
	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(updateStmt,
			item.CantidadMaxima, item.CantidadPedida, item.Pendiente,
			item.NumeroCompra, item.FechaEnvio, item.FechaLlegada,
			item.CuantosLlegaron, item.Week, item.Observation, item.Bimensual,
			item.CodigoInsumo,
		)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for range items {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("update stock masivo: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("cerrar batch de update: %w", err)
	}
	return nil
}

// DeleteAll elimina todas las filas. Sobre una tabla vacía afecta cero filas
// y sigue siendo éxito.
func (r *StockRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM stock`); err != nil {
		return fmt.Errorf("delete all stock: %w", err)
	}
	return nil
}

// FilterByBimensualAndWeek filtra por substring en bimensual (sensibilidad
// según collation del store) y por igualdad exacta en week.
func (r *StockRepo) FilterByBimensualAndWeek(ctx context.Context, bimensual, week string) ([]*entity.StockItem, error) {
	query := `SELECT ` + stockColumns + ` FROM stock
		WHERE bimensual LIKE '%' || $1 || '%' AND week = $2`
	rows, err := r.q.Query(ctx, query, bimensual, week)
	if err != nil {
		return nil, fmt.Errorf("filter stock: %w", err)
	}
	defer rows.Close()
	return scanStockItems(rows)
}

// InsertOne inserta una fila y devuelve el ID asignado por el store.
func (r *StockRepo) InsertOne(ctx context.Context, item *entity.StockItem) (int64, error) {
	var sb strings.Builder
	sb.WriteString(`INSERT INTO stock (` + insertColumns + `) VALUES (`)
	for j := 0; j < insertColumnCount; j++ {
		if j > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "$%d", j+1)
	}
	sb.WriteString(`) RETURNING id`)

	var id int64
	if err := r.q.QueryRow(ctx, sb.String(), insertArgs(item)...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert stock: %w", err)
	}
	return id, nil
}

func scanStockItems(rows pgx.Rows) ([]*entity.StockItem, error) {
	var list []*entity.StockItem
	for rows.Next() {
		var item entity.StockItem
		if err := rows.Scan(
			&item.ID, &item.CodigoInsumo, &item.NombreInsumo, &item.Unidad,
			&item.CantidadMaxima, &item.CantidadPedida, &item.Pendiente,
			&item.NumeroCompra, &item.FechaEnvio, &item.FechaLlegada,
			&item.CuantosLlegaron, &item.Mes01, &item.Mes02,
			&item.Week, &item.Bimensual, &item.Observation,
		); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}
