package stock

import (
	"time"

	"github.com/monraspgit/ines-stock-api/internal/application/dto"
	"github.com/monraspgit/ines-stock-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// newItemFromRequest convierte un request en fila nueva (inserción):
// aplica los defaults del modelo (observation vacía) y normaliza fechas.
func newItemFromRequest(in dto.StockItemRequest) *entity.StockItem {
	item := partialItemFromRequest(in)
	if item.Observation == nil {
		empty := ""
		item.Observation = &empty
	}
	return item
}

// partialItemFromRequest convierte un request en fila parcial (actualización):
// week, observation y bimensual quedan en nil cuando no se envían, para que
// el statement conserve el valor almacenado.
func partialItemFromRequest(in dto.StockItemRequest) *entity.StockItem {
	return &entity.StockItem{
		CodigoInsumo:    in.CodigoInsumo,
		NombreInsumo:    in.NombreInsumo,
		Unidad:          in.Unidad,
		CantidadMaxima:  int(in.CantidadMaxima),
		CantidadPedida:  int(in.CantidadPedida),
		Pendiente:       int(in.Pendiente),
		NumeroCompra:    in.NumeroCompra,
		FechaEnvio:      dateValue(in.FechaEnvio),
		FechaLlegada:    dateValue(in.FechaLlegada),
		CuantosLlegaron: int(in.CuantosLlegaron),
		Mes01:           int(in.Mes01),
		Mes02:           int(in.Mes02),
		Week:            in.Week,
		Bimensual:       in.Bimensual,
		Observation:     in.Observation,
	}
}

// toResponse convierte una fila en su representación de salida,
// con las fechas formateadas como "YYYY-MM-DD".
func toResponse(item *entity.StockItem) dto.StockItemResponse {
	return dto.StockItemResponse{
		ID:              item.ID,
		CodigoInsumo:    item.CodigoInsumo,
		NombreInsumo:    item.NombreInsumo,
		Unidad:          item.Unidad,
		CantidadMaxima:  item.CantidadMaxima,
		CantidadPedida:  item.CantidadPedida,
		Pendiente:       item.Pendiente,
		NumeroCompra:    item.NumeroCompra,
		FechaEnvio:      formatDate(item.FechaEnvio),
		FechaLlegada:    formatDate(item.FechaLlegada),
		CuantosLlegaron: item.CuantosLlegaron,
		Mes01:           item.Mes01,
		Mes02:           item.Mes02,
		Week:            item.Week,
		Bimensual:       item.Bimensual,
		Observation:     stringValue(item.Observation),
	}
}

func toResponseList(items []*entity.StockItem) []dto.StockItemResponse {
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toResponse(item))
	}
	return out
}

func dateValue(d *dto.DateOnly) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
