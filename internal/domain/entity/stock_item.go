package entity

import "time"

// StockItem representa una fila de la tabla stock. El código de insumo es la
// clave de negocio: identifica a lo sumo una fila y es la única vía de
// direccionamiento en la actualización masiva.
type StockItem struct {
	ID              int64
	CodigoInsumo    string
	NombreInsumo    string
	Unidad          string
	CantidadMaxima  int
	CantidadPedida  int
	Pendiente       int
	NumeroCompra    *string
	FechaEnvio      *time.Time // solo fecha calendario, sin hora
	FechaLlegada    *time.Time
	CuantosLlegaron int
	Mes01           int
	Mes02           int
	Week            *string
	Bimensual       *string
	Observation     *string // nil en actualización = conservar el valor almacenado
}
