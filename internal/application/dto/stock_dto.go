package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FlexInt entero tolerante para los campos numéricos con default 0.
// Acepta número JSON, string numérica, string vacía o null; cualquier valor
// que no tenga prefijo entero se coerce a 0 en lugar de fallar (quirk
// documentado del contrato, no un error).
type FlexInt int

// UnmarshalJSON implementa la coerción "parsear como entero, 0 si no se puede".
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	*f = FlexInt(leadingInt(s))
	return nil
}

// leadingInt toma el prefijo entero de s (signo opcional + dígitos) y
// devuelve 0 si no existe. Mismo comportamiento que parseInt(x) || 0.
func leadingInt(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0
	}
	n, err := strconv.Atoi(s[:j])
	if err != nil {
		return 0
	}
	return n
}

const dateLayout = "2006-01-02"

// DateOnly fecha calendario en el cable. Acepta "YYYY-MM-DD" o un timestamp
// ISO-8601 completo, que se trunca a su porción de fecha antes de persistir.
// String vacía o null equivalen a fecha ausente.
type DateOnly struct {
	time.Time
}

// UnmarshalJSON trunca timestamps ISO a la fecha calendario.
func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		d.Time = time.Time{}
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	if i := strings.IndexByte(s, 'T'); i > 0 {
		s = s[:i]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// MarshalJSON emite siempre "YYYY-MM-DD".
func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// StockItemRequest body de un elemento de stock entrante (inserción masiva,
// actualización masiva e inserción simple). Los punteros distinguen campo
// ausente de campo presente.
type StockItemRequest struct {
	CodigoInsumo    string    `json:"codigoInsumo"`
	NombreInsumo    string    `json:"nombreInsumo"`
	Unidad          string    `json:"unidad"`
	CantidadMaxima  FlexInt   `json:"cantidadMaxima"`
	CantidadPedida  FlexInt   `json:"cantidadPedida"`
	Pendiente       FlexInt   `json:"pendiente"`
	NumeroCompra    *string   `json:"numeroCompra"`
	FechaEnvio      *DateOnly `json:"fechaEnvio"`
	FechaLlegada    *DateOnly `json:"fechaLlegada"`
	CuantosLlegaron FlexInt   `json:"cuantosLlegaron"`
	Mes01           FlexInt   `json:"mes01"`
	Mes02           FlexInt   `json:"mes02"`
	Week            *string   `json:"week"`
	Bimensual       *string   `json:"bimensual"`
	Observation     *string   `json:"observation"`
}

// StockItemResponse salida de una fila de stock. Las fechas viajan siempre
// como strings "YYYY-MM-DD", nunca como timestamps.
type StockItemResponse struct {
	ID              int64   `json:"id"`
	CodigoInsumo    string  `json:"codigoInsumo"`
	NombreInsumo    string  `json:"nombreInsumo"`
	Unidad          string  `json:"unidad"`
	CantidadMaxima  int     `json:"cantidadMaxima"`
	CantidadPedida  int     `json:"cantidadPedida"`
	Pendiente       int     `json:"pendiente"`
	NumeroCompra    *string `json:"numeroCompra"`
	FechaEnvio      *string `json:"fechaEnvio"`
	FechaLlegada    *string `json:"fechaLlegada"`
	CuantosLlegaron int     `json:"cuantosLlegaron"`
	Mes01           int     `json:"mes01"`
	Mes02           int     `json:"mes02"`
	Week            *string `json:"week"`
	Bimensual       *string `json:"bimensual"`
	Observation     string  `json:"observation"`
}
