package entity

// User representa un usuario de la tabla users. De solo lectura para este
// sistema: nunca se crea, actualiza ni elimina desde el API.
// La columna password se almacena en texto plano; nunca sale en respuestas.
type User struct {
	ID       string
	Nombre   string
	Password string
	Rol      string
}
