// cmd/seeduser/main.go — Crea/actualiza un usuario de la tabla users.
// Uso: go run ./cmd/seeduser -nombre alice -password secret -rol admin
//
// La tabla almacena el password en texto plano porque el login compara por
// igualdad (contrato heredado del sistema original). Si algún día se migra a
// hash con sal, este comando es el primer punto a cambiar.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/monraspgit/ines-stock-api/pkg/config"
)

func main() {
	nombre := flag.String("nombre", "admin", "nombre de login del usuario")
	password := flag.String("password", "", "password del usuario (requerido)")
	rol := flag.String("rol", "admin", "rol del usuario")
	flag.Parse()

	if *password == "" {
		log.Fatal("el flag -password es requerido")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cargar configuración: %v", err)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.DB.ConnectionString())
	if err != nil {
		log.Fatalf("conectar a PostgreSQL: %v", err)
	}
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx, `
		INSERT INTO users (id, nombre, password, rol)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (nombre) DO UPDATE
		SET password = EXCLUDED.password,
		    rol = EXCLUDED.rol`,
		uuid.New().String(), *nombre, *password, *rol,
	)
	if err != nil {
		log.Fatalf("insertar usuario: %v", err)
	}

	fmt.Printf("usuario %q creado/actualizado con rol %q\n", *nombre, *rol)
}
