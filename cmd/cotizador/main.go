package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/dmoralesmx/cotizador/internal/api"
	"github.com/dmoralesmx/cotizador/internal/assets"
	"github.com/dmoralesmx/cotizador/internal/auth"
	"github.com/dmoralesmx/cotizador/internal/catalog"
	"github.com/dmoralesmx/cotizador/internal/config"
	"github.com/dmoralesmx/cotizador/internal/localstore"
	"github.com/dmoralesmx/cotizador/internal/store"
)

const usage = `cotizador <comando> [argumentos]

Comandos:
  login <email> <password>      iniciar sesion
  logout                        cerrar sesion
  sync [--force]                recargar clientes, perfil y cotizaciones
  catalogo [--refresh]          mostrar catalogos de referencia
  clientes                      listar clientes
  cliente nuevo <nombre> <telefono> [whatsapp]
  cotizaciones [--force]        listar cotizaciones
  cotizacion <id|folio>         detalle de una cotizacion
  estatus <id> <estatus>        draft | sent | accepted | rejected
  exportar pdf <id|folio>       generar <folio>.pdf
  exportar png <id|folio>       generar <folio>.png
  perfil                        mostrar perfil del negocio
`

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	app, err := newApp(cfg)
	if err != nil {
		log.Fatalf("inicializacion: %v", err)
	}

	if err := app.run(context.Background(), os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type appCtx struct {
	cfg     config.Config
	local   *localstore.Store
	api     *api.Client
	catalog *catalog.Service
	store   *store.Store
	auth    *auth.Service
}

func newApp(cfg config.Config) (*appCtx, error) {
	local, err := localstore.Open(cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("almacenamiento local: %w", err)
	}
	gw := api.New(cfg.APIBaseURL, http.DefaultClient)
	var uploader assets.Uploader
	if cfg.AssetUploadURL != "" {
		uploader = assets.NewHostUploader(cfg.AssetUploadURL, nil)
	}
	return &appCtx{
		cfg:     cfg,
		local:   local,
		api:     gw,
		catalog: catalog.New(gw, local),
		store:   store.New(gw, uploader),
		auth:    auth.New(local, auth.DefaultUsers()),
	}, nil
}
