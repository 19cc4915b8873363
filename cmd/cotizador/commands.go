package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmoralesmx/cotizador/internal/auth"
	"github.com/dmoralesmx/cotizador/internal/models"
	"github.com/dmoralesmx/cotizador/internal/pdf"
	"github.com/dmoralesmx/cotizador/internal/snapshot"
)

func hasFlag(args []string, name string) bool {
	for _, a := range args {
		if a == name {
			return true
		}
	}
	return false
}

func (a *appCtx) run(ctx context.Context, cmd string, args []string) error {
	if cmd == "login" {
		if len(args) < 2 {
			return fmt.Errorf("uso: login <email> <password>")
		}
		u, err := a.auth.Login(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("sesion iniciada: %s (%s)\n", u.Nombre, u.Role)
		return nil
	}

	user, ok := a.auth.Resume()
	if !ok {
		return fmt.Errorf("no hay sesion activa; use: cotizador login <email> <password>")
	}

	switch cmd {
	case "logout":
		return a.auth.Logout()

	case "sync":
		return a.sync(ctx, hasFlag(args, "--force"))

	case "catalogo":
		if !auth.Can(user, auth.ActionList, "catalogo") {
			return fmt.Errorf("permiso denegado")
		}
		if err := a.catalog.Load(ctx, hasFlag(args, "--refresh")); err != nil {
			// stale-while-error: data may still be usable, tell the user
			fmt.Fprintln(os.Stderr, "aviso:", err)
		}
		return a.printCatalog()

	case "clientes":
		if !auth.Can(user, auth.ActionList, "cliente") {
			return fmt.Errorf("permiso denegado")
		}
		if err := a.store.LoadClients(ctx); err != nil {
			return err
		}
		for _, c := range a.store.Clients() {
			fmt.Printf("%-4s %-28s %s\n", c.ID, c.Nombre, c.Telefono)
		}
		return nil

	case "cliente":
		if len(args) >= 3 && args[0] == "nuevo" {
			if !auth.Can(user, auth.ActionCreate, "cliente") {
				return fmt.Errorf("permiso denegado")
			}
			c := models.Client{Nombre: args[1], Telefono: args[2]}
			if len(args) > 3 {
				c.WhatsApp = args[3]
			}
			created, err := a.store.CreateClient(ctx, c)
			if err != nil {
				return err
			}
			fmt.Printf("cliente creado: %s %s\n", created.ID, created.Nombre)
			return nil
		}
		return fmt.Errorf("uso: cliente nuevo <nombre> <telefono> [whatsapp]")

	case "cotizaciones":
		if !auth.Can(user, auth.ActionList, "cotizacion") {
			return fmt.Errorf("permiso denegado")
		}
		if err := a.sync(ctx, hasFlag(args, "--force")); err != nil {
			return err
		}
		for _, q := range a.store.Quotations() {
			name := ""
			if q.Cliente != nil {
				name = q.Cliente.Nombre
			}
			fmt.Printf("%-14s %-24s %-9s %s\n", q.Folio, name, q.Estatus, models.Money(q.Total))
		}
		return nil

	case "cotizacion":
		if len(args) < 1 {
			return fmt.Errorf("uso: cotizacion <id|folio>")
		}
		if !auth.Can(user, auth.ActionView, "cotizacion") {
			return fmt.Errorf("permiso denegado")
		}
		if err := a.sync(ctx, false); err != nil {
			return err
		}
		q, ok := a.store.QuotationByID(args[0])
		if !ok {
			return fmt.Errorf("cotizacion %s no encontrada", args[0])
		}
		a.printQuotation(q)
		return nil

	case "estatus":
		if len(args) < 2 {
			return fmt.Errorf("uso: estatus <id> <draft|sent|accepted|rejected>")
		}
		if !auth.Can(user, auth.ActionUpdate, "cotizacion") {
			return fmt.Errorf("permiso denegado")
		}
		if err := a.sync(ctx, false); err != nil {
			return err
		}
		q, ok := a.store.QuotationByID(args[0])
		if !ok {
			return fmt.Errorf("cotizacion %s no encontrada", args[0])
		}
		if err := a.store.UpdateStatus(ctx, q.ID, models.Status(args[1])); err != nil {
			return err
		}
		fmt.Printf("%s -> %s\n", q.Folio, args[1])
		return nil

	case "exportar":
		if len(args) < 2 {
			return fmt.Errorf("uso: exportar <pdf|png> <id|folio>")
		}
		if !auth.Can(user, auth.ActionCreate, "export") {
			return fmt.Errorf("permiso denegado")
		}
		return a.export(ctx, args[0], args[1])

	case "perfil":
		if !auth.Can(user, auth.ActionView, "negocio") {
			return fmt.Errorf("permiso denegado")
		}
		if err := a.store.LoadProfile(ctx); err != nil {
			return err
		}
		p := a.store.Profile()
		fmt.Printf("%s\n%s\n%s\n", p.Nombre, p.Telefono, p.Direccion)
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("comando desconocido: %s", cmd)
	}
}

// sync mirrors the SPA's mount sequence: clients and profile always, the
// quotation list behind its staleness window unless forced.
func (a *appCtx) sync(ctx context.Context, force bool) error {
	if err := a.store.LoadClients(ctx); err != nil {
		return err
	}
	if err := a.store.LoadProfile(ctx); err != nil {
		return err
	}
	return a.store.RefreshQuotations(ctx, force)
}

func (a *appCtx) export(ctx context.Context, format, id string) error {
	if err := a.catalog.Load(ctx, false); err != nil {
		fmt.Fprintln(os.Stderr, "aviso:", err)
	}
	if err := a.sync(ctx, false); err != nil {
		return err
	}
	q, ok := a.store.QuotationByID(id)
	if !ok {
		return fmt.Errorf("cotizacion %s no encontrada", id)
	}
	switch format {
	case "pdf":
		data, err := pdf.New().Render(a.store.Profile(), q, a.catalog)
		if err != nil {
			return err
		}
		name := pdf.Filename(q)
		if err := os.WriteFile(name, data, 0o644); err != nil {
			return err
		}
		fmt.Println(name)
	case "png":
		data, err := snapshot.New().Render(a.store.Profile(), q, a.catalog)
		if err != nil {
			return err
		}
		name := snapshot.Filename(q)
		if err := os.WriteFile(name, data, 0o644); err != nil {
			return err
		}
		fmt.Println(name)
	default:
		return fmt.Errorf("formato desconocido: %s", format)
	}
	return nil
}

func (a *appCtx) printCatalog() error {
	fmt.Println("Categorias:")
	for _, c := range a.catalog.ActiveCategories() {
		fmt.Printf("  %-4s %s\n", c.ID, c.Nombre)
	}
	fmt.Println("Materiales:")
	for _, m := range a.catalog.ActiveMaterials() {
		fmt.Printf("  %-4s %s\n", m.ID, m.Nombre)
	}
	fmt.Println("Colores:")
	for _, c := range a.catalog.ActiveColors() {
		scope := ""
		if c.MaterialID != "" {
			scope = " (" + a.catalog.MaterialName(c.MaterialID) + ")"
		}
		fmt.Printf("  %-4s %s%s\n", c.ID, c.Nombre, scope)
	}
	fmt.Println("Acabados:")
	for _, f := range a.catalog.ActiveFinishes() {
		fmt.Printf("  %-4s %s\n", f.ID, f.Nombre)
	}
	fmt.Println("Formas de pago:")
	for _, p := range a.catalog.ActivePaymentMethods() {
		fmt.Printf("  %-4s %s\n", p.ID, p.Nombre)
	}
	return nil
}

func (a *appCtx) printQuotation(q models.Quotation) {
	name := ""
	if q.Cliente != nil {
		name = q.Cliente.Nombre
	}
	fmt.Printf("%s  %s  [%s]\n", q.Folio, name, q.Estatus)
	for _, it := range q.Items {
		fmt.Printf("  %dx %-28s %-14s %s\n", it.Cantidad, it.Nombre,
			a.catalog.MaterialName(it.MaterialID), models.Money(it.Subtotal()))
	}
	fmt.Printf("  %-20s %s\n", "Subtotal", models.Money(q.Subtotal))
	if q.Descuento > 0 {
		fmt.Printf("  %-20s -%s\n", "Descuento", models.Money(q.Descuento))
	}
	fmt.Printf("  %-20s %s\n", "Total", models.Money(q.Total))
	if q.Entrega != "" {
		fmt.Printf("  Entrega: %s\n", q.Entrega)
	}
	if q.Observaciones != "" {
		fmt.Printf("  Obs: %s\n", strings.TrimSpace(q.Observaciones))
	}
}
