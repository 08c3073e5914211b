package notification

import (
	"fmt"
	"strings"

	"github.com/ecolvin/tracelink-api/internal/domain/entity"
	"github.com/ecolvin/tracelink-api/pkg/logger"
)

// Mailer puerto de envío de correo. Una implementación sin transporte configurado
// debe comportarse como no-op, no como error.
type Mailer interface {
	Send(to []string, subject, text, html string) error
}

// RecipientSource puerto para resolver los destinatarios vigentes.
type RecipientSource interface {
	Recipients() ([]string, error)
}

// Dispatcher envía notificaciones por correo como mejor esfuerzo: ningún fallo
// de correo interrumpe la operación que lo originó; solo se registra.
type Dispatcher struct {
	mailer     Mailer
	recipients RecipientSource
	log        *logger.Logger
}

// NewDispatcher construye el despachador de notificaciones.
func NewDispatcher(mailer Mailer, recipients RecipientSource, log *logger.Logger) *Dispatcher {
	return &Dispatcher{mailer: mailer, recipients: recipients, log: log}
}

// NotifyLowStock avisa que el producto quedó en o por debajo de su mínimo.
func (d *Dispatcher) NotifyLowStock(alert *entity.Alert) {
	subject := fmt.Sprintf("Alerta de stock: %s", alert.Producto)
	text := alert.Mensaje
	html := fmt.Sprintf("<p><strong>%s</strong></p><p>SKU: %s</p>", alert.Mensaje, alert.ProductSKU)
	d.send(subject, text, html)
}

// NotifyImportSummary envía el resumen de una importación terminada, con las
// primeras filas con error si las hubo.
func (d *Dispatcher) NotifyImportSummary(log *entity.ImportLog) {
	subject := fmt.Sprintf("Importación procesada: %s", log.FileName)

	var b strings.Builder
	fmt.Fprintf(&b, "Archivo: %s\n", log.FileName)
	fmt.Fprintf(&b, "Filas: %d total, %d ok, %d con error\n", log.RowsTotal, log.RowsOk, log.RowsError)
	fmt.Fprintf(&b, "Productos: %d creados, %d actualizados\n", log.ProductsCreated, log.ProductsUpdated)
	fmt.Fprintf(&b, "Paquetes: %d creados, %d actualizados\n", log.PackagesCreated, log.PackagesUpdated)
	if len(log.Errors) > 0 {
		b.WriteString("\nPrimeros errores:\n")
		for i, e := range log.Errors {
			if i == 5 {
				fmt.Fprintf(&b, "... y %d más\n", len(log.Errors)-5)
				break
			}
			fmt.Fprintf(&b, "- fila %d, %s: %s\n", e.Row, e.Field, e.Message)
		}
	}
	d.send(subject, b.String(), "")
}

func (d *Dispatcher) send(subject, text, html string) {
	to, err := d.recipients.Recipients()
	if err != nil {
		d.log.Error().Err(err).Str("subject", subject).Msg("no se pudieron resolver destinatarios")
		return
	}
	if len(to) == 0 {
		d.log.Debug().Str("subject", subject).Msg("sin destinatarios configurados, se omite correo")
		return
	}
	if err := d.mailer.Send(to, subject, text, html); err != nil {
		d.log.Error().Err(err).Str("subject", subject).Msg("fallo al enviar correo de notificación")
	}
}
