package notification_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecolvin/tracelink-api/internal/application/notification"
	"github.com/ecolvin/tracelink-api/internal/domain/entity"
	"github.com/ecolvin/tracelink-api/pkg/logger"
)

type fakeMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	to      []string
	subject string
	text    string
}

func (m *fakeMailer) Send(to []string, subject, text, html string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, text: text})
	return nil
}

type staticRecipients []string

func (r staticRecipients) Recipients() ([]string, error) { return r, nil }

func TestNotifyLowStock_EnviaALosDestinatarios(t *testing.T) {
	mailer := &fakeMailer{}
	d := notification.NewDispatcher(mailer, staticRecipients{"dueno@tienda.cl"}, logger.Nop())

	d.NotifyLowStock(&entity.Alert{ProductSKU: "ABC-001", Producto: "Café", Mensaje: "Stock bajo: Café (3/10)"})

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, []string{"dueno@tienda.cl"}, mailer.sent[0].to)
	assert.Contains(t, mailer.sent[0].subject, "Café")
	assert.Equal(t, "Stock bajo: Café (3/10)", mailer.sent[0].text)
}

func TestNotifyImportSummary_RecortaErroresACinco(t *testing.T) {
	mailer := &fakeMailer{}
	d := notification.NewDispatcher(mailer, staticRecipients{"dueno@tienda.cl"}, logger.Nop())

	log := &entity.ImportLog{FileName: "inventario.xlsx", RowsTotal: 10, RowsOk: 2, RowsError: 8}
	for i := 0; i < 8; i++ {
		log.Errors = append(log.Errors, entity.ImportRowError{Row: i + 2, Field: "sku", Message: "SKU es obligatorio"})
	}
	d.NotifyImportSummary(log)

	require.Len(t, mailer.sent, 1)
	body := mailer.sent[0].text
	assert.Contains(t, body, "10 total, 2 ok, 8 con error")
	assert.Contains(t, body, "fila 6")
	assert.NotContains(t, body, "fila 7")
	assert.Contains(t, body, "... y 3 más")
}

func TestDispatcher_FallosDeCorreoNoPropagan(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp caído")}
	d := notification.NewDispatcher(mailer, staticRecipients{"dueno@tienda.cl"}, logger.Nop())

	// No hay error que devolver: solo se registra.
	d.NotifyLowStock(&entity.Alert{Producto: "Café", Mensaje: "Stock bajo: Café (3/10)"})
	d.NotifyImportSummary(&entity.ImportLog{FileName: "a.xlsx"})
	assert.Empty(t, mailer.sent)
}

func TestDispatcher_SinDestinatariosNoEnvia(t *testing.T) {
	mailer := &fakeMailer{}
	d := notification.NewDispatcher(mailer, staticRecipients{}, logger.Nop())

	d.NotifyLowStock(&entity.Alert{Producto: "Café"})
	assert.Empty(t, mailer.sent)
}
