// Package mail implementa las notificaciones por correo de transacciones
// posteadas. El envío es best-effort: una falla de SMTP jamás afecta el
// resultado del posteo, solo se loguea.
package mail

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/comercio-api/internal/application/posting"
	"github.com/jhoicas/comercio-api/pkg/config"
	"github.com/jhoicas/comercio-api/pkg/logger"
)

var _ posting.Notifier = (*Notifier)(nil)

// Notifier envía un correo por cada transacción posteada. Con Host vacío
// queda deshabilitado y solo loguea.
type Notifier struct {
	cfg config.SMTPConfig
	log *logger.Logger
}

// NewNotifier construye el notificador.
func NewNotifier(cfg config.SMTPConfig, log *logger.Logger) *Notifier {
	return &Notifier{cfg: cfg, log: log}
}

// TransactionPosted notifica una venta o compra confirmada. Se invoca
// después del commit; cualquier error se traga tras loguearlo.
func (n *Notifier) TransactionPosted(kind, invoiceNo, counterparty string, total decimal.Decimal) {
	event := n.log.Info().
		Str("kind", kind).
		Str("invoice_no", invoiceNo).
		Str("total", total.String())
	if n.cfg.Host == "" || n.cfg.To == "" {
		event.Msg("transacción posteada (notificación por correo deshabilitada)")
		return
	}
	event.Msg("transacción posteada, enviando notificación")

	subject, body := n.compose(kind, invoiceNo, counterparty, total)

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", n.cfg.To)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.Username, n.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		n.log.Warn().Err(err).
			Str("invoice_no", invoiceNo).
			Msg("no se pudo enviar la notificación por correo")
	}
}

func (n *Notifier) compose(kind, invoiceNo, counterparty string, total decimal.Decimal) (subject, body string) {
	if kind == posting.KindSale {
		subject = fmt.Sprintf("Venta registrada: %s", invoiceNo)
		body = fmt.Sprintf("Se registró la venta %s.\nCliente: %s\nTotal: $%s\n",
			invoiceNo, nonEmpty(counterparty, "mostrador"), total.StringFixed(2))
		return subject, body
	}
	subject = fmt.Sprintf("Compra registrada: %s", invoiceNo)
	body = fmt.Sprintf("Se registró la compra %s.\nProveedor: %s\nTotal: $%s\n",
		invoiceNo, nonEmpty(counterparty, "—"), total.StringFixed(2))
	return subject, body
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
