package platform

import "context"

// Payment statuses as the backend reports them.
const (
	PaymentStatusPaid    = "Pagado"
	PaymentStatusPending = "Pendiente"
)

// Payment is one tenant payment obligation. Settling a payment is a
// client-only affair: the backend exposes the list read-only and no
// real payment processing happens anywhere.
type Payment struct {
	Concept string `json:"concepto"`
	Amount  int64  `json:"monto"`
	Date    string `json:"fecha"`
	Status  string `json:"estado"`
}

// Pending reports whether the payment is still owed.
func (p *Payment) Pending() bool {
	return p.Status == PaymentStatusPending
}

// ListPayments returns the tenant's payment obligations.
func (c *Client) ListPayments(ctx context.Context) ([]Payment, error) {
	var payments []Payment
	if err := c.doRequest(ctx, "GET", "/api/pagos", nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
