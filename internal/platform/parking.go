package platform

import "context"

// ParkingSnapshot is the parking occupancy dashboard payload. The
// backend speaks Spanish on this endpoint.
type ParkingSnapshot struct {
	TotalSpots     int64            `json:"cuposTotales"`
	Occupied       int64            `json:"ocupados"`
	OccupancyPct   float64          `json:"ocupacion"`
	RevenueToday   int64            `json:"ingresosHoy"`
	MonthlyRevenue []MonthlyRevenue `json:"ingresosMensuales,omitempty"`
	VehiclesInside []ParkingEntry   `json:"vehiculosDentro,omitempty"`
	MovementsToday []ParkingEntry   `json:"movimientosHoy,omitempty"`
}

// MonthlyRevenue is one month's parking revenue.
type MonthlyRevenue struct {
	Month   string `json:"mes"`
	Revenue int64  `json:"ingresos"`
}

// ParkingEntry is one vehicle movement or current occupant.
type ParkingEntry struct {
	Plate       string `json:"placa"`
	VehicleType string `json:"tipoVehiculo"`
	ClientType  string `json:"tipoCliente"`
	EntryTime   string `json:"entrada"`
	ExitTime    string `json:"salida,omitempty"`
	Hours       int64  `json:"horas,omitempty"`
	Amount      int64  `json:"monto,omitempty"`
}

// GetParking returns the current parking occupancy snapshot.
func (c *Client) GetParking(ctx context.Context) (*ParkingSnapshot, error) {
	var snapshot ParkingSnapshot
	if err := c.doRequest(ctx, "GET", "/api/parqueadero", nil, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
