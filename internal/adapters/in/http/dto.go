package http

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Street    string `json:"street"`
	Building  string `json:"building"`
}

// AddressRequest is the body of PUT /api/v1/orders/:id/destination.
type AddressRequest struct {
	Street   string `json:"street"`
	Building string `json:"building"`
}

// AssignDriverRequest is the body of POST /api/v1/orders/:id/driver.
type AssignDriverRequest struct {
	DriverID int `json:"driverId"`
}

type CreatedOrderResponse struct {
	ID int `json:"id"`
}

type OrderResponse struct {
	ID             int     `json:"id"`
	Status         string  `json:"status"`
	ShortInfo      string  `json:"shortInfo"`
	DriverFullInfo *string `json:"driverFullInfo"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
