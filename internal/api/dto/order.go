package dto

type OrderResponse struct {
	OrderID    int   `json:"order_id"`
	Timestamp  int64 `json:"timestamp"`
	Zone       int   `json:"zone"`
	Weight     int   `json:"weight"`
	CustomerID int   `json:"customer_id"`
	Subscriber bool  `json:"subscriber"`
	Fragile    bool  `json:"fragile"`
	Hazardous  bool  `json:"hazardous"`
	Perishable bool  `json:"perishable"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}
