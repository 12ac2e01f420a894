package model

// OrderStatus is the order's position in the fulfilment flow. The model
// layer does not restrict transition direction: the operator view offers
// every status at all times, so backward moves are legal.
type OrderStatus string

const (
	StatusPending        OrderStatus = "Pending"
	StatusPreparing      OrderStatus = "Preparing"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusCompleted      OrderStatus = "Completed"
)

// OrderStatuses lists every status in fulfilment order.
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusPreparing,
	StatusOutForDelivery,
	StatusCompleted,
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Index returns the status position in the fulfilment flow, or -1 for an
// unknown status.
func (s OrderStatus) Index() int {
	for i, known := range OrderStatuses {
		if s == known {
			return i
		}
	}
	return -1
}

// Progress returns the tracking-bar fraction, (index+1)/len(statuses).
// Unknown statuses report zero progress.
func (s OrderStatus) Progress() float64 {
	i := s.Index()
	if i < 0 {
		return 0
	}
	return float64(i+1) / float64(len(OrderStatuses))
}
