package subscriptions

// cancelled is terminal.
var subscriptionTransitions = map[Status][]Status{
	StatusActive: {StatusPaused, StatusCancelled},
	StatusPaused: {StatusActive, StatusCancelled},
}

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusCancelled:
		return true
	}
	return false
}

func CanTransition(from, to Status) bool {
	for _, next := range subscriptionTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

var deliveryRank = map[DeliveryStatus]int{
	DeliveryPreparing: 0,
	DeliverySent:      1,
	DeliveryInTransit: 2,
	DeliveryComplete:  3,
}

func (s DeliveryStatus) Valid() bool {
	_, ok := deliveryRank[s]
	return ok
}

// CanAdvanceDelivery reports whether a delivery may move from -> to.
// Deliveries only move forward; steps may be skipped.
func CanAdvanceDelivery(from, to DeliveryStatus) bool {
	f, ok1 := deliveryRank[from]
	t, ok2 := deliveryRank[to]
	return ok1 && ok2 && t > f
}
