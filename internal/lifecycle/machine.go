package lifecycle

import "rebel-hub/internal/domain"

// transitions maps each supply chain stage to its successor. DELIVERED is
// terminal and HUB_PROCESSING is a reserved stage no path reaches.
var transitions = map[domain.OrderStatus]domain.OrderStatus{
	domain.StatusPending:                domain.StatusManufacturerDispatched,
	domain.StatusManufacturerDispatched: domain.StatusHubReceived,
	domain.StatusHubReceived:            domain.StatusHubQualityCheck,
	domain.StatusHubQualityCheck:        domain.StatusOutForDelivery,
	domain.StatusOutForDelivery:         domain.StatusDelivered,
}

var stageDetails = map[domain.OrderStatus]string{
	domain.StatusManufacturerDispatched: "Distributor has dispatched to REBEL Hub.",
	domain.StatusHubReceived:            "Consignment received at REBEL Central Hub.",
	domain.StatusHubQualityCheck:        "REBEL QC Team verified batch integrity.",
	domain.StatusOutForDelivery:         "Hub sorting complete. Last-mile carrier assigned.",
	domain.StatusDelivered:              "Package received and signed by Local Retailer.",
}

// Next returns the stage that follows status, or false when the status is
// terminal or unknown.
func Next(status domain.OrderStatus) (domain.OrderStatus, bool) {
	next, ok := transitions[status]
	return next, ok
}

func IsTerminal(status domain.OrderStatus) bool {
	_, ok := transitions[status]
	return !ok
}

// StageDetail returns the log line recorded when an order enters status.
func StageDetail(status domain.OrderStatus) string {
	return stageDetails[status]
}
