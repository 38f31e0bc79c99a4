package services

import "github.com/billyhq/billing_backend/internal/core/domain"

// gatewayStatusMap maps gateway API statuses to canonical transaction statuses.
var gatewayStatusMap = map[string]domain.TransactionStatus{
	"pending":   domain.TransactionPending,
	"succeeded": domain.TransactionSucceeded,
	"paid":      domain.TransactionSucceeded,
	"failed":    domain.TransactionFailed,
	"reversed":  domain.TransactionFailed,
}

// MapGatewayStatus normalizes a gateway status string into the canonical
// status enum. Unknown values default to PENDING rather than failing; the
// gateway may grow statuses we have never seen.
func MapGatewayStatus(s string) domain.TransactionStatus {
	if status, ok := gatewayStatusMap[s]; ok {
		return status
	}
	return domain.TransactionPending
}
