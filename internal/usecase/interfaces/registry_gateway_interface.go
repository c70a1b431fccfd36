package interfaces

import (
	"context"

	"osms-portal/internal/domain/entities"
)

// IRegistryGateway abstracts the external registry (e.g. Notion) that mirrors
// RFQ and NDA data and is the system of record for vendor pricing.
//
// The registry is reconciled, not authoritative, for lifecycle state:
//   - FetchVendorPrices pulls the complete rfq-id -> vendor unit price
//     mapping, following the registry's pagination internally. Pull errors
//     are advisory: callers degrade to "no pricing available" instead of
//     failing the read that triggered the pull.
//   - PublishRfq / PublishNda push new records outward, best-effort.

type IRegistryGateway interface {
	FetchVendorPrices(ctx context.Context) (map[string]float64, error)
	PublishRfq(ctx context.Context, r entities.Rfq) error
	PublishNda(ctx context.Context, n entities.Nda) error
}
