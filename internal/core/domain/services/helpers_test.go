package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tenant"

	"github.com/stretchr/testify/require"
)

// orderSpec describes the order state a test needs, with sensible defaults:
// a delivery order in New status, TenantAssigned, placed at createdAt.
type orderSpec struct {
	tenantID    kernel.UUID
	status      order.Status
	fulfillment order.FulfillmentType
	mode        order.AssignmentMode
	readyAt     *time.Time
	triggeredAt *time.Time
	createdAt   time.Time
	courierID   *kernel.UUID
}

func buildOrder(t *testing.T, spec orderSpec) *order.Order {
	t.Helper()

	if spec.status == order.Unknown {
		spec.status = order.New
	}
	if spec.fulfillment == order.FulfillmentUnknown {
		spec.fulfillment = order.Delivery
	}
	if spec.mode == order.AssignmentUnknown {
		spec.mode = order.TenantAssigned
	}
	if spec.tenantID == (kernel.UUID{}) {
		spec.tenantID = kernel.NewUUID()
	}
	if spec.createdAt.IsZero() {
		spec.createdAt = time.Now()
	}

	o, err := order.RestoreOrder(
		kernel.NewUUID(), spec.tenantID,
		spec.status, spec.fulfillment, 0,
		spec.readyAt, spec.mode, spec.triggeredAt,
		spec.createdAt, spec.courierID,
	)
	require.NoError(t, err)
	return o
}

func buildTenant(t *testing.T, tenantType tenant.Type, marketID kernel.UUID, allowFallback bool) *tenant.Tenant {
	t.Helper()

	tn, err := tenant.NewTenant(
		kernel.NewUUID(), "tenant-"+tenantType.String(), tenantType,
		&marketID, allowFallback, tenant.Mixed, 20,
	)
	require.NoError(t, err)
	return tn
}

func timePtr(tm time.Time) *time.Time {
	return &tm
}
