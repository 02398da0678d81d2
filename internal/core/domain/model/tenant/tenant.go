package tenant

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrTenantIsNotConstructed is returned when a Tenant instance was not created
	// through the NewTenant or RestoreTenant factory methods.
	ErrTenantIsNotConstructed = errors.New("Tenant must be created via NewTenant or RestoreTenant constructor")
)

// Tenant represents a merchant operating on the platform, optionally listed in a
// shared market. The dispatch engine reads tenant configuration to decide which
// time-window rules apply to the tenant's orders and whether delivery
// responsibility may fall back to the market's courier pool.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Tenant type and provider mode are validated enums
//   - Default preparation time must not be negative
//   - Can only be created through NewTenant or RestoreTenant
type Tenant struct {
	// id is the unique identifier for the tenant
	id kernel.UUID

	// name is the merchant's display name
	name string

	// tenantType governs which dispatch time-window rules apply
	tenantType Type

	// marketID is the market the tenant is listed in (nil when not market-listed)
	marketID *kernel.UUID

	// allowMarketCourierFallback opts the tenant into time-based fallback
	allowMarketCourierFallback bool

	// providerMode is which courier fleet the tenant normally delivers with
	providerMode ProviderMode

	// defaultPrepTimeMin is the preparation time assumed when an order has none
	defaultPrepTimeMin int

	// isConstructed ensures the tenant was created via a constructor
	isConstructed bool
}

// NewTenant creates a new Tenant with validation.
//
// Parameters:
//   - id: unique identifier for the tenant
//   - name: display name (must not be empty)
//   - tenantType: Restaurant, Shop or Service
//   - marketID: market listing, nil when the tenant is not market-listed
//   - allowFallback: whether delivery responsibility may fall back to the market
//   - providerMode: which courier fleet the tenant normally delivers with
//   - defaultPrepTimeMin: assumed preparation time in minutes (must not be negative)
func NewTenant(
	id kernel.UUID,
	name string,
	tenantType Type,
	marketID *kernel.UUID,
	allowFallback bool,
	providerMode ProviderMode,
	defaultPrepTimeMin int,
) (*Tenant, error) {
	t := &Tenant{
		allowMarketCourierFallback: allowFallback,
		isConstructed:              true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setType(tenantType),
		t.setMarketID(marketID),
		t.setProviderMode(providerMode),
		t.setDefaultPrepTimeMin(defaultPrepTimeMin),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTenant reconstructs a Tenant from persistence.
// It applies the same validation rules as NewTenant.
func RestoreTenant(
	id kernel.UUID,
	name string,
	tenantType Type,
	marketID *kernel.UUID,
	allowFallback bool,
	providerMode ProviderMode,
	defaultPrepTimeMin int,
) (*Tenant, error) {
	return NewTenant(id, name, tenantType, marketID, allowFallback, providerMode, defaultPrepTimeMin)
}

// Validate ensures the Tenant instance was properly constructed.
func (t *Tenant) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTenantIsNotConstructed
	}

	return nil
}

// IsEqual compares two tenants by their unique identifiers.
func (t *Tenant) IsEqual(other *Tenant) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the tenant's unique identifier.
func (t *Tenant) ID() kernel.UUID {
	return t.id
}

// Name returns the merchant's display name.
func (t *Tenant) Name() string {
	return t.name
}

// Type returns the tenant type.
func (t *Tenant) Type() Type {
	return t.tenantType
}

// MarketID returns the market the tenant is listed in, or nil when unlisted.
func (t *Tenant) MarketID() *kernel.UUID {
	return t.marketID
}

// BelongsToMarket reports whether the tenant is listed in the given market.
func (t *Tenant) BelongsToMarket(marketID kernel.UUID) bool {
	return t.marketID != nil && t.marketID.IsEqual(marketID)
}

// AllowsMarketCourierFallback reports whether the tenant opted into time-based
// fallback of delivery responsibility to the market's courier pool.
func (t *Tenant) AllowsMarketCourierFallback() bool {
	return t.allowMarketCourierFallback
}

// ProviderMode returns which courier fleet the tenant normally delivers with.
func (t *Tenant) ProviderMode() ProviderMode {
	return t.providerMode
}

// DefaultPrepTimeMin returns the preparation time assumed for orders that do
// not carry their own.
func (t *Tenant) DefaultPrepTimeMin() int {
	return t.defaultPrepTimeMin
}

// setID validates and sets the tenant's unique identifier.
// This is a private method used only during construction.
func (t *Tenant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

// setName validates and sets the merchant's display name.
// This is a private method used only during construction.
func (t *Tenant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = name
	return nil
}

// setType validates and sets the tenant type.
// This is a private method used only during construction.
func (t *Tenant) setType(tenantType Type) error {
	if err := tenantType.Validate(); err != nil {
		return err
	}
	t.tenantType = tenantType
	return nil
}

// setMarketID validates and sets the optional market listing.
// This is a private method used only during construction.
func (t *Tenant) setMarketID(marketID *kernel.UUID) error {
	if marketID != nil {
		if err := marketID.Validate(); err != nil {
			return err
		}
	}
	t.marketID = marketID
	return nil
}

// setProviderMode validates and sets the provider mode.
// This is a private method used only during construction.
func (t *Tenant) setProviderMode(providerMode ProviderMode) error {
	if err := providerMode.Validate(); err != nil {
		return err
	}
	t.providerMode = providerMode
	return nil
}

// setDefaultPrepTimeMin validates and sets the default preparation time.
// This is a private method used only during construction.
func (t *Tenant) setDefaultPrepTimeMin(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"default prep time is invalid",
			fmt.Errorf("%d is negative", minutes),
		)
	}
	t.defaultPrepTimeMin = minutes
	return nil
}
