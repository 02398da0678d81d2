package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tenant"
	"dispatch/internal/pkg/guard"
)

var (
	ErrRegisterTenantCommandIsNotConstructed = errors.New(
		"RegisterTenantCommand must be created via NewRegisterTenantCommand constructor",
	)
	ErrTenantNameIsRequired = errors.New("tenant name is required")
)

// RegisterTenantCommand represents a request to register a tenant on the
// marketplace. MarketID is optional: tenants without a market listing never
// participate in market courier fallback.
type RegisterTenantCommand struct { //nolint:recvcheck //using for validation
	tenantID           kernel.UUID
	name               string
	tenantType         tenant.Type
	marketID           *kernel.UUID
	allowFallback      bool
	providerMode       tenant.ProviderMode
	defaultPrepTimeMin int

	guard guard.ConstructorGuard
}

// NewRegisterTenantCommand creates a command to register a tenant.
// Validates the identifier, name, tenant type and provider mode.
func NewRegisterTenantCommand(
	tenantID kernel.UUID,
	name string,
	tenantType tenant.Type,
	marketID *kernel.UUID,
	allowFallback bool,
	providerMode tenant.ProviderMode,
	defaultPrepTimeMin int,
) (RegisterTenantCommand, error) {
	cmd := RegisterTenantCommand{
		allowFallback: allowFallback,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTenantID(tenantID),
		cmd.setName(name),
		cmd.setTenantType(tenantType),
		cmd.setMarketID(marketID),
		cmd.setProviderMode(providerMode),
		cmd.setDefaultPrepTimeMin(defaultPrepTimeMin),
	); err != nil {
		return RegisterTenantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterTenantCommand) Validate() error {
	return c.guard.Validate(ErrRegisterTenantCommandIsNotConstructed)
}

// TenantID returns the unique identifier for the tenant.
func (c RegisterTenantCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Name returns the tenant display name.
func (c RegisterTenantCommand) Name() string {
	return c.name
}

// TenantType returns the tenant classification.
func (c RegisterTenantCommand) TenantType() tenant.Type {
	return c.tenantType
}

// MarketID returns the market listing, nil when the tenant is not listed.
func (c RegisterTenantCommand) MarketID() *kernel.UUID {
	return c.marketID
}

// AllowFallback reports whether market courier fallback is opted in.
func (c RegisterTenantCommand) AllowFallback() bool {
	return c.allowFallback
}

// ProviderMode returns the courier fleet the tenant normally delivers with.
func (c RegisterTenantCommand) ProviderMode() tenant.ProviderMode {
	return c.providerMode
}

// DefaultPrepTimeMin returns the assumed preparation time in minutes.
func (c RegisterTenantCommand) DefaultPrepTimeMin() int {
	return c.defaultPrepTimeMin
}

func (c *RegisterTenantCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *RegisterTenantCommand) setName(name string) error {
	if name == "" {
		return ErrTenantNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterTenantCommand) setTenantType(tenantType tenant.Type) error {
	if err := tenantType.Validate(); err != nil {
		return err
	}

	c.tenantType = tenantType
	return nil
}

func (c *RegisterTenantCommand) setMarketID(marketID *kernel.UUID) error {
	if marketID != nil {
		if err := marketID.Validate(); err != nil {
			return err
		}
	}

	c.marketID = marketID
	return nil
}

func (c *RegisterTenantCommand) setProviderMode(providerMode tenant.ProviderMode) error {
	if err := providerMode.Validate(); err != nil {
		return err
	}

	c.providerMode = providerMode
	return nil
}

func (c *RegisterTenantCommand) setDefaultPrepTimeMin(minutes int) error {
	if minutes < 0 {
		return ErrPrepTimeIsNegative
	}

	c.defaultPrepTimeMin = minutes
	return nil
}
