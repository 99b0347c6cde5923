package tenant

import (
	"errors"
	"regexp"
	"time"

	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/pkg/errs"
)

var (
	// ErrTenantIsNotConstructed is returned when a Tenant instance was not
	// created through NewTenant or RestoreTenant.
	ErrTenantIsNotConstructed = errors.New("Tenant must be created via NewTenant or RestoreTenant")
)

// slugPattern constrains slugs to lower-case letters, digits and hyphens.
// Slugs appear in URLs, inbox directory names and registration payloads.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Tenant is the isolation boundary of the system. Every order, user and
// import belongs to exactly one tenant, and no operation ever crosses from
// one tenant to another.
type Tenant struct {
	id        kernel.UUID
	name      string
	slug      string
	active    bool
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewTenant creates an active tenant with the given display name and slug.
func NewTenant(id kernel.UUID, name, slug string) (*Tenant, error) {
	now := time.Now().UTC()
	t := &Tenant{
		active:        true,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setSlug(slug),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTenant reconstructs a Tenant from persistence.
func RestoreTenant(id kernel.UUID, name, slug string, active bool, createdAt, updatedAt time.Time) (*Tenant, error) {
	t := &Tenant{
		active:        active,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setSlug(slug),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate ensures the Tenant instance was constructed through NewTenant or
// RestoreTenant.
func (t *Tenant) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTenantIsNotConstructed
	}
	return nil
}

// IsEqual compares two tenants by identity.
func (t *Tenant) IsEqual(other *Tenant) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the tenant's unique identifier.
func (t *Tenant) ID() kernel.UUID {
	return t.id
}

// Name returns the tenant's display name.
func (t *Tenant) Name() string {
	return t.name
}

// Slug returns the URL-safe tenant identifier.
func (t *Tenant) Slug() string {
	return t.slug
}

// IsActive reports whether the tenant may perform write operations.
func (t *Tenant) IsActive() bool {
	return t.active
}

// CreatedAt returns the creation timestamp (UTC).
func (t *Tenant) CreatedAt() time.Time {
	return t.createdAt
}

// UpdatedAt returns the last-modification timestamp (UTC).
func (t *Tenant) UpdatedAt() time.Time {
	return t.updatedAt
}

// Deactivate blocks the tenant from all further write operations. Existing
// data stays readable for operators; request-scoped access is rejected.
func (t *Tenant) Deactivate() {
	t.active = false
	t.updatedAt = time.Now().UTC()
}

// Activate re-enables a previously deactivated tenant.
func (t *Tenant) Activate() {
	t.active = true
	t.updatedAt = time.Now().UTC()
}

func (t *Tenant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tenant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = name
	return nil
}

func (t *Tenant) setSlug(slug string) error {
	if slug == "" {
		return errs.NewValueIsRequiredError("slug")
	}
	if !slugPattern.MatchString(slug) {
		return errs.NewValueIsInvalidError("slug")
	}
	t.slug = slug
	return nil
}
