// Package suppliers maps free-text supplier names to canonical supplier
// records per tenant: exact-match lookup, create-on-miss, spend aggregation,
// and ranked fuzzy-match suggestions for ambiguous documents.
package suppliers

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/procurehq/procurement-tracker/constants"
	"github.com/procurehq/procurement-tracker/internal/common"
	"github.com/procurehq/procurement-tracker/internal/entity"
)

// defaultRating is the performance-rating scale midpoint new suppliers start
// at.
const defaultRating = 2.5

// Attribution carries the spend and contact details a document contributes
// to its resolved supplier.
type Attribution struct {
	Amount         float64
	ContactEmail   *string
	ContactPhone   *string
	ContactAddress *string
	TaxID          *string
}

// Store is the persistence contract the resolver depends on. AddSpend must
// increment at the storage level (total_spend = total_spend + ?), never
// read-modify-write, so concurrent attributions cannot lose updates. Create
// must return common.ErrConflict when the (tenant_id, normalized_name)
// unique constraint fires.
type Store interface {
	GetByNormalizedName(ctx context.Context, tenantID uuid.UUID, normalizedName string) (*entity.Supplier, error)
	Create(ctx context.Context, s *entity.Supplier) (*entity.Supplier, error)
	AddSpend(ctx context.Context, id uuid.UUID, amount float64) error
	BackfillContact(ctx context.Context, id uuid.UUID, attr Attribution) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]entity.Supplier, error)
}

type Resolver struct {
	store  Store
	group  singleflight.Group
	logger *slog.Logger
}

func NewResolver(store Store, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{store: store, logger: logger}
}

// NormalizeName lowercases and collapses internal whitespace; it is the
// lookup identity for the (tenant_id, normalized_name) invariant.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Resolve maps a free-text name to the tenant's canonical supplier record.
// On hit it adds the attributed amount to total_spend and backfills empty
// contact fields; on miss it creates the supplier. The create path is
// serialized per (tenant, normalized name) through a flight group, and a
// unique-constraint conflict is re-read as a hit, so concurrent resolutions
// of a brand-new name yield exactly one row.
func (r *Resolver) Resolve(ctx context.Context, tenantID uuid.UUID, rawName string, attr *Attribution) (*entity.Supplier, bool, error) {
	if tenantID == uuid.Nil {
		return nil, false, common.ValidationErrorf("tenant_id is required")
	}
	normalized := NormalizeName(rawName)
	if normalized == "" {
		return nil, false, common.ValidationErrorf("supplier name is required")
	}

	sup, err := r.store.GetByNormalizedName(ctx, tenantID, normalized)
	created := false
	switch {
	case err == nil:
		// hit
	case errors.Is(err, common.ErrNotFound):
		sup, created, err = r.findOrCreate(ctx, tenantID, rawName, normalized)
		if err != nil {
			return nil, false, err
		}
	default:
		return nil, false, err
	}

	if created {
		r.logger.Info("suppliers.resolve.created",
			"tenant_id", tenantID, "supplier_id", sup.ID, "name", sup.Name)
	}

	// Each caller applies its own attribution, including the one whose flight
	// created the row, so deduplicated concurrent resolutions never drop a
	// spend contribution.
	if attr != nil {
		if attr.Amount > 0 {
			if err := r.store.AddSpend(ctx, sup.ID, attr.Amount); err != nil {
				return nil, false, err
			}
			sup.TotalSpend += attr.Amount
		}
		if needsBackfill(sup, attr) {
			if err := r.store.BackfillContact(ctx, sup.ID, *attr); err != nil {
				return nil, false, err
			}
			applyBackfill(sup, attr)
		}
	}

	r.logger.Debug("suppliers.resolve.done",
		"tenant_id", tenantID, "supplier_id", sup.ID, "created", created, "total_spend", sup.TotalSpend)
	return sup, created, nil
}

func (r *Resolver) findOrCreate(ctx context.Context, tenantID uuid.UUID, rawName, normalized string) (*entity.Supplier, bool, error) {
	type outcome struct {
		sup     *entity.Supplier
		created bool
	}

	flightKey := tenantID.String() + "|" + normalized
	v, err, _ := r.group.Do(flightKey, func() (any, error) {
		// the row may exist by the time this flight runs
		if existing, err := r.store.GetByNormalizedName(ctx, tenantID, normalized); err == nil {
			return outcome{sup: existing}, nil
		} else if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}

		sup := &entity.Supplier{
			TenantID:          tenantID,
			Name:              strings.TrimSpace(rawName),
			NormalizedName:    normalized,
			PerformanceRating: defaultRating,
			Status:            constants.SupplierActive,
		}

		saved, err := r.store.Create(ctx, sup)
		if errors.Is(err, common.ErrConflict) {
			// lost the insert race to another process; the row is there now
			existing, getErr := r.store.GetByNormalizedName(ctx, tenantID, normalized)
			if getErr != nil {
				return nil, getErr
			}
			return outcome{sup: existing}, nil
		}
		if err != nil {
			return nil, err
		}
		return outcome{sup: saved, created: true}, nil
	})
	if err != nil {
		return nil, false, err
	}
	out := v.(outcome)
	return out.sup, out.created, nil
}

// Suggest returns ranked fuzzy matches against the tenant's suppliers for an
// ambiguous or unassigned document.
func (r *Resolver) Suggest(ctx context.Context, tenantID uuid.UUID, rawName string, docCtx MatchContext) ([]Match, error) {
	if tenantID == uuid.Nil {
		return nil, common.ValidationErrorf("tenant_id is required")
	}
	candidates, err := r.store.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return SuggestMatches(rawName, docCtx, candidates), nil
}

func needsBackfill(sup *entity.Supplier, attr *Attribution) bool {
	return (sup.ContactEmail == nil && attr.ContactEmail != nil) ||
		(sup.ContactPhone == nil && attr.ContactPhone != nil) ||
		(sup.ContactAddress == nil && attr.ContactAddress != nil) ||
		(sup.TaxID == nil && attr.TaxID != nil)
}

func applyBackfill(sup *entity.Supplier, attr *Attribution) {
	if sup.ContactEmail == nil {
		sup.ContactEmail = attr.ContactEmail
	}
	if sup.ContactPhone == nil {
		sup.ContactPhone = attr.ContactPhone
	}
	if sup.ContactAddress == nil {
		sup.ContactAddress = attr.ContactAddress
	}
	if sup.TaxID == nil {
		sup.TaxID = attr.TaxID
	}
}
