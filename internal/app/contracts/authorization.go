package contracts

import (
	"context"

	"medsafe-service/internal/app/models"
)

// Authorizer decides who may mutate referti. A nil return means allow;
// denials are Forbidden CustomErrors carrying the reason.
type Authorizer interface {
	// CanCreate only requires an existing, enabled account.
	CanCreate(ctx context.Context, caller models.Caller) error
	// CanMutate allows administrators and the referto's author.
	// The operation name ("modify", "delete") ends up in the denial message.
	CanMutate(ctx context.Context, caller models.Caller, referto *models.Referto, operation string) error
	// CanAdminister allows administrators only.
	CanAdminister(ctx context.Context, caller models.Caller) error
}
