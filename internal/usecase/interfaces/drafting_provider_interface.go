package interfaces

import (
	"context"

	"mbg_outreach/internal/domain/entities"
)

// IDraftingProvider produces outreach text for a lead, typically via an LLM.
// The result may be empty or over length; callers enforce the limits.
type IDraftingProvider interface {
	Draft(ctx context.Context, lead entities.Lead) (string, error)
}
