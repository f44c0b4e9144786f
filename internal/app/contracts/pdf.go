package contracts

import (
	"context"

	"medsafe-service/internal/app/models"
)

// PdfService renders a referto into the generated document artifact.
// Rendering must not mutate the referto and must not fail because an
// optional field is blank or the image cannot be embedded.
type PdfService interface {
	GeneratePdf(ctx context.Context, referto *models.Referto) ([]byte, error)
}
