package responses

import (
	"time"

	"medsafe-service/internal/app/models"
)

type Referto struct {
	ID              int       `json:"id"`
	NomePaziente    string    `json:"nomePaziente"`
	CodiceFiscale   string    `json:"codiceFiscale"`
	TipoEsame       string    `json:"tipoEsame"`
	TestoReferto    string    `json:"testoReferto"`
	Conclusioni     string    `json:"conclusioni"`
	FileUrlImmagine string    `json:"fileUrlImmagine"`
	UrlPdfGenerato  string    `json:"urlPdfGenerato"`
	NomeFile        string    `json:"nomeFile"`
	AutoreEmail     string    `json:"autoreEmail"`
	DataCaricamento time.Time `json:"dataCaricamento"`
}

func NewReferto(model *models.Referto) *Referto {
	return &Referto{
		ID:              model.ID,
		NomePaziente:    model.NomePaziente,
		CodiceFiscale:   model.CodiceFiscale,
		TipoEsame:       string(model.TipoEsame),
		TestoReferto:    model.TestoReferto,
		Conclusioni:     model.Conclusioni,
		FileUrlImmagine: model.FileUrlImmagine,
		UrlPdfGenerato:  model.UrlPdfGenerato,
		NomeFile:        model.NomeFile,
		AutoreEmail:     model.AutoreEmail,
		DataCaricamento: model.DataCaricamento,
	}
}

func NewReferti(list []models.Referto) []Referto {
	result := make([]Referto, 0, len(list))
	for i := range list {
		result = append(result, *NewReferto(&list[i]))
	}
	return result
}

// DownloadFile is the payload of the artifact download endpoints.
type DownloadFile struct {
	FileName    string
	ContentType string
	Content     []byte
}
