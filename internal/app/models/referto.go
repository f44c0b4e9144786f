package models

import (
	"time"

	"medsafe-service/internal/pkg/exceptions"
)

// TipoEsame is the closed set of exam types a referto can carry.
type TipoEsame string

const (
	TipoEsameTAC              TipoEsame = "TAC"
	TipoEsameRadiografia      TipoEsame = "Radiografia"
	TipoEsameEcografia        TipoEsame = "Ecografia"
	TipoEsameRisonanza        TipoEsame = "Risonanza"
	TipoEsameEsamiLaboratorio TipoEsame = "Esami_Laboratorio"
)

// Descrizione returns the human-readable label used in the generated PDF.
func (t TipoEsame) Descrizione() string {
	if t == TipoEsameEsamiLaboratorio {
		return "Esami di Laboratorio"
	}
	return string(t)
}

func ParseTipoEsame(value string) (TipoEsame, error) {
	switch TipoEsame(value) {
	case TipoEsameTAC, TipoEsameRadiografia, TipoEsameEcografia, TipoEsameRisonanza, TipoEsameEsamiLaboratorio:
		return TipoEsame(value), nil
	}
	return "", exceptions.ErrInvalidExamType(value)
}

// Referto is the persisted medical report record. FileUrlImmagine and
// UrlPdfGenerato are never empty after a successful create; NomeFile is
// unique across all referti and usable as an alternate lookup key.
type Referto struct {
	ID              int
	NomePaziente    string
	CodiceFiscale   string
	TipoEsame       TipoEsame
	TestoReferto    string
	Conclusioni     string
	FileUrlImmagine string
	UrlPdfGenerato  string
	NomeFile        string
	AutoreEmail     string
	DataCaricamento time.Time
}
