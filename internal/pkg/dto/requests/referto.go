package requests

// UploadedFile carries a multipart file part after the boundary has read it.
type UploadedFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

type CreateReferto struct {
	NomePaziente  string `json:"nomePaziente" validate:"required"`
	CodiceFiscale string `json:"codiceFiscale" validate:"required,len=16,fiscal_code"`
	TipoEsame     string `json:"tipoEsame" validate:"required,oneof=TAC Radiografia Ecografia Risonanza Esami_Laboratorio"`
	TestoReferto  string `json:"testoReferto" validate:"max=4000"`
	Conclusioni   string `json:"conclusioni" validate:"max=4000"`
	NomeFile      string `json:"nomeFile" validate:"required,max=255"`
}

// UpdateReferto is the edit patch. Empty fields keep the stored value;
// identifier, author and upload timestamp are never patchable.
type UpdateReferto struct {
	NomePaziente  string `json:"nomePaziente" validate:"omitempty"`
	CodiceFiscale string `json:"codiceFiscale" validate:"omitempty,len=16,fiscal_code"`
	TipoEsame     string `json:"tipoEsame" validate:"omitempty,oneof=TAC Radiografia Ecografia Risonanza Esami_Laboratorio"`
	TestoReferto  string `json:"testoReferto" validate:"max=4000"`
	Conclusioni   string `json:"conclusioni" validate:"max=4000"`
	NomeFile      string `json:"nomeFile" validate:"omitempty,max=255"`
}
