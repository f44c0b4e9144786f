package constvars

const (
	URLParamRefertoID = "refertoID"
	URLParamUserID    = "userID"

	QueryParamValue = "value"

	FormFieldNomePaziente  = "nomePaziente"
	FormFieldCodiceFiscale = "codiceFiscale"
	FormFieldTipoEsame     = "tipoEsame"
	FormFieldTestoReferto  = "testoReferto"
	FormFieldConclusioni   = "conclusioni"
	FormFieldNomeFile      = "nomeFile"
	FormFieldFile          = "file"
)
