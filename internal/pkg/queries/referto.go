package queries

const (
	refertoColumns = `id, nome_paziente, codice_fiscale, tipo_esame, testo_referto, conclusioni,
		file_url_immagine, url_pdf_generato, nome_file, autore_email, data_caricamento`

	RefertoFindByID = `SELECT ` + refertoColumns + ` FROM referti WHERE id = $1`

	RefertoInsert = `INSERT INTO referti (nome_paziente, codice_fiscale, tipo_esame, testo_referto, conclusioni,
		file_url_immagine, url_pdf_generato, nome_file, autore_email, data_caricamento)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	RefertoUpdate = `UPDATE referti SET nome_paziente = $2, codice_fiscale = $3, tipo_esame = $4,
		testo_referto = $5, conclusioni = $6, file_url_immagine = $7, url_pdf_generato = $8, nome_file = $9
		WHERE id = $1`

	RefertoDeleteByID = `DELETE FROM referti WHERE id = $1`

	RefertoFindByCodiceFiscale = `SELECT ` + refertoColumns + ` FROM referti WHERE codice_fiscale = $1 ORDER BY data_caricamento DESC`

	RefertoFindByNomeFile = `SELECT ` + refertoColumns + ` FROM referti WHERE nome_file = $1`

	RefertoFindByTipoEsame = `SELECT ` + refertoColumns + ` FROM referti WHERE tipo_esame = $1 ORDER BY data_caricamento DESC`

	RefertoFindByAutoreEmail = `SELECT ` + refertoColumns + ` FROM referti WHERE lower(autore_email) = lower($1) ORDER BY data_caricamento DESC`

	RefertoFindAll = `SELECT ` + refertoColumns + ` FROM referti ORDER BY data_caricamento DESC`
)
