package pdf

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"medsafe-service/internal/app/contracts"
	"medsafe-service/internal/app/models"
	"medsafe-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"
)

// placeholderAuthor is rendered when the author cannot be resolved from the
// user directory; the lookup failure is never fatal.
const placeholderAuthor = "Medico non registrato"

type pdfService struct {
	UserRepository contracts.UserRepository
	ObjectStorage  contracts.ObjectStorage
	Log            *zap.Logger
}

var (
	pdfServiceInstance contracts.PdfService
	oncePdfService     sync.Once
)

func NewPdfService(userRepository contracts.UserRepository, objectStorage contracts.ObjectStorage, logger *zap.Logger) contracts.PdfService {
	oncePdfService.Do(func() {
		pdfServiceInstance = &pdfService{
			UserRepository: userRepository,
			ObjectStorage:  objectStorage,
			Log:            logger,
		}
	})
	return pdfServiceInstance
}

func (s *pdfService) GeneratePdf(ctx context.Context, referto *models.Referto) ([]byte, error) {
	descriptor, err := buildPageDescriptor(referto, s.resolveAuthorName(ctx, referto.AutoreEmail))
	if err != nil {
		return nil, exceptions.ErrPdfGenerate(err)
	}

	var out bytes.Buffer
	if err := api.Create(nil, bytes.NewReader(descriptor), &out, model.NewDefaultConfiguration()); err != nil {
		return nil, exceptions.ErrPdfGenerate(err)
	}
	document := out.Bytes()

	if referto.FileUrlImmagine != "" {
		merged, err := s.appendExamArtifact(ctx, document, referto.FileUrlImmagine)
		if err != nil {
			s.Log.Warn("could not embed exam image into referto PDF",
				zap.String("image_url", referto.FileUrlImmagine),
				zap.Error(err),
			)
		} else {
			document = merged
		}
	}

	return document, nil
}

// appendExamArtifact fetches the uploaded diagnostic artifact and appends it
// to the generated document: raster images become a new image page, PDF
// uploads are merged page-for-page.
func (s *pdfService) appendExamArtifact(ctx context.Context, document []byte, imageURL string) ([]byte, error) {
	objectPath := s.ObjectStorage.ObjectPath(imageURL)
	data, err := s.ObjectStorage.Download(ctx, objectPath)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, exceptions.ErrMinioObjectEmpty(objectPath)
	}

	var out bytes.Buffer
	if strings.EqualFold(filepath.Ext(objectPath), ".pdf") {
		readers := []io.ReadSeeker{bytes.NewReader(document), bytes.NewReader(data)}
		if err := api.MergeRaw(readers, &out, false, model.NewDefaultConfiguration()); err != nil {
			return nil, err
		}
		return out.Bytes(), nil
	}

	if err := api.ImportImages(bytes.NewReader(document), &out, []io.Reader{bytes.NewReader(data)}, nil, model.NewDefaultConfiguration()); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func (s *pdfService) resolveAuthorName(ctx context.Context, autoreEmail string) string {
	user, err := s.UserRepository.FindByEmail(ctx, autoreEmail)
	if err != nil || user == nil {
		s.Log.Warn("author lookup failed while rendering referto, using placeholder",
			zap.String("autore_email", autoreEmail),
		)
		return placeholderAuthor
	}
	return user.FullName
}

// Page descriptor types for the pdfcpu create API.
type pageDescriptor struct {
	Paper string          `json:"paper"`
	Pages map[string]page `json:"pages"`
}

type page struct {
	Content pageContent `json:"content"`
}

type pageContent struct {
	Text []textEntry `json:"text"`
}

type textEntry struct {
	Value     string   `json:"value"`
	Anchor    string   `json:"anchor,omitempty"`
	Dx        float64  `json:"dx,omitempty"`
	Dy        float64  `json:"dy,omitempty"`
	Font      textFont `json:"font"`
	FillColor string   `json:"fillColor,omitempty"`
	Width     float64  `json:"width,omitempty"`
}

type textFont struct {
	Name string  `json:"name"`
	Size float64 `json:"size"`
}

func buildPageDescriptor(referto *models.Referto, authorName string) ([]byte, error) {
	labelFont := textFont{Name: "Helvetica-Bold", Size: 12}
	valueFont := textFont{Name: "Helvetica", Size: 11}

	entries := []textEntry{
		{Value: "MedSafe", Anchor: "tc", Dy: -30, Font: textFont{Name: "Helvetica-Bold", Size: 28}, FillColor: "#008080"},
		{Value: "Referto Medico", Anchor: "tc", Dy: -70, Font: textFont{Name: "Helvetica-Bold", Size: 16}},
	}

	y := -130.0
	addField := func(label, value string) {
		entries = append(entries,
			textEntry{Value: label, Anchor: "tl", Dx: 50, Dy: y, Font: labelFont},
			textEntry{Value: value, Anchor: "tl", Dx: 190, Dy: y, Font: valueFont, Width: 350},
		)
		y -= 24
	}

	addField("Paziente:", referto.NomePaziente)
	addField("Codice Fiscale:", referto.CodiceFiscale)
	addField("Tipo Esame:", referto.TipoEsame.Descrizione())

	y -= 16
	entries = append(entries, textEntry{Value: "Referto", Anchor: "tl", Dx: 50, Dy: y, Font: textFont{Name: "Helvetica-Bold", Size: 14}})
	y -= 22
	entries = append(entries, textEntry{Value: referto.TestoReferto, Anchor: "tl", Dx: 50, Dy: y, Font: valueFont, Width: 495})

	y -= 180
	entries = append(entries, textEntry{Value: "Conclusioni", Anchor: "tl", Dx: 50, Dy: y, Font: textFont{Name: "Helvetica-Bold", Size: 14}})
	y -= 22
	entries = append(entries, textEntry{Value: referto.Conclusioni, Anchor: "tl", Dx: 50, Dy: y, Font: valueFont, Width: 495})

	var dataRefertazione string
	if !referto.DataCaricamento.IsZero() {
		dataRefertazione = referto.DataCaricamento.Format("02/01/2006 15:04")
	}
	entries = append(entries,
		textEntry{Value: "Data refertazione: " + dataRefertazione, Anchor: "bl", Dx: 50, Dy: 60, Font: textFont{Name: "Helvetica", Size: 10}},
		textEntry{Value: "Il Medico referente", Anchor: "br", Dx: -50, Dy: 80, Font: valueFont},
		textEntry{Value: authorName, Anchor: "br", Dx: -50, Dy: 60, Font: textFont{Name: "Helvetica-Oblique", Size: 14}, FillColor: "#00008B"},
	)

	descriptor := pageDescriptor{
		Paper: "A4",
		Pages: map[string]page{
			"1": {Content: pageContent{Text: entries}},
		},
	}
	return json.Marshal(descriptor)
}
