package pdf

import (
	"context"
	"errors"
	"testing"
	"time"

	"medsafe-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUserRepository) Save(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) SetEnabled(ctx context.Context, id int, enabled bool) (bool, error) {
	args := m.Called(ctx, id, enabled)
	return args.Bool(0), args.Error(1)
}

type mockObjectStorage struct {
	mock.Mock
}

func (m *mockObjectStorage) Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, objectName, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockObjectStorage) Download(ctx context.Context, objectName string) ([]byte, error) {
	args := m.Called(ctx, objectName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockObjectStorage) Delete(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

func (m *mockObjectStorage) ObjectPath(url string) string {
	args := m.Called(url)
	return args.String(0)
}

func newService(userRepo *mockUserRepository, objectStorage *mockObjectStorage) *pdfService {
	return &pdfService{
		UserRepository: userRepo,
		ObjectStorage:  objectStorage,
		Log:            zap.NewNop(),
	}
}

func sampleReferto() *models.Referto {
	return &models.Referto{
		ID:              7,
		NomePaziente:    "Mario Rossi",
		CodiceFiscale:   "RSSMRA80A01H501U",
		TipoEsame:       models.TipoEsameEsamiLaboratorio,
		TestoReferto:    "Valori ematici nella norma.",
		Conclusioni:     "Nessun rilievo patologico.",
		NomeFile:        "referto_rossi",
		AutoreEmail:     "medico@example.com",
		DataCaricamento: time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC),
	}
}

func TestBuildPageDescriptor(t *testing.T) {
	t.Run("Contains patient fields and author", func(t *testing.T) {
		descriptor, err := buildPageDescriptor(sampleReferto(), "Dott. Bianchi")

		assert.NoError(t, err)
		assert.Contains(t, string(descriptor), "Mario Rossi")
		assert.Contains(t, string(descriptor), "RSSMRA80A01H501U")
		assert.Contains(t, string(descriptor), "Dott. Bianchi")
	})

	t.Run("Lab exam type uses the display label", func(t *testing.T) {
		descriptor, err := buildPageDescriptor(sampleReferto(), "Dott. Bianchi")

		assert.NoError(t, err)
		assert.Contains(t, string(descriptor), "Esami di Laboratorio")
		assert.NotContains(t, string(descriptor), "Esami_Laboratorio")
	})

	t.Run("Formats the upload date", func(t *testing.T) {
		descriptor, err := buildPageDescriptor(sampleReferto(), "Dott. Bianchi")

		assert.NoError(t, err)
		assert.Contains(t, string(descriptor), "10/03/2024 09:30")
	})

	t.Run("Missing optional fields render blank", func(t *testing.T) {
		referto := sampleReferto()
		referto.TestoReferto = ""
		referto.Conclusioni = ""
		referto.DataCaricamento = time.Time{}

		descriptor, err := buildPageDescriptor(referto, "Dott. Bianchi")

		assert.NoError(t, err)
		assert.Contains(t, string(descriptor), "Mario Rossi")
	})
}

func TestResolveAuthorName(t *testing.T) {
	ctx := context.Background()

	t.Run("Registered author uses the stored full name", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByEmail", ctx, "medico@example.com").
			Return(&models.User{Email: "medico@example.com", FullName: "Dott. Bianchi"}, nil)

		name := newService(userRepo, new(mockObjectStorage)).resolveAuthorName(ctx, "medico@example.com")
		assert.Equal(t, "Dott. Bianchi", name)
	})

	t.Run("Unknown author falls back to the placeholder", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, nil)

		name := newService(userRepo, new(mockObjectStorage)).resolveAuthorName(ctx, "ghost@example.com")
		assert.Equal(t, placeholderAuthor, name)
	})

	t.Run("Lookup error falls back to the placeholder", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByEmail", ctx, "medico@example.com").Return(nil, errors.New("boom"))

		name := newService(userRepo, new(mockObjectStorage)).resolveAuthorName(ctx, "medico@example.com")
		assert.Equal(t, placeholderAuthor, name)
	})
}

func TestGeneratePdf(t *testing.T) {
	ctx := context.Background()

	t.Run("Produces a document without touching the model", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByEmail", ctx, "medico@example.com").
			Return(&models.User{Email: "medico@example.com", FullName: "Dott. Bianchi"}, nil)

		referto := sampleReferto()
		before := *referto

		document, err := newService(userRepo, new(mockObjectStorage)).GeneratePdf(ctx, referto)

		assert.NoError(t, err)
		assert.NotEmpty(t, document)
		assert.Equal(t, before, *referto)
	})

	t.Run("Image fetch failure still yields the base document", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByEmail", ctx, "medico@example.com").
			Return(&models.User{Email: "medico@example.com", FullName: "Dott. Bianchi"}, nil)

		objectStorage := new(mockObjectStorage)
		objectStorage.On("ObjectPath", "http://minio:9000/upload-dir/images/gone.png").Return("images/gone.png")
		objectStorage.On("Download", ctx, "images/gone.png").Return(nil, errors.New("object missing"))

		referto := sampleReferto()
		referto.FileUrlImmagine = "http://minio:9000/upload-dir/images/gone.png"

		document, err := newService(userRepo, objectStorage).GeneratePdf(ctx, referto)

		assert.NoError(t, err)
		assert.NotEmpty(t, document)
	})
}
