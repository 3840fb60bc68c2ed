package gatepass_test

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	gatepassapp "github.com/zumech/backend/internal/application/gatepass"
	"github.com/zumech/backend/internal/domain/gatepass"
	"github.com/zumech/backend/internal/domain/shared"
)

type MockExtractionRepository struct {
	mock.Mock
}

func (m *MockExtractionRepository) Insert(ctx context.Context, e *gatepass.Extraction) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockExtractionRepository) FindByDocumentPrefix(ctx context.Context, prefix string, limit int) ([]gatepass.Extraction, error) {
	args := m.Called(ctx, prefix, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]gatepass.Extraction), args.Error(1)
}

type MockLanguageModel struct {
	mock.Mock
}

func (m *MockLanguageModel) Complete(ctx context.Context, req gatepassapp.CompletionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockLanguageModel) Provider() string {
	return "mock"
}

type MockOCREngine struct {
	mock.Mock
}

func (m *MockOCREngine) Recognize(ctx context.Context, image []byte, filename string) (string, error) {
	args := m.Called(ctx, image, filename)
	return args.String(0), args.Error(1)
}

type MockObjectStore struct {
	mock.Mock
	body []byte
}

func (m *MockObjectStore) PutObject(ctx context.Context, key string, body io.Reader, size int64, opts gatepassapp.PutOptions) error {
	m.body, _ = io.ReadAll(body)
	args := m.Called(ctx, key, size, opts)
	return args.Error(0)
}

func (m *MockObjectStore) ObjectURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}

func TestService_Extract(t *testing.T) {
	ctx := context.Background()
	b64 := base64.StdEncoding.EncodeToString(pngBytes)
	reply := "```json\n" + `{"documentNo": "GP-77", "date": "2025-03-02", "items": [{"indNo": "1", "materialNo": "M-9", "materialDescription": "Bolt", "quantityFromRemarks": "10 nos"}]}` + "\n```"

	t.Run("image required", func(t *testing.T) {
		model := new(MockLanguageModel)
		svc := gatepassapp.NewService(new(MockExtractionRepository), gatepassapp.WithLanguageModel(model))

		_, err := svc.Extract(ctx, gatepassapp.ExtractRequest{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
		assert.Equal(t, "base64Image is required", err.Error())
		model.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
	})

	t.Run("no model configured", func(t *testing.T) {
		svc := gatepassapp.NewService(new(MockExtractionRepository))
		_, err := svc.Extract(ctx, gatepassapp.ExtractRequest{Base64Image: b64})
		assert.True(t, errors.Is(err, shared.ErrUnavailable))
	})

	t.Run("extracts and stores", func(t *testing.T) {
		repo := new(MockExtractionRepository)
		model := new(MockLanguageModel)
		svc := gatepassapp.NewService(repo, gatepassapp.WithLanguageModel(model))

		model.On("Complete", ctx, mock.MatchedBy(func(req gatepassapp.CompletionRequest) bool {
			return req.MimeType == "image/png" &&
				req.System == gatepass.ExtractionPrompt &&
				string(req.Image) == string(pngBytes) &&
				req.Temperature == 0
		})).Return(reply, nil).Once()
		repo.On("Insert", ctx, mock.MatchedBy(func(e *gatepass.Extraction) bool {
			return *e.DocumentNo == "GP-77" && e.RawText == reply && len(e.Items) == 1
		})).Return(nil).Once()

		url := "https://files.example/gp.png"
		out, err := svc.Extract(ctx, gatepassapp.ExtractRequest{
			Base64Image: "data:image/png;base64," + b64,
			FileURL:     &url,
		})
		require.NoError(t, err)
		assert.Equal(t, "GP-77", *out.DocumentNo)
		assert.Equal(t, "2025-03-02", *out.Date)
		assert.Equal(t, &url, out.FileURL)
		require.Len(t, out.Items, 1)
		assert.Equal(t, "Bolt", *out.Items[0].MaterialDescription)
		repo.AssertExpectations(t)
		model.AssertExpectations(t)
	})

	t.Run("storage failure still returns result", func(t *testing.T) {
		repo := new(MockExtractionRepository)
		model := new(MockLanguageModel)
		svc := gatepassapp.NewService(repo, gatepassapp.WithLanguageModel(model))

		model.On("Complete", ctx, mock.Anything).Return(reply, nil).Once()
		repo.On("Insert", ctx, mock.Anything).Return(errors.New("db down")).Once()

		out, err := svc.Extract(ctx, gatepassapp.ExtractRequest{Base64Image: b64, MimeType: "image/jpeg"})
		require.NoError(t, err)
		assert.Equal(t, "GP-77", *out.DocumentNo)
		assert.Nil(t, out.FileURL)
	})

	t.Run("model error", func(t *testing.T) {
		model := new(MockLanguageModel)
		svc := gatepassapp.NewService(new(MockExtractionRepository), gatepassapp.WithLanguageModel(model))
		model.On("Complete", ctx, mock.Anything).Return("", errors.New("rate limited")).Once()

		_, err := svc.Extract(ctx, gatepassapp.ExtractRequest{Base64Image: b64})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate limited")
	})

	t.Run("invalid base64", func(t *testing.T) {
		model := new(MockLanguageModel)
		svc := gatepassapp.NewService(new(MockExtractionRepository), gatepassapp.WithLanguageModel(model))
		_, err := svc.Extract(ctx, gatepassapp.ExtractRequest{Base64Image: "!!not base64!!"})
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})
}

func TestService_NormalizeRaw(t *testing.T) {
	ctx := context.Background()

	t.Run("raw required", func(t *testing.T) {
		svc := gatepassapp.NewService(new(MockExtractionRepository), gatepassapp.WithLanguageModel(new(MockLanguageModel)))
		_, err := svc.NormalizeRaw(ctx, gatepassapp.NormalizeRequest{Raw: "  "})
		require.Error(t, err)
		assert.Equal(t, "raw (string) is required", err.Error())
	})

	t.Run("returns parsed object", func(t *testing.T) {
		model := new(MockLanguageModel)
		svc := gatepassapp.NewService(new(MockExtractionRepository), gatepassapp.WithLanguageModel(model))
		model.On("Complete", ctx, mock.MatchedBy(func(req gatepassapp.CompletionRequest) bool {
			return req.System == gatepass.NormalizationPrompt && req.Text == "GP 12 bolts"
		})).Return(`{"documentNo": "12", "items": [{"materialDescription": "bolts"}]}`, nil).Once()

		out, err := svc.NormalizeRaw(ctx, gatepassapp.NormalizeRequest{Raw: "GP 12 bolts"})
		require.NoError(t, err)
		assert.Equal(t, "12", out["documentNo"])
		assert.Len(t, out["items"], 1)
	})

	t.Run("reply without items", func(t *testing.T) {
		model := new(MockLanguageModel)
		svc := gatepassapp.NewService(new(MockExtractionRepository), gatepassapp.WithLanguageModel(model))
		model.On("Complete", ctx, mock.Anything).Return("sorry, I cannot read that", nil).Once()

		_, err := svc.NormalizeRaw(ctx, gatepassapp.NormalizeRequest{Raw: "xyz"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrExtractionFailed))

		var de *shared.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, "Normalization failed", de.Message)
		assert.Equal(t, map[string]string{"raw": "sorry, I cannot read that"}, de.Details)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockExtractionRepository)
	svc := gatepassapp.NewService(repo)

	no := "GP-1"
	repo.On("FindByDocumentPrefix", ctx, "GP", 10).
		Return([]gatepass.Extraction{{DocumentNo: &no}}, nil).Once()

	out, err := svc.List(ctx, gatepassapp.ListExtractionsRequest{GP: " GP "})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, &no, out[0].DocumentNo)
	assert.NotNil(t, out[0].Items)
	repo.AssertExpectations(t)
}

func TestService_Upload(t *testing.T) {
	ctx := context.Background()
	at := time.UnixMilli(1700000000123)

	t.Run("stores under sanitized key", func(t *testing.T) {
		store := new(MockObjectStore)
		svc := gatepassapp.NewService(new(MockExtractionRepository),
			gatepassapp.WithObjectStore(store),
			gatepassapp.WithClock(func() time.Time { return at }))

		key := "1700000000123-gate_pass__1_.jpg"
		store.On("PutObject", ctx, key, int64(5), gatepassapp.PutOptions{
			ContentType:  "application/octet-stream",
			CacheControl: "max-age=3600",
			NoOverwrite:  true,
		}).Return(nil).Once()
		store.On("ObjectURL", ctx, key).Return("https://cdn/"+key, nil).Once()

		out, err := svc.Upload(ctx, gatepassapp.UploadInput{
			Filename: "gate pass (1).jpg",
			Size:     5,
			Body:     strings.NewReader("hello"),
		})
		require.NoError(t, err)
		assert.Equal(t, key, out.Path)
		assert.Equal(t, "https://cdn/"+key, out.FileURL)
		assert.Equal(t, "hello", string(store.body))
		store.AssertExpectations(t)
	})

	t.Run("conflict surfaces", func(t *testing.T) {
		store := new(MockObjectStore)
		svc := gatepassapp.NewService(new(MockExtractionRepository),
			gatepassapp.WithObjectStore(store),
			gatepassapp.WithClock(func() time.Time { return at }))
		store.On("PutObject", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(shared.NewDomainError("ALREADY_EXISTS", "An object with this name already exists")).Once()

		_, err := svc.Upload(ctx, gatepassapp.UploadInput{Filename: "a.png", ContentType: "image/png", Body: strings.NewReader("x"), Size: 1})
		assert.True(t, errors.Is(err, shared.ErrAlreadyExists))
		store.AssertNotCalled(t, "ObjectURL", mock.Anything, mock.Anything)
	})

	t.Run("no storage", func(t *testing.T) {
		svc := gatepassapp.NewService(new(MockExtractionRepository))
		_, err := svc.Upload(ctx, gatepassapp.UploadInput{Filename: "a.png", Body: strings.NewReader("x")})
		assert.True(t, errors.Is(err, shared.ErrUnavailable))
	})
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "5-a_b_c.pdf", gatepassapp.ObjectKey(time.UnixMilli(5), "a b/c.pdf"))
}

func TestService_OCR(t *testing.T) {
	ctx := context.Background()
	ocr := new(MockOCREngine)
	svc := gatepassapp.NewService(new(MockExtractionRepository), gatepassapp.WithOCR(ocr))

	ocr.On("Recognize", ctx, pngBytes, "image.png").Return("GATE PASS 42", nil).Once()

	out, err := svc.OCR(ctx, gatepassapp.OCRRequest{Base64Image: "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)})
	require.NoError(t, err)
	assert.Equal(t, "GATE PASS 42", out.Text)

	_, err = svc.OCR(ctx, gatepassapp.OCRRequest{})
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	ocr.AssertExpectations(t)
}
