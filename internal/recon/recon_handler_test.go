package recon_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/satvik-g4s/Hour-Recon/internal/recon"
)

type fakeService struct {
	runFn func(ctx context.Context, in recon.RunInput) (*recon.RunResult, error)
}

func (f *fakeService) Run(ctx context.Context, in recon.RunInput) (*recon.RunResult, error) {
	return f.runFn(ctx, in)
}

func multipartBody(t *testing.T, hubs string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if hubs != "" {
		assert.NoError(t, w.WriteField("hubs", hubs))
	}
	for field, content := range files {
		fw, err := w.CreateFormFile(field, field+".csv")
		assert.NoError(t, err)
		_, err = fw.Write([]byte(content))
		assert.NoError(t, err)
	}
	assert.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func allUploads() map[string]string {
	return map[string]string{
		"pillar":       "a,b\n1,2\n",
		"invoice_dump": "a,b\n1,2\n",
		"owner":        "a,b\n1,2\n",
		"attendance":   "a,b\n1,2\n",
	}
}

func postRun(h *recon.Handler, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/recon/runs", body)
	c.Request.Header.Set("Content-Type", contentType)
	h.CreateRun(c)
	return w
}

func TestHandler_CreateRun(t *testing.T) {
	var gotInput recon.RunInput
	svc := &fakeService{
		runFn: func(ctx context.Context, in recon.RunInput) (*recon.RunResult, error) {
			gotInput = in
			return &recon.RunResult{ID: uuid.New()}, nil
		},
	}
	h := recon.NewHandler(svc, recon.NewMemoryStore(1))

	body, contentType := multipartBody(t, "South, Mars", allUploads())
	w := postRun(h, body, contentType)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, []string{"South", "Mars"}, gotInput.Hubs)
	assert.Equal(t, "pillar.csv", gotInput.Pillar.Name)
	assert.NotEmpty(t, gotInput.Attendance.Data)

	var envelope struct {
		Ok   bool `json:"ok"`
		Data struct {
			RunID       string `json:"run_id"`
			DownloadURL string `json:"download_url"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Ok)
	assert.Contains(t, envelope.Data.DownloadURL, envelope.Data.RunID)
}

func TestHandler_CreateRun_MissingUploadBlocks(t *testing.T) {
	called := false
	svc := &fakeService{
		runFn: func(ctx context.Context, in recon.RunInput) (*recon.RunResult, error) {
			called = true
			return nil, nil
		},
	}
	h := recon.NewHandler(svc, recon.NewMemoryStore(1))

	uploads := allUploads()
	delete(uploads, "attendance")
	body, contentType := multipartBody(t, "South", uploads)
	w := postRun(h, body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "attendance")
	assert.False(t, called, "missing upload must block processing entirely")
}

func TestHandler_CreateRun_MissingHubsBlocks(t *testing.T) {
	svc := &fakeService{
		runFn: func(ctx context.Context, in recon.RunInput) (*recon.RunResult, error) {
			t.Fatal("service must not run")
			return nil, nil
		},
	}
	h := recon.NewHandler(svc, recon.NewMemoryStore(1))

	body, contentType := multipartBody(t, "", allUploads())
	w := postRun(h, body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Hubs")
}

func TestHandler_Download(t *testing.T) {
	store := recon.NewMemoryStore(2)
	id := uuid.New()
	store.Put(id, recon.Artifact{
		Filename:  "Hours_Recon_Output.xlsx",
		Data:      []byte("workbook-bytes"),
		CreatedAt: time.Now(),
	})
	h := recon.NewHandler(&fakeService{}, store)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	c.Request = httptest.NewRequest(http.MethodGet, "/recon/runs/"+id.String()+"/download", nil)
	h.Download(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "workbook-bytes", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Hours_Recon_Output.xlsx")
}

func TestHandler_Download_UnknownRun(t *testing.T) {
	h := recon.NewHandler(&fakeService{}, recon.NewMemoryStore(1))

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
	c.Request = httptest.NewRequest(http.MethodGet, "/recon/runs/x/download", nil)
	h.Download(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
