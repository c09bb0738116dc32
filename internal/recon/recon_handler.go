package recon

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/satvik-g4s/Hour-Recon/internal/shared/apperror"
	"github.com/satvik-g4s/Hour-Recon/internal/shared/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// uploadFields maps the four required form fields to their user-facing names.
var uploadFields = []string{"pillar", "invoice_dump", "owner", "attendance"}

type Handler struct {
	service Service
	store   ArtifactStore
}

func NewHandler(service Service, store ArtifactStore) *Handler {
	return &Handler{service: service, store: store}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// CreateRun accepts the four uploads plus the hub list, runs the pipeline
// synchronously, and returns previews with a download link. Any missing
// upload blocks the run before processing starts.
func (h *Handler) CreateRun(c *gin.Context) {
	var req RunRequest
	if err := c.ShouldBind(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	hubs := SplitHubList(req.Hubs)
	if len(hubs) == 0 {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation,
			"hubs must name at least one hub", nil)
		return
	}

	files := make(map[string]UploadFile, len(uploadFields))
	for _, field := range uploadFields {
		file, err := readUpload(c, field)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		files[field] = file
	}

	result, err := h.service.Run(c.Request.Context(), RunInput{
		Pillar:      files["pillar"],
		InvoiceDump: files["invoice_dump"],
		Owner:       files["owner"],
		Attendance:  files["attendance"],
		Hubs:        hubs,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, RunResponse{
		RunID:       result.ID.String(),
		DownloadURL: fmt.Sprintf("/api/v1/recon/runs/%s/download", result.ID),
		Stats:       result.Stats,
		Sheets:      previews(result.Sheets),
	})
}

// Download streams the stored workbook for a completed run.
func (h *Handler) Download(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput,
			"run id is not a valid UUID", nil)
		return
	}

	artifact, ok := h.store.Get(id)
	if !ok {
		response.Error(c, http.StatusNotFound, apperror.CodeNotFound,
			"no artifact for this run; runs are kept in memory only", nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, xlsxContentType, artifact.Data)
}

func readUpload(c *gin.Context, field string) (UploadFile, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return UploadFile{}, apperror.New(
			apperror.CodeValidation,
			fmt.Sprintf("%s upload is required", field),
			http.StatusBadRequest,
		)
	}
	data, err := readAll(fileHeader)
	if err != nil {
		return UploadFile{}, apperror.FileUnreadable(field, err)
	}
	return UploadFile{Field: field, Name: fileHeader.Filename, Data: data}, nil
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
