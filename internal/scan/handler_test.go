package scan

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// FakeEngine returns canned recognition output so handler tests do not
// depend on a Tesseract install.
type FakeEngine struct {
	text string
	err  error
}

func (f *FakeEngine) Recognize(_ []byte) (string, error) {
	return f.text, f.err
}

type FakeStorage struct {
	uploads []string
}

func (f *FakeStorage) Upload(_ context.Context, key string, _ io.Reader, _ string) (string, error) {
	f.uploads = append(f.uploads, key)
	return "https://storage.test/" + key, nil
}

func setupScanRouter(engine *FakeEngine, repo Repository, storage Storage) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	service := NewService(engine, repo, storage)
	handler := NewHandler(service)

	// Auth middleware stub placing the user into the context
	r.Use(func(c *gin.Context) {
		c.Set("userID", "user-1")
	})

	r.POST("/scan-report", handler.ScanReport)
	r.GET("/scan-report/history", handler.History)

	return r
}

func multipartUpload(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	_ = w.Close()

	return body, w.FormDataContentType()
}

// tinyPNG builds a small valid raster so the preprocessing stage has
// real pixels to work with.
func tinyPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.White)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestScanReport_MissingFile(t *testing.T) {
	router := setupScanRouter(&FakeEngine{}, NewInMemoryRepository(), &FakeStorage{})

	req := httptest.NewRequest(http.MethodPost, "/scan-report", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestScanReport_RejectsUnknownExtension(t *testing.T) {
	router := setupScanRouter(&FakeEngine{}, NewInMemoryRepository(), &FakeStorage{})

	body, contentType := multipartUpload(t, "file", "report.exe", []byte("not a report"))
	req := httptest.NewRequest(http.MethodPost, "/scan-report", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestScanReport_InvalidImageBytes(t *testing.T) {
	router := setupScanRouter(&FakeEngine{}, NewInMemoryRepository(), &FakeStorage{})

	body, contentType := multipartUpload(t, "file", "report.png", []byte("garbage bytes"))
	req := httptest.NewRequest(http.MethodPost, "/scan-report", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "Invalid image file." {
		t.Fatalf("unexpected error message: %q", resp["error"])
	}
}

func TestScanReport_Success(t *testing.T) {
	engine := &FakeEngine{text: "Cholesterol: 230\nGender - Female"}
	repo := NewInMemoryRepository()
	storage := &FakeStorage{}
	router := setupScanRouter(engine, repo, storage)

	body, contentType := multipartUpload(t, "file", "report.png", tinyPNG(t))
	req := httptest.NewRequest(http.MethodPost, "/scan-report", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Status string              `json:"status"`
		Data   map[string]*float64 `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}

	if resp.Status != "success" {
		t.Fatalf("expected status success, got %q", resp.Status)
	}
	if resp.Data["chol"] == nil || *resp.Data["chol"] != 230 {
		t.Fatalf("expected chol = 230, got %v", resp.Data["chol"])
	}
	if resp.Data["sex"] == nil || *resp.Data["sex"] != 0 {
		t.Fatalf("expected sex = 0, got %v", resp.Data["sex"])
	}
	if v, ok := resp.Data["thal"]; !ok || v != nil {
		t.Fatalf("expected thal present and unknown, got %v", v)
	}

	// Upload was archived and shows up in history
	if len(storage.uploads) != 1 {
		t.Fatalf("expected 1 archived upload, got %d", len(storage.uploads))
	}

	histReq := httptest.NewRequest(http.MethodGet, "/scan-report/history", nil)
	histW := httptest.NewRecorder()
	router.ServeHTTP(histW, histReq)

	if histW.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", histW.Code)
	}

	var hist struct {
		Scans []ReportScan `json:"scans"`
	}
	if err := json.Unmarshal(histW.Body.Bytes(), &hist); err != nil {
		t.Fatal(err)
	}
	if len(hist.Scans) != 1 || hist.Scans[0].Filename != "report.png" {
		t.Fatalf("unexpected history: %+v", hist.Scans)
	}
}

func TestValidateFileExtension(t *testing.T) {
	if err := ValidateFileExtension("report.pdf"); err != nil {
		t.Errorf("pdf should be allowed: %v", err)
	}
	if err := ValidateFileExtension("scan.JPG"); err != nil {
		t.Errorf("jpg should be allowed: %v", err)
	}
	if err := ValidateFileExtension("report"); err == nil {
		t.Error("missing extension should be rejected")
	}
	if err := ValidateFileExtension("report.exe"); err == nil {
		t.Error("exe should be rejected")
	}
}
