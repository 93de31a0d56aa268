package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"media-downloader/internal/domain/dto"
	"media-downloader/internal/infrastructure/storage"
	"media-downloader/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type fakeMediaService struct {
	info     *dto.InfoResponse
	download *dto.DownloadResponse
	err      error

	gotURL string
	gotReq dto.DownloadRequestDTO
}

func (f *fakeMediaService) GetInfo(_ context.Context, url string) (*dto.InfoResponse, error) {
	f.gotURL = url
	if url == "" {
		return nil, errors.ErrMissingURL()
	}
	return f.info, f.err
}

func (f *fakeMediaService) Download(_ context.Context, req dto.DownloadRequestDTO) (*dto.DownloadResponse, error) {
	f.gotReq = req
	if req.URL == "" {
		return nil, errors.ErrMissingURL()
	}
	return f.download, f.err
}

func newApp(svc *fakeMediaService, store *storage.LocalStorage) *fiber.App {
	app := fiber.New()
	mh := NewMediaHandler(svc)
	app.Post("/get-info", mh.GetInfo)
	app.Post("/download", mh.Download)
	if store != nil {
		app.Get("/serve-file/:name", NewFileHandler(store).ServeFile)
	}
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	out := map[string]any{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode %s response: %v", path, err)
	}
	return resp.StatusCode, out
}

func TestGetInfoOK(t *testing.T) {
	svc := &fakeMediaService{info: &dto.InfoResponse{Title: "Clip", Duration: "3:32", VideoID: "v1"}}
	status, body := postJSON(t, newApp(svc, nil), "/get-info", `{"url":"https://example.com/v"}`)

	if status != 200 {
		t.Fatalf("status = %d", status)
	}
	if svc.gotURL != "https://example.com/v" || body["title"] != "Clip" || body["video_id"] != "v1" {
		t.Fatalf("body = %v", body)
	}
}

func TestGetInfoMissingURL(t *testing.T) {
	status, body := postJSON(t, newApp(&fakeMediaService{}, nil), "/get-info", `{}`)
	if status != 400 || body["error"] != "No URL provided" {
		t.Fatalf("status = %d body = %v", status, body)
	}
}

func TestGetInfoInvalidBody(t *testing.T) {
	status, body := postJSON(t, newApp(&fakeMediaService{}, nil), "/get-info", `{not json`)
	if status != 400 || body["error"] != "Invalid request body" {
		t.Fatalf("status = %d body = %v", status, body)
	}
}

func TestGetInfoBotCheck(t *testing.T) {
	svc := &fakeMediaService{err: errors.ClassifyExtraction(stderrors.New("ERROR: Sign in to confirm you're not a bot"))}
	status, body := postJSON(t, newApp(svc, nil), "/get-info", `{"url":"u"}`)
	if status != 500 {
		t.Fatalf("status = %d", status)
	}
	msg, _ := body["error"].(string)
	if strings.Contains(msg, "Sign in") || msg == "" {
		t.Fatalf("bot check text leaked: %q", msg)
	}
}

func TestDownloadOK(t *testing.T) {
	svc := &fakeMediaService{download: &dto.DownloadResponse{Success: true, DownloadURL: "/serve-file/abc12345.mp3", Filename: "Song.mp3"}}
	status, body := postJSON(t, newApp(svc, nil), "/download", `{"url":"u","type":"audio","title":"Song","format_id":"bestaudio"}`)
	if status != 200 {
		t.Fatalf("status = %d", status)
	}
	if svc.gotReq.Type != "audio" || svc.gotReq.FormatID != "bestaudio" || svc.gotReq.Title != "Song" {
		t.Fatalf("request = %+v", svc.gotReq)
	}
	if body["success"] != true || body["download_url"] != "/serve-file/abc12345.mp3" || body["filename"] != "Song.mp3" {
		t.Fatalf("body = %v", body)
	}
}

func TestDownloadFailures(t *testing.T) {
	status, body := postJSON(t, newApp(&fakeMediaService{}, nil), "/download", `{"type":"video"}`)
	if status != 400 || body["error"] != "No URL provided" {
		t.Fatalf("status = %d body = %v", status, body)
	}

	svc := &fakeMediaService{err: errors.ErrConversionFailed(nil)}
	status, body = postJSON(t, newApp(svc, nil), "/download", `{"url":"u","type":"audio"}`)
	if status != 500 || body["error"] != "MP3 conversion failed" {
		t.Fatalf("status = %d body = %v", status, body)
	}
}

func newStore(t *testing.T) *storage.LocalStorage {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir(), 0)
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func TestServeFile(t *testing.T) {
	store := newStore(t)
	if err := os.WriteFile(filepath.Join(store.Dir(), "abc12345.mp3"), []byte("ID3-audio"), 0o644); err != nil {
		t.Fatal(err)
	}
	app := newApp(&fakeMediaService{}, store)

	resp, err := app.Test(httptest.NewRequest("GET", "/serve-file/abc12345.mp3?name=My%20Song.mp3", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != "audio/mpeg" {
		t.Fatalf("Content-Type = %q", got)
	}
	if got := resp.Header.Get("Content-Disposition"); got != `attachment; filename="My Song.mp3"` {
		t.Fatalf("Content-Disposition = %q", got)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "ID3-audio" {
		t.Fatalf("body = %q", body)
	}
}

func TestServeFileDefaultName(t *testing.T) {
	store := newStore(t)
	if err := os.WriteFile(filepath.Join(store.Dir(), "abc12345.webm"), []byte("webm"), 0o644); err != nil {
		t.Fatal(err)
	}
	resp, err := newApp(&fakeMediaService{}, store).Test(httptest.NewRequest("GET", "/serve-file/abc12345.webm", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("Content-Disposition"); got != `attachment; filename="abc12345.webm"` {
		t.Fatalf("Content-Disposition = %q", got)
	}
	if got := resp.Header.Get("Content-Type"); got != "video/webm" {
		t.Fatalf("Content-Type = %q", got)
	}
}

func TestServeFileNotFound(t *testing.T) {
	store := newStore(t)
	app := newApp(&fakeMediaService{}, store)

	for _, path := range []string{"/serve-file/missing.mp4", "/serve-file/..%2Fsecret.txt"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatal(err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if resp.StatusCode != 404 || string(body) != "File not found" {
			t.Fatalf("%s: status = %d body = %q", path, resp.StatusCode, body)
		}
		if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
			t.Fatalf("%s: Content-Type = %q", path, ct)
		}
	}
}
