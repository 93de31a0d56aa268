package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"media-downloader/internal/domain/dto"
	consts "media-downloader/pkg/constants"
	"media-downloader/pkg/file"

	"github.com/gofiber/fiber/v2"
)

const downloadTimeout = 15 * time.Minute

type apiClient struct {
	base string
}

func (a *apiClient) post(path string, payload, out any, timeout time.Duration) error {
	agent := fiber.Post(a.base + path).JSON(payload).Timeout(timeout)

	var apiErr dto.ErrorResponse
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("istek gönderilemedi: %v", errs[0])
	}
	if code != fiber.StatusOK {
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("sunucu hatası (%d): %s", code, apiErr.Error)
		}
		return fmt.Errorf("sunucu hatası (%d): %s", code, strings.TrimSpace(string(body)))
	}
	return json.Unmarshal(body, out)
}

func (a *apiClient) info(mediaURL string) (*dto.InfoResponse, error) {
	var resp dto.InfoResponse
	if err := a.post("/get-info", dto.InfoRequestDTO{URL: mediaURL}, &resp, 2*time.Minute); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *apiClient) download(req dto.DownloadRequestDTO) (*dto.DownloadResponse, error) {
	var resp dto.DownloadResponse
	if err := a.post("/download", req, &resp, downloadTimeout); err != nil {
		return nil, err
	}
	return &resp, nil
}

// fetch streams the served file to dst.
func (a *apiClient) fetch(ctx context.Context, downloadURL, name, dst string) (int64, error) {
	target := a.base + downloadURL + "?name=" + url.QueryEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("dosya alınamadı: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("sunucu hatası (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("dosya oluşturulamadı: %w", err)
	}
	n, err := io.Copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(dst)
		return 0, fmt.Errorf("dosya yazılamadı: %w", err)
	}
	return n, nil
}

func main() {
	server := flag.String("server", "http://localhost:5000", "Server base URL")
	mediaURL := flag.String("url", "", "Media page URL")
	mediaType := flag.String("type", consts.TypeVideo, "video or audio")
	formatID := flag.String("format", "", "Format id to download (see listed offers)")
	outDir := flag.String("out", ".", "Output directory")
	flag.Parse()

	if strings.TrimSpace(*mediaURL) == "" {
		log.Fatal("-url gerekli")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := &apiClient{base: strings.TrimRight(*server, "/")}

	info, err := client.info(*mediaURL)
	if err != nil {
		log.Fatalf("Bilgi alınamadı: %v", err)
	}

	fmt.Printf("Başlık: %s\n", info.Title)
	fmt.Printf("Süre: %s\n", info.Duration)
	for _, offer := range info.Formats {
		fmt.Printf("  %-10s %-6s %-6s %-12s format_id=%s\n", offer.Label, offer.Kind, offer.Extension, offer.SizeDisplay, offer.FormatID)
	}

	if *formatID == "" && *mediaType != consts.TypeAudio {
		return
	}

	fmt.Println("İndiriliyor... (Ctrl+C ile iptal)")
	result, err := client.download(dto.DownloadRequestDTO{
		URL:      *mediaURL,
		FormatID: *formatID,
		Type:     *mediaType,
		Title:    info.Title,
	})
	if err != nil {
		log.Fatalf("İndirme başarısız: %v", err)
	}

	// Sunucudan gelen adı yerel yol olarak kullanmadan önce temizle
	ext := filepath.Ext(result.Filename)
	dst := filepath.Join(*outDir, file.SanitizeTitle(strings.TrimSuffix(result.Filename, ext))+ext)
	n, err := client.fetch(ctx, result.DownloadURL, result.Filename, dst)
	if err != nil {
		log.Fatalf("Kaydetme başarısız: %v", err)
	}
	fmt.Printf("Kaydedildi: %s (%d bytes)\n", dst, n)
}
