package ytdlp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"media-downloader/internal/domain/entities"

	"go.uber.org/zap"
)

const DefaultBinary = "yt-dlp"

// Config shapes every request sent to the media host.
type Config struct {
	Binary        string
	UserAgent     string
	Headers       map[string]string
	CookiesFile   string
	ExtractorArgs string
	Proxy         string
	SocketTimeout time.Duration
}

// Runner drives the yt-dlp command line tool.
type Runner struct {
	cfg    Config
	cmd    CommandRunner
	logger *zap.Logger
}

func NewRunner(cfg Config, cmd CommandRunner, logger *zap.Logger) *Runner {
	if cfg.Binary == "" {
		cfg.Binary = DefaultBinary
	}
	if cmd == nil {
		cmd = NewExecRunner()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{cfg: cfg, cmd: cmd, logger: logger}
}

func (r *Runner) FetchMetadata(ctx context.Context, url string) (*entities.MediaInfo, error) {
	args := append([]string{"-J", "--no-playlist", "--no-warnings"}, r.shapingArgs()...)
	args = append(args, "--", url)

	stdout, err := r.run(ctx, args)
	if err != nil {
		return nil, err
	}

	var raw rawInfo
	if err := json.Unmarshal(stdout, &raw); err != nil {
		return nil, &ExtractionError{Message: "failed to parse yt-dlp output", Err: err}
	}
	return raw.toEntity(), nil
}

func (r *Runner) FetchFile(ctx context.Context, req entities.FetchRequest) error {
	selector := req.FormatSelector
	if selector == "" {
		selector = "best"
	}

	args := []string{"--no-playlist", "--no-warnings", "-f", selector, "-o", req.OutputTemplate}
	if req.ExtractAudio != nil {
		args = append(args,
			"-x",
			"--audio-format", req.ExtractAudio.Codec,
			"--audio-quality", strconv.Itoa(req.ExtractAudio.QualityKbps)+"K",
		)
	}
	args = append(args, r.shapingArgs()...)
	args = append(args, "--", req.URL)

	_, err := r.run(ctx, args)
	return err
}

func (r *Runner) run(ctx context.Context, args []string) ([]byte, error) {
	start := time.Now()
	stdout, stderr, err := r.cmd.Run(ctx, r.cfg.Binary, args...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, &ExtractionError{Message: "yt-dlp interrupted: " + ctxErr.Error(), Err: ctxErr}
		}
		extErr := newExtractionError(stderr, err)
		r.logger.Warn("yt-dlp failed",
			zap.Duration("took", time.Since(start)),
			zap.String("error", extErr.Message),
		)
		return nil, extErr
	}
	r.logger.Debug("yt-dlp finished", zap.Duration("took", time.Since(start)))
	return stdout, nil
}

func (r *Runner) shapingArgs() []string {
	var args []string
	if r.cfg.UserAgent != "" {
		args = append(args, "--user-agent", r.cfg.UserAgent)
	}
	for _, key := range sortedKeys(r.cfg.Headers) {
		args = append(args, "--add-header", key+":"+r.cfg.Headers[key])
	}
	if r.cfg.CookiesFile != "" {
		args = append(args, "--cookies", r.cfg.CookiesFile)
	}
	if r.cfg.ExtractorArgs != "" {
		args = append(args, "--extractor-args", r.cfg.ExtractorArgs)
	}
	if r.cfg.Proxy != "" {
		args = append(args, "--proxy", r.cfg.Proxy)
	}
	if r.cfg.SocketTimeout > 0 {
		args = append(args, "--socket-timeout", strconv.Itoa(int(r.cfg.SocketTimeout/time.Second)))
	}
	return args
}

// ParseHeaders turns "Key:Value,Key2:Value2" into a header map.
func ParseHeaders(raw string) (map[string]string, error) {
	headers := make(map[string]string)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, ":")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid header %q", part)
		}
		headers[key] = strings.TrimSpace(value)
	}
	return headers, nil
}
