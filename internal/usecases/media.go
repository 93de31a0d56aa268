package usecases

import (
	"context"
	"strings"

	"media-downloader/internal/domain/dto"
	"media-downloader/internal/domain/entities"
	"media-downloader/internal/domain/mapper"
	"media-downloader/internal/domain/repositories"
	"media-downloader/pkg/constants"
	"media-downloader/pkg/errors"
	"media-downloader/pkg/file"

	"go.uber.org/zap"
)

type MediaService interface {
	GetInfo(ctx context.Context, url string) (*dto.InfoResponse, error)
	Download(ctx context.Context, req dto.DownloadRequestDTO) (*dto.DownloadResponse, error)
}

type mediaService struct {
	extractor repositories.MediaExtractor
	store     repositories.FileStore
	logger    *zap.Logger
}

func NewMediaService(extractor repositories.MediaExtractor, store repositories.FileStore, logger *zap.Logger) MediaService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &mediaService{
		extractor: extractor,
		store:     store,
		logger:    logger,
	}
}

func (s *mediaService) GetInfo(ctx context.Context, url string) (*dto.InfoResponse, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.ErrMissingURL()
	}

	info, err := s.extractor.FetchMetadata(ctx, url)
	if err != nil {
		return nil, errors.ClassifyExtraction(err)
	}

	duration := info.DurationString
	if duration == "" {
		duration = constants.UnknownDuration
	}

	return &dto.InfoResponse{
		Title:           info.Title,
		Thumbnail:       info.Thumbnail,
		Duration:        duration,
		DurationSeconds: info.DurationSeconds,
		VideoID:         info.ID,
		OriginalURL:     url,
		Formats:         mapper.ReduceFormats(info.Formats, info.DurationSeconds),
	}, nil
}

func (s *mediaService) Download(ctx context.Context, req dto.DownloadRequestDTO) (*dto.DownloadResponse, error) {
	url := strings.TrimSpace(req.URL)
	if url == "" {
		return nil, errors.ErrMissingURL()
	}

	title := file.SanitizeTitle(req.Title)
	fileID := s.store.NewFileID()

	if req.Type == constants.TypeAudio {
		return s.downloadAudio(ctx, url, title, fileID)
	}
	return s.downloadVideo(ctx, url, req.FormatID, title, fileID)
}

func (s *mediaService) downloadAudio(ctx context.Context, url, title, fileID string) (*dto.DownloadResponse, error) {
	err := s.extractor.FetchFile(ctx, entities.FetchRequest{
		URL:            url,
		FormatSelector: constants.AudioSelector,
		OutputTemplate: s.store.OutputTemplate(fileID),
		ExtractAudio: &entities.AudioConversion{
			Codec:       constants.AudioExtension,
			QualityKbps: constants.AudioBitrateKbps,
		},
	})
	if err != nil {
		return nil, errors.ClassifyExtraction(err)
	}

	name := fileID + "." + constants.AudioExtension
	if !s.store.Exists(name) {
		return nil, errors.ErrConversionFailed(nil)
	}

	s.logger.Info("audio ready", zap.String("file", name))
	return &dto.DownloadResponse{
		Success:     true,
		DownloadURL: constants.ServeFilePrefix + name,
		Filename:    file.MakeDownloadName(title, name),
	}, nil
}

func (s *mediaService) downloadVideo(ctx context.Context, url, formatID, title, fileID string) (*dto.DownloadResponse, error) {
	selector := formatID
	if selector == "" {
		selector = constants.DefaultVideoSelector
	}

	err := s.extractor.FetchFile(ctx, entities.FetchRequest{
		URL:            url,
		FormatSelector: selector,
		OutputTemplate: s.store.OutputTemplate(fileID),
	})
	if err != nil {
		return nil, errors.ClassifyExtraction(err)
	}

	name, ok := s.store.FindByID(fileID)
	if !ok {
		return nil, errors.ErrDownloadFailed(nil)
	}

	s.logger.Info("video ready", zap.String("file", name), zap.String("format", selector))
	return &dto.DownloadResponse{
		Success:     true,
		DownloadURL: constants.ServeFilePrefix + name,
		Filename:    file.MakeDownloadName(title, name),
	}, nil
}
