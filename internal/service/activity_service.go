package service

import (
	"context"
	"fmt"
	"time"

	"company-pulse-be/internal/constant"
	"company-pulse-be/internal/dto"
	"company-pulse-be/internal/entity"
	"company-pulse-be/internal/pkg/logger"
	"company-pulse-be/internal/repository/contract"
	"company-pulse-be/internal/repository/specification"

	"github.com/google/uuid"
)

type IActivityService interface {
	// IngestBulk lands a batch of upstream activity records.
	IngestBulk(ctx context.Context, req *dto.IngestActivityRequest) (*dto.IngestActivityResponse, error)
	Stats(ctx context.Context, companyId uuid.UUID) (*dto.ActivityStatsResponse, error)
}

type activityService struct {
	activityRepo contract.ActivityRepository
	logger       logger.ILogger
}

func NewActivityService(activityRepo contract.ActivityRepository, log logger.ILogger) IActivityService {
	return &activityService{
		activityRepo: activityRepo,
		logger:       log,
	}
}

func (s *activityService) IngestBulk(ctx context.Context, req *dto.IngestActivityRequest) (*dto.IngestActivityResponse, error) {
	records := make([]*entity.ActivityRecord, 0, len(req.Records))
	for _, payload := range req.Records {
		records = append(records, toActivityRecord(payload))
	}

	if err := s.activityRepo.CreateBulk(ctx, records); err != nil {
		return nil, fmt.Errorf("persist activity records: %w", err)
	}

	s.logger.Info("activity_service", "Activity batch ingested", map[string]interface{}{
		"records": len(records),
	})

	return &dto.IngestActivityResponse{Ingested: len(records)}, nil
}

func (s *activityService) Stats(ctx context.Context, companyId uuid.UUID) (*dto.ActivityStatsResponse, error) {
	total, err := s.activityRepo.Count(ctx, specification.ByCompany{CompanyId: companyId})
	if err != nil {
		return nil, err
	}

	windowStart := time.Now().UTC().AddDate(0, 0, -constant.ReviewWindowDays)
	recent, err := s.activityRepo.Count(ctx,
		specification.ByCompany{CompanyId: companyId},
		specification.PublishedSince{Since: windowStart},
	)
	if err != nil {
		return nil, err
	}

	return &dto.ActivityStatsResponse{
		CompanyId: companyId,
		Total:     total,
		Recent90d: recent,
	}, nil
}

func toActivityRecord(p dto.ActivityRecordPayload) *entity.ActivityRecord {
	themes := make([]entity.ThemeMention, 0, len(p.Themes))
	for _, t := range p.Themes {
		themes = append(themes, entity.ThemeMention{
			Label:     t.Label,
			Embedding: t.Embedding,
		})
	}

	return &entity.ActivityRecord{
		Id:               uuid.New(),
		CompanyId:        p.CompanyId,
		CompanyName:      p.CompanyName,
		SourceType:       p.SourceType,
		Channel:          p.Channel,
		Sentiment:        p.Sentiment,
		PublishedAt:      p.PublishedAt,
		Themes:           themes,
		Title:            p.Title,
		Url:              p.Url,
		SourceKey:        p.SourceKey,
		RawContentId:     p.RawContentId,
		SummarizedInfoId: p.SummarizedInfoId,
	}
}
