package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"company-pulse-be/internal/constant"
	"company-pulse-be/internal/dto"
	"company-pulse-be/internal/entity"
	"company-pulse-be/internal/pkg/logger"
	"company-pulse-be/internal/repository/contract"
	"company-pulse-be/internal/repository/specification"
	"company-pulse-be/pkg/events"
	pktNats "company-pulse-be/pkg/nats"
	"company-pulse-be/pkg/normalizer"
	"company-pulse-be/pkg/pulse"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IPulseService interface {
	// GeneratePulse runs one full generation pass for a company: load the
	// recent activity window, build baselines, normalize candidate themes,
	// classify, persist, notify.
	GeneratePulse(ctx context.Context, companyId uuid.UUID) (*dto.GeneratePulseResponse, error)
	// ListPulse pages through a company's points, newest first. limit <= 0
	// returns everything.
	ListPulse(ctx context.Context, companyId uuid.UUID, limit, offset int) ([]*dto.PulsePointResponse, error)
}

type pulseService struct {
	activityRepo contract.ActivityRepository
	pulseRepo    contract.PulsePointRepository
	norm         *normalizer.Normalizer
	assembler    *pulse.Assembler
	pubSub       *gochannel.GoChannel
	topicName    string
	natsPub      *pktNats.Publisher
	logger       logger.ILogger
}

func NewPulseService(
	activityRepo contract.ActivityRepository,
	pulseRepo contract.PulsePointRepository,
	norm *normalizer.Normalizer,
	assembler *pulse.Assembler,
	pubSub *gochannel.GoChannel,
	topicName string,
	natsPub *pktNats.Publisher,
	log logger.ILogger,
) IPulseService {
	return &pulseService{
		activityRepo: activityRepo,
		pulseRepo:    pulseRepo,
		norm:         norm,
		assembler:    assembler,
		pubSub:       pubSub,
		topicName:    topicName,
		natsPub:      natsPub,
		logger:       log,
	}
}

func (s *pulseService) GeneratePulse(ctx context.Context, companyId uuid.UUID) (*dto.GeneratePulseResponse, error) {
	now := time.Now().UTC()
	windowStart := now.AddDate(0, 0, -constant.ReviewWindowDays)

	records, err := s.activityRepo.FindAll(ctx,
		specification.ByCompany{CompanyId: companyId},
		specification.PublishedSince{Since: windowStart},
	)
	if err != nil {
		return nil, fmt.Errorf("load activity window: %w", err)
	}

	baseline := pulse.NewBaseline(records, now)
	candidateCutoff := now.AddDate(0, 0, -constant.CandidateWindowDays)

	var points []*entity.PulsePoint
	candidates := 0
	for _, record := range records {
		if record.PublishedAt == nil || record.PublishedAt.Before(candidateCutoff) {
			continue
		}
		candidates++

		themes, err := s.normalizeThemes(ctx, record)
		if err != nil {
			return nil, err
		}

		if point, ok := s.assembler.Assemble(record, themes, baseline, now); ok {
			points = append(points, point)
		}
	}

	// Regeneration replaces the company's previous points so repeated runs
	// never stack duplicates.
	if err := s.pulseRepo.DeleteByCompanyId(ctx, companyId); err != nil {
		return nil, fmt.Errorf("clear previous pulse points: %w", err)
	}
	if err := s.pulseRepo.CreateBulk(ctx, points); err != nil {
		return nil, fmt.Errorf("persist pulse points: %w", err)
	}

	s.logger.Info("pulse_service", "Pulse generation complete", map[string]interface{}{
		"company_id": companyId.String(),
		"records":    len(records),
		"candidates": candidates,
		"points":     len(points),
	})

	s.notify(ctx, points)

	res := &dto.GeneratePulseResponse{
		CompanyId:  companyId,
		Candidates: candidates,
		Points:     make([]*dto.PulsePointResponse, 0, len(points)),
	}
	for _, p := range points {
		res.Points = append(res.Points, toPulsePointResponse(p))
	}
	return res, nil
}

func (s *pulseService) ListPulse(ctx context.Context, companyId uuid.UUID, limit, offset int) ([]*dto.PulsePointResponse, error) {
	specs := []specification.Specification{
		specification.ByCompany{CompanyId: companyId},
		specification.OrderBy{Field: "seen_at", Desc: true},
	}
	if limit > 0 {
		specs = append(specs, specification.Pagination{Limit: limit, Offset: offset})
	}

	points, err := s.pulseRepo.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PulsePointResponse, 0, len(points))
	for _, p := range points {
		result = append(result, toPulsePointResponse(p))
	}
	return result, nil
}

// normalizeThemes resolves every embedded theme mention on a record. Labels
// without an embedding pass through as unresolved; labels below the threshold
// are handed to the minting consumer.
func (s *pulseService) normalizeThemes(ctx context.Context, record *entity.ActivityRecord) ([]*entity.NormalizationResult, error) {
	results := make([]*entity.NormalizationResult, 0, len(record.Themes))
	for _, mention := range record.Themes {
		if mention.Label == "" {
			continue
		}
		if len(mention.Embedding) == 0 {
			results = append(results, &entity.NormalizationResult{
				RawLabel:        mention.Label,
				ConfidenceScore: normalizer.NoMatchCeiling,
				IsNewCanonical:  true,
			})
			continue
		}

		result, err := s.norm.Normalize(ctx, mention.Label, mention.Embedding, constant.ConceptKindTheme)
		if err != nil {
			return nil, fmt.Errorf("normalize theme %q: %w", mention.Label, err)
		}
		results = append(results, result)

		if result.IsNewCanonical {
			s.publishCandidate(constant.ConceptKindTheme, mention)
		}
	}
	return results, nil
}

func (s *pulseService) publishCandidate(kind string, mention entity.ThemeMention) {
	if s.pubSub == nil {
		return
	}
	payload, err := json.Marshal(dto.PublishNewCanonicalMessage{
		Kind:      kind,
		Label:     mention.Label,
		Embedding: mention.Embedding,
	})
	if err != nil {
		s.logger.Warn("pulse_service", "Failed to serialize new-canonical candidate", map[string]interface{}{
			"label": mention.Label,
			"error": err.Error(),
		})
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(s.topicName, msg); err != nil {
		s.logger.Warn("pulse_service", "Failed to publish new-canonical candidate", map[string]interface{}{
			"label": mention.Label,
			"error": err.Error(),
		})
	}
}

func (s *pulseService) notify(ctx context.Context, points []*entity.PulsePoint) {
	if s.natsPub == nil {
		return
	}
	for _, p := range points {
		if err := s.natsPub.Publish(ctx, events.NewPulseCreatedEvent(p.Id, p.CompanyId, p.Bucket, p.Tier)); err != nil {
			s.logger.Warn("pulse_service", "Failed to publish pulse event", map[string]interface{}{
				"pulse_point_id": p.Id.String(),
				"error":          err.Error(),
			})
		}
	}
}

func toPulsePointResponse(p *entity.PulsePoint) *dto.PulsePointResponse {
	return &dto.PulsePointResponse{
		Id:          p.Id,
		CompanyId:   p.CompanyId,
		CompanyName: p.CompanyName,
		Bucket:      p.Bucket,
		ChipSlug:    p.ChipSlug,
		Tier:        p.Tier,
		Title:       p.Title,
		Url:         p.Url,
		SeenAt:      p.SeenAt,
		Context:     p.Context,
	}
}
