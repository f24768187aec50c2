package service

import (
	"context"
	"testing"
	"time"

	"company-pulse-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIngestBulk(t *testing.T) {
	companyId := uuid.New()
	published := time.Now().UTC().AddDate(0, 0, -3)

	repo := &fakeActivityRepo{}
	svc := NewActivityService(repo, &captureLogger{})

	res, err := svc.IngestBulk(context.Background(), &dto.IngestActivityRequest{
		Records: []dto.ActivityRecordPayload{
			{
				CompanyId:   companyId,
				CompanyName: "Acme",
				SourceType:  "reddit",
				Channel:     "Reddit",
				Sentiment:   "negative",
				PublishedAt: &published,
				Themes: []dto.ThemeMentionPayload{
					{Label: "Support Quality", Embedding: []float32{0, 0, 1}},
				},
				Title: "Support is unreachable",
			},
			{
				CompanyId:  companyId,
				SourceType: "g2",
			},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 2, res.Ingested)

	require.Len(t, repo.bulks, 1)
	batch := repo.bulks[0]
	require.Len(t, batch, 2)

	first := batch[0]
	require.NotEqual(t, uuid.Nil, first.Id)
	require.Equal(t, companyId, first.CompanyId)
	require.Equal(t, "reddit", first.SourceType)
	require.Len(t, first.Themes, 1)
	require.Equal(t, "Support Quality", first.Themes[0].Label)
	require.Equal(t, published, *first.PublishedAt)
}

func TestActivityStats(t *testing.T) {
	companyId := uuid.New()

	repo := &fakeActivityRepo{}
	repo.records = append(repo.records, negativeThemeRecord(companyId, 5, nil))

	svc := NewActivityService(repo, &captureLogger{})

	stats, err := svc.Stats(context.Background(), companyId)
	require.NoError(t, err)
	require.Equal(t, companyId, stats.CompanyId)
	require.EqualValues(t, 1, stats.Total)
	require.EqualValues(t, 1, stats.Recent90d)
}
