package pulse

import (
	"testing"
	"time"

	"company-pulse-be/internal/constant"
	"company-pulse-be/internal/entity"

	"github.com/google/uuid"
)

var baselineNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

type recordSpec struct {
	source    string
	channel   string
	sentiment string
	daysAgo   int
	noDate    bool
	themes    []string
}

func buildRecords(companyId uuid.UUID, specs []recordSpec) []*entity.ActivityRecord {
	records := make([]*entity.ActivityRecord, 0, len(specs))
	for _, s := range specs {
		r := &entity.ActivityRecord{
			Id:         uuid.New(),
			CompanyId:  companyId,
			SourceType: s.source,
			Channel:    s.channel,
			Sentiment:  s.sentiment,
		}
		if !s.noDate {
			published := baselineNow.AddDate(0, 0, -s.daysAgo)
			r.PublishedAt = &published
		}
		for _, label := range s.themes {
			r.Themes = append(r.Themes, entity.ThemeMention{Label: label})
		}
		records = append(records, r)
	}
	return records
}

func repeatSpec(spec recordSpec, n int) []recordSpec {
	specs := make([]recordSpec, n)
	for i := range specs {
		specs[i] = spec
	}
	return specs
}

func TestChannelShare(t *testing.T) {
	companyId := uuid.New()
	specs := append(
		repeatSpec(recordSpec{source: "reddit", channel: "Reddit", daysAgo: 5}, 10),
		repeatSpec(recordSpec{source: "blog", channel: "Blog", daysAgo: 10}, 30)...,
	)
	b := NewBaseline(buildRecords(companyId, specs), baselineNow)

	if got := b.ChannelShare(companyId, "Reddit", 30); got < 0.249 || got > 0.251 {
		t.Errorf("ChannelShare(Reddit) = %f, want 0.25", got)
	}
	if got := b.ChannelShare(companyId, "Blog", 30); got < 0.749 || got > 0.751 {
		t.Errorf("ChannelShare(Blog) = %f, want 0.75", got)
	}
	if got := b.ChannelShare(companyId, "Podcast", 30); got != 0 {
		t.Errorf("ChannelShare(unknown channel) = %f, want 0", got)
	}
	if got := b.ChannelShare(uuid.New(), "Reddit", 30); got != 0 {
		t.Errorf("ChannelShare(unknown company) = %f, want 0", got)
	}
}

func TestChannelShare_UnknownChannelDilutesShares(t *testing.T) {
	companyId := uuid.New()
	specs := append(
		repeatSpec(recordSpec{source: "blog", channel: "Blog", daysAgo: 3}, 3),
		// A record without a channel still counts toward the denominator, so
		// shares sum below 1 when channels are partially known.
		recordSpec{source: "news", daysAgo: 3},
	)
	b := NewBaseline(buildRecords(companyId, specs), baselineNow)

	if got := b.ChannelShare(companyId, "Blog", 30); got != 0.75 {
		t.Errorf("ChannelShare(Blog) = %f, want 0.75", got)
	}
}

func TestReviewsInLastDays(t *testing.T) {
	companyId := uuid.New()
	specs := []recordSpec{
		{source: "g2", daysAgo: 10},
		{source: "capterra", daysAgo: 80},
		{source: "g2", daysAgo: 120},    // outside the window
		{source: "g2", noDate: true},    // no date, never counted
		{source: "reddit", daysAgo: 10}, // content, not a review
	}
	b := NewBaseline(buildRecords(companyId, specs), baselineNow)

	if got := b.ReviewsInLastDays(companyId, constant.ReviewWindowDays); got != 2 {
		t.Errorf("ReviewsInLastDays = %d, want 2", got)
	}
	// Only the configured window is precomputed.
	if got := b.ReviewsInLastDays(companyId, 7); got != 0 {
		t.Errorf("ReviewsInLastDays(untracked window) = %d, want 0", got)
	}
	if got := b.ReviewsInLastDays(uuid.New(), constant.ReviewWindowDays); got != 0 {
		t.Errorf("ReviewsInLastDays(no reviews) = %d, want 0", got)
	}
}

func TestThemePosts(t *testing.T) {
	companyId := uuid.New()
	specs := []recordSpec{
		{source: "reddit", daysAgo: 2, themes: []string{"Pricing"}},
		{source: "blog", daysAgo: 10, themes: []string{"pricing", "onboarding"}},
		{source: "news", daysAgo: 40, themes: []string{"pricing"}},
		{source: "g2", daysAgo: 2, themes: []string{"pricing"}}, // review source, excluded
	}
	b := NewBaseline(buildRecords(companyId, specs), baselineNow)

	if got := b.ThemePosts(companyId, "pricing", constant.ThemeWindowShortDays); got != 2 {
		t.Errorf("ThemePosts(14d) = %d, want 2", got)
	}
	if got := b.ThemePosts(companyId, "pricing", constant.ThemeWindowLongDays); got != 3 {
		t.Errorf("ThemePosts(90d) = %d, want 3", got)
	}
	// Label matching is case-insensitive.
	if got := b.ThemePosts(companyId, "PRICING", constant.ThemeWindowShortDays); got != 2 {
		t.Errorf("ThemePosts(case) = %d, want 2", got)
	}
	if got := b.ThemePosts(companyId, "churn", constant.ThemeWindowLongDays); got != 0 {
		t.Errorf("ThemePosts(unknown theme) = %d, want 0", got)
	}
}

func TestNegativeThemeCount(t *testing.T) {
	companyId := uuid.New()
	specs := []recordSpec{
		{source: "reddit", sentiment: constant.SentimentNegative, daysAgo: 5, themes: []string{"support quality"}},
		{source: "g2", sentiment: constant.SentimentNegative, daysAgo: 20, themes: []string{"support quality"}},
		{source: "blog", sentiment: constant.SentimentPositive, daysAgo: 5, themes: []string{"support quality"}},
		{source: "news", sentiment: constant.SentimentNegative, daysAgo: 45, themes: []string{"support quality"}},
	}
	b := NewBaseline(buildRecords(companyId, specs), baselineNow)

	if got := b.NegativeThemeCount(companyId, "support quality", constant.NegativeThemeWindowDays); got != 2 {
		t.Errorf("NegativeThemeCount = %d, want 2", got)
	}
	if got := b.NegativeThemeCount(companyId, "pricing", constant.NegativeThemeWindowDays); got != 0 {
		t.Errorf("NegativeThemeCount(unknown theme) = %d, want 0", got)
	}
}

func TestNewBaseline_EmptyInput(t *testing.T) {
	b := NewBaseline(nil, baselineNow)

	companyId := uuid.New()
	if got := b.ReviewsInLastDays(companyId, constant.ReviewWindowDays); got != 0 {
		t.Errorf("ReviewsInLastDays = %d, want 0", got)
	}
	if got := b.ChannelShare(companyId, "Reddit", 30); got != 0 {
		t.Errorf("ChannelShare = %f, want 0", got)
	}
}
