package pulse

import (
	"time"

	"company-pulse-be/internal/constant"
	"company-pulse-be/internal/entity"

	"github.com/google/uuid"
)

// Context keys the rules layer thresholds on.
const (
	CtxThemePosts14d     = "theme_posts_14d"
	CtxThemePosts90d     = "theme_posts_90d"
	CtxReviews90d        = "reviews_90d"
	CtxChannelShare30d   = "channel_share_30d"
	CtxNegativeTheme30d  = "negative_theme_30d"
	CtxPrimaryTheme      = "primary_theme"
	CtxResolvedConceptId = "resolved_concept_id"
)

// Candidate is one activity record with its normalized themes and the
// baseline context entries computed for it.
type Candidate struct {
	Record  *entity.ActivityRecord
	Themes  []*entity.NormalizationResult
	Context map[string]interface{}
}

// Classification is the tier/bucket decision handed back by the rules layer.
type Classification struct {
	Bucket   string
	ChipSlug string
	Tier     int
}

// Classifier is the external rules collaborator. Returning false drops the
// candidate as not signal-worthy.
type Classifier interface {
	Classify(c *Candidate) (*Classification, bool)
}

type Assembler struct {
	classifier Classifier
}

func NewAssembler(classifier Classifier) *Assembler {
	return &Assembler{classifier: classifier}
}

// Assemble combines one candidate record, its normalized themes, and baseline
// lookups into a classified pulse point. The second return is false when the
// classifier declines the candidate.
func (a *Assembler) Assemble(record *entity.ActivityRecord, themes []*entity.NormalizationResult, baseline *Baseline, nowUTC time.Time) (*entity.PulsePoint, bool) {
	candidate := &Candidate{
		Record:  record,
		Themes:  themes,
		Context: a.buildContext(record, themes, baseline),
	}

	classification, ok := a.classifier.Classify(candidate)
	if !ok {
		return nil, false
	}

	seenAt := nowUTC
	if record.PublishedAt != nil {
		seenAt = *record.PublishedAt
	}

	return &entity.PulsePoint{
		Id:               uuid.New(),
		CompanyId:        record.CompanyId,
		CompanyName:      record.CompanyName,
		Bucket:           classification.Bucket,
		ChipSlug:         classification.ChipSlug,
		Tier:             classification.Tier,
		Title:            record.Title,
		Url:              record.Url,
		SeenAt:           seenAt,
		Context:          candidate.Context,
		RawContentId:     record.RawContentId,
		SummarizedInfoId: record.SummarizedInfoId,
		SourceKey:        record.SourceKey,
		CreatedAt:        nowUTC,
	}, true
}

// buildContext exposes the baseline counters the rules layer thresholds on,
// keyed by the candidate's primary (first resolved) theme.
func (a *Assembler) buildContext(record *entity.ActivityRecord, themes []*entity.NormalizationResult, baseline *Baseline) map[string]interface{} {
	ctx := map[string]interface{}{
		CtxReviews90d: baseline.ReviewsInLastDays(record.CompanyId, constant.ReviewWindowDays),
	}

	if record.Channel != "" {
		ctx[CtxChannelShare30d] = baseline.ChannelShare(record.CompanyId, record.Channel, constant.ChannelWindowDays)
	}

	primary := primaryTheme(themes)
	if primary == "" {
		return ctx
	}

	ctx[CtxPrimaryTheme] = primary
	ctx[CtxThemePosts14d] = baseline.ThemePosts(record.CompanyId, primary, constant.ThemeWindowShortDays)
	ctx[CtxThemePosts90d] = baseline.ThemePosts(record.CompanyId, primary, constant.ThemeWindowLongDays)
	ctx[CtxNegativeTheme30d] = baseline.NegativeThemeCount(record.CompanyId, primary, constant.NegativeThemeWindowDays)

	for _, theme := range themes {
		if theme.ResolvedConcept != nil {
			ctx[CtxResolvedConceptId] = theme.ResolvedConcept.Id
			break
		}
	}

	return ctx
}

// primaryTheme prefers the first canonical resolution; raw labels are the
// fallback so unresolved candidates still carry theme context.
func primaryTheme(themes []*entity.NormalizationResult) string {
	for _, t := range themes {
		if t.ResolvedConcept != nil {
			return t.ResolvedConcept.Name
		}
	}
	for _, t := range themes {
		if t.RawLabel != "" {
			return t.RawLabel
		}
	}
	return ""
}
