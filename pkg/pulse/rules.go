package pulse

import (
	"strings"

	"company-pulse-be/internal/constant"
)

// DefaultClassifier is the built-in threshold table. Deployments with a rules
// engine swap their own Classifier in at the container.
type DefaultClassifier struct{}

func NewDefaultClassifier() *DefaultClassifier {
	return &DefaultClassifier{}
}

func (d *DefaultClassifier) Classify(c *Candidate) (*Classification, bool) {
	negative, _ := c.Context[CtxNegativeTheme30d].(int)
	posts14, _ := c.Context[CtxThemePosts14d].(int)
	posts90, _ := c.Context[CtxThemePosts90d].(int)
	reviews90, _ := c.Context[CtxReviews90d].(int)
	share, _ := c.Context[CtxChannelShare30d].(float64)
	primary, _ := c.Context[CtxPrimaryTheme].(string)

	// Negative theme cluster: the strongest signal.
	if negative >= 3 {
		tier := constant.TierMedium
		if negative >= 5 {
			tier = constant.TierHigh
		}
		return &Classification{
			Bucket:   constant.BucketRisk,
			ChipSlug: chipSlug(primary),
			Tier:     tier,
		}, true
	}

	// Theme momentum: short-window rate clearly above the long-run rate.
	// posts14 scaled to the long window exceeding posts90 means acceleration.
	if posts14 >= 3 && posts14*constant.ThemeWindowLongDays > posts90*constant.ThemeWindowShortDays {
		tier := constant.TierMedium
		if share >= 0.5 {
			// Concentrated on one channel: more likely a real conversation.
			tier = constant.TierHigh
		}
		return &Classification{
			Bucket:   constant.BucketMomentum,
			ChipSlug: chipSlug(primary),
			Tier:     tier,
		}, true
	}

	// First review activity for a company with an empty review baseline.
	if reviews90 <= 1 && constant.IsReviewSource(c.Record.SourceType) {
		return &Classification{
			Bucket:   constant.BucketFresh,
			ChipSlug: "first-review",
			Tier:     constant.TierLow,
		}, true
	}

	return nil, false
}

func chipSlug(label string) string {
	slug := strings.ToLower(strings.TrimSpace(label))
	slug = strings.ReplaceAll(slug, " ", "-")
	if slug == "" {
		slug = "general"
	}
	return slug
}
