package constant

// Concept kinds for the canonical vocabulary caches.
const (
	ConceptKindTag   = "tag"
	ConceptKindTheme = "theme"
)

// Sentiment classification attached to activity records by upstream extraction.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Pulse point buckets.
const (
	BucketRisk     = "risk"
	BucketMomentum = "momentum"
	BucketFresh    = "fresh"
)

// Tiers: 1 is the most prominent.
const (
	TierHigh   = 1
	TierMedium = 2
	TierLow    = 3
)

// Baseline windows (days). Only these are precomputed; anything else reads as zero.
const (
	ReviewWindowDays        = 90
	ThemeWindowShortDays    = 14
	ThemeWindowLongDays     = 90
	ChannelWindowDays       = 30
	NegativeThemeWindowDays = 30
)

// CandidateWindowDays bounds how far back a record can be and still become a
// pulse point candidate in a generation run.
const CandidateWindowDays = 7

// reviewSources are the source types counted as "review" activity. Everything
// else is treated as content (posts, articles, mentions).
var reviewSources = map[string]bool{
	"g2":         true,
	"capterra":   true,
	"trustpilot": true,
	"app_store":  true,
	"play_store": true,
}

func IsReviewSource(sourceType string) bool {
	return reviewSources[sourceType]
}
