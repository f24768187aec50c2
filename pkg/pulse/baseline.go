// Package pulse turns a window of company activity into baseline statistics
// and assembles classified pulse points from fresh candidates.
package pulse

import (
	"strings"
	"time"

	"company-pulse-be/internal/constant"
	"company-pulse-be/internal/entity"

	"github.com/google/uuid"
)

type companyWindowKey struct {
	CompanyId uuid.UUID
	Days      int
}

type themeWindowKey struct {
	CompanyId uuid.UUID
	Theme     string
	Days      int
}

type channelWindowKey struct {
	CompanyId uuid.UUID
	Channel   string
	Days      int
}

// Baseline holds per-company comparison counters precomputed from one window
// of historical activity. It is read-only after construction. Absent keys read
// as zero: "no data" and "zero occurrences" are the same observable state.
type Baseline struct {
	reviews       map[companyWindowKey]int
	themePosts    map[themeWindowKey]int
	channelShares map[channelWindowKey]float64
	negativeTheme map[themeWindowKey]int
}

var themeWindows = []int{constant.ThemeWindowShortDays, constant.ThemeWindowLongDays}

// NewBaseline builds every counter in a handful of passes over the records.
// Construction cost is O(records × windows); baselines are built once per
// generation run, not per read.
func NewBaseline(records []*entity.ActivityRecord, nowUTC time.Time) *Baseline {
	b := &Baseline{
		reviews:       make(map[companyWindowKey]int),
		themePosts:    make(map[themeWindowKey]int),
		channelShares: make(map[channelWindowKey]float64),
		negativeTheme: make(map[themeWindowKey]int),
	}

	// Raw per-channel counts and per-company totals; normalized below.
	channelCounts := make(map[channelWindowKey]int)
	channelTotals := make(map[companyWindowKey]int)

	for _, record := range records {
		if record.PublishedAt == nil {
			continue
		}
		age := nowUTC.Sub(record.PublishedAt.UTC())
		if age < 0 {
			age = 0
		}

		isReview := constant.IsReviewSource(record.SourceType)

		if isReview && withinDays(age, constant.ReviewWindowDays) {
			b.reviews[companyWindowKey{record.CompanyId, constant.ReviewWindowDays}]++
		}

		if !isReview {
			for _, days := range themeWindows {
				if !withinDays(age, days) {
					continue
				}
				for _, label := range record.ThemeLabels() {
					b.themePosts[themeWindowKey{record.CompanyId, normalizeLabel(label), days}]++
				}
			}

			if withinDays(age, constant.ChannelWindowDays) {
				total := companyWindowKey{record.CompanyId, constant.ChannelWindowDays}
				channelTotals[total]++
				if record.Channel != "" {
					channelCounts[channelWindowKey{record.CompanyId, record.Channel, constant.ChannelWindowDays}]++
				}
			}
		}

		if record.Sentiment == constant.SentimentNegative && withinDays(age, constant.NegativeThemeWindowDays) {
			for _, label := range record.ThemeLabels() {
				b.negativeTheme[themeWindowKey{record.CompanyId, normalizeLabel(label), constant.NegativeThemeWindowDays}]++
			}
		}
	}

	// Second pass: normalize channel counts into shares.
	for key, count := range channelCounts {
		total := channelTotals[companyWindowKey{key.CompanyId, key.Days}]
		if total > 0 {
			b.channelShares[key] = float64(count) / float64(total)
		}
	}

	return b
}

// ReviewsInLastDays counts review-source records with a known date. Only the
// configured review window is tracked; other windows read as zero.
func (b *Baseline) ReviewsInLastDays(companyId uuid.UUID, days int) int {
	return b.reviews[companyWindowKey{companyId, days}]
}

// ThemePosts counts content-source occurrences of a theme label within the
// tracked theme windows.
func (b *Baseline) ThemePosts(companyId uuid.UUID, themeLabel string, days int) int {
	return b.themePosts[themeWindowKey{companyId, normalizeLabel(themeLabel), days}]
}

// ChannelShare is the fraction of a company's content records on one channel
// within the tracked channel window. Companies with no qualifying records
// read as 0.0 for every channel.
func (b *Baseline) ChannelShare(companyId uuid.UUID, channel string, days int) float64 {
	return b.channelShares[channelWindowKey{companyId, channel, days}]
}

// NegativeThemeCount counts negative-sentiment records tagged with the theme
// within the tracked negative window.
func (b *Baseline) NegativeThemeCount(companyId uuid.UUID, themeLabel string, days int) int {
	return b.negativeTheme[themeWindowKey{companyId, normalizeLabel(themeLabel), days}]
}

func withinDays(age time.Duration, days int) bool {
	return age <= time.Duration(days)*24*time.Hour
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
