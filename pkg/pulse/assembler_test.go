package pulse

import (
	"testing"

	"company-pulse-be/internal/constant"
	"company-pulse-be/internal/entity"

	"github.com/google/uuid"
)

func resolvedTheme(conceptId int64, name string) *entity.NormalizationResult {
	return &entity.NormalizationResult{
		RawLabel:        name,
		ResolvedConcept: &entity.CanonicalConcept{Id: conceptId, Name: name},
		ConfidenceScore: 0.95,
	}
}

func unresolvedTheme(label string) *entity.NormalizationResult {
	return &entity.NormalizationResult{
		RawLabel:        label,
		ConfidenceScore: 0.4,
		IsNewCanonical:  true,
	}
}

func TestAssemble_RiskBucket(t *testing.T) {
	companyId := uuid.New()
	specs := repeatSpec(recordSpec{
		source:    "reddit",
		channel:   "Reddit",
		sentiment: constant.SentimentNegative,
		daysAgo:   5,
		themes:    []string{"support quality"},
	}, 6)
	baseline := NewBaseline(buildRecords(companyId, specs), baselineNow)

	published := baselineNow.AddDate(0, 0, -1)
	record := &entity.ActivityRecord{
		Id:          uuid.New(),
		CompanyId:   companyId,
		CompanyName: "Acme",
		SourceType:  "reddit",
		Channel:     "Reddit",
		Sentiment:   constant.SentimentNegative,
		PublishedAt: &published,
		Title:       "Support is unreachable",
		Url:         "https://reddit.com/r/acme/1",
		SourceKey:   "reddit:1",
	}
	themes := []*entity.NormalizationResult{resolvedTheme(11, "Support Quality")}

	assembler := NewAssembler(NewDefaultClassifier())
	point, ok := assembler.Assemble(record, themes, baseline, baselineNow)
	if !ok {
		t.Fatal("expected candidate to classify")
	}

	if point.Bucket != constant.BucketRisk {
		t.Errorf("Bucket = %q, want %q", point.Bucket, constant.BucketRisk)
	}
	if point.Tier != constant.TierHigh {
		t.Errorf("Tier = %d, want %d", point.Tier, constant.TierHigh)
	}
	if point.ChipSlug != "support-quality" {
		t.Errorf("ChipSlug = %q, want support-quality", point.ChipSlug)
	}
	if !point.SeenAt.Equal(published) {
		t.Errorf("SeenAt = %v, want published time %v", point.SeenAt, published)
	}
	if point.CompanyId != companyId || point.CompanyName != "Acme" {
		t.Errorf("company fields not carried: %v %q", point.CompanyId, point.CompanyName)
	}

	if got := point.Context[CtxNegativeTheme30d]; got != 6 {
		t.Errorf("context %s = %v, want 6", CtxNegativeTheme30d, got)
	}
	if got := point.Context[CtxPrimaryTheme]; got != "Support Quality" {
		t.Errorf("context %s = %v", CtxPrimaryTheme, got)
	}
	if got := point.Context[CtxResolvedConceptId]; got != int64(11) {
		t.Errorf("context %s = %v, want 11", CtxResolvedConceptId, got)
	}
}

func TestAssemble_MomentumBucket(t *testing.T) {
	companyId := uuid.New()
	// 4 posts in the last week, only those 4 in the long window: a clear spike.
	specs := repeatSpec(recordSpec{
		source:  "news",
		channel: "Blog",
		daysAgo: 3,
		themes:  []string{"pricing"},
	}, 4)
	baseline := NewBaseline(buildRecords(companyId, specs), baselineNow)

	published := baselineNow.AddDate(0, 0, -1)
	record := &entity.ActivityRecord{
		Id:          uuid.New(),
		CompanyId:   companyId,
		SourceType:  "news",
		Channel:     "Blog",
		PublishedAt: &published,
	}
	themes := []*entity.NormalizationResult{resolvedTheme(3, "Pricing")}

	assembler := NewAssembler(NewDefaultClassifier())
	point, ok := assembler.Assemble(record, themes, baseline, baselineNow)
	if !ok {
		t.Fatal("expected candidate to classify")
	}

	if point.Bucket != constant.BucketMomentum {
		t.Errorf("Bucket = %q, want %q", point.Bucket, constant.BucketMomentum)
	}
	// All baseline posts sit on one channel, so the share qualifies for high.
	if point.Tier != constant.TierHigh {
		t.Errorf("Tier = %d, want %d", point.Tier, constant.TierHigh)
	}
	if got := point.Context[CtxThemePosts14d]; got != 4 {
		t.Errorf("context %s = %v, want 4", CtxThemePosts14d, got)
	}
	if got := point.Context[CtxChannelShare30d]; got != 1.0 {
		t.Errorf("context %s = %v, want 1.0", CtxChannelShare30d, got)
	}
}

func TestAssemble_FirstReview(t *testing.T) {
	companyId := uuid.New()
	baseline := NewBaseline(nil, baselineNow)

	record := &entity.ActivityRecord{
		Id:         uuid.New(),
		CompanyId:  companyId,
		SourceType: "g2",
		// No published date: SeenAt falls back to the run time.
	}
	themes := []*entity.NormalizationResult{unresolvedTheme("ease of use")}

	assembler := NewAssembler(NewDefaultClassifier())
	point, ok := assembler.Assemble(record, themes, baseline, baselineNow)
	if !ok {
		t.Fatal("expected candidate to classify")
	}

	if point.Bucket != constant.BucketFresh {
		t.Errorf("Bucket = %q, want %q", point.Bucket, constant.BucketFresh)
	}
	if point.ChipSlug != "first-review" {
		t.Errorf("ChipSlug = %q, want first-review", point.ChipSlug)
	}
	if point.Tier != constant.TierLow {
		t.Errorf("Tier = %d, want %d", point.Tier, constant.TierLow)
	}
	if !point.SeenAt.Equal(baselineNow) {
		t.Errorf("SeenAt = %v, want run time", point.SeenAt)
	}
	// Unresolved themes still surface as the primary label.
	if got := point.Context[CtxPrimaryTheme]; got != "ease of use" {
		t.Errorf("context %s = %v", CtxPrimaryTheme, got)
	}
	if _, found := point.Context[CtxResolvedConceptId]; found {
		t.Errorf("context should not carry a concept id for unresolved themes")
	}
}

func TestAssemble_DeclinedCandidate(t *testing.T) {
	companyId := uuid.New()
	// Plenty of reviews on record, nothing negative, no theme spike.
	specs := repeatSpec(recordSpec{source: "g2", daysAgo: 10}, 5)
	baseline := NewBaseline(buildRecords(companyId, specs), baselineNow)

	published := baselineNow.AddDate(0, 0, -1)
	record := &entity.ActivityRecord{
		Id:          uuid.New(),
		CompanyId:   companyId,
		SourceType:  "g2",
		PublishedAt: &published,
	}
	themes := []*entity.NormalizationResult{resolvedTheme(9, "Onboarding")}

	assembler := NewAssembler(NewDefaultClassifier())
	point, ok := assembler.Assemble(record, themes, baseline, baselineNow)
	if ok {
		t.Fatalf("expected candidate to be declined, got %+v", point)
	}
	if point != nil {
		t.Errorf("declined candidate should return a nil point")
	}
}

type stubClassifier struct {
	seen *Candidate
}

func (s *stubClassifier) Classify(c *Candidate) (*Classification, bool) {
	s.seen = c
	return &Classification{Bucket: constant.BucketMomentum, ChipSlug: "stub", Tier: constant.TierMedium}, true
}

func TestAssemble_PassesContextToClassifier(t *testing.T) {
	companyId := uuid.New()
	baseline := NewBaseline(nil, baselineNow)

	record := &entity.ActivityRecord{Id: uuid.New(), CompanyId: companyId, SourceType: "reddit"}
	classifier := &stubClassifier{}
	assembler := NewAssembler(classifier)

	point, ok := assembler.Assemble(record, nil, baseline, baselineNow)
	if !ok {
		t.Fatal("stub classifier always accepts")
	}
	if classifier.seen == nil || classifier.seen.Record != record {
		t.Fatal("classifier should receive the candidate record")
	}
	// Review counter is always present, even with an empty baseline.
	if got := classifier.seen.Context[CtxReviews90d]; got != 0 {
		t.Errorf("context %s = %v, want 0", CtxReviews90d, got)
	}
	if point.ChipSlug != "stub" {
		t.Errorf("ChipSlug = %q, want stub", point.ChipSlug)
	}
}
