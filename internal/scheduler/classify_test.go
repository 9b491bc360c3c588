package scheduler

import (
	"testing"
	"time"

	"github.com/jalvord/skyward/internal/domain"
	"github.com/stretchr/testify/assert"
)

var classifyNow = time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC)

func soloEndorsement(expires *time.Time) domain.Endorsement {
	return domain.Endorsement{
		Type:      domain.EndorsementSoloFlight,
		IssuedAt:  classifyNow.AddDate(0, -1, 0),
		ExpiresAt: expires,
	}
}

func preflightProficiency() ProficiencyMap {
	return ProficiencyMap{
		"certs_documents":     domain.GradeSatisfactory,
		"weather_information": domain.GradeProficient,
		"national_airspace":   domain.GradeSatisfactory,
	}
}

func TestClassify_NoEndorsementAlwaysDual(t *testing.T) {
	cat := testCatalog()

	got := Classify(cat, "Pre-flight Procedures", preflightProficiency(), nil, classifyNow)

	assert.Equal(t, domain.LessonDual, got, "endorsement is a hard gate regardless of skill")
}

func TestClassify_ExpiredEndorsementIsDual(t *testing.T) {
	cat := testCatalog()
	expired := classifyNow.AddDate(0, 0, -1)

	got := Classify(cat, "Pre-flight Procedures", preflightProficiency(), []domain.Endorsement{soloEndorsement(&expired)}, classifyNow)

	assert.Equal(t, domain.LessonDual, got)
}

func TestClassify_NonSoloEndorsementTypeIsDual(t *testing.T) {
	cat := testCatalog()
	endorsements := []domain.Endorsement{{
		Type:     domain.EndorsementKnowledgeTest,
		IssuedAt: classifyNow.AddDate(0, -1, 0),
	}}

	got := Classify(cat, "Pre-flight Procedures", preflightProficiency(), endorsements, classifyNow)

	assert.Equal(t, domain.LessonDual, got)
}

func TestClassify_SoloWhenEndorsedAndProficient(t *testing.T) {
	cat := testCatalog()
	endorsements := []domain.Endorsement{soloEndorsement(nil)}

	got := Classify(cat, "Pre-flight Procedures", preflightProficiency(), endorsements, classifyNow)

	assert.Equal(t, domain.LessonSolo, got)
}

func TestClassify_FutureExpiryStillValid(t *testing.T) {
	cat := testCatalog()
	future := classifyNow.AddDate(0, 3, 0)
	endorsements := []domain.Endorsement{soloEndorsement(&future)}

	got := Classify(cat, "Pre-flight Procedures", preflightProficiency(), endorsements, classifyNow)

	assert.Equal(t, domain.LessonSolo, got)
}

func TestClassify_AnyManeuverBelowSatisfactoryIsDual(t *testing.T) {
	cat := testCatalog()
	prof := preflightProficiency()
	prof["national_airspace"] = domain.GradeNeedsWork

	got := Classify(cat, "Pre-flight Procedures", prof, []domain.Endorsement{soloEndorsement(nil)}, classifyNow)

	assert.Equal(t, domain.LessonDual, got)
}

func TestClassify_UngradedManeuverIsDual(t *testing.T) {
	cat := testCatalog()
	prof := preflightProficiency()
	delete(prof, "certs_documents")

	got := Classify(cat, "Pre-flight Procedures", prof, []domain.Endorsement{soloEndorsement(nil)}, classifyNow)

	assert.Equal(t, domain.LessonDual, got)
}

func TestClassify_EmptyManeuverListForcesDual(t *testing.T) {
	cat := testCatalog()

	// Ground tasks map to no maneuvers and can never be solo-classified.
	got := Classify(cat, "Aircraft Systems", preflightProficiency(), []domain.Endorsement{soloEndorsement(nil)}, classifyNow)

	assert.Equal(t, domain.LessonDual, got)
}
