package scheduler

import (
	"testing"
	"time"

	"github.com/jalvord/skyward/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradeAt(code string, level domain.GradeLevel, daysAgo int) domain.ManeuverGrade {
	return domain.ManeuverGrade{
		ManeuverCode: code,
		Grade:        level,
		GradedAt:     time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo),
	}
}

func TestBuildProficiencyMap_FirstOccurrenceWins(t *testing.T) {
	// Newest-first: a recent needs_work must shadow an older proficient.
	grades := []domain.ManeuverGrade{
		gradeAt("steep_turns", domain.GradeNeedsWork, 1),
		gradeAt("steep_turns", domain.GradeProficient, 10),
	}

	prof := BuildProficiencyMap(grades)

	require.Len(t, prof, 1)
	assert.Equal(t, domain.GradeNeedsWork, prof["steep_turns"])
}

func TestBuildProficiencyMap_SkipsMissingCode(t *testing.T) {
	grades := []domain.ManeuverGrade{
		{Grade: domain.GradeSatisfactory, GradedAt: time.Now()},
		gradeAt("slow_flight", domain.GradeSatisfactory, 2),
	}

	prof := BuildProficiencyMap(grades)

	assert.Len(t, prof, 1)
	assert.Equal(t, domain.GradeSatisfactory, prof["slow_flight"])
}

func TestBuildProficiencyMap_Deterministic(t *testing.T) {
	grades := []domain.ManeuverGrade{
		gradeAt("slow_flight", domain.GradeProficient, 1),
		gradeAt("steep_turns", domain.GradeNeedsWork, 2),
		gradeAt("slow_flight", domain.GradeIntroduced, 3),
		gradeAt("normal_landing", domain.GradeSatisfactory, 4),
	}

	first := BuildProficiencyMap(grades)
	second := BuildProficiencyMap(grades)

	assert.Equal(t, first, second)
}

func TestBuildProficiencyMap_NoSortingPerformed(t *testing.T) {
	// The fold trusts list order, not timestamps: an out-of-order list keeps
	// whatever comes first.
	grades := []domain.ManeuverGrade{
		gradeAt("steep_turns", domain.GradeProficient, 10), // older, listed first
		gradeAt("steep_turns", domain.GradeNeedsWork, 1),
	}

	prof := BuildProficiencyMap(grades)

	assert.Equal(t, domain.GradeProficient, prof["steep_turns"])
}

func TestSortGradesNewestFirst(t *testing.T) {
	grades := []domain.ManeuverGrade{
		gradeAt("a", domain.GradeIntroduced, 5),
		gradeAt("b", domain.GradeIntroduced, 1),
		gradeAt("c", domain.GradeIntroduced, 9),
	}

	SortGradesNewestFirst(grades)

	assert.Equal(t, "b", grades[0].ManeuverCode)
	assert.Equal(t, "a", grades[1].ManeuverCode)
	assert.Equal(t, "c", grades[2].ManeuverCode)
}

func TestGradeLevelOrdering(t *testing.T) {
	assert.True(t, domain.GradeProficient.AtLeast(domain.GradeSatisfactory))
	assert.True(t, domain.GradeSatisfactory.AtLeast(domain.GradeSatisfactory))
	assert.False(t, domain.GradeNeedsWork.AtLeast(domain.GradeSatisfactory))
	assert.False(t, domain.GradeIntroduced.AtLeast(domain.GradeNeedsWork))
	assert.Equal(t, -1, domain.GradeLevel("bogus").Rank())
}
