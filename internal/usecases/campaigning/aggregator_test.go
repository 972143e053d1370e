package campaigning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/totalaudiopromo/airplay-monitor-api/internal/domain"
)

func play(station string, playedAt time.Time) domain.PlayRecord {
	return domain.PlayRecord{
		ArtistName:  "Aquilo",
		TrackName:   "Sober",
		StationName: station,
		PlayedAt:    playedAt,
	}
}

func TestGroupPlaysByWeek(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	plays := []domain.PlayRecord{
		play("BBC Radio 1", start.Add(24*time.Hour)),     // dia 2 -> semana 1
		play("Amazing Radio", start.Add(6*24*time.Hour)), // dia 7 -> semana 1
		play("BBC Radio 1", start.Add(8*24*time.Hour)),   // dia 9 -> semana 2
	}

	breakdown := GroupPlaysByWeek(plays, start)

	require.Len(t, breakdown, 2)

	assert.Equal(t, 1, breakdown[0].WeekNumber)
	assert.Equal(t, 2, breakdown[0].Plays)
	assert.Equal(t, 2, breakdown[0].StationCount)

	assert.Equal(t, 2, breakdown[1].WeekNumber)
	assert.Equal(t, 1, breakdown[1].Plays)
	assert.Equal(t, 1, breakdown[1].StationCount)
}

func TestGroupPlaysByWeek_FallbacksForMissingData(t *testing.T) {
	start := time.Now().AddDate(0, 0, -10)

	plays := []domain.PlayRecord{
		// Sem timestamp resolvível conta como agora; sem estação vira Unknown
		play("", time.Time{}),
	}

	breakdown := GroupPlaysByWeek(plays, start)

	require.Len(t, breakdown, 1)
	assert.Equal(t, 2, breakdown[0].WeekNumber)
	assert.Equal(t, 1, breakdown[0].StationCount)
}

func TestTopStations(t *testing.T) {
	now := time.Now()

	plays := []domain.PlayRecord{
		play("A", now), play("A", now), play("B", now),
		play("A", now), play("C", now), play("B", now),
	}

	top := TopStations(plays, 2)

	require.Len(t, top, 2)
	assert.Equal(t, domain.StationPlays{Station: "A", Plays: 3}, top[0])
	assert.Equal(t, domain.StationPlays{Station: "B", Plays: 2}, top[1])
}

func TestTopStations_TiesKeepFirstSeenOrder(t *testing.T) {
	now := time.Now()

	plays := []domain.PlayRecord{
		play("B", now), play("A", now), play("B", now), play("A", now),
	}

	top := TopStations(plays, 0)

	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].Station)
	assert.Equal(t, "A", top[1].Station)
}

func TestPerformanceRating(t *testing.T) {
	tests := []struct {
		totalPlays int
		expected   string
	}{
		{0, "No Activity"},
		{1, "Low"},
		{4, "Low"},
		{5, "Moderate"},
		{14, "Moderate"},
		{15, "Good"},
		{29, "Good"},
		{30, "Strong"},
		{49, "Strong"},
		{50, "Excellent"},
		{200, "Excellent"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, PerformanceRating(tt.totalPlays, 3), "plays=%d", tt.totalPlays)
	}
}

func TestSummarize(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	plays := []domain.PlayRecord{
		play("BBC Radio 1", start.Add(24*time.Hour)),
		play("Amazing Radio", start.Add(2*24*time.Hour)),
		play("BBC Radio 1", start.Add(8*24*time.Hour)),
	}

	summary := Summarize("Aquilo", start, plays)

	assert.Equal(t, "Aquilo", summary.ArtistName)
	assert.Equal(t, "2026-07-01", summary.CampaignStartDate)
	assert.Equal(t, 3, summary.TotalPlays)
	assert.Equal(t, 2, summary.TotalStations)
	assert.Equal(t, []string{"BBC Radio 1", "Amazing Radio"}, summary.Stations)
	assert.Len(t, summary.WeeklyBreakdown, 2)
	assert.Equal(t, 1.5, summary.AveragePlaysPerWeek)
	assert.Equal(t, "Low", summary.PerformanceRating)

	require.NotEmpty(t, summary.TopStations)
	assert.Equal(t, "BBC Radio 1", summary.TopStations[0].Station)
}

func TestSummarize_NoPlays(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	summary := Summarize("Aquilo", start, nil)

	assert.Equal(t, 0, summary.TotalPlays)
	assert.Equal(t, 0, summary.TotalStations)
	assert.Equal(t, float64(0), summary.AveragePlaysPerWeek)
	assert.Equal(t, "No Activity", summary.PerformanceRating)
	assert.Equal(t, "No plays detected yet", summary.Summary)

	// As listas vêm vazias, nunca nulas, para o JSON não virar null
	assert.NotNil(t, summary.Stations)
	assert.NotNil(t, summary.WeeklyBreakdown)
	assert.NotNil(t, summary.TopStations)
}
