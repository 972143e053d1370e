package campaigning

import (
	"math"
	"sort"
	"time"

	"github.com/totalaudiopromo/airplay-monitor-api/internal/domain"
	"github.com/totalaudiopromo/airplay-monitor-api/pkg/utils"
)

// Funções puras de agregação de campanha: nenhum I/O, nenhum estado.

// Número máximo de estações no ranking do resumo
const defaultTopStationsLimit = 3

// weekNumber calcula a semana de campanha de uma execução, 1-indexada:
// ceil(dias desde o início / 7)
func weekNumber(campaignStart, playedAt time.Time) int {
	days := int(math.Ceil(playedAt.Sub(campaignStart).Hours() / 24))

	week := (days + 6) / 7
	if week < 1 {
		week = 1
	}

	return week
}

// GroupPlaysByWeek agrega as execuções em semanas de campanha, contando
// plays e estações distintas (por nome) em cada semana. Execuções sem
// timestamp resolvível contam como agora.
func GroupPlaysByWeek(plays []domain.PlayRecord, campaignStart time.Time) []domain.WeeklyBreakdown {
	type weekBucket struct {
		plays    int
		stations map[string]struct{}
	}

	buckets := make(map[int]*weekBucket)

	for _, play := range plays {
		playedAt := play.PlayedAt
		if playedAt.IsZero() {
			playedAt = time.Now()
		}

		week := weekNumber(campaignStart, playedAt)

		bucket, ok := buckets[week]
		if !ok {
			bucket = &weekBucket{stations: make(map[string]struct{})}
			buckets[week] = bucket
		}

		bucket.plays++

		station := play.StationName
		if station == "" {
			station = "Unknown"
		}
		bucket.stations[station] = struct{}{}
	}

	breakdown := make([]domain.WeeklyBreakdown, 0, len(buckets))
	for week, bucket := range buckets {
		breakdown = append(breakdown, domain.WeeklyBreakdown{
			WeekNumber:   week,
			Plays:        bucket.plays,
			StationCount: len(bucket.stations),
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].WeekNumber < breakdown[j].WeekNumber
	})

	return breakdown
}

// TopStations ranqueia estações por número de execuções, em ordem
// decrescente, com empates resolvidos pela ordem de primeira aparição
func TopStations(plays []domain.PlayRecord, limit int) []domain.StationPlays {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, play := range plays {
		station := play.StationName
		if station == "" {
			station = "Unknown"
		}

		if _, seen := counts[station]; !seen {
			order = append(order, station)
		}
		counts[station]++
	}

	ranking := make([]domain.StationPlays, 0, len(order))
	for _, station := range order {
		ranking = append(ranking, domain.StationPlays{Station: station, Plays: counts[station]})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Plays > ranking[j].Plays
	})

	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}

	return ranking
}

// PerformanceRating converte o volume total de execuções em um rótulo
// qualitativo de faixas fixas. totalStations hoje não ajusta a faixa; o
// parâmetro fica para não quebrar chamadores quando isso mudar.
func PerformanceRating(totalPlays, totalStations int) string {
	switch {
	case totalPlays == 0:
		return "No Activity"
	case totalPlays < 5:
		return "Low"
	case totalPlays < 15:
		return "Moderate"
	case totalPlays < 30:
		return "Good"
	case totalPlays < 50:
		return "Strong"
	default:
		return "Excellent"
	}
}

// Summarize compõe o resumo de performance da campanha a partir da lista de
// execuções. Lista vazia vira um resumo zerado com a mensagem padrão, sem
// calcular razões (evita divisão por zero).
func Summarize(artistName string, campaignStart time.Time, plays []domain.PlayRecord) *domain.CampaignSummary {
	startDate := campaignStart.Format(time.DateOnly)

	if len(plays) == 0 {
		return &domain.CampaignSummary{
			ArtistName:        artistName,
			CampaignStartDate: startDate,
			TotalPlays:        0,
			Stations:          []string{},
			WeeklyBreakdown:   []domain.WeeklyBreakdown{},
			TopStations:       []domain.StationPlays{},
			PerformanceRating: PerformanceRating(0, 0),
			Summary:           "No plays detected yet",
		}
	}

	stations := domain.UniqueStations(plays)
	weeklyBreakdown := GroupPlaysByWeek(plays, campaignStart)

	totalPlays := len(plays)
	totalStations := len(stations)

	weeks := len(weeklyBreakdown)
	if weeks == 0 {
		weeks = 1
	}
	averagePlaysPerWeek := utils.RoundWithOneDecimalPlace(float64(totalPlays) / float64(weeks))

	return &domain.CampaignSummary{
		ArtistName:          artistName,
		CampaignStartDate:   startDate,
		TotalPlays:          totalPlays,
		TotalStations:       totalStations,
		Stations:            stations,
		WeeklyBreakdown:     weeklyBreakdown,
		AveragePlaysPerWeek: averagePlaysPerWeek,
		PerformanceRating:   PerformanceRating(totalPlays, totalStations),
		TopStations:         TopStations(plays, defaultTopStationsLimit),
	}
}
