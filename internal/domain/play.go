package domain

import "time"

// PlayRecord representa uma execução de faixa detectada pela WARM.
// Somente leitura: produzido pelo serviço upstream e nunca alterado aqui.
type PlayRecord struct {
	ArtistName  string    `json:"artistName"`
	TrackName   string    `json:"trackName"`
	StationName string    `json:"stationName"`
	PlayedAt    time.Time `json:"playedAt"`
}

// UniqueStations retorna os nomes distintos de estações presentes na lista,
// na ordem em que aparecem
func UniqueStations(plays []PlayRecord) []string {
	seen := make(map[string]struct{})
	stations := make([]string, 0)

	for _, play := range plays {
		if play.StationName == "" {
			continue
		}
		if _, ok := seen[play.StationName]; ok {
			continue
		}
		seen[play.StationName] = struct{}{}
		stations = append(stations, play.StationName)
	}

	return stations
}
