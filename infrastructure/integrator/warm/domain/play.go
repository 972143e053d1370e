package warmdomain

import (
	"time"
)

// PlayEntity é a entidade de execução como chega da WARM. Os nomes de campo
// variam entre endpoints, então cada informação tem mais de um alias possível;
// os métodos resolvem o primeiro alias preenchido.
type PlayEntity struct {
	ArtistName       string `mapstructure:"artistName"`
	TrackName        string `mapstructure:"trackName"`
	RadioStationName string `mapstructure:"radioStationName"`
	RadioStation     string `mapstructure:"radioStation"`
	Station          string `mapstructure:"station"`
	PlayDateTime     string `mapstructure:"playDateTime"`
	Date             string `mapstructure:"date"`
	Timestamp        string `mapstructure:"timestamp"`
}

// StationName resolve o nome da estação entre os aliases conhecidos
func (e PlayEntity) StationName() string {
	switch {
	case e.RadioStationName != "":
		return e.RadioStationName
	case e.RadioStation != "":
		return e.RadioStation
	default:
		return e.Station
	}
}

// PlayedAt resolve o instante da execução. Retorna zero quando nenhum dos
// aliases carrega um timestamp interpretável; quem agrega decide o fallback.
func (e PlayEntity) PlayedAt() time.Time {
	candidates := []string{e.PlayDateTime, e.Date, e.Timestamp}

	for _, raw := range candidates {
		if raw == "" {
			continue
		}
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			return ts
		}
		if ts, err := time.Parse(time.DateOnly, raw); err == nil {
			return ts
		}
	}

	return time.Time{}
}
