package domain

// WeeklyBreakdown agrega as execuções de uma semana de campanha (1-indexada)
type WeeklyBreakdown struct {
	WeekNumber   int `json:"weekNumber"`
	Plays        int `json:"plays"`
	StationCount int `json:"stationCount"`
}

// StationPlays conta execuções por estação, usado no ranking de top estações
type StationPlays struct {
	Station string `json:"station"`
	Plays   int    `json:"plays"`
}

// CampaignSummary é o resumo de performance de uma campanha, derivado da
// lista de plays e recalculado sob demanda. Nunca é persistido.
type CampaignSummary struct {
	ArtistName          string            `json:"artistName"`
	CampaignStartDate   string            `json:"campaignStartDate"`
	TotalPlays          int               `json:"totalPlays"`
	TotalStations       int               `json:"totalStations"`
	Stations            []string          `json:"stations"`
	WeeklyBreakdown     []WeeklyBreakdown `json:"weeklyBreakdown"`
	AveragePlaysPerWeek float64           `json:"averagePlaysPerWeek"`
	PerformanceRating   string            `json:"performanceRating"`
	TopStations         []StationPlays    `json:"topStations"`
	Summary             string            `json:"summary,omitempty"`
}
