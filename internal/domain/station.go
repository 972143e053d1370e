package domain

// StationRecord representa uma estação de rádio monitorada pela WARM
type StationRecord struct {
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	City        string `json:"city,omitempty"`
	ExternalID  string `json:"externalId,omitempty"`
	CountryCode string `json:"countryCode"`
	IsMonitored bool   `json:"isMonitored"`
}
