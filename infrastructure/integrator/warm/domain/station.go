package warmdomain

// StationEntity é a entidade de estação de rádio como chega da WARM
type StationEntity struct {
	Name        string `mapstructure:"name"`
	Category    string `mapstructure:"category"`
	City        string `mapstructure:"city"`
	ID          string `mapstructure:"id"`
	ExternalID  string `mapstructure:"externalId"`
	CountryCode string `mapstructure:"countryCode"`
	IsMonitored bool   `mapstructure:"isMonitored"`
}

// ResolvedID resolve o identificador externo entre os aliases conhecidos
func (e StationEntity) ResolvedID() string {
	if e.ExternalID != "" {
		return e.ExternalID
	}
	return e.ID
}
