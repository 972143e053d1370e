package warmclient

import (
	"time"

	"github.com/totalaudiopromo/airplay-monitor-api/internal/domain"
)

// Duração convencional de uma campanha de divulgação: 6 semanas
const defaultCampaignLength = 42 * 24 * time.Hour

// GetCampaignPlays retorna as execuções de um artista dentro da janela de
// campanha. Sem data de início informada, assume a campanha convencional de
// 42 dias atrás até hoje.
func (c *WarmClient) GetCampaignPlays(artistName string, campaignStartDate *time.Time) ([]domain.PlayRecord, error) {
	fromDate := time.Now().Add(-defaultCampaignLength)
	if campaignStartDate != nil {
		fromDate = *campaignStartDate
	}
	untilDate := time.Now()

	result, err := c.GetPlaysForArtist(artistName, &fromDate, &untilDate)
	if err != nil {
		return nil, err
	}

	return result.Items, nil
}
