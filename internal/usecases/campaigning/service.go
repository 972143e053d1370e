package campaigning

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/totalaudiopromo/airplay-monitor-api/infrastructure/integrator/warm/warmclient"
	"github.com/totalaudiopromo/airplay-monitor-api/internal/config"
	"github.com/totalaudiopromo/airplay-monitor-api/internal/domain"
)

// CampaignReporter expõe os resumos de campanha consumidos pelos handlers
type CampaignReporter interface {
	GetCampaignSummary(artistName string, campaignStartDate *time.Time) (*domain.CampaignSummary, error)
	GetCampaignPlays(artistName string, campaignStartDate *time.Time) ([]domain.PlayRecord, error)
}

type Service struct {
	cfg    *config.Config
	client warmclient.Client
}

func NewService(cfg *config.Config, client warmclient.Client) CampaignReporter {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

// GetCampaignPlays delega ao cliente a busca das execuções da janela de campanha
func (s *Service) GetCampaignPlays(artistName string, campaignStartDate *time.Time) ([]domain.PlayRecord, error) {
	plays, err := s.client.GetCampaignPlays(artistName, campaignStartDate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch campaign plays")
	}

	return plays, nil
}

// GetCampaignSummary busca as execuções da campanha e as reduz ao resumo de
// performance (semanas, top estações, rating)
func (s *Service) GetCampaignSummary(artistName string, campaignStartDate *time.Time) (*domain.CampaignSummary, error) {
	campaignStart := time.Now().AddDate(0, 0, -42)
	if campaignStartDate != nil {
		campaignStart = *campaignStartDate
	}

	plays, err := s.client.GetCampaignPlays(artistName, &campaignStart)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"artist_name": artistName,
			"error":       err.Error(),
		}).Error("campaign: failed to fetch plays for summary")
		return nil, errors.Wrap(err, "failed to fetch campaign plays")
	}

	summary := Summarize(artistName, campaignStart, plays)

	logrus.WithFields(logrus.Fields{
		"artist_name":    artistName,
		"total_plays":    summary.TotalPlays,
		"total_stations": summary.TotalStations,
		"rating":         summary.PerformanceRating,
	}).Info("campaign: performance summary generated")

	return summary, nil
}
