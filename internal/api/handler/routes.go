package handler

import (
	"net/http"

	"github.com/totalaudiopromo/airplay-monitor-api/infrastructure/integrator/warm/warmclient"
	"github.com/totalaudiopromo/airplay-monitor-api/internal/api/handler/router"
	"github.com/totalaudiopromo/airplay-monitor-api/internal/usecases/campaigning"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Warm(client warmclient.Client) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/warm/health",
			Method:  http.MethodGet,
			Handler: WarmHealth(client),
		},
		{
			Path:    "/v1/stations",
			Method:  http.MethodGet,
			Handler: ListStations(client),
		},
		{
			Path:    "/v1/artists/:name/plays",
			Method:  http.MethodGet,
			Handler: ListArtistPlays(client),
		},
		{
			Path:    "/v1/artists/:name/report/csv",
			Method:  http.MethodGet,
			Handler: ArtistCSVReport(client),
		},
	}
}

func Campaigns(service campaigning.CampaignReporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/artists/:name/campaign/summary",
			Method:  http.MethodGet,
			Handler: GetCampaignSummary(service),
		},
	}
}
