package warmclient

import (
	"encoding/json"

	"github.com/mitchellh/mapstructure"
	warmdomain "github.com/totalaudiopromo/airplay-monitor-api/infrastructure/integrator/warm/domain"
	"github.com/totalaudiopromo/airplay-monitor-api/internal/domain"
)

// A WARM usa envelopes de paginação diferentes por endpoint (plays vs
// estações vs relatórios). Em vez de assumir uma forma única, o normalizador
// tenta uma lista ordenada de aliases por campo; adicionar um quarto formato
// upstream é só acrescentar um alias.
type pageRules struct {
	ItemAliases     []string
	TotalAliases    []string
	DefaultPageSize int
}

var playsPageRules = pageRules{
	ItemAliases:     []string{"currentPagesEntities", "plays", "data", "items"},
	TotalAliases:    []string{"totalNumberOfEntities", "total"},
	DefaultPageSize: 1000,
}

var stationsPageRules = pageRules{
	ItemAliases:     []string{"currentPagesEntities", "stations", "data", "items"},
	TotalAliases:    []string{"totalNumberOfEntities", "total"},
	DefaultPageSize: 10,
}

// decodePage reduz um envelope cru da WARM a um PagedResult normalizado,
// decodificando cada item no tipo de entidade E e convertendo para T
func decodePage[E any, T any](raw []byte, rules pageRules, convert func(E) T) (*domain.PagedResult[T], error) {
	var envelope map[string]any
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &warmdomain.UpstreamError{Status: 0, Body: "malformed response body: " + err.Error()}
	}

	rawItems := extractItems(envelope, rules.ItemAliases)

	items := make([]T, 0, len(rawItems))
	for _, rawItem := range rawItems {
		entity, ok := decodeEntity[E](rawItem)
		if !ok {
			continue
		}
		items = append(items, convert(entity))
	}

	total := extractCount(envelope, rules.TotalAliases, len(items))
	if total < len(items) {
		total = len(items)
	}

	pageSize := extractCount(envelope, []string{"pageSize"}, rules.DefaultPageSize)
	if pageSize < len(items) {
		pageSize = len(items)
	}

	hasMore, _ := envelope["hasMore"].(bool)

	return &domain.PagedResult[T]{
		Items:      items,
		TotalCount: total,
		HasMore:    hasMore,
		PageSize:   pageSize,
	}, nil
}

// extractItems retorna a primeira lista de entidades encontrada entre os
// aliases, na ordem em que foram declarados
func extractItems(envelope map[string]any, aliases []string) []any {
	for _, alias := range aliases {
		if list, ok := envelope[alias].([]any); ok {
			return list
		}
	}
	return nil
}

// extractCount retorna o primeiro campo numérico encontrado entre os aliases,
// ou o fallback quando nenhum existe
func extractCount(envelope map[string]any, aliases []string, fallback int) int {
	for _, alias := range aliases {
		switch value := envelope[alias].(type) {
		case float64:
			return int(value)
		case int:
			return value
		}
	}
	return fallback
}

// decodeEntity converte um item cru do envelope na entidade tipada
func decodeEntity[E any](rawItem any) (E, bool) {
	var entity E

	itemMap, ok := rawItem.(map[string]any)
	if !ok {
		return entity, false
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &entity,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return entity, false
	}

	if err := decoder.Decode(itemMap); err != nil {
		return entity, false
	}

	return entity, true
}
