// Package locating resolve nomes de localização de segmentação em
// coordenadas para o mapa do painel. A resolução é puramente local, contra
// uma tabela estática; nomes não resolvidos ficam a cargo do geocoder
// externo chamado pelo frontend.
package locating

import (
	"sort"
	"strings"

	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

// sortedNames mantém a iteração da tabela determinística no passo de
// substring (a ordem de um map em Go não é estável).
var sortedNames = func() []string {
	names := make([]string, 0, len(coordinates))
	for name := range coordinates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// Resolve busca a coordenada de um nome de localização em três passos:
// casamento exato (case-insensitive, sem espaços nas pontas), tabela de
// apelidos e, por fim, substring nos dois sentidos contra cada chave da
// tabela. Retorna nil quando nenhuma regra casa.
func Resolve(name string) *domain.Coordinate {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return nil
	}

	if coord, ok := coordinates[normalized]; ok {
		return &domain.Coordinate{Lat: coord.Lat, Lng: coord.Lng}
	}

	if alias, ok := aliases[normalized]; ok {
		if coord, ok := coordinates[alias]; ok {
			return &domain.Coordinate{Lat: coord.Lat, Lng: coord.Lng}
		}
	}

	for _, key := range sortedNames {
		if strings.Contains(key, normalized) || strings.Contains(normalized, key) {
			coord := coordinates[key]
			return &domain.Coordinate{Lat: coord.Lat, Lng: coord.Lng}
		}
	}

	return nil
}

// ResolveAll resolve uma lista de entidades de localização preservando a
// ordem de entrada.
func ResolveAll(entities []domain.TargetingEntity) []domain.ResolvedLocation {
	resolved := make([]domain.ResolvedLocation, 0, len(entities))
	for _, entity := range entities {
		resolved = append(resolved, domain.ResolvedLocation{
			Name:       entity.Name,
			Coordinate: Resolve(entity.Name),
		})
	}
	return resolved
}
