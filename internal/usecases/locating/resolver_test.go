package locating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *domain.Coordinate
	}{
		{
			name:     "Casamento exato - país em minúsculas",
			input:    "brazil",
			expected: &domain.Coordinate{Lat: -14.2350, Lng: -51.9253},
		},
		{
			name:     "Casamento exato deve ignorar caixa e espaços nas pontas",
			input:    "  United Kingdom  ",
			expected: &domain.Coordinate{Lat: 55.3781, Lng: -3.4360},
		},
		{
			name:     "Apelido - ENGLAND deve resolver para united kingdom",
			input:    "ENGLAND",
			expected: &domain.Coordinate{Lat: 55.3781, Lng: -3.4360},
		},
		{
			name:     "Apelido com acento - São Paulo deve resolver para a chave canônica",
			input:    "São Paulo",
			expected: &domain.Coordinate{Lat: -23.5505, Lng: -46.6333},
		},
		{
			name:     "Substring - nome da plataforma contém a chave da tabela",
			input:    "London, Greater London",
			expected: &domain.Coordinate{Lat: 51.5074, Lng: -0.1278},
		},
		{
			name:     "Nome desconhecido - deve retornar nil",
			input:    "Atlantis",
			expected: nil,
		},
		{
			name:     "String vazia - deve retornar nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "Somente espaços - deve retornar nil",
			input:    "   ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Resolve(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestResolve_Deterministico(t *testing.T) {
	// O passo de substring itera a tabela em ordem fixa, então o mesmo nome
	// ambíguo resolve sempre para a mesma coordenada.
	first := Resolve("south")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Resolve("south"))
	}
}

func TestResolveAll(t *testing.T) {
	entities := []domain.TargetingEntity{
		{ID: "loc-1", Name: "Brazil"},
		{ID: "loc-2", Name: "Atlantis"},
		{ID: "loc-3", Name: "tokyo"},
	}

	resolved := ResolveAll(entities)

	assert.Len(t, resolved, 3)

	assert.Equal(t, "Brazil", resolved[0].Name)
	assert.NotNil(t, resolved[0].Coordinate)
	assert.Equal(t, -14.2350, resolved[0].Coordinate.Lat)

	// Nome não resolvido mantém a entrada com coordenada nula
	assert.Equal(t, "Atlantis", resolved[1].Name)
	assert.Nil(t, resolved[1].Coordinate)

	assert.Equal(t, "tokyo", resolved[2].Name)
	assert.NotNil(t, resolved[2].Coordinate)
}

func TestResolveAll_EntradaVazia(t *testing.T) {
	resolved := ResolveAll(nil)
	assert.NotNil(t, resolved)
	assert.Empty(t, resolved)
}
