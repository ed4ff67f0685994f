package domain

// TargetingEntity é uma entidade de segmentação identificada pela plataforma
// (público, localização, interesse, setor, cargo).
type TargetingEntity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EntitySplit separa entidades incluídas e excluídas da segmentação.
type EntitySplit struct {
	Included []TargetingEntity `json:"included"`
	Excluded []TargetingEntity `json:"excluded"`
}

type Demographics struct {
	AgeRanges []string `json:"age_ranges"`
	Genders   []string `json:"genders"`
	Languages []string `json:"languages"`
}

// Professional agrupa as facetas profissionais usadas pelo LinkedIn.
type Professional struct {
	Industries []TargetingEntity `json:"industries"`
	JobTitles  []TargetingEntity `json:"job_titles"`
}

type Keyword struct {
	Text string `json:"text"`
}

// TargetingRecord é a configuração de segmentação de um conjunto de anúncios,
// como devolvida pela API da plataforma. Somente leitura deste lado.
type TargetingRecord struct {
	Provider           Provider            `json:"provider"`
	EntityID           string              `json:"entity_id"`
	EntityName         string              `json:"entity_name,omitempty"`
	Demographics       Demographics        `json:"demographics"`
	Audiences          EntitySplit         `json:"audiences"`
	Locations          EntitySplit         `json:"locations"`
	Interests          []TargetingEntity   `json:"interests"`
	Keywords           []Keyword           `json:"keywords"`
	Devices            []string            `json:"devices"`
	Placements         []string            `json:"placements"`
	Professional       *Professional       `json:"professional,omitempty"`
	PlatformPlacements map[string][]string `json:"platform_placements,omitempty"`
}

// AggregatedTargeting é a união deduplicada de vários TargetingRecords,
// pronta para exibição no painel. A ordem de cada lista é a ordem de
// primeira ocorrência na entrada.
type AggregatedTargeting struct {
	Demographics       Demographics        `json:"demographics"`
	Audiences          EntitySplit         `json:"audiences"`
	Locations          EntitySplit         `json:"locations"`
	Interests          []TargetingEntity   `json:"interests"`
	Keywords           []Keyword           `json:"keywords"`
	Devices            []string            `json:"devices"`
	Placements         []string            `json:"placements"`
	Industries         []TargetingEntity   `json:"industries"`
	JobTitles          []TargetingEntity   `json:"job_titles"`
	PlatformPlacements map[string][]string `json:"platform_placements,omitempty"`
}

// Coordinate é um par latitude/longitude resolvido para exibição no mapa.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ResolvedLocation associa o nome de localização ao ponto resolvido.
// Coordinate fica nil quando nenhuma regra da tabela estática casa; nesse
// caso o frontend recorre ao geocoder externo.
type ResolvedLocation struct {
	Name       string      `json:"name"`
	Coordinate *Coordinate `json:"coordinate"`
}

// CampaignTargetingResponse é o payload do visualizador de segmentação:
// a visão agregada mais as localizações incluídas já resolvidas para o mapa.
type CampaignTargetingResponse struct {
	CampaignID string              `json:"campaign_id"`
	Targeting  AggregatedTargeting `json:"targeting"`
	Locations  []ResolvedLocation  `json:"locations"`
}
