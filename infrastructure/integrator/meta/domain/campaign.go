package metadomain

// Campaign é a campanha como devolvida pela API do Meta.
type Campaign struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Objective string `json:"objective"`
	Status    string `json:"status"`
}

// AdSet é o conjunto de anúncios com a configuração de segmentação.
type AdSet struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Targeting *Targeting `json:"targeting"`
}

// Targeting é o bloco de segmentação do Meta.
type Targeting struct {
	AgeMin          int                 `json:"age_min"`
	AgeMax          int                 `json:"age_max"`
	Genders         []int               `json:"genders"`
	Locales         []int               `json:"locales"`
	GeoLocations    *GeoLocations       `json:"geo_locations"`
	ExcludedGeo     *GeoLocations       `json:"excluded_geo_locations"`
	CustomAudiences []NamedEntity       `json:"custom_audiences"`
	ExcludedCustom  []NamedEntity       `json:"excluded_custom_audiences"`
	Interests       []NamedEntity       `json:"flexible_spec_interests"`
	DevicePlatforms []string            `json:"device_platforms"`
	PublisherPlats  []string            `json:"publisher_platforms"`
	Positions       map[string][]string `json:"positions,omitempty"`
}

type GeoLocations struct {
	Countries []string      `json:"countries"`
	Cities    []NamedEntity `json:"cities"`
	Regions   []NamedEntity `json:"regions"`
}

type NamedEntity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
