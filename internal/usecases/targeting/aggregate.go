package targeting

import (
	"strings"

	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

// Aggregate une vários TargetingRecords em uma visão deduplicada para o
// painel. Regras de deduplicação:
//   - listas de entidades (públicos, localizações, interesses, setores,
//     cargos): por ID;
//   - palavras-chave: por texto normalizado (minúsculas, sem espaços nas
//     pontas);
//   - facetas escalares (demografia, dispositivos, posicionamentos): por
//     igualdade exata de string.
//
// A ordem de cada lista é a de primeira ocorrência na entrada, então chamadas
// repetidas com a mesma entrada produzem saída idêntica.
func Aggregate(records []*domain.TargetingRecord) domain.AggregatedTargeting {
	agg := domain.AggregatedTargeting{
		Demographics: domain.Demographics{
			AgeRanges: []string{},
			Genders:   []string{},
			Languages: []string{},
		},
		Audiences:  domain.EntitySplit{Included: []domain.TargetingEntity{}, Excluded: []domain.TargetingEntity{}},
		Locations:  domain.EntitySplit{Included: []domain.TargetingEntity{}, Excluded: []domain.TargetingEntity{}},
		Interests:  []domain.TargetingEntity{},
		Keywords:   []domain.Keyword{},
		Devices:    []string{},
		Placements: []string{},
		Industries: []domain.TargetingEntity{},
		JobTitles:  []domain.TargetingEntity{},
	}

	entities := newEntityDeduper()
	keywords := newStringDeduper()
	scalars := newStringDeduper()

	for _, record := range records {
		if record == nil {
			continue
		}

		agg.Demographics.AgeRanges = scalars.appendAll("age", agg.Demographics.AgeRanges, record.Demographics.AgeRanges)
		agg.Demographics.Genders = scalars.appendAll("gender", agg.Demographics.Genders, record.Demographics.Genders)
		agg.Demographics.Languages = scalars.appendAll("lang", agg.Demographics.Languages, record.Demographics.Languages)
		agg.Devices = scalars.appendAll("device", agg.Devices, record.Devices)
		agg.Placements = scalars.appendAll("placement", agg.Placements, record.Placements)

		agg.Audiences.Included = entities.appendAll("aud_inc", agg.Audiences.Included, record.Audiences.Included)
		agg.Audiences.Excluded = entities.appendAll("aud_exc", agg.Audiences.Excluded, record.Audiences.Excluded)
		agg.Locations.Included = entities.appendAll("loc_inc", agg.Locations.Included, record.Locations.Included)
		agg.Locations.Excluded = entities.appendAll("loc_exc", agg.Locations.Excluded, record.Locations.Excluded)
		agg.Interests = entities.appendAll("interest", agg.Interests, record.Interests)

		if record.Professional != nil {
			agg.Industries = entities.appendAll("industry", agg.Industries, record.Professional.Industries)
			agg.JobTitles = entities.appendAll("job", agg.JobTitles, record.Professional.JobTitles)
		}

		for _, kw := range record.Keywords {
			normalized := strings.ToLower(strings.TrimSpace(kw.Text))
			if normalized == "" {
				continue
			}
			if keywords.seen("kw:" + normalized) {
				continue
			}
			agg.Keywords = append(agg.Keywords, kw)
		}

		if len(record.PlatformPlacements) > 0 {
			if agg.PlatformPlacements == nil {
				agg.PlatformPlacements = make(map[string][]string)
			}
			for platform, values := range record.PlatformPlacements {
				agg.PlatformPlacements[platform] = scalars.appendAll("pp:"+platform, agg.PlatformPlacements[platform], values)
			}
		}
	}

	return agg
}

// stringDeduper controla strings já vistas por faceta.
type stringDeduper struct {
	seenKeys map[string]bool
}

func newStringDeduper() *stringDeduper {
	return &stringDeduper{seenKeys: make(map[string]bool)}
}

func (d *stringDeduper) seen(key string) bool {
	if d.seenKeys[key] {
		return true
	}
	d.seenKeys[key] = true
	return false
}

func (d *stringDeduper) appendAll(facet string, dst, values []string) []string {
	for _, v := range values {
		if d.seen(facet + ":" + v) {
			continue
		}
		dst = append(dst, v)
	}
	return dst
}

// entityDeduper controla entidades já vistas por faceta, chaveadas pelo ID.
type entityDeduper struct {
	seenKeys map[string]bool
}

func newEntityDeduper() *entityDeduper {
	return &entityDeduper{seenKeys: make(map[string]bool)}
}

func (d *entityDeduper) appendAll(facet string, dst, entities []domain.TargetingEntity) []domain.TargetingEntity {
	for _, e := range entities {
		key := facet + ":" + e.ID
		if d.seenKeys[key] {
			continue
		}
		d.seenKeys[key] = true
		dst = append(dst, e)
	}
	return dst
}
