package metadomain

// DailyInsight é uma linha da resposta de insights com time_increment=1.
// A API do Meta devolve números como strings.
type DailyInsight struct {
	DateStart   string   `json:"date_start"`
	DateStop    string   `json:"date_stop"`
	Spend       string   `json:"spend"`
	Impressions string   `json:"impressions"`
	Clicks      string   `json:"clicks"`
	Reach       string   `json:"reach"`
	Actions     []Action `json:"actions"`
	ActionValue []Action `json:"action_values"`
}

// AdInsight é uma linha da resposta de insights com level=ad, agregada no
// período inteiro da consulta.
type AdInsight struct {
	AdID string `json:"ad_id"`
	DailyInsight
}

// Action é um par tipo/valor das ações reportadas pelo Meta.
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Conversions soma as ações de compra/conversão da linha.
func (d *DailyInsight) Conversions() []Action {
	out := make([]Action, 0)
	for _, a := range d.Actions {
		if a.ActionType == "purchase" || a.ActionType == "offsite_conversion.fb_pixel_purchase" || a.ActionType == "lead" {
			out = append(out, a)
		}
	}
	return out
}

// Revenue devolve os valores monetários associados às compras.
func (d *DailyInsight) Revenue() []Action {
	out := make([]Action, 0)
	for _, a := range d.ActionValue {
		if a.ActionType == "purchase" || a.ActionType == "offsite_conversion.fb_pixel_purchase" {
			out = append(out, a)
		}
	}
	return out
}
