package model

type Project struct {
	ID           ID      `json:"id"`
	Name         string  `json:"name"`
	ClientID     *ID     `json:"clientId,omitempty"`
	TeamID       *ID     `json:"teamId,omitempty"`
	StartDate    *string `json:"startDate,omitempty"`
	EndDate      *string `json:"endDate,omitempty"`
	IsConfirmed  bool    `json:"isConfirmed"`
	IsTentative  bool    `json:"isTentative"`
	IsArchived   bool    `json:"isArchived"`
	PricingModel *int    `json:"pricingModel,omitempty"`
}

var pricingModelNames = map[int]string{
	0: "Time & Materials",
	1: "Fixed Price",
	2: "Non-Billable",
}

// PricingModelName resolves the numeric pricing code to its label. Unknown
// or missing codes resolve to nil.
func (p *Project) PricingModelName() *string {
	if p.PricingModel == nil {
		return nil
	}

	name, ok := pricingModelNames[*p.PricingModel]
	if !ok {
		return nil
	}

	return &name
}
