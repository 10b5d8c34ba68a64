package entities

// TeamMember is one roster entry of an office.
type TeamMember struct {
	Name         string  `json:"name"`
	Salary       float64 `json:"salary"`
	MonthlyHours float64 `json:"monthly_hours"`
}

// FixedCost is one recurring cost line item (rent, software, ...).
type FixedCost struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// OfficeProfile holds the office-level inputs consumed by the pricing model.
//
// The engine reads this as a snapshot; it is mutated only by settings
// operations outside the core.
type OfficeProfile struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Team          []TeamMember `json:"team"`
	FixedCosts    []FixedCost  `json:"fixed_costs"`
	MarginPercent float64      `json:"margin_percent"`
}

// HourlyCost derives the blended office overhead rate:
// (sum of salaries + sum of fixed costs) / sum of member hours.
// Returns 0 when the roster carries no hours.
func (o OfficeProfile) HourlyCost() float64 {
	var costs, hours float64
	for _, m := range o.Team {
		costs += m.Salary
		hours += m.MonthlyHours
	}
	for _, c := range o.FixedCosts {
		costs += c.Value
	}
	if hours <= 0 {
		return 0
	}
	return costs / hours
}
