// Package pricing turns a service configuration into cost, price and
// profit figures. Everything here is pure: no clock, no I/O, no state.
package pricing

import (
	"math"

	"studioflow/internal/domain/entities"
)

// HealthStatus classifies the price-to-cost ratio of a calculation.
type HealthStatus string

const (
	HealthDanger  HealthStatus = "danger"
	HealthWarning HealthStatus = "warning"
	HealthGood    HealthStatus = "good"
)

// Input carries one complete pricing request. Template must be the
// resolved template of the service (office override already applied).
type Input struct {
	ServiceID    string
	Mode         entities.CalcMode
	Area         float64
	Rooms        []entities.Room
	ComplexityID string
	FinishID     string

	HourlyCost    float64
	MarginPercent float64

	Template entities.ServiceTemplate
}

// Result is the full output of one calculation.
type Result struct {
	EstimatedHours int     `json:"estimated_hours"`
	CostValue      float64 `json:"cost_value"`

	MinPrice      float64 `json:"min_price"`
	AdequatePrice float64 `json:"adequate_price"`
	IdealPrice    float64 `json:"ideal_price"`

	FinalValue      float64      `json:"final_value"`
	Profit          float64      `json:"profit"`
	HourlyRate      float64      `json:"hourly_rate"`
	PriceMultiplier float64      `json:"price_multiplier"`
	Health          HealthStatus `json:"health"`
}

// Calculator prices one service configuration. A nil result means the
// inputs are not computable yet (no area, no rooms); callers treat that as
// absence, never as an error.
type Calculator interface {
	Calculate(in Input) *Result
}

// calculators maps service ids to their pricing strategy. Interior design
// supports room-mode pricing; everything else scales by area only.
var calculators = map[string]Calculator{
	"interiores":  baseCalculator{roomPricing: true},
	"arquitetura": baseCalculator{},
	"paisagismo":  baseCalculator{},
}

// ForService resolves the calculator for a service id. Unknown services
// get the area-based strategy.
func ForService(serviceID string) Calculator {
	if c, ok := calculators[serviceID]; ok {
		return c
	}
	return baseCalculator{}
}

type baseCalculator struct {
	roomPricing bool
}

func (c baseCalculator) Calculate(in Input) *Result {
	if in.ServiceID == "" || len(in.Template.Phases) == 0 {
		return nil
	}

	cf := ComplexityFactor(in.ComplexityID)
	ff := FinishFactor(in.FinishID)
	baseHours := float64(in.Template.TotalHours())

	var hours int
	baseValue := 0.0

	switch in.Mode {
	case entities.CalcModeRoom:
		if len(in.Rooms) == 0 {
			return nil
		}
		if c.roomPricing {
			for _, r := range in.Rooms {
				baseValue += RoomPrice(r)
			}
		}
		baseRooms := float64(in.Template.BaseRooms)
		if baseRooms <= 0 {
			baseRooms = 1
		}
		hours = int(math.Round(float64(len(in.Rooms)) * baseHours / baseRooms * cf))
	default:
		if in.Area <= 0 {
			return nil
		}
		baseArea := in.Template.BaseArea
		if baseArea <= 0 {
			baseArea = in.Area
		}
		hours = int(math.Round(baseHours * (in.Area / baseArea) * cf))
	}

	cost := float64(hours) * in.HourlyCost

	res := &Result{
		EstimatedHours: hours,
		CostValue:      cost,
		MinPrice:       2 * cost,
		AdequatePrice:  2.5 * cost,
		IdealPrice:     3 * cost,
	}

	if in.Mode == entities.CalcModeRoom && baseValue > 0 {
		res.FinalValue = baseValue * ff
	} else {
		res.FinalValue = cost * (1 + in.MarginPercent/100) * ff
	}
	// Price floor: never quote below twice the cost.
	if res.FinalValue < res.MinPrice {
		res.FinalValue = res.MinPrice
	}

	res.Profit = res.FinalValue - res.CostValue
	if hours > 0 {
		res.HourlyRate = res.FinalValue / float64(hours)
	}
	if cost > 0 {
		res.PriceMultiplier = res.FinalValue / cost
	}
	res.Health = healthOf(res.PriceMultiplier)

	return res
}

func healthOf(multiplier float64) HealthStatus {
	switch {
	case multiplier < 2:
		return HealthDanger
	case multiplier < 2.5:
		return HealthWarning
	default:
		return HealthGood
	}
}
