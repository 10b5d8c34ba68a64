package pricing

import "studioflow/internal/domain/entities"

// Static multiplier tables shared by all calculators. Unknown ids resolve
// to a neutral factor so a stale budget never fails to price.

var complexityFactors = map[string]float64{
	"baixa": 0.8,
	"media": 1.0,
	"alta":  1.3,
}

var finishFactors = map[string]float64{
	"essencial": 1.0,
	"conforto":  1.2,
	"premium":   1.4,
}

var roomPrices = map[entities.RoomSize]float64{
	entities.RoomSizeP: 1200,
	entities.RoomSizeM: 2000,
	entities.RoomSizeG: 2800,
}

// environmentFactors adjust room pricing per environment type (wet areas
// carry more detailing). Applied only when a room names its environment.
var environmentFactors = map[string]float64{
	"sala":     1.0,
	"quarto":   1.0,
	"cozinha":  1.2,
	"banheiro": 1.15,
	"gourmet":  1.25,
}

// ComplexityFactor resolves a complexity id, defaulting to 1.0.
func ComplexityFactor(id string) float64 {
	if f, ok := complexityFactors[id]; ok {
		return f
	}
	return 1.0
}

// FinishFactor resolves a finish id, defaulting to 1.0.
func FinishFactor(id string) float64 {
	if f, ok := finishFactors[id]; ok {
		return f
	}
	return 1.0
}

// RoomPrice resolves the base price of one room by size class and
// environment type. Unknown sizes price as M.
func RoomPrice(r entities.Room) float64 {
	price, ok := roomPrices[r.Size]
	if !ok {
		price = roomPrices[entities.RoomSizeM]
	}
	if f, ok := environmentFactors[r.Type]; ok {
		price *= f
	}
	return price
}
