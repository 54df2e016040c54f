package usecase

import "vectordb/internal/model"

const (
	vectorSize  = 4
	searchLimit = 3

	filterKey   = "city"
	filterValue = "London"

	expectedSearchHits   = 3
	expectedFilteredHits = 2
)

var queryVector = []float32{0.2, 0.1, 0.9, 0.7}

func samplePoints() []model.Point {
	return []model.Point{
		{ID: "1", Vector: []float32{0.05, 0.61, 0.76, 0.74}, Payload: map[string]interface{}{"city": "Berlin"}},
		{ID: "2", Vector: []float32{0.19, 0.81, 0.75, 0.11}, Payload: map[string]interface{}{"city": []interface{}{"Berlin", "London"}}},
		{ID: "3", Vector: []float32{0.36, 0.55, 0.47, 0.94}, Payload: map[string]interface{}{"city": []interface{}{"Berlin", "Moscow"}}},
		{ID: "4", Vector: []float32{0.18, 0.01, 0.85, 0.80}, Payload: map[string]interface{}{"city": []interface{}{"London", "Moscow"}}},
		{ID: "5", Vector: []float32{0.24, 0.18, 0.22, 0.44}, Payload: map[string]interface{}{"count": []interface{}{int64(0)}}},
		{ID: "6", Vector: []float32{0.35, 0.08, 0.11, 0.44}},
	}
}
