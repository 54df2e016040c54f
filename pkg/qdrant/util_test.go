package qdrant

import (
	"testing"

	pb "github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{Host: "localhost", Port: DefaultPort}.Validate())
	assert.ErrorIs(t, Config{Port: 6334}.Validate(), ErrInvalidConfig)
	assert.ErrorIs(t, Config{Host: "localhost", Port: 70000}.Validate(), ErrInvalidConfig)
}

func TestParseDistance(t *testing.T) {
	tests := []struct {
		in   string
		want pb.Distance
	}{
		{in: "cosine", want: pb.Distance_Cosine},
		{in: "Euclidean", want: pb.Distance_Euclid},
		{in: "DOT", want: pb.Distance_Dot},
		{in: "manhattan", want: pb.Distance_Manhattan},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDistance(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseDistance("hamming")
	assert.ErrorIs(t, err, ErrInvalidDistance)
}

func TestBatchSearchRequests(t *testing.T) {
	filter, err := NewMatchFilter("group", "g1")
	require.NoError(t, err)

	searches, err := batchSearchRequests("bench", [][]float32{{0.1, 0.2}, {0.3, 0.4}}, 0, filter)
	require.NoError(t, err)
	require.Len(t, searches, 2)
	for _, s := range searches {
		assert.Equal(t, "bench", s.GetCollectionName())
		assert.Equal(t, uint64(DefaultSearchLimit), s.GetLimit())
		assert.Same(t, filter, s.GetFilter())
	}
	assert.Equal(t, []float32{0.3, 0.4}, searches[1].GetVector())

	_, err = batchSearchRequests("bench", nil, 3, nil)
	assert.ErrorIs(t, err, ErrInvalidVector)

	_, err = batchSearchRequests("bench", [][]float32{{1}, {}}, 3, nil)
	assert.ErrorIs(t, err, ErrInvalidVector)
	assert.Contains(t, err.Error(), "query 1")
}

func TestPointID(t *testing.T) {
	t.Run("numeric", func(t *testing.T) {
		pid, err := ToPointID("42")
		require.NoError(t, err)
		assert.Equal(t, uint64(42), pid.GetNum())
		assert.Equal(t, "42", PointIDString(pid))
	})

	t.Run("uuid", func(t *testing.T) {
		const id = "5c56c793-69f3-4fbf-87e6-c4bf54c28c26"
		pid, err := ToPointID(id)
		require.NoError(t, err)
		assert.Equal(t, id, pid.GetUuid())
		assert.Equal(t, id, PointIDString(pid))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ToPointID("")
		assert.ErrorIs(t, err, ErrInvalidPointID)
		_, err = ToPointID("not-an-id")
		assert.ErrorIs(t, err, ErrInvalidPointID)
		_, err = ToPointID("-1")
		assert.ErrorIs(t, err, ErrInvalidPointID)
	})

	assert.Equal(t, "", PointIDString(nil))
}

func TestToPointStruct(t *testing.T) {
	ps, err := toPointStruct(Point{
		ID:     "2",
		Vector: []float32{0.19, 0.81, 0.75, 0.11},
		Payload: map[string]interface{}{
			"city":  []string{"Berlin", "London"},
			"count": []int{0},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), ps.GetId().GetNum())
	assert.Equal(t, []float32{0.19, 0.81, 0.75, 0.11}, ps.GetVectors().GetVector().GetData())

	payload := payloadToMap(ps.Payload)
	assert.Equal(t, []interface{}{"Berlin", "London"}, payload["city"])
	assert.Equal(t, []interface{}{int64(0)}, payload["count"])

	_, err = toPointStruct(Point{ID: "3"})
	assert.ErrorIs(t, err, ErrInvalidVector)
}

func TestValueToInterface(t *testing.T) {
	values, err := pb.TryValueMap(map[string]interface{}{
		"s": "Berlin",
		"i": int64(7),
		"f": 1.5,
		"b": true,
		"n": nil,
		"l": []interface{}{"a", int64(1)},
		"m": map[string]interface{}{"k": "v"},
	})
	require.NoError(t, err)

	got := payloadToMap(values)
	assert.Equal(t, "Berlin", got["s"])
	assert.Equal(t, int64(7), got["i"])
	assert.Equal(t, 1.5, got["f"])
	assert.Equal(t, true, got["b"])
	assert.Nil(t, got["n"])
	assert.Equal(t, []interface{}{"a", int64(1)}, got["l"])
	assert.Equal(t, map[string]interface{}{"k": "v"}, got["m"])
	assert.Nil(t, valueToInterface(nil))
}

func TestSearchResultsFromHits(t *testing.T) {
	hits := []*pb.ScoredPoint{
		{Id: &pb.PointId{PointIdOptions: &pb.PointId_Num{Num: 4}}, Score: 1.362},
		{Id: &pb.PointId{PointIdOptions: &pb.PointId_Num{Num: 1}}, Score: 1.273},
	}
	results := searchResultsFromHits(hits)
	require.Len(t, results, 2)
	assert.Equal(t, "4", results[0].ID)
	assert.Equal(t, float32(1.362), results[0].Score)
	assert.Equal(t, "1", results[1].ID)
}

func TestCollectionInfoFromResult(t *testing.T) {
	count := uint64(6)
	info := collectionInfoFromResult("test_collection", &pb.CollectionInfo{
		Status:      pb.CollectionStatus_Green,
		PointsCount: &count,
		Config: &pb.CollectionConfig{
			Params: &pb.CollectionParams{
				VectorsConfig: &pb.VectorsConfig{
					Config: &pb.VectorsConfig_Params{
						Params: &pb.VectorParams{Size: 4, Distance: pb.Distance_Dot},
					},
				},
			},
		},
	})

	assert.Equal(t, &CollectionInfo{
		Name:        "test_collection",
		Status:      StatusGreen,
		PointsCount: 6,
		VectorSize:  4,
		Distance:    "Dot",
	}, info)
}

func TestUpdateResultFromResponse(t *testing.T) {
	opID := uint64(9)
	got := updateResultFromResponse(&pb.PointsOperationResponse{
		Result: &pb.UpdateResult{OperationId: &opID, Status: pb.UpdateStatus_Completed},
	})
	assert.Equal(t, &UpdateResult{OperationID: 9, Status: StatusCompleted}, got)
	assert.Equal(t, &UpdateResult{}, updateResultFromResponse(&pb.PointsOperationResponse{}))
}
