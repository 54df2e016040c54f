package qdrant

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	pb "github.com/qdrant/go-client/qdrant"
)

// Validate validates the Qdrant configuration
func (cfg Config) Validate() error {
	if cfg.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidConfig)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("%w: invalid port number", ErrInvalidConfig)
	}
	return nil
}

// ParseDistance maps a metric name to the Qdrant distance enum.
func ParseDistance(metric string) (pb.Distance, error) {
	switch strings.ToLower(metric) {
	case DistanceCosine:
		return pb.Distance_Cosine, nil
	case DistanceEuclidean:
		return pb.Distance_Euclid, nil
	case DistanceDot:
		return pb.Distance_Dot, nil
	case DistanceManhattan:
		return pb.Distance_Manhattan, nil
	default:
		return pb.Distance_UnknownDistance, fmt.Errorf("%w: %q", ErrInvalidDistance, metric)
	}
}

// ToPointID converts a string ID into a Qdrant point ID. Decimal strings become
// numeric IDs, anything else must be a UUID.
func ToPointID(id string) (*pb.PointId, error) {
	if id == "" {
		return nil, ErrInvalidPointID
	}
	if num, err := strconv.ParseUint(id, 10, 64); err == nil {
		return &pb.PointId{PointIdOptions: &pb.PointId_Num{Num: num}}, nil
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPointID, id)
	}
	return &pb.PointId{PointIdOptions: &pb.PointId_Uuid{Uuid: id}}, nil
}

// PointIDString is the inverse of ToPointID.
func PointIDString(id *pb.PointId) string {
	if id == nil {
		return ""
	}
	switch v := id.PointIdOptions.(type) {
	case *pb.PointId_Num:
		return strconv.FormatUint(v.Num, 10)
	case *pb.PointId_Uuid:
		return v.Uuid
	default:
		return ""
	}
}

func toPointStruct(point Point) (*pb.PointStruct, error) {
	pid, err := ToPointID(point.ID)
	if err != nil {
		return nil, err
	}
	if len(point.Vector) == 0 {
		return nil, ErrInvalidVector
	}
	payloadMap, err := pb.TryValueMap(normalizePayload(point.Payload))
	if err != nil {
		return nil, WrapError(err, "failed to convert payload")
	}
	return &pb.PointStruct{
		Id:      pid,
		Vectors: &pb.Vectors{VectorsOptions: &pb.Vectors_Vector{Vector: &pb.Vector{Data: point.Vector}}},
		Payload: payloadMap,
	}, nil
}

// normalizePayload turns typed slices into []interface{} so list-valued
// payload fields convert cleanly.
func normalizePayload(payload map[string]interface{}) map[string]interface{} {
	if payload == nil {
		return map[string]interface{}{}
	}
	out := make(map[string]interface{}, len(payload))
	for k, v := range payload {
		switch list := v.(type) {
		case []string:
			items := make([]interface{}, len(list))
			for i, s := range list {
				items[i] = s
			}
			out[k] = items
		case []int:
			items := make([]interface{}, len(list))
			for i, n := range list {
				items[i] = int64(n)
			}
			out[k] = items
		case []int64:
			items := make([]interface{}, len(list))
			for i, n := range list {
				items[i] = n
			}
			out[k] = items
		case []float64:
			items := make([]interface{}, len(list))
			for i, f := range list {
				items[i] = f
			}
			out[k] = items
		default:
			out[k] = v
		}
	}
	return out
}

func payloadToMap(payload map[string]*pb.Value) map[string]interface{} {
	out := make(map[string]interface{}, len(payload))
	for key, value := range payload {
		out[key] = valueToInterface(value)
	}
	return out
}

// valueToInterface converts a Qdrant payload value to plain Go types.
func valueToInterface(v *pb.Value) interface{} {
	if v == nil {
		return nil
	}
	switch kind := v.GetKind().(type) {
	case *pb.Value_NullValue:
		return nil
	case *pb.Value_BoolValue:
		return kind.BoolValue
	case *pb.Value_IntegerValue:
		return kind.IntegerValue
	case *pb.Value_DoubleValue:
		return kind.DoubleValue
	case *pb.Value_StringValue:
		return kind.StringValue
	case *pb.Value_ListValue:
		values := kind.ListValue.GetValues()
		list := make([]interface{}, 0, len(values))
		for _, item := range values {
			list = append(list, valueToInterface(item))
		}
		return list
	case *pb.Value_StructValue:
		return payloadToMap(kind.StructValue.GetFields())
	default:
		return nil
	}
}

// batchSearchRequests builds one SearchPoints request per query vector.
func batchSearchRequests(collectionName string, vectors [][]float32, limit uint64, filter *pb.Filter) ([]*pb.SearchPoints, error) {
	if len(vectors) == 0 {
		return nil, ErrInvalidVector
	}
	if limit == 0 {
		limit = DefaultSearchLimit
	}
	searches := make([]*pb.SearchPoints, 0, len(vectors))
	for i, vector := range vectors {
		if len(vector) == 0 {
			return nil, fmt.Errorf("%w: query %d is empty", ErrInvalidVector, i)
		}
		searches = append(searches, &pb.SearchPoints{
			CollectionName: collectionName,
			Vector:         vector,
			Limit:          limit,
			Filter:         filter,
			WithPayload:    &pb.WithPayloadSelector{SelectorOptions: &pb.WithPayloadSelector_Enable{Enable: true}},
		})
	}
	return searches, nil
}

// searchResultsFromHits maps Qdrant hit results to SearchResult slice.
func searchResultsFromHits(hits []*pb.ScoredPoint) []SearchResult {
	results := make([]SearchResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, SearchResult{
			ID:      PointIDString(hit.Id),
			Score:   hit.Score,
			Payload: payloadToMap(hit.Payload),
		})
	}
	return results
}

func collectionInfoFromResult(name string, result *pb.CollectionInfo) *CollectionInfo {
	info := &CollectionInfo{
		Name:        name,
		Status:      result.Status.String(),
		PointsCount: result.GetPointsCount(),
	}
	if result.Config != nil && result.Config.Params != nil {
		if vectorConfig := result.Config.Params.VectorsConfig; vectorConfig != nil {
			if params := vectorConfig.GetParams(); params != nil {
				info.VectorSize = params.Size
				info.Distance = params.Distance.String()
			}
		}
	}
	return info
}

func updateResultFromResponse(resp *pb.PointsOperationResponse) *UpdateResult {
	result := resp.GetResult()
	if result == nil {
		return &UpdateResult{}
	}
	return &UpdateResult{
		OperationID: result.GetOperationId(),
		Status:      result.Status.String(),
	}
}
