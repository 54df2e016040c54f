package qdrant

import (
	"fmt"

	pb "github.com/qdrant/go-client/qdrant"
)

// NewMatchFilter builds a filter requiring key to equal value exactly. Values
// may be strings, booleans or integers. List-valued payload fields match when
// any element equals value.
func NewMatchFilter(key string, value interface{}) (*pb.Filter, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: key is required", ErrInvalidFilter)
	}

	match := &pb.Match{}
	switch v := value.(type) {
	case string:
		match.MatchValue = &pb.Match_Keyword{Keyword: v}
	case bool:
		match.MatchValue = &pb.Match_Boolean{Boolean: v}
	case int:
		match.MatchValue = &pb.Match_Integer{Integer: int64(v)}
	case int64:
		match.MatchValue = &pb.Match_Integer{Integer: v}
	default:
		return nil, fmt.Errorf("%w: unsupported match value %T", ErrInvalidFilter, value)
	}

	return &pb.Filter{
		Must: []*pb.Condition{
			{
				ConditionOneOf: &pb.Condition_Field{
					Field: &pb.FieldCondition{Key: key, Match: match},
				},
			},
		},
	}, nil
}
