package metrics

const (
	namespace = "vectordb"

	labelFlow  = "flow"
	labelStage = "stage"
)
