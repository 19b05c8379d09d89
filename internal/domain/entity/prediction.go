package entity

// ModelKind selects one of the two placeholder predictor variants.
type ModelKind string

const (
	ModelSmall ModelKind = "small"
	ModelBig   ModelKind = "big"
)

// TrainingResult reports the outcome of one training run of the placeholder
// predictor. Losses are deterministic pseudo-values, not real model metrics.
type TrainingResult struct {
	Model     ModelKind `json:"model"`
	Epochs    int       `json:"epochs"`
	TrainLoss float64   `json:"train_loss"`
	TestLoss  float64   `json:"test_loss"`
}

// ModelStatus reports whether each predictor variant has been trained.
type ModelStatus struct {
	SmallTrained bool `json:"small_trained"`
	BigTrained   bool `json:"big_trained"`
}

// Prediction is the placeholder cost estimate for one full dimension path.
type Prediction struct {
	Model      ModelKind `json:"model"`
	Amount     float64   `json:"amount"`
	Baseline   float64   `json:"baseline"`
	MatchCount int       `json:"match_count"`
}
