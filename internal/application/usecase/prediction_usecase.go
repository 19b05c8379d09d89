package usecase

import (
	"math"
	"sync"

	"github.com/costdash/cost-dashboard-go/internal/domain/entity"
	"github.com/costdash/cost-dashboard-go/internal/shared/types"
)

// Per-model adjustment applied on top of the historical baseline. The numbers
// only exist to make the two variants answer differently in the demo.
var modelAdjustment = map[entity.ModelKind]float64{
	entity.ModelSmall: 0.05,
	entity.ModelBig:   -0.03,
}

// PredictionUseCase is the placeholder AI panel: "training" records state and
// deterministic pseudo losses, and predictions are historical means with a
// model-dependent nudge. There is no real inference here and none is
// intended.
type PredictionUseCase struct {
	dataset *entity.Dataset

	mu      sync.RWMutex
	trained map[entity.ModelKind]bool
}

// NewPredictionUseCase creates a new prediction use case.
func NewPredictionUseCase(dataset *entity.Dataset) *PredictionUseCase {
	return &PredictionUseCase{
		dataset: dataset,
		trained: make(map[entity.ModelKind]bool),
	}
}

// Train marks the model trained and reports pseudo losses derived from the
// dataset size and the requested epochs, so repeated runs with the same
// inputs report the same numbers.
func (uc *PredictionUseCase) Train(model entity.ModelKind, epochs int, learningRate float64) (entity.TrainingResult, error) {
	if _, ok := modelAdjustment[model]; !ok {
		return entity.TrainingResult{}, types.ErrUnknownModel
	}
	if len(uc.dataset.Records) == 0 {
		return entity.TrainingResult{}, types.ErrEmptyDataset
	}
	if epochs <= 0 {
		epochs = 50
	}
	if learningRate <= 0 {
		learningRate = 0.001
	}

	// Loss curve shape only: decays with epochs, floors on dataset size.
	base := 1.0 / math.Log(float64(len(uc.dataset.Records))+math.E)
	trainLoss := base / (1 + float64(epochs)*learningRate*10)
	testLoss := trainLoss * 1.15
	if model == entity.ModelBig {
		testLoss = trainLoss * 1.05
	}

	uc.mu.Lock()
	uc.trained[model] = true
	uc.mu.Unlock()

	return entity.TrainingResult{
		Model:     model,
		Epochs:    epochs,
		TrainLoss: trainLoss,
		TestLoss:  testLoss,
	}, nil
}

// Status reports which model variants have been trained.
func (uc *PredictionUseCase) Status() entity.ModelStatus {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return entity.ModelStatus{
		SmallTrained: uc.trained[entity.ModelSmall],
		BigTrained:   uc.trained[entity.ModelBig],
	}
}

// Predict estimates the cost for one full dimension path: the historical mean
// of matching records (falling back to the overall mean when nothing matches)
// scaled by the model adjustment, never negative. The model must have been
// trained first.
func (uc *PredictionUseCase) Predict(model entity.ModelKind, region, country, division, service string) (entity.Prediction, error) {
	adjustment, ok := modelAdjustment[model]
	if !ok {
		return entity.Prediction{}, types.ErrUnknownModel
	}

	uc.mu.RLock()
	trained := uc.trained[model]
	uc.mu.RUnlock()
	if !trained {
		return entity.Prediction{}, types.ErrModelNotTrained
	}
	if len(uc.dataset.Records) == 0 {
		return entity.Prediction{}, types.ErrEmptyDataset
	}

	matchSum, matchCount := 0.0, 0
	overallSum := 0.0
	for _, r := range uc.dataset.Records {
		overallSum += r.Amount
		if r.Region == region && r.Country == country && r.Division == division && r.Service == service {
			matchSum += r.Amount
			matchCount++
		}
	}

	baseline := overallSum / float64(len(uc.dataset.Records))
	if matchCount > 0 {
		baseline = matchSum / float64(matchCount)
	}

	amount := baseline * (1 + adjustment)
	if amount < 0 {
		amount = 0
	}

	return entity.Prediction{
		Model:      model,
		Amount:     amount,
		Baseline:   baseline,
		MatchCount: matchCount,
	}, nil
}
