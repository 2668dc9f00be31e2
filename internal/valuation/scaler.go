package valuation

import (
	"gonum.org/v1/gonum/stat"

	"homeverse/server/internal/models"
)

// Scaler standardizes features to zero mean and unit variance using the
// population statistics of the data it was fitted on.
type Scaler struct {
	Mean  models.FeatureVector
	Scale models.FeatureVector
}

func FitScaler(rows []models.FeatureVector) *Scaler {
	s := &Scaler{}
	if len(rows) == 0 {
		for i := range s.Scale {
			s.Scale[i] = 1
		}
		return s
	}

	column := make([]float64, len(rows))
	for f := 0; f < models.FeatureCount; f++ {
		for i, row := range rows {
			column[i] = row[f]
		}
		mean, std := stat.PopMeanStdDev(column, nil)
		s.Mean[f] = mean
		// Constant features are left unscaled
		if std == 0 {
			std = 1
		}
		s.Scale[f] = std
	}
	return s
}

func (s *Scaler) Transform(fv models.FeatureVector) models.FeatureVector {
	var out models.FeatureVector
	for i := range fv {
		out[i] = (fv[i] - s.Mean[i]) / s.Scale[i]
	}
	return out
}

func (s *Scaler) TransformAll(rows []models.FeatureVector) []models.FeatureVector {
	out := make([]models.FeatureVector, len(rows))
	for i, row := range rows {
		out[i] = s.Transform(row)
	}
	return out
}
