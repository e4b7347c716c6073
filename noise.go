package daa

import (
	"errors"
	"math/rand"

	"github.com/gonum/matrix/mat64"
	"github.com/gonum/stat/distmv"
)

// errNoiseCovariance is reported when a requested noise covariance is not
// positive definite (should not occur for the diagonal covariances this
// file builds, but distmv.NewNormal can reject degenerate input).
var errNoiseCovariance = errors.New("daa: invalid noise covariance")

// NoiseModel injects Gaussian position/velocity noise into a
// TrafficState, used by test scenarios to exercise the bands engine
// against realistically jittery sensor reports rather than the exact
// synthetic ground truth. This is a test-data tool only: the core
// detection/bands pipeline never filters or estimates state on its own
// (spec.md's no-state-estimation non-goal applies to the engine, not to
// this scenario generator).
type NoiseModel struct {
	position *distmv.Normal
	velocity *distmv.Normal
	rng      *rand.Rand
}

// NewNoiseModel builds a NoiseModel with independent, zero-mean Gaussian
// noise on position (meters) and velocity (m/s) components, each with
// standard deviation sigmaPos / sigmaVel.
func NewNoiseModel(sigmaPos, sigmaVel float64, rng *rand.Rand) (*NoiseModel, error) {
	posCov := diagonal(3, sigmaPos*sigmaPos)
	velCov := diagonal(3, sigmaVel*sigmaVel)

	pos, ok := distmv.NewNormal([]float64{0, 0, 0}, posCov, rng)
	if !ok {
		return nil, errNoiseCovariance
	}
	vel, ok := distmv.NewNormal([]float64{0, 0, 0}, velCov, rng)
	if !ok {
		return nil, errNoiseCovariance
	}
	return &NoiseModel{position: pos, velocity: vel, rng: rng}, nil
}

func diagonal(n int, v float64) *mat64.SymDense {
	m := mat64.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		m.SetSym(i, i, v)
	}
	return m
}

// Perturb returns a copy of ts with independent Gaussian noise added to
// position and velocity.
func (n *NoiseModel) Perturb(ts TrafficState) TrafficState {
	dp := n.position.Rand(nil)
	dv := n.velocity.Rand(nil)
	ts.Position = Vect3{ts.Position.X + dp[0], ts.Position.Y + dp[1], ts.Position.Z + dp[2]}
	ts.Velocity = Velocity{Vect3{ts.Velocity.X + dv[0], ts.Velocity.Y + dv[1], ts.Velocity.Z + dv[2]}}
	return ts
}
