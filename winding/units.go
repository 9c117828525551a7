package winding

import "math"

// Physical calibration of the winding drum and the copper coil form. The
// drum circumference ties encoder pulses to wound length; the coil radius and
// height feed the single-layer solenoid approximation.
const (
	// PulsesPerRev is the optical encoder resolution per drum revolution.
	PulsesPerRev = 100

	// DrumDiameterCM is the winding drum diameter in centimeters.
	DrumDiameterCM = 1.4

	// PulsesPerMeter converts between encoder pulses and meters of wound
	// material, derived from the drum circumference.
	PulsesPerMeter = PulsesPerRev / (math.Pi * DrumDiameterCM) * 100

	coilRadiusM = 0.014
	coilHeightM = 0.028
	mu0         = 4 * math.Pi * 1e-7
)

// Valid range for an inductance target. The selector clamps to these, so
// TurnsForInductance never sees a zero or negative input.
const (
	MinMillihenries = 10
	MaxMillihenries = 2000
)

// PulsesToMeters returns the length of material corresponding to an encoder
// pulse count.
func PulsesToMeters(pulses int) float64 {
	return float64(pulses) / PulsesPerMeter
}

// MetersToPulses returns the encoder pulse count corresponding to a length
// target, rounded to the nearest pulse.
func MetersToPulses(meters int) int {
	return int(math.Round(float64(meters) * PulsesPerMeter))
}

// TurnsForInductance approximates the drum turns needed to wind a
// single-layer solenoid of the requested inductance:
//
//	L = mu0 * N^2 * A / h  =>  N = sqrt(L*h / (mu0*A))
//
// with A the coil cross-section and h the winding height. The result is
// rounded to the nearest whole turn.
func TurnsForInductance(millihenries int) int {
	area := math.Pi * coilRadiusM * coilRadiusM
	henries := float64(millihenries) / 1000

	turns := math.Sqrt((henries * coilHeightM) / (mu0 * area))

	return int(math.Round(turns))
}
