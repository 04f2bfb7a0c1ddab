package consts

const (
	TransientPoints = 1000 // Fixed RK4 sample count
	SweepPoints     = 500  // Bode sweep point count
	SweepStartHz    = 1.0
	SweepStopHz     = 1e6
	LocusSamples    = 50

	PoleAxisTol   = 1e-9 // Imaginary-axis tolerance on Re(p)
	SettleBand    = 0.02 // +-2% settling band
	OvershootGate = 1e-6 // |final| below this: overshoot undefined
)
