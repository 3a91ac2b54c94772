package record

const (
	// SpeedStep is how much a single Accelerate or Brake changes speed.
	SpeedStep int64 = 10

	ReasonAlreadyStopped = "already stopped"
)

// Car has a fixed brand, model and year, and a speed that cannot drop
// below zero.
type Car struct {
	brand string
	model string
	year  int
	speed *Guarded
}

// NewCar builds a car travelling at speed. New cars start at 0; a
// non-zero speed is used when restoring a car from storage.
func NewCar(brand, model string, year int, speed int64) *Car {
	return &Car{
		brand: brand,
		model: model,
		year:  year,
		speed: NewGuarded("speed", speed).withReason(ReasonAlreadyStopped),
	}
}

func (c *Car) Brand() string { return c.brand }
func (c *Car) Model() string { return c.model }
func (c *Car) Year() int     { return c.year }
func (c *Car) Speed() int64  { return c.speed.Value() }

// Moving reports whether the car has a positive speed.
func (c *Car) Moving() bool { return c.speed.State() == Positive }

func (c *Car) Accelerate() Result {
	return c.speed.Increase(SpeedStep)
}

// Brake slows the car by one step. Braking a car that is already
// stopped is rejected and leaves the speed at zero.
func (c *Car) Brake() Result {
	return c.speed.Decrease(SpeedStep)
}
