package colony

import (
	"errors"
	"fmt"

	"hivesim/internal/domain/world"

	"github.com/paulmach/orb"
)

const (
	DefaultAgentSpeed  = 2.0
	DefaultAgentRadius = 5.0

	DefaultResourceMaxAmount      = 100
	DefaultResourceCollectionRate = 20

	DefaultScanRadius            = 50.0
	DefaultReturnThreshold       = 400.0
	DefaultHomeArrivalRadius     = 30.0
	DefaultMinDistanceFromOrigin = 50.0
	DefaultQuadrantStep          = 100.0
	DefaultWaypointReachedRadius = 5.0
	DefaultModeSwitchChance      = 0.05

	DefaultSpiralAngleStep  = 0.2
	DefaultSpiralRadiusStep = 10.0
	DefaultSpiralMaxRadius  = 200.0

	DefaultCollectRadius         = 10.0
	DefaultDepositRadius         = 20.0
	DefaultMaxCollectionAttempts = 5
	DefaultDepositWaitTicks      = 20

	DefaultDetectionRadius = 100.0
	DefaultCaptureRadius   = 10.0
	DefaultSpawnChance     = 0.01

	DefaultScouts             = 3
	DefaultCollectors         = 5
	DefaultGuardians          = 4
	DefaultResources          = 5
	DefaultGuardianRingRadius = 50.0
)

var ErrInvalidConfig = errors.New("invalid colony config")

// Config carries every tunable of the colony. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	Arena   world.Arena
	SafeBox float64

	AgentSpeed  float64
	AgentRadius float64

	ResourceMaxAmount      int
	ResourceCollectionRate int

	ScanRadius            float64
	ReturnThreshold       float64
	HomeArrivalRadius     float64
	MinDistanceFromOrigin float64
	QuadrantStep          float64
	WaypointReachedRadius float64
	ModeSwitchChance      float64

	SpiralAngleStep  float64
	SpiralRadiusStep float64
	SpiralMaxRadius  float64

	CollectRadius         float64
	DepositRadius         float64
	MaxCollectionAttempts int
	DepositWaitTicks      int

	DetectionRadius float64
	CaptureRadius   float64
	SpawnChance     float64

	Scouts             int
	Collectors         int
	Guardians          int
	Resources          int
	GuardianRingRadius float64
}

func DefaultConfig() Config {
	return Config{
		Arena:   world.DefaultArena(),
		SafeBox: world.DefaultSafeMargin,

		AgentSpeed:  DefaultAgentSpeed,
		AgentRadius: DefaultAgentRadius,

		ResourceMaxAmount:      DefaultResourceMaxAmount,
		ResourceCollectionRate: DefaultResourceCollectionRate,

		ScanRadius:            DefaultScanRadius,
		ReturnThreshold:       DefaultReturnThreshold,
		HomeArrivalRadius:     DefaultHomeArrivalRadius,
		MinDistanceFromOrigin: DefaultMinDistanceFromOrigin,
		QuadrantStep:          DefaultQuadrantStep,
		WaypointReachedRadius: DefaultWaypointReachedRadius,
		ModeSwitchChance:      DefaultModeSwitchChance,

		SpiralAngleStep:  DefaultSpiralAngleStep,
		SpiralRadiusStep: DefaultSpiralRadiusStep,
		SpiralMaxRadius:  DefaultSpiralMaxRadius,

		CollectRadius:         DefaultCollectRadius,
		DepositRadius:         DefaultDepositRadius,
		MaxCollectionAttempts: DefaultMaxCollectionAttempts,
		DepositWaitTicks:      DefaultDepositWaitTicks,

		DetectionRadius: DefaultDetectionRadius,
		CaptureRadius:   DefaultCaptureRadius,
		SpawnChance:     DefaultSpawnChance,

		Scouts:             DefaultScouts,
		Collectors:         DefaultCollectors,
		Guardians:          DefaultGuardians,
		Resources:          DefaultResources,
		GuardianRingRadius: DefaultGuardianRingRadius,
	}
}

func (c Config) Validate() error {
	if c.Arena.Width() <= 0 || c.Arena.Height() <= 0 {
		return fmt.Errorf("%w: arena must have positive size", ErrInvalidConfig)
	}
	if 2*c.SafeBox >= c.Arena.Width() || 2*c.SafeBox >= c.Arena.Height() || c.SafeBox < 0 {
		return fmt.Errorf("%w: safe box margin %v does not fit arena", ErrInvalidConfig, c.SafeBox)
	}
	positive := map[string]float64{
		"agent_speed":          c.AgentSpeed,
		"scan_radius":          c.ScanRadius,
		"return_threshold":     c.ReturnThreshold,
		"home_arrival_radius":  c.HomeArrivalRadius,
		"quadrant_step":        c.QuadrantStep,
		"spiral_radius_step":   c.SpiralRadiusStep,
		"spiral_max_radius":    c.SpiralMaxRadius,
		"collect_radius":       c.CollectRadius,
		"deposit_radius":       c.DepositRadius,
		"detection_radius":     c.DetectionRadius,
		"capture_radius":       c.CaptureRadius,
		"waypoint_reached":     c.WaypointReachedRadius,
		"resource_max_amount":  float64(c.ResourceMaxAmount),
		"resource_collect":     float64(c.ResourceCollectionRate),
		"max_collect_attempts": float64(c.MaxCollectionAttempts),
	}
	for name, v := range positive {
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, name)
		}
	}
	if c.DepositWaitTicks < 0 {
		return fmt.Errorf("%w: deposit_wait_ticks must not be negative", ErrInvalidConfig)
	}
	if c.Scouts < 0 || c.Collectors < 0 || c.Guardians < 0 || c.Resources < 0 {
		return fmt.Errorf("%w: agent and resource counts must not be negative", ErrInvalidConfig)
	}
	for name, p := range map[string]float64{"mode_switch_chance": c.ModeSwitchChance, "spawn_chance": c.SpawnChance} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: %s must be within [0,1]", ErrInvalidConfig, name)
		}
	}
	return nil
}

func (c Config) safeBox() orb.Bound {
	return c.Arena.Inset(c.SafeBox)
}
