package telemetry

import (
	"testing"

	"road-hud/internal/hud"
)

func TestEngagementTransitions(t *testing.T) {
	d := NewDriveSim(7, true)

	if d.Status() != hud.StatusDisengaged {
		t.Fatal("sim must start disengaged")
	}
	if err := d.Override(); err == nil {
		t.Fatal("override from disengaged must be rejected")
	}
	if err := d.Engage(); err != nil {
		t.Fatalf("engage: %v", err)
	}
	if d.Status() != hud.StatusEngaged {
		t.Fatal("engage did not take effect")
	}
	if err := d.Override(); err != nil {
		t.Fatalf("override: %v", err)
	}
	if d.Status() != hud.StatusOverride {
		t.Fatal("override did not take effect")
	}
	if err := d.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	if err := d.Disengage(); err != nil {
		t.Fatalf("disengage: %v", err)
	}
	if d.Status() != hud.StatusDisengaged {
		t.Fatal("disengage did not take effect")
	}
}

func TestNextProducesSaneSnapshots(t *testing.T) {
	d := NewDriveSim(42, true)
	if err := d.Engage(); err != nil {
		t.Fatal(err)
	}

	var prevSeen bool
	for i := 0; i < 600; i++ {
		s := d.Next()
		if s.VEgo < 0 {
			t.Fatalf("tick %d: negative speed %v", i, s.VEgo)
		}
		if s.Battery.SOC < 0 || s.Battery.SOC > 100 {
			t.Fatalf("tick %d: SOC out of range: %v", i, s.Battery.SOC)
		}
		if prevSeen && !s.VEgoClusterSeen {
			t.Fatalf("tick %d: cluster-seen flag reverted", i)
		}
		prevSeen = s.VEgoClusterSeen
		if s.Battery.Capacity != packCapacityWh {
			t.Fatalf("tick %d: capacity drifted: %v", i, s.Battery.Capacity)
		}
	}
	if !prevSeen {
		t.Fatal("cluster speed never came up")
	}

	// After 30 simulated seconds engaged the car should be moving.
	if s := d.Next(); s.VEgo < 10 {
		t.Fatalf("engaged sim barely moved: %v m/s", s.VEgo)
	}
}

func TestSimDeterministic(t *testing.T) {
	a := NewDriveSim(9, false)
	b := NewDriveSim(9, false)
	for i := 0; i < 100; i++ {
		sa, sb := a.Next(), b.Next()
		if sa != sb {
			t.Fatalf("tick %d: sims with equal seeds diverged", i)
		}
	}
}

func TestHeaterThermostat(t *testing.T) {
	// Drive seeds until we find a cold start, then check the heater reacts.
	for seed := int64(0); seed < 50; seed++ {
		d := NewDriveSim(seed, true)
		if d.temp < heaterOnBelow {
			s := d.Next()
			if !s.BatteryHeaterEnabled {
				t.Fatalf("seed %d: cold pack (%.1f °C) must enable the heater", seed, d.temp)
			}
			if !s.Battery.HeaterActive {
				t.Fatalf("seed %d: enabled heater with charge must draw power", seed)
			}
			return
		}
	}
	t.Skip("no cold start in seed range")
}
