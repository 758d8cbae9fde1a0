package services

import (
	"math"
	"testing"

	"drone-dispatch-service/internal/domain"
)

func TestFractionRequired(t *testing.T) {
	m := DefaultEnergyModel()

	got := m.FractionRequired(1000, 10)
	want := 10 * (1000 + 512.0) / 36739.0
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("FractionRequired(1000, 10) = %v, want %v", got, want)
	}

	if m.FractionRequired(0, 0) != 0 {
		t.Fatal("zero distance must consume nothing")
	}
	if m.FractionRequired(2000, 10) <= m.FractionRequired(1000, 10) {
		t.Fatal("consumption must grow with payload")
	}
	if m.FractionRequired(1000, 20) <= m.FractionRequired(1000, 10) {
		t.Fatal("consumption must grow with distance")
	}
}

func TestBuildTripReportReplaysReturnLeg(t *testing.T) {
	oracle := testOracle(t)
	trip := &domain.Trip{
		TripID: "t-1",
		Orders: []*domain.Order{
			{OrderID: 1, Zone: 1, Weight: 600},
			{OrderID: 2, Zone: 2, Weight: 400},
		},
	}

	report := BuildTripReport(oracle, DefaultEnergyModel(), trip)
	if report.OrderCount != 2 {
		t.Fatalf("OrderCount = %d, want 2", report.OrderCount)
	}
	// 0 -> 1 -> 2 -> 0 over the fixture matrix.
	if report.TotalDistanceKm != 10+8+15 {
		t.Fatalf("TotalDistanceKm = %v, want 33", report.TotalDistanceKm)
	}
	want := (10*(1000+512.0) + 8*(400+512.0) + 15*512.0) / 36739.0
	if math.Abs(report.BatteryUsed-want) > 1e-9 {
		t.Fatalf("BatteryUsed = %v, want %v", report.BatteryUsed, want)
	}
	if report.TripID != "t-1" {
		t.Fatalf("TripID = %q", report.TripID)
	}
}
