package db

import (
	"testing"

	"github.com/banshee-data/cash.report/internal/cash"
)

// TestInsertAndListPoints tests the round trip through the points table.
func TestInsertAndListPoints(t *testing.T) {
	database := setupTestDB(t)

	points := []cash.Point{
		{ID: 1, Attrs: []float64{1.5, -2.25}},
		{ID: 2, Attrs: []float64{0, 0}},
		{ID: 3, Attrs: []float64{13.37, 42}},
	}
	if err := database.InsertPoints(points); err != nil {
		t.Fatalf("InsertPoints failed: %v", err)
	}

	count, err := database.CountPoints()
	if err != nil {
		t.Fatalf("CountPoints failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 points, got %d", count)
	}

	got, err := database.ListPoints()
	if err != nil {
		t.Fatalf("ListPoints failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 points, got %d", len(got))
	}
	for i := range points {
		if got[i].ID != points[i].ID {
			t.Errorf("Point %d: expected id %d, got %d", i, points[i].ID, got[i].ID)
		}
		if len(got[i].Attrs) != len(points[i].Attrs) {
			t.Fatalf("Point %d: attribute count mismatch", i)
		}
		for j := range points[i].Attrs {
			if got[i].Attrs[j] != points[i].Attrs[j] {
				t.Errorf("Point %d attr %d: expected %v, got %v", i, j, points[i].Attrs[j], got[i].Attrs[j])
			}
		}
	}
}

// TestListPointsOrderedByID verifies the snapshot order is stable.
func TestListPointsOrderedByID(t *testing.T) {
	database := setupTestDB(t)

	points := []cash.Point{
		{ID: 30, Attrs: []float64{3}},
		{ID: 10, Attrs: []float64{1}},
		{ID: 20, Attrs: []float64{2}},
	}
	if err := database.InsertPoints(points); err != nil {
		t.Fatalf("InsertPoints failed: %v", err)
	}

	got, err := database.ListPoints()
	if err != nil {
		t.Fatalf("ListPoints failed: %v", err)
	}

	wantOrder := []int64{10, 20, 30}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("Position %d: expected id %d, got %d", i, id, got[i].ID)
		}
	}
}

// TestInsertPointsDuplicateID tests primary key enforcement.
func TestInsertPointsDuplicateID(t *testing.T) {
	database := setupTestDB(t)

	if err := database.InsertPoints([]cash.Point{{ID: 1, Attrs: []float64{1}}}); err != nil {
		t.Fatalf("InsertPoints failed: %v", err)
	}
	if err := database.InsertPoints([]cash.Point{{ID: 1, Attrs: []float64{2}}}); err == nil {
		t.Error("Expected duplicate id insert to fail")
	}
}

// TestDeleteAllPoints tests clearing the table before re-ingest.
func TestDeleteAllPoints(t *testing.T) {
	database := setupTestDB(t)

	if err := database.InsertPoints([]cash.Point{
		{ID: 1, Attrs: []float64{1}},
		{ID: 2, Attrs: []float64{2}},
	}); err != nil {
		t.Fatalf("InsertPoints failed: %v", err)
	}

	if err := database.DeleteAllPoints(); err != nil {
		t.Fatalf("DeleteAllPoints failed: %v", err)
	}

	count, err := database.CountPoints()
	if err != nil {
		t.Fatalf("CountPoints failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 points after delete, got %d", count)
	}
}
