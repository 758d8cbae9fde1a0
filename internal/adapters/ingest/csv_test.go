package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadOrdersCSV(t *testing.T) {
	path := writeFixture(t, "orders.csv",
		"1,1593677536,2,1800,77,TRUE,FALSE,FALSE,TRUE\n"+
			"2,1593677606,1,250,14,FALSE,TRUE,FALSE,FALSE\n")

	orders, err := LoadOrdersCSV(path)
	if err != nil {
		t.Fatalf("LoadOrdersCSV: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("loaded %d orders, want 2", len(orders))
	}

	first := orders[0]
	if first.OrderID != 1 || first.Timestamp != 1593677536 || first.Zone != 2 ||
		first.Weight != 1800 || first.CustomerID != 77 {
		t.Fatalf("first order parsed wrong: %+v", first)
	}
	if !first.Subscriber || first.Fragile || first.Hazardous || !first.Perishable {
		t.Fatalf("first order flags parsed wrong: %+v", first)
	}
	if !orders[1].Fragile || orders[1].Subscriber {
		t.Fatalf("second order flags parsed wrong: %+v", orders[1])
	}
}

func TestLoadOrdersCSVRejectsBadRows(t *testing.T) {
	cases := map[string]string{
		"short row":       "1,2,3\n",
		"non-numeric id":  "x,1,1,100,1,FALSE,FALSE,FALSE,FALSE\n",
		"negative weight": "1,1,1,-5,1,FALSE,FALSE,FALSE,FALSE\n",
		"negative zone":   "1,1,-2,100,1,FALSE,FALSE,FALSE,FALSE\n",
	}
	for name, content := range cases {
		path := writeFixture(t, "orders.csv", content)
		if _, err := LoadOrdersCSV(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadMatrixCSV(t *testing.T) {
	path := writeFixture(t, "distances.csv", "3\n0,10,15\n10,0,8\n15,8,0\n")

	cells, err := LoadMatrixCSV(path)
	if err != nil {
		t.Fatalf("LoadMatrixCSV: %v", err)
	}
	if len(cells) != 3 {
		t.Fatalf("loaded %d rows, want 3", len(cells))
	}
	if cells[0][1] != 10 || cells[1][2] != 8 || cells[2][2] != 0 {
		t.Fatalf("matrix cells parsed wrong: %v", cells)
	}
}

func TestLoadMatrixCSVRejectsShapeMismatch(t *testing.T) {
	cases := map[string]string{
		"missing rows": "3\n0,10,15\n10,0,8\n",
		"short row":    "2\n0,10\n10\n",
		"bad count":    "x\n0\n",
		"zero zones":   "0\n",
		"non-numeric":  "2\n0,a\n10,0\n",
		"empty file":   "",
	}
	for name, content := range cases {
		path := writeFixture(t, "distances.csv", content)
		if _, err := LoadMatrixCSV(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
