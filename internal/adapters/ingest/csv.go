package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"drone-dispatch-service/internal/domain"
)

// Orders arrive as headerless CSV rows of nine fields:
// order_id, timestamp, zone, weight, customer_id, subscriber, fragile,
// hazardous, perishable. Flags use the upstream TRUE/FALSE tokens; any
// other token reads as false.
const orderFieldCount = 9

// LoadOrdersCSV reads and validates an order feed file.
func LoadOrdersCSV(path string) ([]*domain.Order, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load orders: open %q: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = orderFieldCount

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("load orders: parse %q: %w", path, err)
	}

	orders := make([]*domain.Order, 0, len(records))
	for i, rec := range records {
		o, err := parseOrder(rec)
		if err != nil {
			return nil, fmt.Errorf("load orders: line %d: %w", i+1, err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func parseOrder(rec []string) (*domain.Order, error) {
	ints := make([]int64, 5)
	for i := range ints {
		v, err := strconv.ParseInt(rec[i], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		ints[i] = v
	}

	o := &domain.Order{
		OrderID:    int(ints[0]),
		Timestamp:  ints[1],
		Zone:       int(ints[2]),
		Weight:     int(ints[3]),
		CustomerID: int(ints[4]),
		Subscriber: rec[5] == "TRUE",
		Fragile:    rec[6] == "TRUE",
		Hazardous:  rec[7] == "TRUE",
		Perishable: rec[8] == "TRUE",
	}

	if o.Zone < 0 {
		return nil, fmt.Errorf("order %d: negative zone %d", o.OrderID, o.Zone)
	}
	if o.Weight < 0 {
		return nil, fmt.Errorf("order %d: negative weight %d", o.OrderID, o.Weight)
	}
	return o, nil
}

// LoadMatrixCSV reads a zone distance grid. The first line holds the zone
// count, each following line one row of distances in kilometers. Structural
// validation (squareness, symmetry, zero diagonal) belongs to the matrix
// adapter; this loader only shapes the data.
func LoadMatrixCSV(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load matrix: open %q: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("load matrix: parse %q: %w", path, err)
	}
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, fmt.Errorf("load matrix: %q: missing zone count line", path)
	}

	zones, err := strconv.Atoi(records[0][0])
	if err != nil {
		return nil, fmt.Errorf("load matrix: zone count: %w", err)
	}
	if zones <= 0 {
		return nil, fmt.Errorf("load matrix: zone count must be positive, got %d", zones)
	}
	if got := len(records) - 1; got != zones {
		return nil, fmt.Errorf("load matrix: expected %d rows, got %d", zones, got)
	}

	cells := make([][]float64, zones)
	for i, rec := range records[1:] {
		if len(rec) != zones {
			return nil, fmt.Errorf("load matrix: row %d: expected %d cells, got %d", i, zones, len(rec))
		}
		row := make([]float64, zones)
		for j, cell := range rec {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("load matrix: row %d cell %d: %w", i, j, err)
			}
			row[j] = v
		}
		cells[i] = row
	}
	return cells, nil
}
