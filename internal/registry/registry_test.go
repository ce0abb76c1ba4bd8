package registry

import (
	"errors"
	"testing"

	"costshift/internal/model"
)

func TestNewRegistryValidation(t *testing.T) {
	tests := []struct {
		name       string
		categories []model.Category
		wantErr    bool
	}{
		{
			name: "valid pair",
			categories: []model.Category{
				{ID: "shell", Name: "Shell", BasePercent: 60},
				{ID: "fitout", Name: "Fit-out", BasePercent: 40},
			},
		},
		{
			name:       "empty set",
			categories: nil,
			wantErr:    true,
		},
		{
			name: "sum off by one",
			categories: []model.Category{
				{ID: "shell", Name: "Shell", BasePercent: 60},
				{ID: "fitout", Name: "Fit-out", BasePercent: 41},
			},
			wantErr: true,
		},
		{
			name: "duplicate id",
			categories: []model.Category{
				{ID: "shell", Name: "Shell", BasePercent: 50},
				{ID: "shell", Name: "Shell Again", BasePercent: 50},
			},
			wantErr: true,
		},
		{
			name: "empty id",
			categories: []model.Category{
				{ID: "", Name: "Mystery", BasePercent: 100},
			},
			wantErr: true,
		},
		{
			name: "negative baseline",
			categories: []model.Category{
				{ID: "shell", Name: "Shell", BasePercent: 110},
				{ID: "fitout", Name: "Fit-out", BasePercent: -10},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.categories)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewRegistry() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultRegistry(t *testing.T) {
	reg := Default()
	if reg.Len() != 8 {
		t.Fatalf("default registry has %d categories, want 8", reg.Len())
	}

	sum := 0.0
	for _, v := range reg.BasePercents() {
		sum += v
	}
	if sum != 100 {
		t.Errorf("default baselines sum to %v, want 100", sum)
	}

	c, err := reg.Lookup("mechanical")
	if err != nil {
		t.Fatalf("Lookup(mechanical): %v", err)
	}
	if c.BasePercent != 18 {
		t.Errorf("mechanical baseline = %v, want 18", c.BasePercent)
	}

	if _, err := reg.Lookup("landscaping"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("Lookup(landscaping) err = %v, want ErrUnknownCategory", err)
	}
}

func TestBasePercentsIsACopy(t *testing.T) {
	reg := Default()
	m := reg.BasePercents()
	m["envelope"] = 99

	if got := reg.BasePercents()["envelope"]; got != 15 {
		t.Errorf("mutating the returned map leaked into the registry: envelope = %v", got)
	}
}

func TestDefaultDivisions(t *testing.T) {
	divs := DefaultCSI()
	if got := len(divs.All()); got != 12 {
		t.Fatalf("default divisions = %d, want 12", got)
	}

	d, err := divs.Lookup("mechanical")
	if err != nil {
		t.Fatalf("Lookup(mechanical): %v", err)
	}
	if d.BaseCostPSF != 110 {
		t.Errorf("mechanical base cost = %v, want 110", d.BaseCostPSF)
	}

	costs := divs.BaseCosts(250_000)
	if got := costs["mechanical"]; got != 27_500_000 {
		t.Errorf("mechanical at 250k sf = %v, want 27500000", got)
	}
}
