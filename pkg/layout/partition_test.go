package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/matte/pkg/errors"
)

func TestPartitionRightFive(t *testing.T) {
	tmpl := Template{
		Name: "Right, 5 Boxes",
		Cuts: []Cut{
			{Box: 0, Edge: Right, Ratio: Pct(0.4818)},
			{Box: 1, Edge: Top, Ratio: Pct(0.4891)},
			{Box: 2, Edge: Left, Ratio: Pct(0.4432)},
			{Box: 3, Edge: Top, Ratio: Pct(0.48)},
		},
	}

	got, err := Partition(tmpl)
	if err != nil {
		t.Fatalf("Partition() error: %v", err)
	}

	want := []Box{
		{ID: 1, Rect: Rect{X: 2176, Y: 0, Width: 2024, Height: 3130}},
		{ID: 2, Rect: Rect{X: 0, Y: 0, Width: 2126, Height: 1531}},
		{ID: 3, Rect: Rect{X: 0, Y: 1581, Width: 942, Height: 1549}},
		{ID: 4, Rect: Rect{X: 992, Y: 1581, Width: 1134, Height: 744}},
		{ID: 5, Rect: Rect{X: 992, Y: 2375, Width: 1134, Height: 755}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Partition() mismatch (-want +got):\n%s", diff)
	}
}

func TestPartitionLeftSeven(t *testing.T) {
	boxes := MustPartition(builtin[1])
	if len(boxes) != 7 {
		t.Fatalf("len(boxes) = %d, want 7", len(boxes))
	}

	want := map[string]Rect{
		"box1": {X: 0, Y: 0, Width: 2024, Height: 3130},
		"box2": {X: 2074, Y: 0, Width: 2126, Height: 1531},
		"box3": {X: 3258, Y: 1581, Width: 942, Height: 1549},
		"box4": {X: 2074, Y: 1581, Width: 1134, Height: 744},
		"box5": {X: 2074, Y: 2375, Width: 544, Height: 755},
		"box6": {X: 2668, Y: 2375, Width: 540, Height: 355},
		"box7": {X: 2668, Y: 2780, Width: 540, Height: 350},
	}
	for _, b := range boxes {
		if b.Rect != want[b.Name()] {
			t.Errorf("%s = %v, want %v", b.Name(), b.Rect, want[b.Name()])
		}
	}
}

func TestPartitionSingleBox(t *testing.T) {
	boxes, err := Partition(Template{Name: "Full"})
	if err != nil {
		t.Fatalf("Partition() error: %v", err)
	}
	if len(boxes) != 1 {
		t.Fatalf("len(boxes) = %d, want 1", len(boxes))
	}
	if want := (Rect{Width: 4200, Height: 3130}); boxes[0].Rect != want {
		t.Errorf("box1 = %v, want %v", boxes[0].Rect, want)
	}
}

func TestPartitionBottomCut(t *testing.T) {
	tmpl := Template{
		Name:      "Bottom",
		TopBuffer: true,
		Cuts:      []Cut{{Box: 0, Edge: Bottom, Ratio: Pct(0.5)}},
	}
	boxes, err := Partition(tmpl)
	if err != nil {
		t.Fatalf("Partition() error: %v", err)
	}

	want := []Box{
		{ID: 1, Rect: Rect{X: 0, Y: 1685, Width: 4200, Height: 1565}},
		{ID: 2, Rect: Rect{X: 0, Y: 120, Width: 4200, Height: 1515}},
	}
	if diff := cmp.Diff(want, boxes); diff != "" {
		t.Errorf("Partition() mismatch (-want +got):\n%s", diff)
	}
	if err := tmpl.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestPartitionAspect(t *testing.T) {
	tests := []struct {
		name      string
		cut       Cut
		primary   Rect
		remainder Rect
	}{
		{
			name:      "square left",
			cut:       Cut{Box: 0, Edge: Left, Ratio: Aspect(1)},
			primary:   Rect{X: 0, Y: 0, Width: 3130, Height: 3130},
			remainder: Rect{X: 3180, Y: 0, Width: 1020, Height: 3130},
		},
		{
			name:      "landscape top",
			cut:       Cut{Box: 0, Edge: Top, Ratio: Aspect(3)},
			primary:   Rect{X: 0, Y: 0, Width: 4200, Height: 1400},
			remainder: Rect{X: 0, Y: 1450, Width: 4200, Height: 1680},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boxes, err := Partition(Template{Name: tt.name, Cuts: []Cut{tt.cut}})
			if err != nil {
				t.Fatalf("Partition() error: %v", err)
			}
			if boxes[0].Rect != tt.primary {
				t.Errorf("primary = %v, want %v", boxes[0].Rect, tt.primary)
			}
			if boxes[1].Rect != tt.remainder {
				t.Errorf("remainder = %v, want %v", boxes[1].Rect, tt.remainder)
			}
		})
	}
}

func TestPartitionBadIndex(t *testing.T) {
	_, err := Partition(Template{Name: "Bad", Cuts: []Cut{{Box: 1, Edge: Left, Ratio: Pct(0.5)}}})
	if !errors.Is(err, errors.ErrCodeInvalidTemplate) {
		t.Errorf("Partition() error = %v, want INVALID_TEMPLATE", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    Template
		wantErr bool
	}{
		{"builtin", builtin[0], false},
		{"empty name", Template{}, true},
		{"pct zero", Template{Name: "x", Cuts: []Cut{{Edge: Left, Ratio: Pct(0)}}}, true},
		{"pct one", Template{Name: "x", Cuts: []Cut{{Edge: Left, Ratio: Pct(1)}}}, true},
		{"negative aspect", Template{Name: "x", Cuts: []Cut{{Edge: Top, Ratio: Aspect(-1)}}}, true},
		{"aspect too wide", Template{Name: "x", Cuts: []Cut{{Edge: Left, Ratio: Aspect(1.5)}}}, true},
		{"aspect fits", Template{Name: "x", Cuts: []Cut{{Edge: Left, Ratio: Aspect(1)}}}, false},
		{"gutter swallows remainder", Template{Name: "x", Cuts: []Cut{{Edge: Left, Ratio: Pct(0.995)}}}, true},
		{"too many boxes", Template{Name: "x", Cuts: []Cut{
			{Box: 0, Edge: Left, Ratio: Pct(0.1)},
			{Box: 0, Edge: Left, Ratio: Pct(0.1)},
			{Box: 0, Edge: Left, Ratio: Pct(0.1)},
			{Box: 0, Edge: Left, Ratio: Pct(0.1)},
			{Box: 0, Edge: Left, Ratio: Pct(0.1)},
			{Box: 0, Edge: Left, Ratio: Pct(0.1)},
			{Box: 0, Edge: Left, Ratio: Pct(0.1)},
		}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tmpl.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidTemplate) {
				t.Errorf("Validate() code = %s, want INVALID_TEMPLATE", errors.GetCode(err))
			}
		})
	}
}
