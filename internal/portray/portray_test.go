package portray

import (
	"errors"
	"testing"
)

type fakeEntity struct {
	attrs map[string]float64
}

func (f *fakeEntity) Attr(name string) (float64, bool) {
	v, ok := f.attrs[name]
	return v, ok
}

func TestNewRecord(t *testing.T) {
	tests := []struct {
		name    string
		color   ColorID
		size    float64
		wantErr bool
	}{
		{"valid", ColorBlue, 50, false},
		{"empty color", "", 50, true},
		{"zero size", ColorRed, 0, true},
		{"negative size", ColorRed, -10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := NewRecord(tt.color, tt.size)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRecord) {
					t.Errorf("expected ErrInvalidRecord, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Shape != ShapeCircle {
				t.Errorf("expected default shape circle, got %s", rec.Shape)
			}
		})
	}
}

func TestWealthResolver_Branches(t *testing.T) {
	res := NewWealthResolver()

	tests := []struct {
		name      string
		wealth    float64
		wantColor ColorID
		wantSize  float64
	}{
		{"broke", 0, ColorRed, 10},
		{"rich", 37, ColorBlue, 50},
		{"one unit", 1, ColorBlue, 50},
		{"negative", -3, ColorRed, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &fakeEntity{attrs: map[string]float64{WealthAttr: tt.wealth}}
			rec, err := res.Resolve(e)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Color != tt.wantColor {
				t.Errorf("color = %s, want %s", rec.Color, tt.wantColor)
			}
			if rec.Size != tt.wantSize {
				t.Errorf("size = %f, want %f", rec.Size, tt.wantSize)
			}
		})
	}
}

func TestResolver_Deterministic(t *testing.T) {
	res := NewWealthResolver()
	e := &fakeEntity{attrs: map[string]float64{WealthAttr: 5}}

	first, err := res.Resolve(e)
	if err != nil {
		t.Fatal(err)
	}
	second, err := res.Resolve(e)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("resolve not deterministic: %+v vs %+v", first, second)
	}
}

func TestResolver_DoesNotMutateEntity(t *testing.T) {
	res := NewWealthResolver()
	e := &fakeEntity{attrs: map[string]float64{WealthAttr: 7}}

	if _, err := res.Resolve(e); err != nil {
		t.Fatal(err)
	}
	if e.attrs[WealthAttr] != 7 {
		t.Errorf("entity mutated: wealth = %f", e.attrs[WealthAttr])
	}
	if len(e.attrs) != 1 {
		t.Errorf("entity gained attributes: %v", e.attrs)
	}
}

func TestResolver_MissingAttribute(t *testing.T) {
	res := NewWealthResolver()
	e := &fakeEntity{attrs: map[string]float64{"energy": 3}}

	_, err := res.Resolve(e)
	if !errors.Is(err, ErrAttributeMissing) {
		t.Fatalf("expected ErrAttributeMissing, got %v", err)
	}

	var attrErr *AttrError
	if !errors.As(err, &attrErr) {
		t.Fatal("expected *AttrError")
	}
	if attrErr.Name != WealthAttr {
		t.Errorf("attr name = %q, want %q", attrErr.Name, WealthAttr)
	}
}

func TestNewResolver_RuleOrder(t *testing.T) {
	low, _ := NewRecord(ColorGreen, 20)
	high, _ := NewRecord(ColorPurple, 80)
	fallback, _ := NewRecord(ColorGray, 5)

	res, err := NewResolver("score", fallback,
		Rule{When: func(v float64) bool { return v > 100 }, Show: high},
		Rule{When: func(v float64) bool { return v > 0 }, Show: low},
	)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		score float64
		want  ColorID
	}{
		{500, ColorPurple}, // first rule wins
		{50, ColorGreen},
		{0, ColorGray}, // fallback
	}

	for _, tt := range tests {
		e := &fakeEntity{attrs: map[string]float64{"score": tt.score}}
		rec, err := res.Resolve(e)
		if err != nil {
			t.Fatal(err)
		}
		if rec.Color != tt.want {
			t.Errorf("score %f: color = %s, want %s", tt.score, rec.Color, tt.want)
		}
	}
}

func TestNewResolver_RejectsBadPolicy(t *testing.T) {
	ok, _ := NewRecord(ColorBlue, 50)

	if _, err := NewResolver("wealth", Record{}); !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("expected ErrInvalidRecord for bad fallback, got %v", err)
	}

	_, err := NewResolver("wealth", ok, Rule{When: nil, Show: ok})
	if !errors.Is(err, ErrNilPredicate) {
		t.Errorf("expected ErrNilPredicate, got %v", err)
	}

	_, err = NewResolver("wealth", ok, Rule{
		When: func(v float64) bool { return true },
		Show: Record{Color: ColorBlue, Size: -1},
	})
	if !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("expected ErrInvalidRecord for bad rule record, got %v", err)
	}
}
