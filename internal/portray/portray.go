package portray

// ColorID is a symbolic color name understood by the rendering surfaces.
// The "tab:" names mirror the palette the chart exporter uses.
type ColorID string

const (
	ColorBlue   ColorID = "tab:blue"
	ColorRed    ColorID = "tab:red"
	ColorGreen  ColorID = "tab:green"
	ColorOrange ColorID = "tab:orange"
	ColorPurple ColorID = "tab:purple"
	ColorGray   ColorID = "tab:gray"
)

// Shape selects the marker glyph used for an entity.
type Shape string

const (
	ShapeCircle Shape = "circle"
	ShapeSquare Shape = "square"
	ShapeCross  Shape = "cross"
)

// Record describes how one entity should be rendered. Color and Size are
// required; Shape defaults to a filled circle.
type Record struct {
	Color ColorID
	Size  float64
	Shape Shape
}

// NewRecord builds a validated record. An empty color or non-positive
// size is rejected so partial records never reach rendering code.
func NewRecord(color ColorID, size float64) (Record, error) {
	r := Record{Color: color, Size: size, Shape: ShapeCircle}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// Validate reports whether every required field holds a usable value.
func (r Record) Validate() error {
	if r.Color == "" {
		return &RecordError{Field: "color", Reason: "is empty"}
	}
	if r.Size <= 0 {
		return &RecordError{Field: "size", Reason: "must be positive"}
	}
	return nil
}

// Entity is one simulated agent as seen by the resolver: named numeric
// attributes, read-only. Resolvers never mutate an entity.
type Entity interface {
	// Attr returns the named attribute value and whether the entity
	// exposes that attribute at all.
	Attr(name string) (float64, bool)
}
