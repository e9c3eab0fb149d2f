package portray

// Predicate tests the inspected attribute value.
type Predicate func(v float64) bool

// Rule pairs a predicate with the record to show when it matches.
type Rule struct {
	When Predicate
	Show Record
}

// Resolver derives a display record from one attribute of an entity.
// Rules are evaluated in the order given; the first match wins and the
// fallback record covers the no-match case, so Resolve always produces
// a complete record for schema-compatible entities.
type Resolver struct {
	attr     string
	rules    []Rule
	fallback Record
}

// NewResolver validates every rule record and the fallback up front, so
// a malformed policy fails at construction rather than mid-render.
func NewResolver(attr string, fallback Record, rules ...Rule) (*Resolver, error) {
	if err := fallback.Validate(); err != nil {
		return nil, err
	}
	for _, r := range rules {
		if r.When == nil {
			return nil, ErrNilPredicate
		}
		if err := r.Show.Validate(); err != nil {
			return nil, err
		}
	}
	rs := make([]Rule, len(rules))
	copy(rs, rules)
	return &Resolver{attr: attr, rules: rs, fallback: fallback}, nil
}

// Attr returns the attribute name this resolver inspects.
func (r *Resolver) Attr() string { return r.attr }

// Resolve maps an entity to its display record. The result is a pure
// function of the entity's current attribute value: same value, same
// record, every frame. A missing attribute fails fast with an
// *AttrError; it is never silently defaulted.
func (r *Resolver) Resolve(e Entity) (Record, error) {
	v, ok := e.Attr(r.attr)
	if !ok {
		return Record{}, &AttrError{Name: r.attr}
	}
	for _, rule := range r.rules {
		if rule.When(v) {
			return rule.Show, nil
		}
	}
	return r.fallback, nil
}

// Canonical wealth policy: agents holding wealth render large and blue,
// broke agents render small and red.
const (
	WealthAttr = "wealth"

	FavorableSize = 50.0
	DepletedSize  = 10.0
)

// NewWealthResolver builds the two-branch wealth classifier: wealth > 0
// shows the favorable record, anything else the depleted fallback.
func NewWealthResolver() *Resolver {
	return &Resolver{
		attr: WealthAttr,
		rules: []Rule{
			{
				When: func(v float64) bool { return v > 0 },
				Show: Record{Color: ColorBlue, Size: FavorableSize, Shape: ShapeCircle},
			},
		},
		fallback: Record{Color: ColorRed, Size: DepletedSize, Shape: ShapeCircle},
	}
}
