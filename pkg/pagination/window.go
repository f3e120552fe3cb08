package pagination

// Order is the direction rows are sorted by key.
type Order int

const (
	OrderAsc Order = iota
	OrderDesc
)

func (o Order) Reverse() Order {
	if o == OrderAsc {
		return OrderDesc
	}
	return OrderAsc
}

func (o Order) String() string {
	if o == OrderDesc {
		return "DESC"
	}
	return "ASC"
}

// Less reports whether key a sorts before key b.
func (o Order) Less(a, b int64) bool {
	if o == OrderDesc {
		return a > b
	}
	return a < b
}

// after is the strict comparison selecting keys that come after the cursor.
func (o Order) after() Op {
	if o == OrderDesc {
		return OpLt
	}
	return OpGt
}

// from is like after but also selects the cursor key itself.
func (o Order) from() Op {
	if o == OrderDesc {
		return OpLtOrEq
	}
	return OpGtOrEq
}

// Op compares a row key against the window cursor.
type Op int

const (
	OpNone Op = iota
	OpGt
	OpGtOrEq
	OpLt
	OpLtOrEq
)

// Window describes one keyset query:
//
//	WHERE key <Op> Cursor ORDER BY key <Order> LIMIT Limit
//
// Cursor is nil (and Op is OpNone) when the query starts at an edge of the set.
type Window struct {
	Cursor *int64
	Op     Op
	Order  Order
	Limit  int
}

// Matches reports whether key satisfies the window's cursor bound.
func (w Window) Matches(key int64) bool {
	if w.Cursor == nil {
		return true
	}
	c := *w.Cursor
	switch w.Op {
	case OpGt:
		return key > c
	case OpGtOrEq:
		return key >= c
	case OpLt:
		return key < c
	case OpLtOrEq:
		return key <= c
	default:
		return true
	}
}
