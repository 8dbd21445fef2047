package repository

// Kind names an entity collection
type Kind int

const (
	KindTimer Kind = iota + 1
	KindAlarm
	KindCountdown
	KindTodo
)

// String implements fmt.Stringer
func (k Kind) String() string {
	switch k {
	case KindTimer:
		return "timer"
	case KindAlarm:
		return "alarm"
	case KindCountdown:
		return "countdown"
	case KindTodo:
		return "todo"
	}
	return "entity"
}

// collection keeps entities by ID in insertion order
type collection[T any] struct {
	kind  Kind
	order []string
	items map[string]*T
}

func newCollection[T any](kind Kind) collection[T] {
	return collection[T]{kind: kind, items: make(map[string]*T)}
}

// put stores v under id. Re-putting an existing ID replaces the value and
// keeps its position.
func (c *collection[T]) put(id string, v T) {
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = &v
}

func (c *collection[T]) get(id string) (*T, error) {
	v, exists := c.items[id]
	if !exists {
		return nil, ErrNotFound{Kind: c.kind, ID: id}
	}
	return v, nil
}

func (c *collection[T]) delete(id string) error {
	if _, exists := c.items[id]; !exists {
		return ErrNotFound{Kind: c.kind, ID: id}
	}

	delete(c.items, id)
	for i, o := range c.order {
		if o == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// each visits entities in insertion order. fn must not add or delete.
func (c *collection[T]) each(fn func(v *T)) {
	for _, id := range c.order {
		fn(c.items[id])
	}
}

// list returns copies in insertion order
func (c *collection[T]) list() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.items[id])
	}
	return out
}

func (c *collection[T]) len() int {
	return len(c.order)
}
