package stream

type Producer[T any] interface {
	Produce() (T, bool)
}

type ArrayProducer[T any] struct {
	list []T
}

func NewArrayProducer[T any](list []T) *ArrayProducer[T] {
	producer := ArrayProducer[T]{
		list: list,
	}
	return &producer
}

func (p *ArrayProducer[T]) Produce() (T, bool) {
	var zero T
	if len(p.list) == 0 {
		return zero, false
	}
	v := p.list[0]
	p.list = p.list[1:]
	return v, true
}

// Drain calls fn for every remaining value and returns how many were produced.
func Drain[T any](p Producer[T], fn func(T) error) (int, error) {
	count := 0
	for {
		v, ok := p.Produce()
		if !ok {
			return count, nil
		}
		if err := fn(v); err != nil {
			return count, err
		}
		count++
	}
}
