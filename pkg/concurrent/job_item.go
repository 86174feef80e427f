package concurrent

// ShortestPathParam is one source->destination pair of a many-to-many query.
type ShortestPathParam struct {
	From int32
	To   int32
}

func NewShortestPathParam(from, to int32) ShortestPathParam {
	return ShortestPathParam{
		From: from,
		To:   to,
	}
}

type JobI interface {
	ShortestPathParam | []int32
}

type Job[T JobI] struct {
	ID      int
	JobItem T
}

func NewJob[T JobI](id int, item T) Job[T] {
	return Job[T]{
		ID:      id,
		JobItem: item,
	}
}

type JobFunc[T JobI, G any] func(job T) G
