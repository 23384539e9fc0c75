package interfaces

import "context"

// Directory ports cover the external collaborators the core only consults
// for existence: buyers, categories and catalog products. They are never
// mutated from this service.

type IBuyerDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type ICategoryDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type IProductDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}
