package platform

import (
	"context"

	"github.com/avaldes/coursehub/pkg/adapters/fs"
	"github.com/avaldes/coursehub/pkg/catalog"
)

// Init prepares a catalog store for the file at path and returns it.
func Init(path string, opts ...Option) (catalog.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.store != nil {
		return o.store, nil
	}

	seed := catalog.SeedCourses()
	if o.seedSet {
		seed = o.seed
	}

	store := fs.NewStore(fs.Config{
		Path:   path,
		Logger: o.logger,
		Seed:   seed,
	})
	if err := store.Initialize(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

// New wires a catalog service backed by the store at path.
//
//	svc, err := coursehub.New("./catalog.json", coursehub.WithLogger(logger))
func New(path string, opts ...Option) (*catalog.Service, error) {
	store, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return catalog.NewService(store, o.logger), nil
}
