// Package app implements the application layer for coord.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/coord/internal/adapters/coursier"
	"go.trai.ch/coord/internal/core/domain"
	"go.trai.ch/coord/internal/core/ports"
	"go.trai.ch/coord/internal/engine/request"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	builder      *request.Builder
	resolver     ports.Resolver
	store        ports.PinStore
	hasher       ports.FileHasher
	tracer       ports.Tracer
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	builder *request.Builder,
	resolver ports.Resolver,
	store ports.PinStore,
	hasher ports.FileHasher,
	tracer ports.Tracer,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		builder:      builder,
		resolver:     resolver,
		store:        store,
		hasher:       hasher,
		tracer:       tracer,
		logger:       logger,
	}
}

// Resolve loads the manifest, builds a resolution request and runs the
// resolver against it.
func (a *App) Resolve(ctx context.Context, manifestPath string) (*domain.Resolution, error) {
	req, err := a.buildRequest(manifestPath)
	if err != nil {
		return nil, err
	}
	return a.run(ctx, req)
}

// Pin resolves the manifest and stores the result in the pin store, keyed by
// the hash of the serialized request. A request whose pin already exists is
// not resolved again.
func (a *App) Pin(ctx context.Context, manifestPath string) error {
	req, err := a.buildRequest(manifestPath)
	if err != nil {
		return err
	}

	key, err := coursier.RequestKey(req)
	if err != nil {
		return zerr.Wrap(err, "failed to derive request key")
	}

	pinned, err := a.store.Get(key)
	if err != nil {
		return zerr.Wrap(err, "failed to read pin store")
	}
	if pinned != nil {
		a.logger.Info(fmt.Sprintf("pin %s is up to date", key))
		return nil
	}

	res, err := a.run(ctx, req)
	if err != nil {
		return err
	}

	if err := a.store.Put(key, res); err != nil {
		return zerr.Wrap(err, "failed to write pin store")
	}
	a.logger.Info(fmt.Sprintf("pinned %d artifacts under %s", len(res.Artifacts), key))
	return nil
}

// Verify checks that the pin store holds a resolution for the manifest's
// current request. It resolves nothing itself.
func (a *App) Verify(_ context.Context, manifestPath string) error {
	req, err := a.buildRequest(manifestPath)
	if err != nil {
		return err
	}

	key, err := coursier.RequestKey(req)
	if err != nil {
		return zerr.Wrap(err, "failed to derive request key")
	}

	pinned, err := a.store.Get(key)
	if err != nil {
		return zerr.Wrap(err, "failed to read pin store")
	}
	if pinned == nil {
		return zerr.With(domain.ErrLockNotFound, "request_key", key)
	}

	a.logger.Info(fmt.Sprintf("pin %s verified, %d artifacts", key, len(pinned.Artifacts)))
	return nil
}

func (a *App) buildRequest(manifestPath string) (*domain.Request, error) {
	manifest, err := a.configLoader.Load(manifestPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}

	req, err := a.builder.Build(manifest)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build resolution request")
	}
	return req, nil
}

func (a *App) run(ctx context.Context, req *domain.Request) (*domain.Resolution, error) {
	ctx, span := a.tracer.Start(ctx, "resolve")
	defer span.End()
	span.SetAttribute("artifacts", len(req.Artifacts))

	res, err := a.resolver.Resolve(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "resolution failed")
	}

	if err := a.checksum(ctx, res); err != nil {
		span.RecordError(err)
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("resolved %d artifacts", len(res.Artifacts)))
	return res, nil
}

// checksum fills in checksums for fetched files the resolver report did not
// hash itself.
func (a *App) checksum(ctx context.Context, res *domain.Resolution) error {
	var paths []string
	for _, artifact := range res.Artifacts {
		if artifact.File != "" && artifact.Checksum == "" {
			paths = append(paths, artifact.File)
		}
	}
	if len(paths) == 0 {
		return nil
	}

	sums, err := a.hasher.ChecksumAll(ctx, paths)
	if err != nil {
		return zerr.Wrap(err, "failed to checksum fetched artifacts")
	}
	for i := range res.Artifacts {
		if sum, ok := sums[res.Artifacts[i].File]; ok && res.Artifacts[i].Checksum == "" {
			res.Artifacts[i].Checksum = sum
		}
	}
	return nil
}
