package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/coord/internal/adapters/config"
	"go.trai.ch/coord/internal/adapters/coursier"
	"go.trai.ch/coord/internal/adapters/fs"
	"go.trai.ch/coord/internal/adapters/lockfile"
	"go.trai.ch/coord/internal/adapters/logger"
	"go.trai.ch/coord/internal/adapters/telemetry/progrock"
	"go.trai.ch/coord/internal/core/ports"
	"go.trai.ch/coord/internal/engine/request"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			request.NodeID,
			coursier.NodeID,
			lockfile.NodeID,
			fs.HasherNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[*request.Builder](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.PinStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.FileHasher](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, builder, resolver, store, hasher, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
