package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/coord/internal/adapters/coursier"
	"go.trai.ch/coord/internal/adapters/telemetry"
	"go.trai.ch/coord/internal/app"
	"go.trai.ch/coord/internal/core/domain"
	"go.trai.ch/coord/internal/core/ports/mocks"
	"go.trai.ch/coord/internal/engine/request"
	"go.uber.org/mock/gomock"
)

const manifestPath = "coord.yaml"

func testManifest() *domain.Manifest {
	return &domain.Manifest{
		Artifacts: []domain.RawArtifact{
			domain.ArtifactString("com.google.guava:guava:31.1-jre"),
		},
		Repositories: []domain.RawRepository{
			domain.RepositoryString("https://repo1.maven.org/maven2"),
		},
	}
}

func testResolution() *domain.Resolution {
	return &domain.Resolution{
		Artifacts: []domain.ResolvedArtifact{
			{
				Coordinate: "com.google.guava:guava:31.1-jre",
				File:       "/cache/guava-31.1-jre.jar",
			},
		},
	}
}

type fixture struct {
	loader   *mocks.MockConfigLoader
	resolver *mocks.MockResolver
	store    *mocks.MockPinStore
	hasher   *mocks.MockFileHasher
	logger   *mocks.MockLogger
	app      *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		resolver: mocks.NewMockResolver(ctrl),
		store:    mocks.NewMockPinStore(ctrl),
		hasher:   mocks.NewMockFileHasher(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	f.app = app.New(
		f.loader,
		request.NewBuilder(),
		f.resolver,
		f.store,
		f.hasher,
		telemetry.NewNoOpTracer(),
		f.logger,
	)
	return f
}

func TestApp_Resolve(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(manifestPath).Return(testManifest(), nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(testResolution(), nil)
	f.hasher.EXPECT().
		ChecksumAll(gomock.Any(), []string{"/cache/guava-31.1-jre.jar"}).
		Return(map[string]string{"/cache/guava-31.1-jre.jar": "cafebabe"}, nil)
	f.logger.EXPECT().Info(gomock.Any())

	res, err := f.app.Resolve(context.Background(), manifestPath)
	require.NoError(t, err)
	require.Len(t, res.Artifacts, 1)
	assert.Equal(t, "cafebabe", res.Artifacts[0].Checksum)
}

func TestApp_Resolve_LoadError(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(manifestPath).Return(nil, domain.ErrMalformedCoordinate)

	_, err := f.app.Resolve(context.Background(), manifestPath)
	require.ErrorIs(t, err, domain.ErrMalformedCoordinate)
}

func TestApp_Resolve_EmptyManifest(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(manifestPath).Return(&domain.Manifest{}, nil)

	_, err := f.app.Resolve(context.Background(), manifestPath)
	require.ErrorIs(t, err, domain.ErrNoArtifactsDeclared)
}

func TestApp_Pin(t *testing.T) {
	f := newFixture(t)

	req, err := request.NewBuilder().Build(testManifest())
	require.NoError(t, err)
	key, err := coursier.RequestKey(req)
	require.NoError(t, err)

	f.loader.EXPECT().Load(manifestPath).Return(testManifest(), nil)
	f.store.EXPECT().Get(key).Return(nil, nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), req).Return(testResolution(), nil)
	f.hasher.EXPECT().
		ChecksumAll(gomock.Any(), gomock.Any()).
		Return(map[string]string{"/cache/guava-31.1-jre.jar": "cafebabe"}, nil)
	f.store.EXPECT().Put(key, gomock.Any()).Return(nil)
	f.logger.EXPECT().Info(gomock.Any()).Times(2)

	require.NoError(t, f.app.Pin(context.Background(), manifestPath))
}

func TestApp_Pin_UpToDate(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(manifestPath).Return(testManifest(), nil)
	f.store.EXPECT().Get(gomock.Any()).Return(testResolution(), nil)
	f.logger.EXPECT().Info(gomock.Any())

	require.NoError(t, f.app.Pin(context.Background(), manifestPath))
}

func TestApp_Verify(t *testing.T) {
	f := newFixture(t)

	req, err := request.NewBuilder().Build(testManifest())
	require.NoError(t, err)
	key, err := coursier.RequestKey(req)
	require.NoError(t, err)

	f.loader.EXPECT().Load(manifestPath).Return(testManifest(), nil)
	f.store.EXPECT().Get(key).Return(testResolution(), nil)
	f.logger.EXPECT().Info(gomock.Any())

	require.NoError(t, f.app.Verify(context.Background(), manifestPath))
}

func TestApp_Verify_NotPinned(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(manifestPath).Return(testManifest(), nil)
	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil)

	err := f.app.Verify(context.Background(), manifestPath)
	require.ErrorIs(t, err, domain.ErrLockNotFound)
}

func TestApp_Pin_ResolverError(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(manifestPath).Return(testManifest(), nil)
	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil)
	f.resolver.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrResolverFailed)

	err := f.app.Pin(context.Background(), manifestPath)
	require.ErrorIs(t, err, domain.ErrResolverFailed)
}
