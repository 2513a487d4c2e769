package coursier

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"

	"go.trai.ch/coord/internal/core/domain"
	"go.trai.ch/coord/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600

	// DefaultBinary is the resolver executable looked up on PATH when no
	// explicit path is configured.
	DefaultBinary = "coursier"
)

// Adapter implements ports.Resolver by invoking the coursier process.
type Adapter struct {
	binary    string
	cachePath string
}

// New creates a new coursier adapter.
// cachePath is the path to the JSON file used for caching resolutions.
func New(binary, cachePath string) *Adapter {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Adapter{
		binary:    binary,
		cachePath: cachePath,
	}
}

// Resolve serializes the request, invokes the resolver and parses its report.
// Identical requests are served from the resolution cache without spawning
// the process again.
func (a *Adapter) Resolve(ctx context.Context, req *domain.Request) (*domain.Resolution, error) {
	// 1. Serialize the request document
	doc, err := EncodeRequest(req)
	if err != nil {
		return nil, err
	}

	// 2. Derive the cache key from the serialized form
	key, err := RequestKey(req)
	if err != nil {
		return nil, err
	}

	// 3. Check cache
	if cached, ok := a.checkCache(key); ok {
		return cached, nil
	}

	// 4. Write the request file the resolver reads
	workDir, err := os.MkdirTemp("", "coord-request-")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create request directory")
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	requestPath := filepath.Join(workDir, "request.json")
	if err := os.WriteFile(requestPath, []byte(doc), filePerm); err != nil {
		return nil, zerr.Wrap(err, "failed to write request file")
	}

	reportPath := filepath.Join(workDir, "report.json")

	// 5. Invoke the resolver
	args, err := buildArgs(req, requestPath, reportPath)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // binary and args are built from validated records
	cmd := exec.CommandContext(ctx, a.binary, args...)
	if output, runErr := cmd.CombinedOutput(); runErr != nil {
		err := zerr.Wrap(runErr, domain.ErrResolverFailed.Error())
		err = zerr.With(err, "output", string(output))
		return nil, zerr.With(err, "binary", a.binary)
	}

	// 6. Parse the report
	data, err := os.ReadFile(reportPath) //nolint:gosec // reportPath is a trusted temp file created by us
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read resolver report")
	}

	res, err := ParseReport(data)
	if err != nil {
		return nil, err
	}

	// 7. Update cache
	if err := a.updateCache(key, res); err != nil {
		return nil, zerr.Wrap(err, "failed to update resolution cache")
	}

	return res, nil
}

// buildArgs assembles the resolver command line: per-artifact coordinate
// strings as positional arguments, repository endpoints with embedded
// credentials, and the request/report file paths.
func buildArgs(req *domain.Request, requestPath, reportPath string) ([]string, error) {
	args := []string{
		"resolve",
		"--request", requestPath,
		"--report", reportPath,
	}

	if req.FetchSources {
		args = append(args, "--sources")
	}
	if req.FetchJavadoc {
		args = append(args, "--javadoc")
	}

	for _, r := range req.Repositories {
		url, err := r.AuthenticatedURL()
		if err != nil {
			return nil, err
		}
		args = append(args, "--repository", url)
	}

	for _, a := range req.Artifacts {
		args = append(args, a.Coordinate())
	}

	return args, nil
}

type cacheFile map[string]*domain.Resolution

func (a *Adapter) checkCache(key string) (*domain.Resolution, bool) {
	f, err := os.Open(a.cachePath)
	if err != nil {
		return nil, false
	}
	defer func() { _ = f.Close() }()

	var cache cacheFile
	if err := json.NewDecoder(f).Decode(&cache); err != nil {
		return nil, false
	}

	res, ok := cache[key]
	return res, ok
}

func (a *Adapter) updateCache(key string, res *domain.Resolution) error {
	cache := make(cacheFile)
	if content, err := os.ReadFile(a.cachePath); err == nil {
		// A corrupted cache is overwritten wholesale
		_ = json.Unmarshal(content, &cache)
	}

	cache[key] = res

	if mkErr := os.MkdirAll(filepath.Dir(a.cachePath), dirPerm); mkErr != nil {
		return mkErr
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(a.cachePath, data, filePerm)
}

// Ensure Adapter satisfies the interface.
var _ ports.Resolver = (*Adapter)(nil)
