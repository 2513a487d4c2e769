// Package coursier implements the resolver boundary: it serializes canonical
// records into the request format the coursier process expects, invokes it,
// and parses its report.
package coursier

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/coord/internal/core/domain"
	"go.trai.ch/zerr"
)

// The request format is JSON-shaped text with a fixed field order, emitted by
// a dedicated object writer rather than a JSON library: the resolver compares
// request documents byte for byte, so field order and punctuation must be
// stable across runs. Values are quote-wrapped without escaping; callers must
// supply values free of unescaped quote characters.

// objectWriter assembles one `{...}` object, inserting the field separator
// before every field except the first.
type objectWriter struct {
	b      strings.Builder
	fields int
}

func (w *objectWriter) open() {
	w.b.WriteString("{")
}

func (w *objectWriter) raw(name, value string) {
	if w.fields > 0 {
		w.b.WriteString(", ")
	}
	w.b.WriteString(quote(name))
	w.b.WriteString(": ")
	w.b.WriteString(value)
	w.fields++
}

func (w *objectWriter) str(name, value string) {
	w.raw(name, quote(value))
}

func (w *objectWriter) bool(name string, value bool) {
	w.raw(name, strconv.FormatBool(value))
}

func (w *objectWriter) close() string {
	w.b.WriteString("}")
	return w.b.String()
}

func quote(s string) string {
	return `"` + s + `"`
}

func array(elements []string) string {
	return "[" + strings.Join(elements, ", ") + "]"
}

// EncodeArtifact serializes an artifact record. Required fields come first in
// fixed order (group, artifact, version); optional fields are appended only
// when present. String-shaped exclusions are normalized before encoding, so
// mixed-shape exclusion lists serialize identically to pre-normalized ones.
func EncodeArtifact(a domain.Artifact) (string, error) {
	w := &objectWriter{}
	w.open()
	w.str("group", a.GroupID)
	w.str("artifact", a.ArtifactID)
	w.str("version", a.Version)

	if a.Packaging != nil {
		w.str("packaging", *a.Packaging)
	}
	if a.Classifier != nil {
		w.str("classifier", *a.Classifier)
	}
	if a.OverrideLicenseTypes != nil {
		w.raw("overrideLicenseTypes", EncodeLicenseTypes(a.OverrideLicenseTypes))
	}
	if a.Exclusions != nil {
		exclusions, err := domain.NormalizeExclusions(a.Exclusions)
		if err != nil {
			return "", zerr.Wrap(err, "failed to normalize artifact exclusions")
		}
		encoded := make([]string, len(exclusions))
		for i, e := range exclusions {
			encoded[i] = EncodeExclusion(e)
		}
		w.raw("exclusions", array(encoded))
	}
	if a.Neverlink != nil {
		w.bool("neverlink", *a.Neverlink)
	}

	return w.close(), nil
}

// EncodeRepository serializes a repository record. The credentials object is
// appended only when present.
func EncodeRepository(r domain.Repository) string {
	w := &objectWriter{}
	w.open()
	w.str("repoUrl", r.URL)

	if r.Credentials != nil {
		c := &objectWriter{}
		c.open()
		c.str("user", r.Credentials.User)
		c.str("password", r.Credentials.Password)
		w.raw("credentials", c.close())
	}

	return w.close()
}

// EncodeExclusion serializes an exclusion record.
func EncodeExclusion(e domain.Exclusion) string {
	w := &objectWriter{}
	w.open()
	w.str("group", e.GroupID)
	w.str("artifact", e.ArtifactID)
	return w.close()
}

// EncodeLicenseTypes serializes a license type override list as an ordered
// array of quoted strings.
func EncodeLicenseTypes(types []string) string {
	quoted := make([]string, len(types))
	for i, t := range types {
		quoted[i] = quote(t)
	}
	return array(quoted)
}

// EncodeRequest serializes the full request document the resolver reads from
// its request file.
func EncodeRequest(req *domain.Request) (string, error) {
	artifacts := make([]string, len(req.Artifacts))
	for i, a := range req.Artifacts {
		encoded, err := EncodeArtifact(a)
		if err != nil {
			return "", err
		}
		artifacts[i] = encoded
	}

	repositories := make([]string, len(req.Repositories))
	for i, r := range req.Repositories {
		repositories[i] = EncodeRepository(r)
	}

	exclusions := make([]string, len(req.Exclusions))
	for i, e := range req.Exclusions {
		exclusions[i] = EncodeExclusion(e)
	}

	w := &objectWriter{}
	w.open()
	w.raw("artifacts", array(artifacts))
	w.raw("repositories", array(repositories))
	w.raw("exclusions", array(exclusions))
	w.bool("fetchSources", req.FetchSources)
	w.bool("fetchJavadoc", req.FetchJavadoc)
	return w.close(), nil
}

// RequestKey derives the cache/pin key for a request: the xxhash of its
// serialized document. Serialization is deterministic, so identical requests
// always map to the same key.
func RequestKey(req *domain.Request) (string, error) {
	doc, err := EncodeRequest(req)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(xxhash.Sum64String(doc), 16), nil
}
