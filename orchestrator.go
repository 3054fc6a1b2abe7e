package localize

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ArtifactKind distinguishes how the orchestrator expands an artifact.
type ArtifactKind int

const (
	// ArtifactScript artifacts are scanned and rewritten per locale.
	ArtifactScript ArtifactKind = iota
	// ArtifactAsset artifacts are copied byte-identical under each
	// locale-expanded name.
	ArtifactAsset
	// ArtifactSourceMap artifacts are copied like assets but only for the
	// locales configured to receive maps.
	ArtifactSourceMap
)

// Artifact is one finished build output, captured after every other
// text-mutating transform (notably minification) has run.
type Artifact struct {
	Name string
	Data []byte
	// Map is the sibling source map for script artifacts, when one exists.
	Map  *SourceMap
	Kind ArtifactKind
}

// Emitter is the narrow slice of the host build the orchestrator writes
// through. Implementations must be safe for concurrent use: variants of
// independent artifacts and locales are emitted in parallel.
type Emitter interface {
	Emit(name string, data []byte, smap *SourceMap, locale string) error
	Delete(name string) error
}

// Orchestrator expands every placeholder-named artifact into its per-locale
// variants and retires the originals. It runs once per build, strictly
// after optimization and strictly before the terminal output-write stage.
type Orchestrator struct {
	cfg       *Config
	localizer *Localizer
}

func NewOrchestrator(cfg *Config) *Orchestrator {
	return &Orchestrator{
		cfg:       cfg,
		localizer: NewLocalizer(cfg.Catalogs),
	}
}

// Run processes all finished artifacts. Single-locale builds short-circuit:
// no placeholders were ever introduced, so there is nothing to expand. Any
// error aborts the remaining work for the build.
func (o *Orchestrator) Run(artifacts []Artifact, emitter Emitter) error {
	if !o.cfg.MultiLocale() {
		return nil
	}

	var group errgroup.Group
	for _, artifact := range artifacts {
		if !strings.Contains(artifact.Name, FileNamePlaceholder) {
			continue
		}
		artifact := artifact
		group.Go(func() error {
			return o.expand(artifact, emitter)
		})
	}
	return group.Wait()
}

// expand emits every locale variant of one artifact, then deletes the
// original. Deletion happens strictly after the last variant emitted, and
// only when at least one replacement was produced, so there is never a
// window where neither the original nor any variant exists.
func (o *Orchestrator) expand(artifact Artifact, emitter Emitter) error {
	var emitted int

	switch artifact.Kind {
	case ArtifactScript:
		n, err := o.expandScript(artifact, emitter)
		if err != nil {
			return err
		}
		emitted = n
	case ArtifactSourceMap:
		n, err := o.copyVariants(artifact, o.cfg.MapLocales(), emitter)
		if err != nil {
			return err
		}
		emitted = n
	case ArtifactAsset:
		n, err := o.copyVariants(artifact, o.cfg.Locales, emitter)
		if err != nil {
			return err
		}
		emitted = n
	default:
		return fmt.Errorf("localize: unknown artifact kind %d for %q", artifact.Kind, artifact.Name)
	}

	if emitted == 0 {
		return nil
	}
	return emitter.Delete(artifact.Name)
}

func (o *Orchestrator) expandScript(artifact Artifact, emitter Emitter) (int, error) {
	text := string(artifact.Data)
	scan := Locate(text)

	mapLocales := make(map[string]struct{})
	if artifact.Map != nil {
		for _, locale := range o.cfg.MapLocales() {
			mapLocales[locale] = struct{}{}
		}
	}

	var group errgroup.Group
	for _, locale := range o.cfg.Locales {
		locale := locale
		group.Go(func() error {
			original := artifact.Map
			if _, ok := mapLocales[locale]; !ok {
				original = nil
			}

			variant, err := o.localizer.Localize(locale, LocalizeFileName(artifact.Name, locale), scan, text, original)
			if err != nil {
				return err
			}
			return emitter.Emit(variant.Name, []byte(variant.Text), variant.Map, locale)
		})
	}
	if err := group.Wait(); err != nil {
		return 0, err
	}
	return len(o.cfg.Locales), nil
}

func (o *Orchestrator) copyVariants(artifact Artifact, locales []string, emitter Emitter) (int, error) {
	var group errgroup.Group
	for _, locale := range locales {
		locale := locale
		group.Go(func() error {
			return emitter.Emit(LocalizeFileName(artifact.Name, locale), artifact.Data, nil, locale)
		})
	}
	if err := group.Wait(); err != nil {
		return 0, err
	}
	return len(locales), nil
}
