// Package pipeline runs a seed document through validation, transformation,
// encoding and publishing.
//
// Validation always completes before anything else is touched: an invalid
// document never reaches the transformer, never consumes a serial number and
// never produces output files.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/seedforge/pkg/codec"
	"github.com/ssargent/seedforge/pkg/enums"
	"github.com/ssargent/seedforge/pkg/seed"
	"github.com/ssargent/seedforge/pkg/serial"
	"github.com/ssargent/seedforge/pkg/transform"
	"github.com/ssargent/seedforge/pkg/validate"
	"github.com/ssargent/seedforge/pkg/wire"
)

var (
	// ErrValidation wraps every validation failure returned by Run and Check.
	ErrValidation = errors.New("seed validation failed")
	// ErrArchive wraps failures to record a published seed in the archive.
	ErrArchive = errors.New("seed archive failed")
)

// Validator checks a document before transformation.
type Validator interface {
	Validate(doc *seed.Document) error
}

// Transformer maps a validated document onto the wire seed.
type Transformer interface {
	Transform(doc *seed.Document, serial string) (*wire.Seed, error)
}

// SerialGenerator mints the per-run serial number.
type SerialGenerator interface {
	Generate() (string, error)
}

// Publisher persists the encoded seed and its serial number.
type Publisher interface {
	Publish(serial string, payload []byte) error
}

// Archiver records published seeds.
type Archiver interface {
	Append(entry *codec.Entry) (ksuid.KSUID, error)
}

// Recorder receives build statistics.
type Recorder interface {
	RecordBuild(success bool, duration time.Duration)
	RecordValidationError(kind string)
	UpdateSeedStats(studies, experiments, sizeBytes int, publishedAt time.Time)
}

// Deps are the collaborators of a Pipeline. Validator, Transformer and
// Serials default to implementations sharing enums.DefaultTables. Publisher
// is required by Run. Archiver and Recorder are optional.
type Deps struct {
	Validator   Validator
	Transformer Transformer
	Serials     SerialGenerator
	Publisher   Publisher
	Archiver    Archiver
	Recorder    Recorder
	Logger      zerolog.Logger
	Now         func() time.Time
}

// Pipeline is one configured seed build.
type Pipeline struct {
	deps Deps
}

// Result describes a successful build.
type Result struct {
	Serial      string
	Seed        *wire.Seed
	SizeBytes   int
	PublishedAt time.Time
	ArchiveID   ksuid.KSUID
}

// New creates a pipeline, filling unset defaults.
func New(deps Deps) *Pipeline {
	tables := enums.DefaultTables()
	if deps.Validator == nil {
		deps.Validator = validate.New(tables)
	}
	if deps.Transformer == nil {
		deps.Transformer = transform.New(tables)
	}
	if deps.Serials == nil {
		deps.Serials = serial.NewGenerator()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Pipeline{deps: deps}
}

// Run validates doc, builds and encodes the seed, and publishes it.
func (p *Pipeline) Run(ctx context.Context, doc *seed.Document) (res *Result, err error) {
	if p.deps.Publisher == nil {
		return nil, errors.New("pipeline: no publisher configured")
	}

	start := p.deps.Now()
	defer func() {
		if p.deps.Recorder != nil {
			p.deps.Recorder.RecordBuild(err == nil, p.deps.Now().Sub(start))
		}
	}()

	ws, payload, err := p.build(ctx, doc)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := p.deps.Publisher.Publish(ws.SerialNumber, payload); err != nil {
		return nil, err
	}
	publishedAt := p.deps.Now()
	p.deps.Logger.Info().
		Str("serial", ws.SerialNumber).
		Int("studies", len(ws.Studies)).
		Int("bytes", len(payload)).
		Msg("seed published")

	res = &Result{
		Serial:      ws.SerialNumber,
		Seed:        ws,
		SizeBytes:   len(payload),
		PublishedAt: publishedAt,
	}

	if p.deps.Recorder != nil {
		p.deps.Recorder.UpdateSeedStats(len(ws.Studies), ws.ExperimentCount(), len(payload), publishedAt)
	}

	if p.deps.Archiver != nil {
		id, err := p.deps.Archiver.Append(codec.NewEntry(ws.SerialNumber, payload, publishedAt))
		if err != nil {
			return res, fmt.Errorf("%w: %w", ErrArchive, err)
		}
		res.ArchiveID = id
		p.deps.Logger.Debug().Str("archive_id", id.String()).Msg("seed archived")
	}

	return res, nil
}

// Check validates and transforms doc without publishing anything. The
// returned seed carries a freshly generated serial number.
func (p *Pipeline) Check(ctx context.Context, doc *seed.Document) (*wire.Seed, []byte, error) {
	return p.build(ctx, doc)
}

func (p *Pipeline) build(ctx context.Context, doc *seed.Document) (*wire.Seed, []byte, error) {
	p.deps.Logger.Debug().Int("studies", len(doc.Studies)).Msg("validating seed document")
	if err := p.deps.Validator.Validate(doc); err != nil {
		p.recordValidation(err)
		return nil, nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	serialNumber, err := p.deps.Serials.Generate()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate serial number: %w", err)
	}

	p.deps.Logger.Debug().Str("serial", serialNumber).Msg("transforming seed document")
	ws, err := p.deps.Transformer.Transform(doc, serialNumber)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to transform seed: %w", err)
	}

	payload, err := wire.Encode(ws)
	if err != nil {
		return nil, nil, err
	}
	return ws, payload, nil
}

func (p *Pipeline) recordValidation(err error) {
	var errs validate.Errors
	if !errors.As(err, &errs) {
		errs = validate.Errors{err}
	}
	for _, e := range errs {
		kind := ErrorKind(e)
		p.deps.Logger.Warn().Str("kind", kind).Msg(e.Error())
		if p.deps.Recorder != nil {
			p.deps.Recorder.RecordValidationError(kind)
		}
	}
}

// ErrorKind returns a short label for a validation error.
func ErrorKind(err error) string {
	var (
		weight   *validate.ProbabilityWeightMismatchError
		channel  *validate.UnsupportedChannelError
		platform *validate.UnsupportedPlatformError
		dup      *validate.DuplicateStudyError
		date     *validate.InvalidDateError
	)
	switch {
	case errors.As(err, &weight):
		return "weight_mismatch"
	case errors.As(err, &channel):
		return "unsupported_channel"
	case errors.As(err, &platform):
		return "unsupported_platform"
	case errors.As(err, &dup):
		return "duplicate_study"
	case errors.As(err, &date):
		return "invalid_date"
	default:
		return "other"
	}
}
