package usecase

import (
	"github.com/formwork-lab/formwork/pkg/domain/interfaces"
	"github.com/formwork-lab/formwork/pkg/domain/model"
	"github.com/formwork-lab/formwork/pkg/fieldtype"
	"github.com/formwork-lab/formwork/pkg/validation"
)

// UseCases bundles the application's use case layer
type UseCases struct {
	Config     *ConfigUseCase
	Submission *SubmissionUseCase

	registry *fieldtype.Registry
	uploader interfaces.Uploader
	clock    interfaces.Clock
	defaults *model.FormConfiguration
}

type Option func(*UseCases)

// WithRegistry injects a field type registry, e.g. one extended with
// custom field types
func WithRegistry(reg *fieldtype.Registry) Option {
	return func(uc *UseCases) {
		uc.registry = reg
	}
}

// WithUploaderService injects the upload collaborator
func WithUploaderService(up interfaces.Uploader) Option {
	return func(uc *UseCases) {
		uc.uploader = up
	}
}

// WithBootstrapConfig overrides the default form configuration
func WithBootstrapConfig(cfg *model.FormConfiguration) Option {
	return func(uc *UseCases) {
		uc.defaults = cfg
	}
}

// WithUseCaseClock injects the clock shared by validation and submissions
func WithUseCaseClock(clock interfaces.Clock) Option {
	return func(uc *UseCases) {
		uc.clock = clock
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		registry: fieldtype.New(),
		clock:    interfaces.RealClock(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	var configOpts []ConfigOption
	if uc.defaults != nil {
		configOpts = append(configOpts, WithDefaultConfiguration(uc.defaults))
	}
	uc.Config = NewConfigUseCase(repo.Config(), configOpts...)

	validator := validation.New(uc.registry, validation.WithClock(uc.clock))
	uc.Submission = NewSubmissionUseCase(repo.Submission(), uc.Config, validator,
		WithUploader(uc.uploader), WithClock(uc.clock))

	return uc
}

// Registry exposes the field type registry, e.g. for the operator catalogue
func (uc *UseCases) Registry() *fieldtype.Registry {
	return uc.registry
}
