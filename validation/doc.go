// Package validation checks configuration structs and request input.
//
// Struct tag validation uses go-playground/validator and names fields after
// their mapstructure or json tags, so errors point at the config key or JSON
// field a user actually wrote:
//
//	type PipelineConfig struct {
//	    BufferLimit int `mapstructure:"buffer_limit" validate:"gte=0"`
//	}
//	err := validation.Validate(cfg)
//
// Request parameters are checked with the fluent Validator:
//
//	err := validation.New().Range("take", take, 0, 10000).Validate()
package validation
