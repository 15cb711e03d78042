package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/provenlabs/chaingate/pkg/gateway/types"
)

var validate = validator.New()

// Validatable is implemented by every configuration struct.
type Validatable interface {
	Validate() error
}

// Load unmarshals the current viper state into T and validates it.
func Load[T Validatable]() (T, error) {
	var out T
	if err := viper.Unmarshal(&out); err != nil {
		return out, types.WrapError(types.KindConfig, "unmarshaling configuration", err)
	}
	if err := out.Validate(); err != nil {
		return out, err
	}
	return out, nil
}

func validateConfig(cfg any) error {
	if err := validate.Struct(cfg); err != nil {
		return types.WrapError(types.KindConfig, "invalid configuration", err)
	}
	return nil
}
