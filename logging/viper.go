package logging

import (
	"github.com/go-kit/kit/log"
	"github.com/spf13/viper"
)

// LoggingKey is the configuration subtree this package claims by convention.
// Sub and Configure look for Options beneath it; FromViper does not.
const LoggingKey = "logging"

// Sub descends to this package's conventional subtree.  A nil viper, or one
// with no such subtree, yields nil, which FromViper accepts.
func Sub(v *viper.Viper) *viper.Viper {
	if v == nil {
		return nil
	}

	return v.Sub(LoggingKey)
}

// FromViper unmarshals an Options from the given viper instance.  A nil viper
// yields a default Options rather than an error.
func FromViper(v *viper.Viper) (*Options, error) {
	o := new(Options)
	if v != nil {
		if err := v.Unmarshal(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Configure builds a ready-to-use Logger from the conventional logging subtree
// of the given viper instance, combining Sub, FromViper, and New.
func Configure(v *viper.Viper) (log.Logger, error) {
	o, err := FromViper(Sub(v))
	if err != nil {
		return nil, err
	}

	return New(o), nil
}
