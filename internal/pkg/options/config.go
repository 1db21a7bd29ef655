package options

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// LoadConfigFile merges an optional config file into opts. Flag values bound
// from fs keep precedence: a flag the user set on the command line wins over
// the file, and the file wins over flag defaults. path may be empty, in which
// case only the bound flags are applied.
//
// File keys follow the flag names, split on dots:
//
//	api:
//	  base-url: https://ccglobal.example.org
//	  timeout: 15s
//	serve:
//	  transport: sse
func LoadConfigFile(path string, fs *pflag.FlagSet, opts interface{}) error {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %q: %w", path, err)
		}
	}

	if err := v.Unmarshal(opts); err != nil {
		return fmt.Errorf("apply config: %w", err)
	}
	return nil
}
