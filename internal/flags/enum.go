package flags

import (
	"flag"
	"fmt"

	"golang.org/x/exp/slices"
)

// EnumFlag registers a string flag on fs that only accepts safelist values.
func EnumFlag(fs *flag.FlagSet, target *string, name string, safelist []string, usage string) {
	usageWithValues := fmt.Sprintf("%s, must be one of %v", usage, safelist)
	fs.Func(name, usageWithValues, func(flagValue string) error {
		if slices.Contains(safelist, flagValue) {
			*target = flagValue
			return nil
		}
		return fmt.Errorf("must be one of %v", safelist)
	})
}
