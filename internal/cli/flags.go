package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/tr013432-design/spazio/internal/cli/formatter"
)

// moneyFlagCents reads a registered string flag and converts it to cents.
// An empty flag returns 0 cents without error.
func moneyFlagCents(fs *pflag.FlagSet, name string) (int64, error) {
	raw, err := fs.GetString(name)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return 0, nil
	}
	cents, err := formatter.ParseMoney(raw)
	if err != nil {
		return 0, fmt.Errorf("flag --%s: %w", name, err)
	}
	return cents, nil
}

// dateFlag reads a registered string flag as an optional YYYY-MM-DD date.
func dateFlag(fs *pflag.FlagSet, name string) (*time.Time, error) {
	raw, err := fs.GetString(name)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("flag --%s: expected YYYY-MM-DD, got %q", name, raw)
	}
	return &d, nil
}
