package diagnostic

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrUnknownRule indicates a rule name that is not in the [Registry].
var ErrUnknownRule = errors.New("unknown rule")

// Registry maps rule names to rule constructors.
type Registry map[string]func() Rule

// DefaultRegistry returns a [Registry] with every built-in rule.
func DefaultRegistry() Registry {
	return Registry{
		RuleStatusRange:    func() Rule { return NewStatusRange() },
		RuleStandardStatus: func() Rule { return NewStandardStatus() },
		RuleExampleStatus:  func() Rule { return NewExampleStatus() },
		RuleDuplicateID:    func() Rule { return NewDuplicateID() },
	}
}

// Names returns the registered rule names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Flags holds CLI flag names for rule selection, allowing callers to
// customize flag names while keeping sensible defaults.
type Flags struct {
	Rules string
}

// Config holds CLI flag values for validator configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewValidator] to create a [Validator].
type Config struct {
	Registry Registry
	Flags    Flags
	// Rules is a comma-separated list of rule names, in run order.
	Rules string
}

// NewConfig returns a new [Config] with default flag names, the
// [DefaultRegistry], and the default rule selection.
func NewConfig() *Config {
	return &Config{
		Flags:    Flags{Rules: "rules"},
		Registry: DefaultRegistry(),
		Rules:    RuleStatusRange,
	}
}

// RegisterFlags adds validator flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Rules, c.Flags.Rules, "r", c.Rules,
		fmt.Sprintf("comma-separated list of enabled rules, from: %s",
			strings.Join(c.Registry.Names(), ", ")))
}

// RegisterCompletions registers shell completions for validator flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Rules,
		cobra.FixedCompletions(c.Registry.Names(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Rules, err)
	}

	return nil
}

// NewValidator creates a [Validator] running the rules named in
// [Config.Rules]. An empty selection produces a validator with no rules.
func (c *Config) NewValidator() (*Validator, error) {
	rules, err := c.parseRuleNames(c.Rules)
	if err != nil {
		return nil, err
	}

	return NewValidator(WithRules(rules...)), nil
}

// parseRuleNames resolves a comma-separated list of rule names. Repeated
// names are only instantiated once.
func (c *Config) parseRuleNames(names string) ([]Rule, error) {
	parts := strings.Split(names, ",")
	rules := make([]Rule, 0, len(parts))
	seen := make(map[string]bool, len(parts))

	for _, name := range parts {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}

		constructor, ok := c.Registry[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
		}

		seen[name] = true
		rules = append(rules, constructor())
	}

	return rules, nil
}
