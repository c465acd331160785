package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	apperrors "taginput/internal/errors"
	"taginput/internal/taginput"
)

var transforms = map[string]taginput.Transform{
	"none":       taginput.Identity,
	"trim":       taginput.TrimSpace,
	"lower":      strings.ToLower,
	"trim-lower": taginput.TrimLower,
}

var matchers = map[string]taginput.Matcher{
	"substring": taginput.SubstringMatcher,
	"prefix":    taginput.PrefixMatcher,
	"fuzzy":     taginput.FuzzyMatcher,
}

// MatcherNames lists the accepted values of the matcher key, sorted.
func MatcherNames() []string {
	names := make([]string, 0, len(matchers))
	for name := range matchers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TagInputOptions translates the loaded configuration into controller
// options. Candidate sources are not included; the caller loads them.
func TagInputOptions() ([]taginput.Option, error) {
	v, err := getViper()
	if err != nil {
		return nil, err
	}

	keys, err := separatorKeys(v.GetStringSlice(KeySeparatorKeys))
	if err != nil {
		return nil, err
	}

	transformName := strings.ToLower(strings.TrimSpace(v.GetString(KeyTransform)))
	transform, ok := transforms[transformName]
	if !ok {
		return nil, invalid(KeyTransform, transformName, nil)
	}
	matcherName := strings.ToLower(strings.TrimSpace(v.GetString(KeyMatcher)))
	matcher, ok := matchers[matcherName]
	if !ok {
		return nil, invalid(KeyMatcher, matcherName, nil)
	}

	opts := []taginput.Option{
		taginput.WithSeparatorKeys(keys...),
		taginput.WithPlaceholder(v.GetString(KeyPlaceholder)),
		taginput.WithSecondaryPlaceholder(v.GetString(KeySecondaryPlaceholder)),
		taginput.WithMaxItems(v.GetInt(KeyMaxItems)),
		taginput.WithReadOnly(v.GetBool(KeyReadOnly)),
		taginput.WithHideInput(v.GetBool(KeyHideInput)),
		taginput.WithOnlyFromAutocomplete(v.GetBool(KeyOnlyFromAutocomplete)),
		taginput.WithShowDropdownIfEmpty(v.GetBool(KeyShowDropdownIfEmpty)),
		taginput.WithTextChangeDebounce(v.GetDuration(KeyTextChangeDebounce)),
		taginput.WithAddOnBlur(v.GetBool(KeyAddOnBlur)),
		taginput.WithAddOnPaste(v.GetBool(KeyAddOnPaste)),
		taginput.WithClearOnBlur(v.GetBool(KeyClearOnBlur)),
		taginput.WithPasteSplitPattern(v.GetString(KeyPasteSplitPattern)),
		taginput.WithBlinkIfDupe(v.GetBool(KeyBlinkIfDupe)),
		taginput.WithTransform(transform),
		taginput.WithMatcher(matcher),
	}

	if expr := strings.TrimSpace(v.GetString(KeyPasteSplitRegex)); expr != "" {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, invalid(KeyPasteSplitRegex, expr, err)
		}
		opts = append(opts, taginput.WithPasteSplitRegexp(re))
	}

	validators, err := configuredValidators(v.GetString(KeyValidatePattern), v.GetInt(KeyValidateMinLength), v.GetInt(KeyValidateMaxLength))
	if err != nil {
		return nil, err
	}
	if len(validators) > 0 {
		opts = append(opts, taginput.WithValidators(validators...))
	}
	if msgs := v.GetStringMapString(KeyErrorMessages); len(msgs) > 0 {
		opts = append(opts, taginput.WithErrorMessages(msgs))
	}
	return opts, nil
}

// separatorKeys accepts names or numeric codes. Entries may themselves be
// comma-separated, which is how lists arrive from the environment.
func separatorKeys(raw []string) ([]taginput.KeyCode, error) {
	var keys []taginput.KeyCode
	for _, entry := range raw {
		for _, name := range strings.Split(entry, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			code, ok := taginput.ParseKeyCode(name)
			if !ok {
				return nil, invalid(KeySeparatorKeys, name, nil)
			}
			keys = append(keys, code)
		}
	}
	return keys, nil
}

func configuredValidators(pattern string, minLen, maxLen int) ([]taginput.Validator, error) {
	var out []taginput.Validator
	if pattern = strings.TrimSpace(pattern); pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, invalid(KeyValidatePattern, pattern, err)
		}
		out = append(out, taginput.Pattern(re))
	}
	if minLen > 0 {
		out = append(out, taginput.MinLength(minLen))
	}
	if maxLen > 0 {
		if minLen > maxLen {
			return nil, invalid(KeyValidateMaxLength, fmt.Sprint(maxLen), fmt.Errorf("below %s %d", KeyValidateMinLength, minLen))
		}
		out = append(out, taginput.MaxLength(maxLen))
	}
	return out, nil
}

func invalid(key, value string, err error) error {
	return apperrors.New(apperrors.CodeConfigurationError, fmt.Sprintf("invalid %s %q", key, value), err)
}
