package taginput

import (
	"regexp"
	"strings"
	"time"
)

const (
	// DefaultPlaceholder is shown in the input when at least one tag exists.
	DefaultPlaceholder = "+ Tag"
	// DefaultSecondaryPlaceholder is shown while the collection is empty.
	DefaultSecondaryPlaceholder = "Enter a new tag"
	// DefaultTextChangeDebounce is the quiet period before OnTextChange fires.
	DefaultTextChangeDebounce = 250 * time.Millisecond
	// DefaultPasteSplitPattern separates pasted text into candidate tags.
	DefaultPasteSplitPattern = ","

	// Unlimited disables the max-items ceiling.
	Unlimited = 0

	// MaxItemsWarning is logged when the seeded collection exceeds MaxItems.
	MaxItemsWarning = "the number of items specified was greater than the property max-items"
)

// Transform normalizes a raw candidate before validation. Returning "" rejects
// the candidate.
type Transform func(string) string

// Identity is the default Transform.
func Identity(s string) string { return s }

// TrimSpace trims surrounding whitespace.
func TrimSpace(s string) string { return strings.TrimSpace(s) }

// TrimLower trims surrounding whitespace and lowercases.
func TrimLower(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Validator is a named constraint applied to candidates and to the buffer.
type Validator struct {
	Name string
	Func func(value string) bool
}

// Pattern builds a validator requiring value to match re.
func Pattern(re *regexp.Regexp) Validator {
	return Validator{Name: "pattern", Func: re.MatchString}
}

// MaxLength builds a validator rejecting values longer than n runes.
func MaxLength(n int) Validator {
	return Validator{Name: "maxlength", Func: func(v string) bool {
		return len([]rune(v)) <= n
	}}
}

// MinLength builds a validator rejecting values shorter than n runes.
func MinLength(n int) Validator {
	return Validator{Name: "minlength", Func: func(v string) bool {
		return len([]rune(v)) >= n
	}}
}

// CandidateSource supplies autocomplete candidates. The controller only reads
// from it.
type CandidateSource interface {
	Candidates() []string
}

// StaticCandidates is a fixed candidate list.
type StaticCandidates []string

// Candidates implements CandidateSource.
func (s StaticCandidates) Candidates() []string {
	return s
}

// Options is the recognized configuration surface.
type Options struct {
	SeparatorKeys        []KeyCode
	Placeholder          string
	SecondaryPlaceholder string
	MaxItems             int // Unlimited when 0
	ReadOnly             bool
	HideInput            bool // display tags only; no text field
	Transform            Transform
	Validators           []Validator
	ErrorMessages        map[string]string // validator name -> message
	OnlyFromAutocomplete bool
	ShowDropdownIfEmpty  bool
	TextChangeDebounce   time.Duration
	AddOnBlur            bool
	AddOnPaste           bool
	ClearOnBlur          bool
	PasteSplitPattern    string
	PasteSplitRegexp     *regexp.Regexp // takes precedence over PasteSplitPattern
	BlinkIfDupe          bool
	Candidates           CandidateSource
	Matcher              Matcher
	Items                []Tag // initial model
	Scheduler            Scheduler
	Renderer             Renderer
}

// Option configures a Controller.
type Option func(*Options)

// DefaultOptions returns the defaults applied before any Option.
func DefaultOptions() Options {
	return Options{
		Placeholder:          DefaultPlaceholder,
		SecondaryPlaceholder: DefaultSecondaryPlaceholder,
		MaxItems:             Unlimited,
		Transform:            Identity,
		ErrorMessages:        map[string]string{},
		TextChangeDebounce:   DefaultTextChangeDebounce,
		PasteSplitPattern:    DefaultPasteSplitPattern,
		BlinkIfDupe:          true,
		Matcher:              SubstringMatcher,
	}
}

// WithSeparatorKeys sets the key codes that commit the buffer as a tag.
func WithSeparatorKeys(keys ...KeyCode) Option {
	return func(o *Options) {
		o.SeparatorKeys = append([]KeyCode(nil), keys...)
	}
}

// WithPlaceholder sets the placeholder shown once tags exist.
func WithPlaceholder(s string) Option {
	return func(o *Options) { o.Placeholder = s }
}

// WithSecondaryPlaceholder sets the placeholder shown while the collection is empty.
func WithSecondaryPlaceholder(s string) Option {
	return func(o *Options) { o.SecondaryPlaceholder = s }
}

// WithMaxItems sets the collection ceiling. n <= 0 means Unlimited.
func WithMaxItems(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = Unlimited
		}
		o.MaxItems = n
	}
}

// WithReadOnly locks the collection against user mutation.
func WithReadOnly(readonly bool) Option {
	return func(o *Options) { o.ReadOnly = readonly }
}

// WithHideInput removes the text field. Tags stay visible and can still be
// selected and removed from the keyboard.
func WithHideInput(hide bool) Option {
	return func(o *Options) { o.HideInput = hide }
}

// WithTransform sets the normalizing transform. nil restores Identity.
func WithTransform(fn Transform) Option {
	return func(o *Options) {
		if fn == nil {
			fn = Identity
		}
		o.Transform = fn
	}
}

// WithValidators appends custom validators to the pipeline.
func WithValidators(v ...Validator) Option {
	return func(o *Options) { o.Validators = append(o.Validators, v...) }
}

// WithErrorMessages maps validator names to user-facing messages.
func WithErrorMessages(m map[string]string) Option {
	return func(o *Options) {
		for k, v := range m {
			o.ErrorMessages[k] = v
		}
	}
}

// WithOnlyFromAutocomplete restricts additions to autocomplete selections.
func WithOnlyFromAutocomplete(only bool) Option {
	return func(o *Options) { o.OnlyFromAutocomplete = only }
}

// WithShowDropdownIfEmpty opens the dropdown when the buffer is empty.
func WithShowDropdownIfEmpty(show bool) Option {
	return func(o *Options) { o.ShowDropdownIfEmpty = show }
}

// WithTextChangeDebounce sets the OnTextChange quiet period.
func WithTextChangeDebounce(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			d = 0
		}
		o.TextChangeDebounce = d
	}
}

// WithAddOnBlur commits the buffer when the input loses focus.
func WithAddOnBlur(add bool) Option {
	return func(o *Options) { o.AddOnBlur = add }
}

// WithAddOnPaste enables the paste handler.
func WithAddOnPaste(add bool) Option {
	return func(o *Options) { o.AddOnPaste = add }
}

// WithClearOnBlur clears the buffer when the input loses focus.
func WithClearOnBlur(clear bool) Option {
	return func(o *Options) { o.ClearOnBlur = clear }
}

// WithPasteSplitPattern splits pasted text on a literal separator.
func WithPasteSplitPattern(sep string) Option {
	return func(o *Options) { o.PasteSplitPattern = sep }
}

// WithPasteSplitRegexp splits pasted text with a regular expression.
func WithPasteSplitRegexp(re *regexp.Regexp) Option {
	return func(o *Options) { o.PasteSplitRegexp = re }
}

// WithBlinkIfDupe toggles the visual pulse on duplicate entries.
func WithBlinkIfDupe(blink bool) Option {
	return func(o *Options) { o.BlinkIfDupe = blink }
}

// WithCandidates enables autocomplete using src.
func WithCandidates(src CandidateSource) Option {
	return func(o *Options) { o.Candidates = src }
}

// WithMatcher replaces the autocomplete matching rule.
func WithMatcher(m Matcher) Option {
	return func(o *Options) {
		if m == nil {
			m = SubstringMatcher
		}
		o.Matcher = m
	}
}

// WithItems seeds the collection. Duplicates are dropped.
func WithItems(items ...Tag) Option {
	return func(o *Options) { o.Items = append([]Tag(nil), items...) }
}

// WithScheduler sets the scheduler used for debouncing and deferred work.
func WithScheduler(s Scheduler) Option {
	return func(o *Options) { o.Scheduler = s }
}

// WithRenderer sets the rendering collaborator.
func WithRenderer(r Renderer) Option {
	return func(o *Options) { o.Renderer = r }
}
