package taginput

// Verdict is the outcome of running a candidate through the pipeline.
type Verdict int

const (
	// Accept means the candidate may be appended.
	Accept Verdict = iota
	// Reject means the candidate is invalid; callers emit a validation error.
	Reject
	// Blocked means an autocomplete item is highlighted and the commit must go
	// through the dropdown instead. Callers treat it as a no-op.
	Blocked
)

func (v Verdict) String() string {
	switch v {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	case Blocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// pipeline decides whether a candidate may become a tag. It reads the
// collection and the dropdown highlight but never mutates either.
type pipeline struct {
	tags      *Collection
	opts      *Options
	highlight func() bool
	blink     func(Tag)
}

// validate runs the checks in order, stopping at the first blocking or
// failing one:
//
//  1. highlighted dropdown item and not from autocomplete -> Blocked
//  2. empty candidate (a rejecting transform) -> Reject
//  3. duplicate value -> Reject, blinking the existing tag if enabled
//  4. max items reached -> Reject
//  5. only-from-autocomplete and not from autocomplete -> Reject
//  6. custom validators -> Reject on first failure
func (p *pipeline) validate(value string, fromAutocomplete bool) Verdict {
	if !fromAutocomplete && p.highlight != nil && p.highlight() {
		return Blocked
	}
	if value == "" {
		return Reject
	}
	if dupe, ok := p.tags.Find(value); ok {
		if p.opts.BlinkIfDupe && p.blink != nil {
			p.blink(dupe)
		}
		return Reject
	}
	if p.tags.MaxItemsReached() {
		return Reject
	}
	if p.opts.OnlyFromAutocomplete && !fromAutocomplete {
		return Reject
	}
	for _, v := range p.opts.Validators {
		if v.Func != nil && !v.Func(value) {
			return Reject
		}
	}
	return Accept
}

// isValid is the boolean view of validate.
func (p *pipeline) isValid(value string, fromAutocomplete bool) bool {
	return p.validate(value, fromAutocomplete) == Accept
}

// failing returns the names of custom validators that reject value.
func (p *pipeline) failing(value string) []string {
	var names []string
	for _, v := range p.opts.Validators {
		if v.Func != nil && !v.Func(value) {
			names = append(names, v.Name)
		}
	}
	return names
}
