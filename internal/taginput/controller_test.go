package taginput

import (
	"strings"
	"testing"

	"taginput/internal/debug"
)

func TestAppendCompoundEventOrder(t *testing.T) {
	c, _, r := newTestController(t)
	log := record(c)

	c.SetText("go")
	if ok := c.Append(c.Text(), false); !ok {
		t.Fatal("expected Append to accept")
	}

	assertValues(t, c, "go")
	assertEntries(t, log, "add:go", "change:go", "focus:")
	if c.Text() != "" {
		t.Errorf("buffer = %q, want empty", c.Text())
	}
	if r.focusRequests != 1 {
		t.Errorf("focus requests = %d, want 1", r.focusRequests)
	}
}

func TestAppendUniqueness(t *testing.T) {
	c, _, r := newTestController(t, WithItems(Tags("go", "rust")...))
	log := record(c)

	if c.Append("go", false) {
		t.Fatal("duplicate should be rejected")
	}
	assertValues(t, c, "go", "rust")
	assertEntries(t, log, "error:go", "focus:")
	if len(r.blinks) != 1 || r.blinks[0].Value() != "go" {
		t.Errorf("blinks = %v, want [go]", r.blinks)
	}
}

func TestDuplicateBlinkDisabled(t *testing.T) {
	c, _, r := newTestController(t, WithItems(NewTag("go")), WithBlinkIfDupe(false))
	c.Append("go", false)
	if len(r.blinks) != 0 {
		t.Errorf("expected no blink, got %v", r.blinks)
	}
}

func TestDuplicateBlinksEvenWhenFull(t *testing.T) {
	c, _, r := newTestController(t, WithMaxItems(1), WithItems(NewTag("go")))
	log := record(c)

	c.Append("go", false)
	if len(r.blinks) != 1 {
		t.Fatalf("expected duplicate blink on a full collection, got %v", r.blinks)
	}
	if log.count("error") != 1 {
		t.Errorf("expected a single validation error, got %v", log.entries)
	}
}

func TestCapacity(t *testing.T) {
	c, _, _ := newTestController(t, WithMaxItems(2))
	log := record(c)

	c.Append("a", false)
	c.Append("b", false)
	if !c.MaxItemsReached() {
		t.Fatal("expected MaxItemsReached after two tags")
	}
	if c.Append("c", false) {
		t.Fatal("append past capacity should be rejected")
	}
	assertValues(t, c, "a", "b")
	if log.count("error") != 1 {
		t.Errorf("validation errors = %d, want 1", log.count("error"))
	}
}

func TestOverCapacitySeedRaisesCapacityOnce(t *testing.T) {
	var buf strings.Builder
	restore := debug.SetOutput(&buf)
	t.Cleanup(restore)

	c, _, _ := newTestController(t, WithMaxItems(2), WithItems(Tags("a", "b", "c")...))

	assertValues(t, c, "a", "b", "c")
	if got := c.Collection().Capacity(); got != 3 {
		t.Fatalf("capacity = %d, want raised to 3", got)
	}
	if !c.MaxItemsReached() {
		t.Error("raised capacity should be reached")
	}
	if c.Append("d", false) {
		t.Error("append beyond raised capacity should be rejected")
	}
	c.Remove(NewTag("a"))
	if !c.Append("d", false) {
		t.Error("append after freeing a slot should be accepted")
	}
	if got := strings.Count(buf.String(), MaxItemsWarning); got != 1 {
		t.Errorf("warning logged %d times, want 1:\n%s", got, buf.String())
	}
}

func TestSeedDropsDuplicates(t *testing.T) {
	c, _, _ := newTestController(t, WithItems(Tags("a", "b", "a")...))
	assertValues(t, c, "a", "b")
}

func TestSelectIsIdempotent(t *testing.T) {
	c, _, _ := newTestController(t, WithItems(Tags("a", "b")...))
	log := record(c)

	c.Select(NewTag("a"))
	c.Select(NewTag("a"))
	c.Select(NewTag("missing"))
	c.Select(Tag{})

	assertEntries(t, log, "select:a")
	if sel, ok := c.Selected(); !ok || sel.Value() != "a" {
		t.Fatalf("Selected = %v, %v; want a", sel, ok)
	}
}

func TestRemoveClearsSelection(t *testing.T) {
	c, _, r := newTestController(t, WithItems(Tags("a", "b")...))
	log := record(c)

	c.Select(NewTag("b"))
	log.reset()
	c.Remove(NewTag("b"))

	assertValues(t, c, "a")
	if _, ok := c.Selected(); ok {
		t.Fatal("selection should be cleared after removing the selected tag")
	}
	assertEntries(t, log, "focus:", "remove:b", "change:a")
	if r.focusRequests != 1 {
		t.Errorf("focus requests = %d, want 1", r.focusRequests)
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	c, _, _ := newTestController(t, WithItems(NewTag("a")))
	log := record(c)

	c.Remove(NewTag("zzz"))
	assertValues(t, c, "a")
	assertEntries(t, log)
}

func TestReadOnlyLockout(t *testing.T) {
	c, sched, r := newTestController(t,
		WithReadOnly(true),
		WithItems(Tags("a", "b")...),
		WithAddOnPaste(true),
		WithSeparatorKeys(KeyComma),
	)
	log := record(c)

	if c.Append("c", false) {
		t.Error("Append should be a no-op when read-only")
	}
	c.Remove(NewTag("a"))
	c.Select(NewTag("a"))
	c.Focus()
	if !c.Paste("x,y") {
		t.Error("Paste should still claim the event when read-only")
	}
	c.SetText("z")
	if c.KeyDown(key(KeyComma)) {
		t.Error("separator should not be handled when read-only")
	}
	c.SetText("")
	c.KeyDown(key(KeyBackspace))
	sched.RunPending()

	assertValues(t, c, "a", "b")
	assertEntries(t, log)
	if _, ok := c.Selected(); ok {
		t.Error("nothing should be selectable when read-only")
	}
	if r.focusRequests != 0 {
		t.Errorf("focus requests = %d, want 0", r.focusRequests)
	}
	if !c.ReadOnly() {
		t.Error("ReadOnly() should report true")
	}
	if _, ok := c.Find("b"); !ok {
		t.Error("inspection should keep working when read-only")
	}
}

func TestOnlyFromAutocomplete(t *testing.T) {
	c, _, _ := newTestController(t,
		WithOnlyFromAutocomplete(true),
		WithCandidates(StaticCandidates{"go", "rust"}),
	)
	log := record(c)

	if c.Append("go", false) {
		t.Fatal("typed value should be rejected")
	}
	if log.count("error") != 1 {
		t.Fatalf("expected one validation error, got %v", log.entries)
	}
	if !c.Autocomplete().Commit("go") {
		t.Fatal("autocomplete selection should be accepted")
	}
	assertValues(t, c, "go")
}

func TestBlockedWhileItemHighlighted(t *testing.T) {
	c, _, r := newTestController(t,
		WithCandidates(StaticCandidates{"rust", "ruby"}),
		WithSeparatorKeys(KeyEnter),
	)
	log := record(c)

	c.SetText("ru")
	c.KeyUp(&KeyEvent{Code: KeyCode('U'), Rune: 'u'})
	c.Autocomplete().HighlightNext()
	log.reset()

	if c.Validate("ru", false) != Blocked {
		t.Fatalf("Validate = %v, want blocked", c.Validate("ru", false))
	}
	if c.Append("ru", false) {
		t.Fatal("blocked append should return false")
	}
	if !c.KeyDown(key(KeyEnter)) {
		t.Error("separator with text should still be consumed")
	}
	assertValues(t, c)
	assertEntries(t, log)
	if c.Text() != "ru" {
		t.Errorf("buffer = %q, want unchanged", c.Text())
	}
	if r.focusRequests != 0 {
		t.Errorf("focus requests = %d, want 0", r.focusRequests)
	}

	if !c.Autocomplete().CommitHighlighted() {
		t.Fatal("CommitHighlighted should commit the highlighted match")
	}
	assertValues(t, c, "rust")
	if c.Autocomplete().Visible() {
		t.Error("dropdown should be hidden after commit")
	}
}

func TestTransformAppliedBeforeValidation(t *testing.T) {
	c, _, _ := newTestController(t, WithTransform(TrimLower), WithItems(NewTag("go")))
	log := record(c)

	c.Append("  Rust ", false)
	c.Append(" GO", false)

	assertValues(t, c, "go", "rust")
	assertEntries(t, log, "add:rust", "change:go|rust", "focus:", "error:go", "focus:")
}

func TestRejectingTransform(t *testing.T) {
	reject := func(s string) string {
		if strings.HasPrefix(s, "#") {
			return ""
		}
		return s
	}
	c, _, _ := newTestController(t, WithTransform(reject))
	log := record(c)

	c.Append("#nope", false)
	c.Append("", false)

	assertValues(t, c)
	if got := log.count("error"); got != 2 {
		t.Fatalf("validation errors = %d, want 2: %v", got, log.entries)
	}
	if log.entries[0] != "error:#nope" {
		t.Errorf("first error = %q, want the raw attempted value", log.entries[0])
	}
}

func TestCustomValidatorsAndErrors(t *testing.T) {
	c, _, _ := newTestController(t,
		WithValidators(MinLength(2), MaxLength(5)),
		WithErrorMessages(map[string]string{"minlength": "too short"}),
	)

	if c.IsValid("a", false) {
		t.Error("single character should fail minlength")
	}
	if c.IsValid("toolong", false) {
		t.Error("seven characters should fail maxlength")
	}
	if !c.IsValid("ok", false) {
		t.Error("two characters should pass")
	}

	c.SetText("a")
	if c.Valid() {
		t.Error("buffer should be invalid")
	}
	if got := c.Errors(); len(got) != 1 || got[0] != "too short" {
		t.Errorf("Errors = %v, want [too short]", got)
	}

	c.SetText("toolong")
	if got := c.Errors(); len(got) != 1 || got[0] != "invalid value (maxlength)" {
		t.Errorf("Errors = %v, want default maxlength message", got)
	}

	c.SetText("")
	if got := c.Errors(); got != nil {
		t.Errorf("empty buffer should have no errors, got %v", got)
	}
}

func TestPlaceholder(t *testing.T) {
	c, _, _ := newTestController(t, WithPlaceholder("+ more"), WithSecondaryPlaceholder("first tag"))
	if got := c.Placeholder(); got != "first tag" {
		t.Errorf("empty Placeholder = %q, want secondary", got)
	}
	c.Append("go", false)
	if got := c.Placeholder(); got != "+ more" {
		t.Errorf("Placeholder = %q, want primary", got)
	}

	c2, _, _ := newTestController(t, WithSecondaryPlaceholder(""))
	if got := c2.Placeholder(); got != DefaultPlaceholder {
		t.Errorf("Placeholder without secondary = %q, want %q", got, DefaultPlaceholder)
	}
}

func TestFormBinding(t *testing.T) {
	c, _, _ := newTestController(t, WithMaxItems(2))
	var changes [][]string
	c.Events().OnChange(func(tags []Tag) { changes = append(changes, Values(tags)) })

	c.SetValue(Tags("a", "b", "a"))
	assertValues(t, c, "a", "b")

	got := c.Value()
	got[0] = NewTag("mutated")
	assertValues(t, c, "a", "b")

	if len(changes) != 1 || strings.Join(changes[0], ",") != "a,b" {
		t.Fatalf("changes = %v", changes)
	}
}

func TestSetValueOverCapacityKeepsEveryTag(t *testing.T) {
	var buf strings.Builder
	restore := debug.SetOutput(&buf)
	t.Cleanup(restore)

	c, _, _ := newTestController(t, WithMaxItems(2))
	errs := 0
	c.Events().OnValidationError(func(string) { errs++ })

	c.SetValue(Tags("x", "y", "z"))
	assertValues(t, c, "x", "y", "z")
	if !strings.Contains(buf.String(), "refusing additions") {
		t.Errorf("expected an over-capacity warning, got %q", buf.String())
	}
	if got := c.Collection().Capacity(); got != 2 {
		t.Errorf("capacity = %d, SetValue must not change it", got)
	}
	if !c.MaxItemsReached() {
		t.Fatal("MaxItemsReached should hold while over capacity")
	}

	c.Append("w", false)
	assertValues(t, c, "x", "y", "z")
	if errs != 1 {
		t.Errorf("validation errors = %d, want the addition rejected", errs)
	}

	c.Remove(NewTag("x"))
	c.Remove(NewTag("y"))
	c.Append("w", false)
	assertValues(t, c, "z", "w")
}

func TestSetValueRevalidatesSelection(t *testing.T) {
	c, _, _ := newTestController(t, WithItems(Tags("a", "b")...))
	c.Select(NewTag("b"))
	c.SetValue(Tags("a", "c"))
	if _, ok := c.Selected(); ok {
		t.Fatal("selection of a dropped tag should be cleared")
	}
}

func TestBlur(t *testing.T) {
	t.Run("add on blur", func(t *testing.T) {
		c, _, r := newTestController(t, WithAddOnBlur(true))
		log := record(c)
		c.SetText("go")
		c.Blur()

		assertValues(t, c, "go")
		assertEntries(t, log, "blur:go", "add:go", "change:go")
		if c.Text() != "" {
			t.Errorf("buffer = %q, want cleared", c.Text())
		}
		if r.focusRequests != 0 {
			t.Errorf("blur must not request focus, got %d", r.focusRequests)
		}
	})

	t.Run("add on blur with blank buffer", func(t *testing.T) {
		c, _, _ := newTestController(t, WithAddOnBlur(true))
		log := record(c)
		c.SetText("   ")
		c.Blur()
		assertValues(t, c)
		assertEntries(t, log, "blur:   ")
	})

	t.Run("clear on blur", func(t *testing.T) {
		c, _, _ := newTestController(t, WithClearOnBlur(true))
		c.SetText("go")
		c.Blur()
		assertValues(t, c)
		if c.Text() != "" {
			t.Errorf("buffer = %q, want cleared", c.Text())
		}
	})

	t.Run("plain blur keeps buffer", func(t *testing.T) {
		c, _, _ := newTestController(t)
		c.SetText("go")
		c.Blur()
		if c.Text() != "go" {
			t.Errorf("buffer = %q, want kept", c.Text())
		}
	})
}

func TestFocusClearsSelection(t *testing.T) {
	c, _, r := newTestController(t, WithItems(NewTag("a")))
	log := record(c)

	c.Select(NewTag("a"))
	c.SetText("x")
	c.Focus()

	if _, ok := c.Selected(); ok {
		t.Error("focus should clear the selection")
	}
	assertEntries(t, log, "select:a", "focus:x")
	if r.focusRequests != 0 {
		t.Errorf("Focus reports focus, it must not request it; got %d", r.focusRequests)
	}
}

func TestSetRendererNil(t *testing.T) {
	c, _, _ := newTestController(t, WithItems(NewTag("a")))
	c.SetRenderer(nil)
	c.Append("a", false)
	c.Append("b", false)
	assertValues(t, c, "a", "b")
}

func TestDestroyCancelsPendingWork(t *testing.T) {
	c, sched, r := newTestController(t, WithAddOnPaste(true))
	log := record(c)
	var texts []string
	c.Events().OnTextChange(func(s string) { texts = append(texts, s) })

	c.SetText("abc")
	c.Paste("x")
	if sched.pending() != 2 {
		t.Fatalf("pending = %d, want debounce and deferred refocus", sched.pending())
	}
	focusBefore := r.focusRequests

	c.Destroy()
	if sched.pending() != 0 {
		t.Fatalf("pending after Destroy = %d, want 0", sched.pending())
	}
	sched.Advance(DefaultTextChangeDebounce * 2)
	if len(texts) != 0 {
		t.Errorf("text change fired after Destroy: %v", texts)
	}
	if r.focusRequests != focusBefore {
		t.Error("deferred refocus ran after Destroy")
	}

	log.reset()
	c.Append("y", false)
	c.SetText("q")
	c.Focus()
	c.Destroy()
	assertEntries(t, log)
	assertValues(t, c, "x")
	if !c.Destroyed() {
		t.Error("Destroyed() should report true")
	}
}
