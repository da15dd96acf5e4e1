package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseAccess,
				Kind:   KindTypeMismatch,
				Path:   []string{"shape", "payload"},
				Want:   "main.Circle",
				Have:   "main.Square",
				Detail: "checked get",
			},
			contains: []string{"[access]", "type_mismatch", "shape.payload", "want main.Circle", "have main.Square", "checked get"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseLift,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[lift]", "out_of_bounds"},
		},
		{
			name: "only have",
			err: &Error{
				Phase: PhaseDispatch,
				Kind:  KindEmpty,
				Have:  "main.A",
			},
			contains: []string{"[dispatch]", "have main.A"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLower,
				Kind:   KindOutOfBounds,
				Detail: "memory full",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[lower]", "out_of_bounds", "memory full", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseLower,
		Kind:  KindInvalidInput,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseAccess,
		Kind:  KindTypeMismatch,
		Want:  "A",
	}

	if !err.Is(&Error{Phase: PhaseAccess, Kind: KindTypeMismatch}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseLift, Kind: KindTypeMismatch}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseAccess, Kind: KindEmpty}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseAccess, Kind: KindTypeMismatch}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}

	var asErr *Error
	if !errors.As(error(err), &asErr) || asErr.Want != "A" {
		t.Error("errors.As should extract *Error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseAccess, KindTypeMismatch).
		Path("v", "slot").
		Want("A").
		Have("B").
		Value(2).
		Cause(cause).
		Detail("expected %s, got %s", "A", "B").
		Build()

	if err.Phase != PhaseAccess {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseAccess)
	}
	if err.Kind != KindTypeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
	}
	if len(err.Path) != 2 || err.Path[0] != "v" || err.Path[1] != "slot" {
		t.Errorf("Path = %v, want [v slot]", err.Path)
	}
	if err.Want != "A" || err.Have != "B" {
		t.Errorf("Want=%v Have=%v", err.Want, err.Have)
	}
	if err.Value != 2 {
		t.Errorf("Value = %v, want 2", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected A, got B" {
		t.Errorf("Detail = %v, want 'expected A, got B'", err.Detail)
	}

	literal := "100%"
	plain := New(PhaseLayout, KindInvalidInput).Detail(literal, []any{}...).Build()
	if plain.Detail != "100%" {
		t.Errorf("Detail without args = %q, want %q", plain.Detail, "100%")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("TypeMismatch", func(t *testing.T) {
		err := TypeMismatch(PhaseAccess, "A", "B")
		if err.Kind != KindTypeMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
		}
		if err.Want != "A" || err.Have != "B" {
			t.Errorf("Want=%v Have=%v", err.Want, err.Have)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		err := Empty(PhaseDispatch, "A")
		if err.Kind != KindEmpty {
			t.Errorf("Kind = %v, want %v", err.Kind, KindEmpty)
		}
	})

	t.Run("NotMember", func(t *testing.T) {
		err := NotMember(PhaseAccess, "D", []string{"A", "B", "C"})
		if err.Kind != KindNotMember {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotMember)
		}
		if !strings.Contains(err.Detail, "A, B, C") {
			t.Errorf("Detail = %q, should list alternatives", err.Detail)
		}
	})

	t.Run("InvalidDiscriminant", func(t *testing.T) {
		err := InvalidDiscriminant(PhaseLift, []string{"variant"}, 5, 2)
		if err.Kind != KindInvalidVariant {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidVariant)
		}
		if err.Value != uint32(5) {
			t.Errorf("Value = %v, want 5", err.Value)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseLower, 65530, 16, 65536)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if !strings.Contains(err.Detail, "65546") {
			t.Errorf("Detail = %q, should contain region end", err.Detail)
		}
	})

	t.Run("Misaligned", func(t *testing.T) {
		err := Misaligned(PhaseLower, 3, 4)
		if err.Kind != KindMisaligned {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMisaligned)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseSchema, "map[string]int", "maps have no WIT mapping")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
		if err.Want != "map[string]int" {
			t.Errorf("Want = %v", err.Want)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseGenerate, "min > max")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("disk full")
		err := Wrap(PhaseGenerate, KindInvalidInput, cause, "write output")
		if !errors.Is(err, cause) {
			t.Error("Wrap should keep cause in chain")
		}
	})
}
