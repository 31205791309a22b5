package extract

import "testing"

func wantValue(t *testing.T, field, token string, want float64) {
	t.Helper()
	got := Normalize(field, token)
	if got == nil {
		t.Fatalf("Normalize(%q, %q) = unknown, want %v", field, token, want)
	}
	if *got != want {
		t.Fatalf("Normalize(%q, %q) = %v, want %v", field, token, *got, want)
	}
}

func wantUnknown(t *testing.T, field, token string) {
	t.Helper()
	if got := Normalize(field, token); got != nil {
		t.Fatalf("Normalize(%q, %q) = %v, want unknown", field, token, *got)
	}
}

func TestNormalize_Sex(t *testing.T) {
	for _, token := range []string{"Male", "MALE", "m", "1"} {
		wantValue(t, "sex", token, 1)
	}
	for _, token := range []string{"female", "F", "0"} {
		wantValue(t, "sex", token, 0)
	}
}

func TestNormalize_ChestPain(t *testing.T) {
	wantValue(t, "cp", "typical", 0)
	wantValue(t, "cp", "atypical", 1)
	wantValue(t, "cp", "non-anginal", 2)
	wantValue(t, "cp", "asymptomatic", 3)
	wantValue(t, "cp", "none", 3)
	wantValue(t, "cp", "2", 2)
	wantUnknown(t, "cp", "gibberish")
}

func TestNormalize_SlopeAndThal(t *testing.T) {
	wantValue(t, "slope", "upsloping", 0)
	wantValue(t, "slope", "Flat", 1)
	wantValue(t, "slope", "downsloping", 2)

	wantValue(t, "thal", "normal", 1)
	wantValue(t, "thal", "fixed", 2)
	wantValue(t, "thal", "reversible", 3)
	wantValue(t, "thal", "3", 3)
}

func TestNormalize_Numeric(t *testing.T) {
	wantValue(t, "chol", "120", 120)
	wantValue(t, "oldpeak", "2.3", 2.3)
	wantValue(t, "age", "63", 63)
	wantUnknown(t, "chol", "abc")
	wantUnknown(t, "age", "")
	wantUnknown(t, "oldpeak", "  ")
}

// Binary fields encode any unrecognized non-empty token as 0 rather
// than unknown. Deliberately lossy; pinned here so a change is a
// conscious one.
func TestNormalize_BinaryFallsToZero(t *testing.T) {
	wantValue(t, "exang", "maybe", 0)
	wantValue(t, "exang", "yes", 1)
	wantValue(t, "fbs", ">120", 1)
	wantValue(t, "fbs", "<120", 0)
	wantValue(t, "fbs", "weird", 0)
}

func TestNormalize_EmptyTokenIsUnknown(t *testing.T) {
	wantUnknown(t, "sex", "")
	wantUnknown(t, "exang", "")
}
