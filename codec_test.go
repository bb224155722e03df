package medcard

import (
	"errors"
	"testing"
)

func populatedSnapshot() Snapshot {
	return Snapshot{
		PatientName:      "María Pérez",
		ClinicalHistory:  "HC-1042",
		RehabRoom:        "Sala 3",
		State:            "Miranda",
		BirthDate:        "1990-06-01",
		Age:              "34",
		Sex:              SexFemale,
		IDCard:           "V-12345678",
		HealthConditions: "lumbalgia crónica",
		Therapies:        []string{"electroterapia", "", "hidroterapia"},
		SessionDates:     []string{"2024-01-10", "", "2024-01-17"},
	}
}

func TestSnapshotCodec(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		s := populatedSnapshot()
		data, err := EncodeSnapshot(s)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		got, err := DecodeSnapshot(data)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !got.Equal(s) {
			t.Errorf("round trip mismatch:\n in: %+v\nout: %+v", s, got)
		}
	})

	t.Run("RoundTripDefault", func(t *testing.T) {
		s := NewSnapshot(1, 1)
		data, err := EncodeSnapshot(s)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		got, err := DecodeSnapshot(data)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !got.Equal(s) {
			t.Errorf("round trip mismatch: %+v vs %+v", s, got)
		}
	})

	t.Run("InvalidEncoding", func(t *testing.T) {
		for _, data := range []string{"", "{", "null", `"just a string"`, `[1,2,3]`} {
			_, err := DecodeSnapshot([]byte(data))
			if err == nil {
				t.Errorf("expected error for %q", data)
				continue
			}
			var mse *MalformedSnapshotError
			if !errors.As(err, &mse) {
				t.Errorf("expected MalformedSnapshotError for %q, got %T", data, err)
			}
		}
	})

	t.Run("MissingTherapies", func(t *testing.T) {
		_, err := DecodeSnapshot([]byte(`{"patientName":"x","sessionDates":[""]}`))
		var mse *MalformedSnapshotError
		if !errors.As(err, &mse) {
			t.Fatalf("expected MalformedSnapshotError, got %v", err)
		}
	})

	t.Run("MissingSessionDates", func(t *testing.T) {
		_, err := DecodeSnapshot([]byte(`{"patientName":"x","therapies":["a"]}`))
		var mse *MalformedSnapshotError
		if !errors.As(err, &mse) {
			t.Fatalf("expected MalformedSnapshotError, got %v", err)
		}
	})

	t.Run("NonArrayGridField", func(t *testing.T) {
		_, err := DecodeSnapshot([]byte(`{"therapies":"oops","sessionDates":[""]}`))
		var mse *MalformedSnapshotError
		if !errors.As(err, &mse) {
			t.Fatalf("expected MalformedSnapshotError, got %v", err)
		}
	})

	t.Run("MissingScalarsDefaultEmpty", func(t *testing.T) {
		got, err := DecodeSnapshot([]byte(`{"therapies":["a"],"sessionDates":["2024-01-10"]}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PatientName != "" || got.Age != "" || got.Sex != SexUnset {
			t.Errorf("expected empty scalars, got %+v", got)
		}
		if len(got.Therapies) != 1 || got.Therapies[0] != "a" {
			t.Errorf("therapies not preserved: %v", got.Therapies)
		}
	})
}
