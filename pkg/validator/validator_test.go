package validator_test

import (
	"testing"

	"library-catalog/pkg/validator"
)

func TestValidator(t *testing.T) {
	t.Run("Fresh Validator Is Valid", func(t *testing.T) {
		v := validator.New()
		if !v.Valid() {
			t.Error("expected a fresh validator to be valid")
		}
		if len(v.Errors()) != 0 {
			t.Errorf("expected no errors, got %v", v.Errors())
		}
	})

	t.Run("Errors Keep Insertion Order", func(t *testing.T) {
		v := validator.New()
		v.AddError("title", "must be provided")
		v.AddError("isbn", "must be valid")
		v.AddError("status", "must be known")

		errs := v.Errors()
		want := []string{"title", "isbn", "status"}
		if len(errs) != len(want) {
			t.Fatalf("expected %d errors, got %d", len(want), len(errs))
		}
		for i, field := range want {
			if errs[i].Field != field {
				t.Errorf("position %d: expected %q, got %q", i, field, errs[i].Field)
			}
		}
	})

	t.Run("First Error Per Field Wins", func(t *testing.T) {
		v := validator.New()
		v.AddError("title", "must be provided")
		v.AddError("title", "must not be longer than 500 characters")

		errs := v.Errors()
		if len(errs) != 1 {
			t.Fatalf("expected 1 error, got %d", len(errs))
		}
		if errs[0].Message != "must be provided" {
			t.Errorf("expected the first message to win, got %q", errs[0].Message)
		}
	})

	t.Run("Check Records Only Failures", func(t *testing.T) {
		v := validator.New()
		v.Check(true, "ok_field", "never recorded")
		v.Check(false, "bad_field", "recorded")
		if len(v.Errors()) != 1 || v.Errors()[0].Field != "bad_field" {
			t.Errorf("unexpected errors: %v", v.Errors())
		}
	})
}

func TestIn(t *testing.T) {
	if !validator.In("book", "book", "dvd") {
		t.Error("expected membership")
	}
	if validator.In("scroll", "book", "dvd") {
		t.Error("expected no membership")
	}
	if validator.In("book") {
		t.Error("empty list never contains a value")
	}
}

func TestUnique(t *testing.T) {
	if !validator.Unique([]string{"a", "b", "c"}) {
		t.Error("expected distinct values to be unique")
	}
	if validator.Unique([]string{"a", "b", "a"}) {
		t.Error("expected duplicate values to fail")
	}
	if !validator.Unique(nil) {
		t.Error("an empty list is trivially unique")
	}
}

func TestISBNPattern(t *testing.T) {
	valid := []string{"9780262510875", "030640615X", "0306406152"}
	invalid := []string{"", "123", "978-0262510875", "03064061XX", "97802625108751"}

	for _, s := range valid {
		if !validator.Matches(s, validator.ISBNRX) {
			t.Errorf("expected %q to match", s)
		}
	}
	for _, s := range invalid {
		if validator.Matches(s, validator.ISBNRX) {
			t.Errorf("expected %q not to match", s)
		}
	}
}

func TestISSNPattern(t *testing.T) {
	valid := []string{"1234-5678", "2049-363X"}
	invalid := []string{"", "12345678", "1234-56789", "1234_567X"}

	for _, s := range valid {
		if !validator.Matches(s, validator.ISSNRX) {
			t.Errorf("expected %q to match", s)
		}
	}
	for _, s := range invalid {
		if validator.Matches(s, validator.ISSNRX) {
			t.Errorf("expected %q not to match", s)
		}
	}
}
