package validate

import "testing"

type contactForm struct {
	Name    string  `json:"name" validate:"required,min=2"`
	Email   string  `json:"email" validate:"required,email"`
	Urgency string  `json:"urgency" validate:"nullable,in=normal,urgent"`
	Rating  int     `json:"rating" validate:"nullable,between=1,5"`
	Website *string `json:"website" validate:"url"`
}

func TestStructPasses(t *testing.T) {
	errs := Struct(&contactForm{Name: "Ali", Email: "ali@example.com", Urgency: "urgent", Rating: 4})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := Struct(&contactForm{Email: "ali@example.com"})
	if _, ok := errs["name"]; !ok {
		t.Errorf("expected error on name, got %v", errs)
	}
}

func TestEmailRule(t *testing.T) {
	errs := Struct(&contactForm{Name: "Ali", Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Errorf("expected error on email, got %v", errs)
	}
}

func TestNullableSkipsEmpty(t *testing.T) {
	errs := Struct(&contactForm{Name: "Ali", Email: "ali@example.com", Urgency: ""})
	if _, ok := errs["urgency"]; ok {
		t.Errorf("nullable empty urgency should not error: %v", errs)
	}
}

func TestInRule(t *testing.T) {
	errs := Struct(&contactForm{Name: "Ali", Email: "ali@example.com", Urgency: "whenever"})
	if _, ok := errs["urgency"]; !ok {
		t.Errorf("expected error on urgency, got %v", errs)
	}
}

func TestBetweenRule(t *testing.T) {
	errs := Struct(&contactForm{Name: "Ali", Email: "ali@example.com", Rating: 9})
	if _, ok := errs["rating"]; !ok {
		t.Errorf("expected error on rating, got %v", errs)
	}
}

func TestNilPointerSkipped(t *testing.T) {
	errs := Struct(&contactForm{Name: "Ali", Email: "ali@example.com"})
	if _, ok := errs["website"]; ok {
		t.Errorf("nil pointer field should be skipped: %v", errs)
	}
}

func TestPointerValueValidated(t *testing.T) {
	bad := "not a url"
	errs := Struct(&contactForm{Name: "Ali", Email: "ali@example.com", Website: &bad})
	if _, ok := errs["website"]; !ok {
		t.Errorf("expected error on website, got %v", errs)
	}
}
