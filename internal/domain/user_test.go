package domain

import "testing"

func strPtr(s string) *string { return &s }

func TestUserApply(t *testing.T) {
	u := User{FirstName: "Ada", LastName: "Lovelace", Phone: "123"}

	got := u.Apply(UserUpdate{
		FirstName:      strPtr("Augusta"),
		ShippingStreet: strPtr("Main 1"),
	})

	if got.FirstName != "Augusta" || got.LastName != "Lovelace" || got.Phone != "123" {
		t.Fatalf("unexpected merge result %+v", got)
	}
	if got.ShippingStreet == nil || *got.ShippingStreet != "Main 1" {
		t.Fatalf("expected shipping street set")
	}
	if u.FirstName != "Ada" || u.ShippingStreet != nil {
		t.Fatalf("apply must not mutate the receiver")
	}
}

func TestUserApply_CopiesPointers(t *testing.T) {
	name := "ACME"
	got := User{}.Apply(UserUpdate{CompanyName: &name})
	name = "Other"
	if got.CompanyName == nil || *got.CompanyName != "ACME" {
		t.Fatalf("expected company name to be copied, got %v", got.CompanyName)
	}
	if !got.IsBusiness() {
		t.Fatalf("expected business account")
	}
}

func TestUserFullNameAndRole(t *testing.T) {
	u := User{FirstName: "Ada", Role: RoleAdmin}
	if u.FullName() != "Ada" {
		t.Fatalf("expected trimmed full name, got %q", u.FullName())
	}
	if !u.IsAdmin() {
		t.Fatalf("expected admin")
	}
	if (User{Role: RoleCustomer}).IsAdmin() {
		t.Fatalf("customer must not be admin")
	}
}

func TestResult(t *testing.T) {
	ok := Ok(Message{Message: "sent"})
	if !ok.Success || ok.Data == nil || ok.Data.Message != "sent" {
		t.Fatalf("unexpected ok result %+v", ok)
	}
	fail := Fail[User]("nope")
	if fail.Success || fail.Data != nil || fail.Error != "nope" {
		t.Fatalf("unexpected fail result %+v", fail)
	}
}

func TestUserClone_DoesNotSharePointers(t *testing.T) {
	u := User{Email: "a@example.com", ShippingStreet: strPtr("Main 1"), CompanyName: strPtr("ACME")}

	c := u.Clone()
	*c.ShippingStreet = "Mutated"
	*c.CompanyName = "Other"

	if *u.ShippingStreet != "Main 1" || *u.CompanyName != "ACME" {
		t.Fatalf("clone shares pointers with original: %q %q", *u.ShippingStreet, *u.CompanyName)
	}
	if c.Email != "a@example.com" || c.ShippingCity != nil {
		t.Fatalf("unexpected clone %+v", c)
	}
}
