package service

import (
	"testing"

	"storefront/internal/domain"
)

func TestSessionState_UserIsIsolatedFromCallers(t *testing.T) {
	st := NewSessionState()
	street := "Main 1"
	st.SetUser(domain.User{Email: "a@example.com", ShippingStreet: &street})

	street = "Changed by setter caller"
	got := st.User()
	if got == nil || *got.ShippingStreet != "Main 1" {
		t.Fatalf("state must not alias the value passed to SetUser, got %+v", got)
	}

	*got.ShippingStreet = "Mutated"
	if again := st.User(); *again.ShippingStreet != "Main 1" {
		t.Fatalf("state changed through returned profile: %q", *again.ShippingStreet)
	}
}

func TestSessionState_MergeAndClear(t *testing.T) {
	st := NewSessionState()
	if st.Merge(domain.UserUpdate{FirstName: strPtr("Ada")}) {
		t.Fatalf("merge without profile must be a no-op")
	}
	st.SetUser(domain.User{FirstName: "Grace"})
	if !st.Merge(domain.UserUpdate{FirstName: strPtr("Ada")}) || st.User().FirstName != "Ada" {
		t.Fatalf("expected merged first name")
	}
	st.Clear()
	if st.User() != nil {
		t.Fatalf("expected nil profile after clear")
	}
}
