package api

import "testing"

func TestEndpointBuilders(t *testing.T) {
	cases := []struct {
		got  string
		want string
	}{
		{ProductByID(42), "/api/v1/products/42"},
		{ProductBySlug("red-shoes"), "/api/v1/products/slug/red-shoes"},
		{CategoryByID("7"), "/api/v1/categories/7"},
		{CategoryBySlug("a b"), "/api/v1/categories/slug/a%20b"},
		{UpdateProduct(1), "/api/v1/products/1"},
		{DeleteProduct(2), "/api/v1/products/2"},
		{UpdateCategory(3), "/api/v1/categories/3"},
		{DeleteCategory(4), "/api/v1/categories/4"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("got %q, want %q", tc.got, tc.want)
		}
	}
}
