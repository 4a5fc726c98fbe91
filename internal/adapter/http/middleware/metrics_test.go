package middleware

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/v1/assets/01HXY2ABC", "/api/v1/assets/:id"},
		{"/api/v1/bankaccounts/acc-1", "/api/v1/bankaccounts/:id"},
		{"/api/v1/liabilities/l1", "/api/v1/liabilities/:id"},
		{"/api/v1/users/u1", "/api/v1/users/:id"},
		{"/api/v1/assets", "/api/v1/assets"},
		{"/api/v1/assets/", "/api/v1/assets/"},
		{"/api/v1/net-worth/snapshots", "/api/v1/net-worth/snapshots"},
		{"/health", "/health"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.path); got != tt.want {
			t.Errorf("normalizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
