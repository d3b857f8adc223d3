package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"storage": map[string]any{
			"bucketUrl": "",
			"dropbox": map[string]any{
				"refreshToken": "",
			},
		},
		"backup": map[string]any{
			"initialDelay": "2m",
		},
		"admin": map[string]any{
			"superAdminId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "STORAGE_DROPBOX_REFRESHTOKEN", want: "storage.dropbox.refreshToken"},
		{envKey: "BACKUP_INITIALDELAY", want: "backup.initialDelay"},
		{envKey: "ADMIN_SUPERADMINID", want: "admin.superAdminId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestShortDomain(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{url: "", want: "local"},
		{url: "https://acme-workforce.onrender.com", want: "acme-workforce"},
		{url: "http://localhost:3000", want: "localhost"},
		{url: "https://crew.example.com/", want: "crew"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			cfg := &Config{}
			cfg.Deployment.ExternalURL = tt.url
			if got := cfg.ShortDomain(); got != tt.want {
				t.Fatalf("ShortDomain(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
