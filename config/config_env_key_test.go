package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"vapid": map[string]any{
			"tokenTtl":   "12h",
			"publicKey":  "",
			"subscriber": "",
		},
		"dispatch": map[string]any{
			"maxAttempts":    3,
			"backoffBase":    "500ms",
			"attemptTimeout": "5s",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "VAPID_TOKENTTL", want: "vapid.tokenTtl"},
		{envKey: "VAPID_PUBLICKEY", want: "vapid.publicKey"},
		{envKey: "DISPATCH_MAXATTEMPTS", want: "dispatch.maxAttempts"},
		{envKey: "DISPATCH_ATTEMPTTIMEOUT", want: "dispatch.attemptTimeout"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
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
